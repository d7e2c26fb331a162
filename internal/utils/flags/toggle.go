package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue          = "true"
	toggleFalseCanonicalValue         = "false"
	toggleParseErrorTemplate          = "invalid toggle value %q"
	toggleEnabledPlaceholderConstant  = "<YES|no>"
	toggleDisabledPlaceholderConstant = "<yes|NO>"
	toggleLongFlagPrefixConstant      = "--"
	toggleShortFlagPrefixConstant     = "-"
	toggleFlagValueAssignmentConstant = "="
	toggleArgumentTerminatorConstant  = "--"
	toggleBoolFlagTypeNameConstant    = "bool"
)

// toggleLiterals maps every accepted spelling onto its boolean meaning.
var toggleLiterals = map[string]bool{
	toggleTrueCanonicalValue:  true,
	toggleFalseCanonicalValue: false,
	"yes":                     true,
	"no":                      false,
	"on":                      true,
	"off":                     false,
	"1":                       true,
	"0":                       false,
	"t":                       true,
	"f":                       false,
	"y":                       true,
	"n":                       false,
}

var (
	toggleFlagRegistryMutex sync.RWMutex
	toggleFlagNames         = map[string]struct{}{}
	toggleFlagShorthands    = map[string]struct{}{}
)

// AddToggleFlag registers a boolean toggle flag that accepts yes/no style values.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValue
	flag.Usage = formatToggleUsage(usage, defaultValue)

	toggleFlagRegistryMutex.Lock()
	toggleFlagNames[name] = struct{}{}
	if len(shorthand) > 0 {
		toggleFlagShorthands[shorthand] = struct{}{}
	}
	toggleFlagRegistryMutex.Unlock()
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleDisabledPlaceholderConstant
	if defaultValue {
		placeholder = toggleEnabledPlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmedDescription)
}

// NormalizeToggleArguments rewrites toggle flag arguments so "--flag value" becomes "--flag=value" before parsing.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	argumentIndex := 0
	for argumentIndex < len(arguments) {
		currentArgument := arguments[argumentIndex]
		if currentArgument == toggleArgumentTerminatorConstant {
			normalized = append(normalized, arguments[argumentIndex:]...)
			break
		}

		rewrittenArgument, consumedCount := rewriteToggleArgument(currentArgument, arguments, argumentIndex)
		if consumedCount > 0 {
			normalized = append(normalized, rewrittenArgument)
			argumentIndex += consumedCount
			continue
		}

		normalized = append(normalized, currentArgument)
		argumentIndex++
	}

	return normalized
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

func (value *toggleFlagValue) Set(rawValue string) error {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}

	parsedValue, recognized := toggleLiterals[strings.ToLower(trimmedValue)]
	if !recognized {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleFlagValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleBoolFlagTypeNameConstant
}

// rewriteToggleArgument joins a registered toggle flag with its detached value
// argument. Returns the rewritten argument and how many input arguments it
// consumed; a zero count means the argument is not a registered toggle flag.
func rewriteToggleArgument(currentArgument string, arguments []string, argumentIndex int) (string, int) {
	flagToken, isLongForm := strings.CutPrefix(currentArgument, toggleLongFlagPrefixConstant)
	if !isLongForm {
		shortToken, isShortForm := strings.CutPrefix(currentArgument, toggleShortFlagPrefixConstant)
		if !isShortForm {
			return "", 0
		}
		flagToken = shortToken
	}
	if len(flagToken) == 0 {
		return "", 0
	}

	flagName := flagToken
	hasInlineValue := false
	if assignmentIndex := strings.Index(flagToken, toggleFlagValueAssignmentConstant); assignmentIndex >= 0 {
		flagName = flagToken[:assignmentIndex]
		hasInlineValue = true
	}
	if len(flagName) == 0 {
		return "", 0
	}
	if !isLongForm && len(flagName) != 1 {
		return "", 0
	}
	if !isRegisteredToggle(flagName, isLongForm) {
		return "", 0
	}

	if hasInlineValue || argumentIndex+1 >= len(arguments) {
		return currentArgument, 1
	}
	nextArgument := arguments[argumentIndex+1]
	if strings.HasPrefix(nextArgument, toggleShortFlagPrefixConstant) {
		return currentArgument, 1
	}
	return currentArgument + toggleFlagValueAssignmentConstant + nextArgument, 2
}

func isRegisteredToggle(flagName string, isLongForm bool) bool {
	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()
	if isLongForm {
		_, registered := toggleFlagNames[flagName]
		return registered
	}
	_, registered := toggleFlagShorthands[flagName]
	return registered
}
