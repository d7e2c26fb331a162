package branches

import "strings"

const (
	// OutputFormatText renders one line per branch for terminal consumption.
	OutputFormatText = "text"
	// OutputFormatYAML renders the full branch report as a YAML document.
	OutputFormatYAML = "yaml"

	defaultRepositoryRootConstant = "."
)

// CommandConfiguration captures configuration values shared by the branch commands.
type CommandConfiguration struct {
	RepositoryRoots []string `mapstructure:"roots"`
	OutputFormat    string   `mapstructure:"format"`
	RefPrefixes     []string `mapstructure:"ref_prefixes"`
	IncludeRemotes  bool     `mapstructure:"include_remotes"`
}

// DefaultCommandConfiguration provides baseline configuration values for the branch commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RepositoryRoots: []string{defaultRepositoryRootConstant},
		OutputFormat:    OutputFormatText,
		RefPrefixes:     nil,
		IncludeRemotes:  true,
	}
}

// DefaultConfigurationValues exposes the baseline values keyed beneath the
// provided configuration prefix for registration with the configuration loader.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + ".roots":           defaults.RepositoryRoots,
		configurationPrefix + ".format":          defaults.OutputFormat,
		configurationPrefix + ".include_remotes": defaults.IncludeRemotes,
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.OutputFormat = strings.ToLower(strings.TrimSpace(configuration.OutputFormat))
	sanitized.RepositoryRoots = sanitizeValues(configuration.RepositoryRoots)
	sanitized.RefPrefixes = sanitizeValues(configuration.RefPrefixes)

	return sanitized
}

func sanitizeValues(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}
