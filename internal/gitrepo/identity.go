package gitrepo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	identityEmailOpenDelimiterConstant   = "<"
	identityEmailCloseDelimiterConstant  = ">"
	identityParseErrorTemplateConstant   = "%s: %q"
	identityEmptyInputMessageConstant    = "identity value is empty"
	identityMissingEmailMessageConstant  = "identity value has no email delimiters"
	identityMissingStampMessageConstant  = "identity value has no timestamp"
	identityInvalidStampMessageConstant  = "identity timestamp is not a unix epoch"
	identityInvalidOffsetMessageConstant = "identity timezone offset is malformed"
	identityTimestampFieldCountConstant  = 2
	timezoneOffsetLengthConstant         = 5
	minutesPerHourConstant               = 60
	secondsPerMinuteConstant             = 60
)

// IdentityParseError indicates a raw identity value could not be decoded.
type IdentityParseError struct {
	Input   string
	Message string
}

// Error describes the identity parse failure including the offending input.
func (parseError IdentityParseError) Error() string {
	return fmt.Sprintf(identityParseErrorTemplateConstant, parseError.Message, parseError.Input)
}

// ParseIdentity decodes the compact identity representation emitted by git
// ref enumeration, of the shape "Name <email> epoch offset". The name portion
// may contain any characters including newlines; the epoch is interpreted in
// the recorded timezone offset.
func ParseIdentity(rawIdentity string) (Identity, error) {
	if len(strings.TrimSpace(rawIdentity)) == 0 {
		return Identity{}, IdentityParseError{Input: rawIdentity, Message: identityEmptyInputMessageConstant}
	}

	emailOpenIndex := strings.LastIndex(rawIdentity, identityEmailOpenDelimiterConstant)
	emailCloseIndex := strings.LastIndex(rawIdentity, identityEmailCloseDelimiterConstant)
	if emailOpenIndex < 0 || emailCloseIndex < emailOpenIndex {
		return Identity{}, IdentityParseError{Input: rawIdentity, Message: identityMissingEmailMessageConstant}
	}

	identityName := strings.TrimSpace(rawIdentity[:emailOpenIndex])
	identityEmail := rawIdentity[emailOpenIndex+1 : emailCloseIndex]

	timestampFields := strings.Fields(rawIdentity[emailCloseIndex+1:])
	if len(timestampFields) < identityTimestampFieldCountConstant {
		return Identity{}, IdentityParseError{Input: rawIdentity, Message: identityMissingStampMessageConstant}
	}

	epochSeconds, epochParseError := strconv.ParseInt(timestampFields[0], 10, 64)
	if epochParseError != nil {
		return Identity{}, IdentityParseError{Input: rawIdentity, Message: identityInvalidStampMessageConstant}
	}

	timezoneLocation, offsetParseError := parseTimezoneOffset(timestampFields[1])
	if offsetParseError != nil {
		return Identity{}, IdentityParseError{Input: rawIdentity, Message: identityInvalidOffsetMessageConstant}
	}

	return Identity{
		Name:  identityName,
		Email: identityEmail,
		When:  time.Unix(epochSeconds, 0).In(timezoneLocation),
	}, nil
}

// parseTimezoneOffset converts a "+hhmm"/"-hhmm" offset into a fixed location.
func parseTimezoneOffset(rawOffset string) (*time.Location, error) {
	if len(rawOffset) != timezoneOffsetLengthConstant {
		return nil, fmt.Errorf(identityParseErrorTemplateConstant, identityInvalidOffsetMessageConstant, rawOffset)
	}

	offsetSign := 1
	switch rawOffset[0] {
	case '+':
	case '-':
		offsetSign = -1
	default:
		return nil, fmt.Errorf(identityParseErrorTemplateConstant, identityInvalidOffsetMessageConstant, rawOffset)
	}

	offsetHours, hoursParseError := strconv.Atoi(rawOffset[1:3])
	if hoursParseError != nil {
		return nil, fmt.Errorf(identityParseErrorTemplateConstant, identityInvalidOffsetMessageConstant, rawOffset)
	}
	offsetMinutes, minutesParseError := strconv.Atoi(rawOffset[3:])
	if minutesParseError != nil {
		return nil, fmt.Errorf(identityParseErrorTemplateConstant, identityInvalidOffsetMessageConstant, rawOffset)
	}

	offsetSeconds := offsetSign * (offsetHours*minutesPerHourConstant + offsetMinutes) * secondsPerMinuteConstant
	return time.FixedZone(rawOffset, offsetSeconds), nil
}
