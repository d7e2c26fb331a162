package gitrepo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	testCases := []struct {
		name                  string
		rawIdentity           string
		expectedName          string
		expectedEmail         string
		expectedEpoch         int64
		expectedOffsetSeconds int
	}{
		{
			name:                  "PlainIdentity",
			rawIdentity:           "Alice Example <alice@example.com> 1714764000 +0200",
			expectedName:          "Alice Example",
			expectedEmail:         "alice@example.com",
			expectedEpoch:         1714764000,
			expectedOffsetSeconds: 2 * 60 * 60,
		},
		{
			name:                  "NegativeOffset",
			rawIdentity:           "Bob Builder <bob@example.com> 1700000000 -0430",
			expectedName:          "Bob Builder",
			expectedEmail:         "bob@example.com",
			expectedEpoch:         1700000000,
			expectedOffsetSeconds: -(4*60 + 30) * 60,
		},
		{
			name:                  "NameWithEmbeddedNewline",
			rawIdentity:           "Alice\nExample <alice@example.com> 1714764000 +0000",
			expectedName:          "Alice\nExample",
			expectedEmail:         "alice@example.com",
			expectedEpoch:         1714764000,
			expectedOffsetSeconds: 0,
		},
		{
			name:                  "NameContainingAngleBrackets",
			rawIdentity:           "Weird <Name> Here <weird@example.com> 1714764000 +0000",
			expectedName:          "Weird <Name> Here",
			expectedEmail:         "weird@example.com",
			expectedEpoch:         1714764000,
			expectedOffsetSeconds: 0,
		},
		{
			name:                  "EmptyName",
			rawIdentity:           "<nobody@example.com> 1714764000 +0000",
			expectedName:          "",
			expectedEmail:         "nobody@example.com",
			expectedEpoch:         1714764000,
			expectedOffsetSeconds: 0,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			identity, parseError := ParseIdentity(testCase.rawIdentity)
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedName, identity.Name)
			require.Equal(t, testCase.expectedEmail, identity.Email)
			require.Equal(t, testCase.expectedEpoch, identity.When.Unix())
			_, offsetSeconds := identity.When.Zone()
			require.Equal(t, testCase.expectedOffsetSeconds, offsetSeconds)
		})
	}
}

func TestParseIdentityRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name            string
		rawIdentity     string
		expectedMessage string
	}{
		{
			name:            "EmptyInput",
			rawIdentity:     "",
			expectedMessage: identityEmptyInputMessageConstant,
		},
		{
			name:            "WhitespaceOnly",
			rawIdentity:     "   ",
			expectedMessage: identityEmptyInputMessageConstant,
		},
		{
			name:            "MissingEmailDelimiters",
			rawIdentity:     "Alice Example 1714764000 +0200",
			expectedMessage: identityMissingEmailMessageConstant,
		},
		{
			name:            "MissingTimestamp",
			rawIdentity:     "Alice Example <alice@example.com>",
			expectedMessage: identityMissingStampMessageConstant,
		},
		{
			name:            "MissingOffset",
			rawIdentity:     "Alice Example <alice@example.com> 1714764000",
			expectedMessage: identityMissingStampMessageConstant,
		},
		{
			name:            "NonNumericEpoch",
			rawIdentity:     "Alice Example <alice@example.com> yesterday +0200",
			expectedMessage: identityInvalidStampMessageConstant,
		},
		{
			name:            "MalformedOffset",
			rawIdentity:     "Alice Example <alice@example.com> 1714764000 UTC",
			expectedMessage: identityInvalidOffsetMessageConstant,
		},
		{
			name:            "OffsetMissingSign",
			rawIdentity:     "Alice Example <alice@example.com> 1714764000 00200",
			expectedMessage: identityInvalidOffsetMessageConstant,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			_, parseError := ParseIdentity(testCase.rawIdentity)
			require.Error(t, parseError)

			var identityError IdentityParseError
			require.ErrorAs(t, parseError, &identityError)
			require.Equal(t, testCase.expectedMessage, identityError.Message)
			require.Equal(t, testCase.rawIdentity, identityError.Input)
		})
	}
}
