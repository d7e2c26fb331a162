package cli

import _ "embed"

// defaultConfigurationYAML ships the baseline settings applied when no user
// configuration file is present.
//
//go:embed default_config.yaml
var defaultConfigurationYAML []byte

// EmbeddedDefaultConfiguration returns a copy of the embedded default
// configuration data together with its type identifier.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), defaultConfigurationYAML...), configurationTypeConstant
}
