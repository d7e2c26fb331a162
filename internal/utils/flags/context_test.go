package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestBindRootFlagsUsesDefaultsAndParsesValues(t *testing.T) {
	command := &cobra.Command{}

	values := BindRootFlags(command, RootFlagValues{Roots: []string{"/tmp/default"}}, RootFlagDefinition{Enabled: true})

	require.NotNil(t, values)
	require.Equal(t, []string{"/tmp/default"}, values.Roots)

	parseError := command.ParseFlags([]string{"--" + DefaultRootFlagName, "/workspace", "--" + DefaultRootFlagName, "/projects"})
	require.NoError(t, parseError)
	require.Equal(t, []string{"/workspace", "/projects"}, values.Roots)
}

func TestBindRootFlagsSupportsPersistentScope(t *testing.T) {
	command := &cobra.Command{}

	values := BindRootFlags(command, RootFlagValues{}, RootFlagDefinition{Enabled: true, Persistent: true})
	require.NotNil(t, values)
	require.NotNil(t, command.PersistentFlags().Lookup(DefaultRootFlagName))
	require.NotNil(t, command.Flags().Lookup(DefaultRootFlagName))
}

func TestBindRootFlagsDisabledLeavesCommandUntouched(t *testing.T) {
	command := &cobra.Command{}

	values := BindRootFlags(command, RootFlagValues{Roots: []string{"/tmp/default"}}, RootFlagDefinition{})
	require.NotNil(t, values)
	require.Nil(t, command.Flags().Lookup(DefaultRootFlagName))
}
