package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_EnvOverrides(t *testing.T) {
	resetConfig()
	t.Setenv("ARISTA_VTEP_USERNAME", "envops")
	t.Setenv("ARISTA_VTEP_PASSPHRASE", "pp")

	d := &fakeDispatcher{}
	stubWorkflow(t, nil, d)

	// Trigger OnInitialize by executing with args that fail after init
	rootCmd.SetArgs([]string{"sw1"})
	_ = rootCmd.Execute()
	require.Equal(t, "envops", cfgUsername)
	require.Equal(t, "pp", cfgPassphrase)
}

func TestInit_FlagBeatsDefault(t *testing.T) {
	resetConfig()
	d := &fakeDispatcher{}
	stubWorkflow(t, nil, d)

	rootCmd.SetArgs([]string{"-u", "flagops", "sw1"})
	_ = rootCmd.Execute()
	require.Equal(t, "flagops", cfgUsername)
}
