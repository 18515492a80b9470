package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Happy path: Execute() should not call exitFunc when rootCmd succeeds.
func TestExecute_Success_NoExit(t *testing.T) {
	resetConfig()
	d := &fakeDispatcher{}
	stubWorkflow(t, map[string]string{"sw1": "10.0.0.1", "sw2": "10.0.0.2"}, d)

	calledExit := 0
	origExit := exitFunc
	exitFunc = func(code int) { calledExit = code }
	t.Cleanup(func() { exitFunc = origExit })

	rootCmd.SetArgs([]string{"-u", "ops", "sw1", "sw2"})
	_, _ = captureOutput(t, func() { Execute() })
	require.Equal(t, 0, calledExit)
	require.Equal(t, 2, d.callCount())
}

// Pre-flight failure: too few hosts prints a diagnostic and exits 1.
func TestExecute_TooFewHosts_Exit1(t *testing.T) {
	resetConfig()
	d := &fakeDispatcher{}
	stubWorkflow(t, nil, d)

	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = origExit })

	rootCmd.SetArgs([]string{"-u", "ops", "sw1"})
	_, stderr := captureOutput(t, func() { Execute() })
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "at least two hosts")
	require.Equal(t, 0, d.callCount())
}

// Pre-flight failure: unresolved host exits 1 before any dispatch.
func TestExecute_UnresolvedHost_Exit1(t *testing.T) {
	resetConfig()
	d := &fakeDispatcher{}
	stubWorkflow(t, map[string]string{"sw1": "10.0.0.1"}, d)

	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = origExit })

	rootCmd.SetArgs([]string{"-u", "ops", "sw1", "bogus.invalid"})
	_, stderr := captureOutput(t, func() { Execute() })
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "unable to resolve bogus.invalid")
	require.Equal(t, 0, d.callCount())
}
