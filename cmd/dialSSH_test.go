package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHostKeyCallback_DefaultAcceptsAnyKey(t *testing.T) {
	cb, err := hostKeyCallback("", false)
	require.NoError(t, err)
	require.NotNil(t, cb)
}

func TestDialSSH_StrictWithoutKnownHostsFailsClosed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "known_hosts")
	_, err := dialSSH("127.0.0.1:2222", "ops", "pw", "", "", missing, true, time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "known_hosts file not found")
}

func TestDialSSH_BadKeyPathFails(t *testing.T) {
	_, err := dialSSH("127.0.0.1:2222", "ops", "pw", filepath.Join(t.TempDir(), "nokey"), "", "", false, time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load key")
}

func TestDialSSH_ConnectionRefused(t *testing.T) {
	// Port 1 on loopback is essentially never listening
	_, err := dialSSH("127.0.0.1:1", "ops", "pw", "", "", "", false, time.Second)
	require.Error(t, err)
}
