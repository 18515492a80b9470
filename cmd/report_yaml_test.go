package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteRunReport_OneEntryPerHost(t *testing.T) {
	results := []hostResult{
		{Host: "sw1", Payload: "updated"},
		{Host: "sw2", Err: errSentinel},
	}
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, writeRunReport(path, "ssh", results))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var r runReport
	require.NoError(t, yaml.Unmarshal(b, &r))
	require.Equal(t, "ssh", r.Transport)
	require.NotEmpty(t, r.Generated)
	require.Len(t, r.Hosts, 2)
	require.Equal(t, "sw1", r.Hosts[0].Host)
	require.Equal(t, "updated", r.Hosts[0].Payload)
	require.Empty(t, r.Hosts[0].Error)
	require.Equal(t, "sw2", r.Hosts[1].Host)
	require.Equal(t, "boom", r.Hosts[1].Error)
	require.Empty(t, r.Hosts[1].Payload)
}

func TestWriteRunReport_UnwritablePath(t *testing.T) {
	err := writeRunReport(filepath.Join(t.TempDir(), "missing-dir", "r.yaml"), "eapi", nil)
	require.Error(t, err)
}
