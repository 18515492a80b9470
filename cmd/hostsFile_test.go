package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadHostsFile_SkipsBlankLinesAndWhitespace(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "hosts.txt", "sw1\n\n  sw2  \n\t\nsw3\n")
	hosts, err := readHostsFile(p)
	require.NoError(t, err)
	require.Equal(t, []string{"sw1", "sw2", "sw3"}, hosts)
}

func TestReadHostsFile_EmptyFile(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "hosts.txt", "")
	hosts, err := readHostsFile(p)
	require.NoError(t, err)
	require.Empty(t, hosts)
}

func TestReadHostsFile_MissingFile(t *testing.T) {
	_, err := readHostsFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
