package cmd

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)}
	return writeTemp(t, t.TempDir(), "id_rsa", string(pem.EncodeToMemory(block)))
}

func TestLoadSigner_PlainKey(t *testing.T) {
	path := writeTestKey(t)
	signer, err := loadSigner(path, "")
	require.NoError(t, err)
	require.NotNil(t, signer)
}

func TestLoadSigner_MissingFile(t *testing.T) {
	_, err := loadSigner(filepath.Join(t.TempDir(), "nope"), "")
	require.Error(t, err)
}

func TestLoadSigner_GarbageKey(t *testing.T) {
	path := writeTemp(t, t.TempDir(), "id_rsa", "not a key")
	_, err := loadSigner(path, "")
	require.Error(t, err)
}
