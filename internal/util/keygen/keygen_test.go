package keygen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	pair, err := Generate(2048)
	require.NoError(t, err)

	assert.Contains(t, string(pair.PrivateKey), "RSA PRIVATE KEY")

	// Public half must parse as an authorized_keys entry
	pub, _, _, _, err := ssh.ParseAuthorizedKey(pair.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "ssh-rsa", pub.Type())
}

func TestWrite(t *testing.T) {
	t.Parallel()
	pair, err := Generate(2048)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "keys")
	privPath, err := pair.Write(dir, "container_rsa")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "container_rsa"), privPath)

	info, err := os.Stat(privPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	pubData, err := os.ReadFile(privPath + ".pub")
	require.NoError(t, err)
	assert.Equal(t, pair.PublicKey, pubData)
}
