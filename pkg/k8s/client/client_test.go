package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetClient() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		assert.Equal(t, "/explicit", resolveKubeconfig("/explicit"))
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		assert.Equal(t, "/from/env", resolveKubeconfig(""))
	})

	t.Run("home config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("KUBECONFIG", "")
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".kube"), 0o755))
		path := filepath.Join(home, ".kube", "config")
		require.NoError(t, os.WriteFile(path, []byte("apiVersion: v1\nkind: Config\n"), 0o600))

		assert.Equal(t, path, resolveKubeconfig(""))
	})

	t.Run("in cluster", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("KUBECONFIG", "")
		assert.Equal(t, "", resolveKubeconfig(""))
	})
}

func TestBuildKubeClient_InvalidPath(t *testing.T) {
	_, _, err := BuildKubeClient("/nonexistent/path/to/kubeconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestBuildKubeClient_InvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte("invalid yaml content"), 0o600))

	_, _, err := BuildKubeClient(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestBuildKubeClient_ValidKubeconfig(t *testing.T) {
	kubeconfig := `apiVersion: v1
kind: Config
clusters:
- name: local
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: local
  context:
    cluster: local
    user: local
current-context: local
users:
- name: local
  user:
    token: test
`
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfig), 0o600))

	cs, cfg, err := BuildKubeClient(path)
	require.NoError(t, err)
	assert.NotNil(t, cs)
	assert.Equal(t, "https://127.0.0.1:6443", cfg.Host)
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetClient()
	defer resetClient()

	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	c1, cfg1, err1 := GetKubeClient()
	c2, cfg2, err2 := GetKubeClient()

	// nolint:errorlint // same cached instance
	assert.True(t, err1 == err2)
	assert.Error(t, err1)
	assert.Nil(t, c1)
	assert.Nil(t, c2)
	assert.Nil(t, cfg1)
	assert.Nil(t, cfg2)
}
