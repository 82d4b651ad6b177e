package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoctl/repoctl/config"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		tokenFile := filepath.Join(tmpDir, "token.key")
		err := os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600)
		require.NoError(t, err)

		// when
		result := config.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should fail when no token is configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Repository: "owner/repo"}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("should fail when the repository is not owner/name", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Token: "t", Repository: "just-a-name"}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "owner/name")
	})

	t.Run("should accept a minimal valid config", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Token: "t", Repository: "owner/repo"}

		// when
		err := config.Validate(cfg)

		// then
		assert.NoError(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load a full config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "repoctl.yaml")
		content := `
api_base_url: https://ghe.example.com/api/v3
token: inline-token
repository: owner/repo
default_branch: develop
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIBaseURL)
		assert.Equal(t, "inline-token", cfg.Token)
		assert.Equal(t, "owner/repo", cfg.Repository)
		assert.Equal(t, "develop", cfg.DefaultBranch)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "nope.yaml")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid yaml", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "repoctl.yaml")
		require.NoError(t, os.WriteFile(path, []byte("token: [unclosed"), 0o600))

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
