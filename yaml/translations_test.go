package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslations(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "translations.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("loaded keys override defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "title: Moje strony\nsearch: Szukaj\n")

		tr, err := yaml.LoadTranslations(path)
		require.NoError(t, err)
		assert.Equal(t, "Moje strony", tr.Get("title"))
		assert.Equal(t, "Szukaj", tr.Get("search"))
	})

	t.Run("missing keys fall back to defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "title: Custom Title\n")

		tr, err := yaml.LoadTranslations(path)
		require.NoError(t, err)
		assert.Equal(t, "Custom Title", tr.Get("title"))
		assert.Equal(t, pagemark.DefaultTranslations().Get("no_results"), tr.Get("no_results"))
	})

	t.Run("unknown keys fall back to the key itself", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "title: Custom Title\n")

		tr, err := yaml.LoadTranslations(path)
		require.NoError(t, err)
		assert.Equal(t, "never_defined", tr.Get("never_defined"))
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadTranslations(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "title: [unclosed\n")

		_, err := yaml.LoadTranslations(path)
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
