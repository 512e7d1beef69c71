// Package yaml loads pagemark translation catalogs from YAML files.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/pagemark"
	"gopkg.in/yaml.v3"
)

// LoadTranslations reads a YAML catalog of UI strings. Keys missing from
// the file fall back to the built-in defaults.
func LoadTranslations(path string) (pagemark.Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}

	var loaded map[string]string
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "invalid translations file %q: %v", path, err)
	}

	t := pagemark.DefaultTranslations()
	for k, v := range loaded {
		t[k] = v
	}
	return t, nil
}
