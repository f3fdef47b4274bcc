package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// MapTokenKey is the name under which the Mapbox token is looked up, both
// in the secrets file and in the environment.
const MapTokenKey = "MAPBOX_API_KEY"

// Secrets is the application secret store, backed by a flat TOML file.
// A missing file yields an empty store, not an error.
type Secrets struct {
	values map[string]string
}

// LoadSecrets reads the secrets file at path. Non-string values are
// ignored; only a malformed file is an error.
func LoadSecrets(path string) (*Secrets, error) {
	s := &Secrets{values: make(map[string]string)}

	raw := make(map[string]interface{})
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}

	for key, value := range raw {
		if str, ok := value.(string); ok {
			s.values[key] = str
		}
	}
	return s, nil
}

// Get returns the secret stored under key, or "" when absent
func (s *Secrets) Get(key string) string {
	if s == nil {
		return ""
	}
	return s.values[key]
}

// TokenSource resolves the map token from exactly two sources, in priority
// order: the secret store, then the environment variable of the same name.
// The first non-empty trimmed value wins; "" means no token is configured.
func (s *Secrets) TokenSource() func() string {
	return func() string {
		if v := strings.TrimSpace(s.Get(MapTokenKey)); v != "" {
			return v
		}
		return strings.TrimSpace(os.Getenv(MapTokenKey))
	}
}
