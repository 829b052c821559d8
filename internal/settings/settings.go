// Package settings holds the user settings of notedraft and their lifecycle.
//
// Settings are a single opaque record. Load merges the stored record over the
// defaults, Save always rewrites the whole record.
package settings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

const (
	// RecordName names the stored settings record.
	RecordName = "buttondown"

	// APIKeyURL is where a Buttondown API key can be obtained.
	APIKeyURL = "https://buttondown.email/settings/programming"

	// APIKeyPlaceholder is the prompt shown when asking for the key.
	APIKeyPlaceholder = "Enter your secret"
)

// Store persists the raw settings record.
type Store interface {
	// Load returns the stored record, or nil data if nothing was stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored record.
	Save(ctx context.Context, data []byte) error
}

// Settings is the persisted settings record.
type Settings struct {
	APIKey string `json:"APIKey"`
}

// Defaults returns the settings used for fields that were never stored.
func Defaults() Settings {
	return Settings{
		APIKey: "",
	}
}

// Configured reports whether an API key is present.
func (s Settings) Configured() bool {
	return s.APIKey != ""
}

// Masked returns the API key with all but its last four characters hidden.
func (s Settings) Masked() string {
	const visible = 4

	r := []rune(s.APIKey)
	if len(r) <= visible {
		return strings.Repeat("*", len(r))
	}

	return strings.Repeat("*", len(r)-visible) + string(r[len(r)-visible:])
}

// Load reads the settings from store, stored fields win over the defaults.
func Load(ctx context.Context, store Store) (Settings, error) {
	s := Defaults()

	data, err := store.Load(ctx)
	if err != nil {
		return s, errors.Wrap(err, "failed to load settings")
	}

	if len(data) == 0 {
		return s, nil
	}

	if err = json.Unmarshal(data, &s); err != nil {
		return Defaults(), errors.Wrap(err, "failed to decode settings")
	}

	return s, nil
}

// Save writes the whole settings record to store.
func Save(ctx context.Context, store Store, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}

	return errors.Wrap(store.Save(ctx, data), "failed to save settings")
}

// SetAPIKey sanitizes raw, assigns it to s and saves s.
// The stored value is the sanitized one.
func SetAPIKey(ctx context.Context, store Store, s *Settings, raw string) error {
	s.APIKey = SanitizeAPIKey(raw)

	return Save(ctx, store, *s)
}

// SanitizeAPIKey strips whitespace pasted around a key. Hyphens are part of
// Buttondown keys and are kept.
func SanitizeAPIKey(raw string) string {
	return strings.TrimSpace(raw)
}
