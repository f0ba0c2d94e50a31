package fintrack

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Theme is the user's color theme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme parses "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q, want %q or %q", s, Light, Dark)
	}
}

// Preferences gives access to the user preferences kept next to the ledger.
type Preferences struct {
	storage Storage
	log     zerolog.Logger
}

// NewPreferences returns the preferences stored in storage.
func NewPreferences(storage Storage, log zerolog.Logger) *Preferences {
	return &Preferences{storage: storage, log: log}
}

// Theme returns the saved theme, Light when none is saved or it can't be read.
func (p *Preferences) Theme() Theme {
	value, ok, err := p.storage.Get(ThemeKey)
	if err != nil {
		p.log.Warn().Err(&StorageError{Op: "get", Key: ThemeKey, Err: err}).Msg("cannot read theme, using light")
		return Light
	}
	if !ok {
		return Light
	}
	t, err := ParseTheme(value)
	if err != nil {
		p.log.Warn().Err(err).Msg("invalid saved theme, using light")
		return Light
	}
	return t
}

// SetTheme saves the theme.
func (p *Preferences) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := p.storage.Set(ThemeKey, string(t)); err != nil {
		return &StorageError{Op: "set", Key: ThemeKey, Err: err}
	}
	return nil
}

// ToggleTheme switches between light and dark and saves the result.
func (p *Preferences) ToggleTheme() (Theme, error) {
	next := Dark
	if p.Theme() == Dark {
		next = Light
	}
	return next, p.SetTheme(next)
}
