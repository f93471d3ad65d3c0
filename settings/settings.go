// Package settings persists demo preferences across runs using gdata's
// cross-platform app storage. A nil manager degrades to in-memory
// defaults, so the demos run fine on platforms where storage is
// unavailable.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable demo preferences.
type Settings struct {
	Horizon      string  `yaml:"horizon"`
	Tier         string  `yaml:"tier"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"`
}

// Default returns the out-of-the-box preferences.
func Default() *Settings {
	return &Settings{
		Horizon:      "bigbang",
		Tier:         "high",
		SoundEnabled: true,
		SoundVolume:  0.7,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// Manager loads and saves settings through a gdata manager.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager. store may be nil, in which case
// nothing persists and defaults are used. A failed load is not fatal;
// defaults apply and the error is logged.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: Default(),
	}
	if err := m.Load(); err != nil {
		log.Printf("settings: load failed: %v (using defaults)", err)
	}
	return m
}

// Settings returns the current in-memory settings.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// Load reads persisted settings, keeping defaults when none exist.
func (m *Manager) Load() error {
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	m.settings = loaded
	return nil
}

// Save persists the current settings. A nil store is a silent no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
