package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDatabase is the enemy database loaded when none is named
const DefaultDatabase = "enemy_db.json"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Database *DatabaseConfig
}

// Loader loads game configuration from JSON/YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	return &cfg, nil
}

// LoadDatabase loads an enemy database. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func (l *Loader) LoadDatabase(name string) (*DatabaseConfig, error) {
	if name == "" {
		name = DefaultDatabase
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy database %s: %w", name, err)
	}

	var cfg DatabaseConfig
	if IsYAML(name) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse enemy database %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads settings and the named database, and validates both
func (l *Loader) LoadAll(database string) (*GameConfig, error) {
	if database == "" {
		database = DefaultDatabase
	}

	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	db, err := l.LoadDatabase(database)
	if err != nil {
		return nil, err
	}
	if err := ValidateDatabase(db, settings); err != nil {
		return nil, fmt.Errorf("invalid enemy database %s: %w", database, err)
	}

	return &GameConfig{
		Settings: settings,
		Database: db,
	}, nil
}

// IsYAML reports whether name has a YAML extension
func IsYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// IsDatabaseFile reports whether name can hold an enemy database
func IsDatabaseFile(name string) bool {
	return IsYAML(name) || strings.ToLower(path.Ext(name)) == ".json"
}
