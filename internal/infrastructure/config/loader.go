package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	settingsFile = "settings.json"
	dataFile     = "data.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *Settings
	Data     *Data
}

// Loader loads game configuration using fs.FS interface
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

// LoadSettings loads settings.json over the defaults
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, settingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", settingsFile, err)
	}

	cfg := DefaultSettings()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", settingsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", settingsFile, err)
	}

	return cfg, nil
}

// LoadData loads data.yaml
func (l *Loader) LoadData() (*Data, error) {
	data, err := fs.ReadFile(l.fsys, dataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dataFile, err)
	}

	var cfg Data
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", dataFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", dataFile, err)
	}

	return &cfg, nil
}

// LoadAll loads settings and data tables concurrently
func (l *Loader) LoadAll() (*GameConfig, error) {
	var (
		g        errgroup.Group
		settings *Settings
		data     *Data
	)

	g.Go(func() error {
		var err error
		settings, err = l.LoadSettings()
		return err
	})
	g.Go(func() error {
		var err error
		data, err = l.LoadData()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Data:     data,
	}, nil
}
