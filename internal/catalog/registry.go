// Package catalog serves the static choices the UI offers: the folder color
// palette and the editor background images. Both are compiled in from YAML
// so deployments can't drift from what the clients render.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the loaded catalog data. Read-only after construction.
type Registry struct {
	colors      []ColorOption
	backgrounds []Background
	colorByName map[string]ColorOption
	bgByName    map[string]Background
}

// NewRegistry loads the embedded YAML files
func NewRegistry() (*Registry, error) {
	r := &Registry{
		colorByName: make(map[string]ColorOption),
		bgByName:    make(map[string]Background),
	}

	data, err := configFiles.ReadFile("config/palette.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	var palette paletteFile
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("failed to unmarshal palette: %w", err)
	}
	r.colors = palette.Colors
	for _, c := range palette.Colors {
		r.colorByName[c.Name] = c
	}

	data, err = configFiles.ReadFile("config/backgrounds.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read backgrounds: %w", err)
	}
	var bgs backgroundsFile
	if err := yaml.Unmarshal(data, &bgs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backgrounds: %w", err)
	}
	r.backgrounds = bgs.Backgrounds
	for _, b := range bgs.Backgrounds {
		r.bgByName[b.Name] = b
	}

	return r, nil
}

// Colors returns the folder color palette (ordered as defined in YAML)
func (r *Registry) Colors() []ColorOption {
	return r.colors
}

// Backgrounds returns the editor background options
func (r *Registry) Backgrounds() []Background {
	return r.backgrounds
}

// Color looks up a palette entry by name
func (r *Registry) Color(name string) (ColorOption, bool) {
	c, ok := r.colorByName[name]
	return c, ok
}

// HasBackground reports whether name is a known background
func (r *Registry) HasBackground(name string) bool {
	_, ok := r.bgByName[name]
	return ok
}
