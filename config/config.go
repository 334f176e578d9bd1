// Package config loads and saves panel profiles from stacklayout.toml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"

	"github.com/agiangrant/stacklayout/internal/diag"
	"github.com/agiangrant/stacklayout/layout"
)

// FileName is the profile file looked up by the command line tools.
const FileName = "stacklayout.toml"

var (
	ErrNoProfile     = errors.New("config: no such profile")
	ErrDuplicateName = errors.New("config: duplicate name")
	ErrEmptyName     = errors.New("config: empty name")
)

// Config represents a stacklayout.toml file.
type Config struct {
	Log      diag.Config `toml:"log"`
	Profiles []Profile   `toml:"panel"`
}

// Profile describes one panel and its children.
type Profile struct {
	Name       string                `toml:"name"`
	Axis       layout.Axis           `toml:"axis"`
	Spacing    int                   `toml:"spacing"`
	Alignment  layout.CrossAlignment `toml:"alignment"`
	Policy     layout.SizingPolicy   `toml:"policy"`
	Padding    PaddingConfig         `toml:"padding"`
	Width      int                   `toml:"width"`
	Height     int                   `toml:"height"`
	AutoScroll bool                  `toml:"auto_scroll"`
	Children   []ChildConfig         `toml:"child"`
}

type PaddingConfig struct {
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
}

// ChildConfig describes a widget and its layout attributes.
type ChildConfig struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind,omitempty"`
	Label  string `toml:"label,omitempty"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Hidden bool   `toml:"hidden,omitempty"`

	MinWidth  int `toml:"min_width,omitempty"`
	MinHeight int `toml:"min_height,omitempty"`
	// 0 means unbounded
	MaxWidth  int `toml:"max_width,omitempty"`
	MaxHeight int `toml:"max_height,omitempty"`

	PreferredWidth  int `toml:"preferred_width,omitempty"`
	PreferredHeight int `toml:"preferred_height,omitempty"`

	Weight        int          `toml:"weight,omitempty"`
	IncludeHidden bool         `toml:"include_hidden,omitempty"`
	Float         *FloatConfig `toml:"float,omitempty"`
}

// FloatConfig makes a child float relative to a sibling.
type FloatConfig struct {
	Target    string                `toml:"target"`
	Alignment layout.FloatAlignment `toml:"alignment"`
	OffsetX   int                   `toml:"offset_x"`
	OffsetY   int                   `toml:"offset_y"`
	ZOrder    layout.ZOrderPolicy   `toml:"z_order"`
}

// Default returns the built-in profiles: the browser toolbar and a
// scrolling sidebar.
func Default() Config {
	return Config{
		Log: diag.DefaultConfig(),
		Profiles: []Profile{
			{
				Name:      "toolbar",
				Axis:      layout.Horizontal,
				Spacing:   4,
				Alignment: layout.AlignStretch,
				Policy:    layout.PolicyFixedFirst,
				Padding:   PaddingConfig{2, 2, 2, 2},
				Width:     400,
				Height:    28,
				Children: []ChildConfig{
					{Name: "back", Kind: "button", Label: "<", Width: 24, Height: 24},
					{Name: "forward", Kind: "button", Label: ">", Width: 24, Height: 24},
					{Name: "refresh", Kind: "button", Label: "R", Width: 24, Height: 24},
					{Name: "stop", Kind: "button", Label: "X", Width: 24, Height: 24, Hidden: true, Float: &FloatConfig{
						Target:    "refresh",
						Alignment: layout.FloatTopLeft,
						ZOrder:    layout.ZManual,
					}},
					{Name: "address", Kind: "text_field", Height: 24, Weight: 1, MinWidth: 40},
					{Name: "menu", Kind: "button", Label: "=", Width: 24, Height: 24},
				},
			},
			{
				Name:       "sidebar",
				Axis:       layout.Vertical,
				Spacing:    1,
				Alignment:  layout.AlignStart,
				Policy:     layout.PolicyPreferredSize,
				Padding:    PaddingConfig{1, 1, 1, 1},
				Width:      24,
				Height:     12,
				AutoScroll: true,
				Children: []ChildConfig{
					{Name: "title", Kind: "label", Label: "Bookmarks", Width: 9, Height: 1},
					{Name: "list", Kind: "panel", Width: 20, Height: 3, Weight: 1, PreferredHeight: 6},
					{Name: "footer", Kind: "label", Label: "12 items", Width: 8, Height: 1},
					{Name: "badge", Kind: "label", Label: "new", Width: 3, Height: 1, Float: &FloatConfig{
						Target:    "title",
						Alignment: layout.FloatToRightOf,
						OffsetX:   1,
						ZOrder:    layout.ZInFrontOfTarget,
					}},
				},
			},
		},
	}
}

// Load reads a config file. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Profiles in the file replace the built-in ones.
	cfg.Profiles = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Profile returns the named profile.
func (c Config) Profile(name string) (Profile, error) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%q: %w", name, ErrNoProfile)
}

// Validate reports every naming problem in the file at once.
func (c Config) Validate() error {
	var err error
	seen := map[string]bool{}
	for i, p := range c.Profiles {
		if p.Name == "" {
			err = multierr.Append(err, fmt.Errorf("panel %d: %w", i, ErrEmptyName))
		} else if seen[p.Name] {
			err = multierr.Append(err, fmt.Errorf("panel %q: %w", p.Name, ErrDuplicateName))
		}
		seen[p.Name] = true
		err = multierr.Append(err, p.validate())
	}
	return err
}

func (p Profile) validate() error {
	var err error
	seen := map[string]bool{}
	for i, c := range p.Children {
		switch {
		case c.Name == "":
			err = multierr.Append(err, fmt.Errorf("panel %q child %d: %w", p.Name, i, ErrEmptyName))
		case seen[c.Name]:
			err = multierr.Append(err, fmt.Errorf("panel %q child %q: %w", p.Name, c.Name, ErrDuplicateName))
		}
		seen[c.Name] = true
	}
	return err
}
