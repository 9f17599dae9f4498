package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/theme"
)

// FormatVersion tags every file written by Save.
const FormatVersion = 1

// DefaultFileName is the settings file name used when no path is configured.
const DefaultFileName = "maniac-config.json"

// ErrEmptyPath is returned when a Store has no path.
var ErrEmptyPath = errors.New("settings: empty path")

// document is the persisted form. Pointer fields distinguish "missing"
// from zero so that missing fields keep their defaults.
type document struct {
	FormatVersion        int         `json:"format_version"`
	TapTime              *int        `json:"tap_time,omitempty"`
	MirrorMod            *bool       `json:"mirror_mod,omitempty"`
	CompensationOffset   *int        `json:"compensation_offset,omitempty"`
	RandomizationMean    *int        `json:"randomization_mean,omitempty"`
	RandomizationStdDev  *int        `json:"randomization_stddev,omitempty"`
	HumanizationType     *int        `json:"humanization_type,omitempty"`
	HumanizationModifier *int        `json:"humanization_modifier,omitempty"`
	Keys                 *string     `json:"keys,omitempty"`
	ThemeIndex           *int        `json:"theme_index,omitempty"`
	DarkMode             *bool       `json:"dark_mode,omitempty"`
	AccentColor          *[3]float64 `json:"accent_color,omitempty"`
	BgColor              *[3]float64 `json:"bg_color,omitempty"`
}

// Store loads and saves Settings as JSON at Path.
type Store struct {
	Path string
}

// NewStore returns a store for path. An empty path selects DefaultFileName
// in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{Path: path}
}

// Load reads the settings file.
//
// Load never fails hard: a missing file yields Defaults and a nil error.
// An unreadable or unparsable file yields Defaults and a KindDegraded error
// the caller is expected to log and otherwise ignore. Fields missing from
// the file keep their default values; unknown fields are ignored.
func (s *Store) Load() (Settings, error) {
	out := Defaults()
	if s.Path == "" {
		return out, overlay.Degraded("settings.Load", ErrEmptyPath)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return out, overlay.Degraded("settings.Load", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return out, overlay.Degraded("settings.Load", fmt.Errorf("failed to parse settings %s: %w", s.Path, err))
	}
	doc.apply(&out)

	overlay.Logger().Debug("loaded settings", "path", s.Path, "format_version", doc.FormatVersion)
	return out, nil
}

// Save overwrites the settings file with v. The write goes through a
// temporary file renamed into place.
func (s *Store) Save(v Settings) error {
	if s.Path == "" {
		return ErrEmptyPath
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("settings: failed to create settings dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(fromSettings(v), "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("settings: failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("settings: failed to persist settings: %w", err)
	}

	overlay.Logger().Debug("wrote settings", "path", s.Path)
	return nil
}

func (d *document) apply(s *Settings) {
	if d.TapTime != nil {
		s.TapTime = *d.TapTime
	}
	if d.MirrorMod != nil {
		s.MirrorMod = *d.MirrorMod
	}
	if d.CompensationOffset != nil {
		s.CompensationOffset = *d.CompensationOffset
	}
	if d.RandomizationMean != nil {
		s.RandomizationMean = *d.RandomizationMean
	}
	if d.RandomizationStdDev != nil {
		s.RandomizationStdDev = *d.RandomizationStdDev
	}
	if d.HumanizationType != nil {
		s.HumanizationType = Humanization(*d.HumanizationType)
	}
	if d.HumanizationModifier != nil {
		s.HumanizationModifier = *d.HumanizationModifier
	}
	if d.Keys != nil {
		s.Keys = *d.Keys
	}
	if d.ThemeIndex != nil {
		s.Theme = theme.Selector(*d.ThemeIndex)
	}
	if d.DarkMode != nil {
		s.DarkMode = *d.DarkMode
	}
	if d.AccentColor != nil {
		s.Accent = *d.AccentColor
	}
	if d.BgColor != nil {
		s.Background = *d.BgColor
	}
}

func fromSettings(s Settings) document {
	ht := int(s.HumanizationType)
	ti := int(s.Theme)
	return document{
		FormatVersion:        FormatVersion,
		TapTime:              &s.TapTime,
		MirrorMod:            &s.MirrorMod,
		CompensationOffset:   &s.CompensationOffset,
		RandomizationMean:    &s.RandomizationMean,
		RandomizationStdDev:  &s.RandomizationStdDev,
		HumanizationType:     &ht,
		HumanizationModifier: &s.HumanizationModifier,
		Keys:                 &s.Keys,
		ThemeIndex:           &ti,
		DarkMode:             &s.DarkMode,
		AccentColor:          &s.Accent,
		BgColor:              &s.Background,
	}
}
