package styles

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m0370/pedigree-drawer/pkg/errors"
)

// Theme holds every tunable drawing constant. Values unset in a theme file
// keep their defaults, so a file only needs the keys it changes.
type Theme struct {
	SymbolSize   float64 `toml:"symbol_size"`
	SpouseGap    float64 `toml:"spouse_gap"`
	UnitGap      float64 `toml:"unit_gap"`
	MinUnitGap   float64 `toml:"min_unit_gap"`
	GenGap       float64 `toml:"gen_gap"`
	MarginX      float64 `toml:"margin_x"`
	MarginY      float64 `toml:"margin_y"`
	ChildSpacing float64 `toml:"child_spacing"`
	StrokeWidth  float64 `toml:"stroke_width"`
	FontFamily   string  `toml:"font_family"`

	CaptionOffset     float64 `toml:"caption_offset"`
	CaptionLineHeight float64 `toml:"caption_line_height"`
	CaptionFontSize   float64 `toml:"caption_font_size"`
	CaptionWrap       int     `toml:"caption_wrap"`
	CaptionMaxWidth   float64 `toml:"caption_max_width"`
	CaptionPad        float64 `toml:"caption_pad"`

	LineColor  string   `toml:"line_color"`
	FillColor  string   `toml:"fill_color"`
	MutedColor string   `toml:"muted_color"`
	Palette    []string `toml:"palette"`
}

// Default returns the standard theme.
func Default() Theme {
	return Theme{
		SymbolSize:   40,
		SpouseGap:    80,
		UnitGap:      80,
		MinUnitGap:   20,
		GenGap:       120,
		MarginX:      60,
		MarginY:      40,
		ChildSpacing: 36,
		StrokeWidth:  2,
		FontFamily:   "Arial, Helvetica, sans-serif",

		CaptionOffset:     16,
		CaptionLineHeight: 14,
		CaptionFontSize:   11,
		CaptionWrap:       18,
		CaptionMaxWidth:   150,
		CaptionPad:        8,

		LineColor:  "#000",
		FillColor:  "#000",
		MutedColor: "#666",
		Palette: []string{
			"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#a65628",
		},
	}
}

// Half returns half the symbol size, the distance from a symbol's center to
// its edge.
func (t Theme) Half() float64 { return t.SymbolSize / 2 }

// PaletteColor returns the palette entry for index i, cycling when the
// palette is shorter than the condition list.
func (t Theme) PaletteColor(i int) string {
	if len(t.Palette) == 0 || i < 0 {
		return t.FillColor
	}
	return t.Palette[i%len(t.Palette)]
}

// Load reads a TOML theme file and merges it over the defaults.
func Load(path string) (Theme, error) {
	th := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, errors.Wrap(errors.ErrCodeInvalidPath, err, "read theme %s", path)
	}
	if err := toml.Unmarshal(data, &th); err != nil {
		return th, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse theme %s", path)
	}
	if err := th.Validate(); err != nil {
		return th, err
	}
	return th, nil
}

// Validate rejects themes that would produce degenerate geometry.
func (t Theme) Validate() error {
	switch {
	case t.SymbolSize <= 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: symbol_size must be positive")
	case t.StrokeWidth <= 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: stroke_width must be positive")
	case t.SpouseGap < 0 || t.UnitGap < 0 || t.GenGap <= 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: gaps must not be negative")
	case t.MinUnitGap < 0 || t.MinUnitGap > t.UnitGap:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: min_unit_gap must be between 0 and unit_gap")
	case t.MarginX < 0 || t.MarginY < 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: margins must not be negative")
	case t.CaptionWrap < 1:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: caption_wrap must be at least 1")
	case t.CaptionLineHeight <= 0 || t.CaptionFontSize <= 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: caption metrics must be positive")
	case len(t.Palette) == 0:
		return errors.New(errors.ErrCodeInvalidFormat, "theme: palette must not be empty")
	}
	return nil
}
