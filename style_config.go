package microui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOML theme files. A theme file carries the style metrics and a color
// table keyed by role name; Font is a runtime handle and is not
// serialized. Roles absent from the file keep their DefaultStyle value,
// so a theme can override just a few colors.

var colorNames = [colorMax]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBG:    "window_bg",
	ColorTitleBG:     "title_bg",
	ColorTitleText:   "title_text",
	ColorPanelBG:     "panel_bg",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonFocus: "button_focus",
	ColorBase:        "base",
	ColorBaseHover:   "base_hover",
	ColorBaseFocus:   "base_focus",
	ColorScrollBase:  "scroll_base",
	ColorScrollThumb: "scroll_thumb",
}

type styleColor struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
	A uint8 `toml:"a"`
}

type styleFile struct {
	Width         int                   `toml:"width"`
	Height        int                   `toml:"height"`
	Padding       int                   `toml:"padding"`
	Spacing       int                   `toml:"spacing"`
	IndentSize    int                   `toml:"indent_size"`
	TitleHeight   int                   `toml:"title_height"`
	ScrollbarSize int                   `toml:"scrollbar_size"`
	ThumbSize     int                   `toml:"thumb_size"`
	Colors        map[string]styleColor `toml:"colors"`
}

// LoadStyle reads a TOML theme file. Metrics and colors missing from the
// file keep their DefaultStyle values; an unknown color role is an
// error, since it is almost always a typo that would silently leave the
// intended role unthemed.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("load style: %w", err)
	}
	return decodeStyle(data)
}

// SaveStyle writes the style as a TOML theme file.
func SaveStyle(path string, style Style) error {
	data, err := encodeStyle(style)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save style: %w", err)
	}
	return nil
}

func decodeStyle(data []byte) (Style, error) {
	style := DefaultStyle()
	sf := styleFile{
		Width:         style.Size.X,
		Height:        style.Size.Y,
		Padding:       style.Padding,
		Spacing:       style.Spacing,
		IndentSize:    style.IndentSize,
		TitleHeight:   style.TitleHeight,
		ScrollbarSize: style.ScrollbarSize,
		ThumbSize:     style.ThumbSize,
	}
	if err := toml.Unmarshal(data, &sf); err != nil {
		return Style{}, fmt.Errorf("decode style: %w", err)
	}
	style.Size = Vec2{X: sf.Width, Y: sf.Height}
	style.Padding = sf.Padding
	style.Spacing = sf.Spacing
	style.IndentSize = sf.IndentSize
	style.TitleHeight = sf.TitleHeight
	style.ScrollbarSize = sf.ScrollbarSize
	style.ThumbSize = sf.ThumbSize
	for name, c := range sf.Colors {
		id, ok := colorByName(name)
		if !ok {
			return Style{}, fmt.Errorf("decode style: unknown color role %q", name)
		}
		style.Colors[id] = Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return style, nil
}

func encodeStyle(style Style) ([]byte, error) {
	sf := styleFile{
		Width:         style.Size.X,
		Height:        style.Size.Y,
		Padding:       style.Padding,
		Spacing:       style.Spacing,
		IndentSize:    style.IndentSize,
		TitleHeight:   style.TitleHeight,
		ScrollbarSize: style.ScrollbarSize,
		ThumbSize:     style.ThumbSize,
		Colors:        make(map[string]styleColor, colorMax),
	}
	for id, name := range colorNames {
		c := style.Colors[id]
		sf.Colors[name] = styleColor{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	data, err := toml.Marshal(sf)
	if err != nil {
		return nil, fmt.Errorf("encode style: %w", err)
	}
	return data, nil
}

func colorByName(name string) (ColorID, bool) {
	for id, n := range colorNames {
		if n == name {
			return ColorID(id), true
		}
	}
	return 0, false
}
