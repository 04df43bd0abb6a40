package microui

// ColorID names the color roles a Style assigns. Controls draw through
// these roles so a theme swap recolors everything at once.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	colorMax // number of color roles
)

// Style holds the metrics and palette controls draw with. Each Context
// owns its style; there is no package-level theme, so two contexts can
// run different themes side by side. Mutate ctx.Style directly or swap
// the pointer wholesale.
type Style struct {
	// Font is the opaque handle passed to the text callbacks.
	Font Font
	// Size is the default control size; a LayoutRow width or height of
	// zero falls back to it (plus padding).
	Size Vec2
	// Padding insets a control's content from its frame.
	Padding int
	// Spacing separates adjacent controls.
	Spacing int
	// IndentSize is the horizontal indent per tree-node level.
	IndentSize int
	// TitleHeight is the window title bar height.
	TitleHeight int
	// ScrollbarSize is the scrollbar track thickness.
	ScrollbarSize int
	// ThumbSize is the minimum scrollbar thumb length.
	ThumbSize int
	// Colors is the palette, indexed by ColorID.
	Colors [colorMax]Color
}

// DefaultStyle returns the built-in dark theme.
func DefaultStyle() Style {
	return Style{
		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       4,
		IndentSize:    24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [colorMax]Color{
			ColorText:        {R: 230, G: 230, B: 230, A: 255},
			ColorBorder:      {R: 25, G: 25, B: 25, A: 255},
			ColorWindowBG:    {R: 50, G: 50, B: 50, A: 255},
			ColorTitleBG:     {R: 25, G: 25, B: 25, A: 255},
			ColorTitleText:   {R: 240, G: 240, B: 240, A: 255},
			ColorPanelBG:     {R: 0, G: 0, B: 0, A: 0},
			ColorButton:      {R: 75, G: 75, B: 75, A: 255},
			ColorButtonHover: {R: 95, G: 95, B: 95, A: 255},
			ColorButtonFocus: {R: 115, G: 115, B: 115, A: 255},
			ColorBase:        {R: 30, G: 30, B: 30, A: 255},
			ColorBaseHover:   {R: 35, G: 35, B: 35, A: 255},
			ColorBaseFocus:   {R: 40, G: 40, B: 40, A: 255},
			ColorScrollBase:  {R: 43, G: 43, B: 43, A: 255},
			ColorScrollThumb: {R: 30, G: 30, B: 30, A: 255},
		},
	}
}

// LightStyle returns a light theme with the same metrics as the default.
func LightStyle() Style {
	s := DefaultStyle()
	s.Colors = [colorMax]Color{
		ColorText:        {R: 30, G: 30, B: 30, A: 255},
		ColorBorder:      {R: 170, G: 170, B: 170, A: 255},
		ColorWindowBG:    {R: 235, G: 235, B: 235, A: 255},
		ColorTitleBG:     {R: 200, G: 200, B: 200, A: 255},
		ColorTitleText:   {R: 20, G: 20, B: 20, A: 255},
		ColorPanelBG:     {R: 0, G: 0, B: 0, A: 0},
		ColorButton:      {R: 210, G: 210, B: 210, A: 255},
		ColorButtonHover: {R: 195, G: 195, B: 195, A: 255},
		ColorButtonFocus: {R: 180, G: 180, B: 180, A: 255},
		ColorBase:        {R: 245, G: 245, B: 245, A: 255},
		ColorBaseHover:   {R: 238, G: 238, B: 238, A: 255},
		ColorBaseFocus:   {R: 230, G: 230, B: 230, A: 255},
		ColorScrollBase:  {R: 215, G: 215, B: 215, A: 255},
		ColorScrollThumb: {R: 180, G: 180, B: 180, A: 255},
	}
	return s
}
