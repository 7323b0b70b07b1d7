package pdfgen

import (
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/types"
)

// Page geometry in millimeters (A4 portrait)
const (
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 18.0

	// lineSpacing converts a font size in points to a line height in mm
	// (1 pt = 0.3528 mm, plus leading)
	lineSpacing = 0.3528 * 1.45
)

// Palette is the fixed document color scheme
type Palette struct {
	Text   Color
	Muted  Color
	Border Color
	Shade  Color
	White  Color
	Accent Color
}

// DefaultPalette returns the standard brand colors
func DefaultPalette() Palette {
	return Palette{
		Text:   Color{33, 37, 41},
		Muted:  Color{108, 117, 125},
		Border: Color{206, 212, 218},
		Shade:  Color{248, 249, 250},
		White:  Color{255, 255, 255},
		Accent: Color{13, 110, 253},
	}
}

// toneColors maps a badge tone to its background color; badge text is white
var toneColors = map[types.BadgeTone]Color{
	types.BadgeToneGreen:  {25, 135, 84},
	types.BadgeToneRed:    {220, 53, 69},
	types.BadgeToneGray:   {108, 117, 125},
	types.BadgeToneBlue:   {13, 110, 253},
	types.BadgeToneOrange: {253, 126, 20},
}

// ToneColor returns the badge background color for a tone
func ToneColor(tone types.BadgeTone) Color {
	if c, ok := toneColors[tone]; ok {
		return c
	}
	return toneColors[types.BadgeToneGray]
}

// RenderContext is the per-call mutable layout state: the canvas, the page
// geometry, and a vertical cursor flowing top-down. Every draw operation
// advances the cursor by the height it consumed, and every composite
// primitive checks EnsureSpace before drawing so content is never clipped at
// a page edge. A context is created once per generation call and discarded
// after serialization.
type RenderContext struct {
	canvas  Canvas
	palette Palette

	pageWidth  float64
	pageHeight float64
	y          float64

	// contHeader, when set, is redrawn at the top of every page started by
	// an overflow inside the current section
	contHeader string

	err error
}

// NewRenderContext opens the first page and places the cursor at the top margin
func NewRenderContext(canvas Canvas) *RenderContext {
	canvas.AddPage()
	w, h := canvas.PageSize()
	return &RenderContext{
		canvas:     canvas,
		palette:    DefaultPalette(),
		pageWidth:  w,
		pageHeight: h,
		y:          marginTop,
	}
}

// Err returns the first layout invariant violation recorded, if any
func (rc *RenderContext) Err() error {
	return rc.err
}

func (rc *RenderContext) setErr(err error) {
	if rc.err == nil {
		rc.err = err
	}
}

// Canvas exposes the underlying page surface
func (rc *RenderContext) Canvas() Canvas {
	return rc.canvas
}

// Palette exposes the document color scheme
func (rc *RenderContext) Palette() Palette {
	return rc.palette
}

// CursorY returns the current vertical cursor position
func (rc *RenderContext) CursorY() float64 {
	return rc.y
}

// ContentLeft returns the x coordinate of the content area's left edge
func (rc *RenderContext) ContentLeft() float64 {
	return marginLeft
}

// ContentRight returns the x coordinate of the content area's right edge
func (rc *RenderContext) ContentRight() float64 {
	return rc.pageWidth - marginRight
}

// ContentWidth returns the usable width between the side margins
func (rc *RenderContext) ContentWidth() float64 {
	return rc.pageWidth - marginLeft - marginRight
}

// BottomLimit returns the y coordinate below which nothing may be drawn
func (rc *RenderContext) BottomLimit() float64 {
	return rc.pageHeight - marginBottom
}

// Remaining returns the vertical space left on the current page
func (rc *RenderContext) Remaining() float64 {
	return rc.BottomLimit() - rc.y
}

// LineHeight returns the cursor advance for one text line at the given size
func (rc *RenderContext) LineHeight(size float64) float64 {
	return size * lineSpacing
}

// MoveDown advances the cursor by h
func (rc *RenderContext) MoveDown(h float64) {
	rc.y += h
}

// NewPage starts a fresh page and resets the cursor to the top margin
func (rc *RenderContext) NewPage() {
	rc.canvas.AddPage()
	rc.y = marginTop
}

// SetContinuationHeader arranges for heading to be redrawn after any page
// break triggered while the current section flows. Clear with "".
func (rc *RenderContext) SetContinuationHeader(heading string) {
	rc.contHeader = heading
}

// EnsureSpace starts a new page when a block of height h would cross the
// bottom margin. Returns true when a page break happened. Blocks taller than
// a whole page are left to flow: the caller must then break per line.
func (rc *RenderContext) EnsureSpace(h float64) bool {
	if h < 0 {
		rc.setErr(ierr.NewError("negative block height computed").
			WithReportableDetails(map[string]any{"height": h}).
			Mark(ierr.ErrRenderInvariant))
		return false
	}
	if rc.y+h <= rc.BottomLimit() {
		return false
	}

	rc.NewPage()
	if rc.contHeader != "" {
		rc.drawContinuationHeader()
	}
	return true
}

func (rc *RenderContext) drawContinuationHeader() {
	const size = 10
	rc.canvas.SetFont(FontBold, size)
	rc.canvas.SetTextColor(rc.palette.Muted)
	rc.canvas.Text(rc.ContentLeft(), rc.y+rc.LineHeight(size)*baselineRatio, rc.contHeader)
	rc.canvas.SetTextColor(rc.palette.Text)
	rc.y += rc.LineHeight(size) + 2
}

// TextWidth measures s at the given font variant and size
func (rc *RenderContext) TextWidth(style FontStyle, size float64, s string) float64 {
	rc.canvas.SetFont(style, size)
	return rc.canvas.TextWidth(s)
}

// WrapText wraps text to maxWidth at the given font variant and size
func (rc *RenderContext) WrapText(style FontStyle, size float64, text string, maxWidth float64) []string {
	rc.canvas.SetFont(style, size)
	lines := Wrap(rc.canvas.TextWidth, text, maxWidth)
	if len(lines) == 0 {
		// Wrap guarantees at least one line; treat a violation as fatal for
		// the document rather than clipping silently
		rc.setErr(ierr.NewError("word wrap produced zero lines").
			Mark(ierr.ErrRenderInvariant))
		return []string{""}
	}
	return lines
}
