package pdfgen

// FontStyle selects between the two embedded font variants
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

// Align is the horizontal alignment of text within a width
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// RectStyle selects border drawing, filling, or both
type RectStyle string

const (
	RectStroke     RectStyle = "D"
	RectFill       RectStyle = "F"
	RectFillStroke RectStyle = "FD"
)

// Color is an opaque RGB color
type Color struct {
	R, G, B int
}

// Canvas is the low-level page surface the layout engine draws onto. One
// canvas is created per generation call; implementations are not safe for
// concurrent use and are discarded after Output.
//
// Coordinates are millimeters with the origin at the top-left of the page.
// Text is drawn with y at the baseline.
type Canvas interface {
	// AddPage appends a new blank page and makes it current
	AddPage()

	// PageCount returns the number of pages added so far
	PageCount() int

	// PageSize returns the page width and height
	PageSize() (w, h float64)

	// SetFont selects the font variant and size (points) for measurement and drawing
	SetFont(style FontStyle, size float64)

	// TextWidth measures the given string at the current font
	TextWidth(s string) float64

	// Text draws a string with its baseline at y
	Text(x, y float64, s string)

	// Rect draws a rectangle
	Rect(x, y, w, h float64, style RectStyle)

	// Line draws a straight line
	Line(x1, y1, x2, y2 float64)

	// SetDrawColor sets the stroke color
	SetDrawColor(c Color)

	// SetFillColor sets the fill color
	SetFillColor(c Color)

	// SetTextColor sets the text color
	SetTextColor(c Color)

	// Image draws PNG image bytes into the given box
	Image(data []byte, x, y, w, h float64)

	// Output serializes the document to bytes
	Output() ([]byte, error)
}

// CanvasFactory creates a fresh canvas for one generation call. Tests
// substitute a recording canvas with a deterministic width function.
type CanvasFactory func() (Canvas, error)
