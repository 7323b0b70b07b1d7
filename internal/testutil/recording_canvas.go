package testutil

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hostora/hostora/internal/pdfgen"
)

// widthPerRune approximates one rune's width in mm per point of font size.
// Deterministic and monotonic, which is all the layout code relies on.
const widthPerRune = 0.18

// CanvasOp is one recorded drawing operation
type CanvasOp struct {
	Kind  string // "page", "text", "rect", "line", "image"
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Size  float64
	Style pdfgen.FontStyle
}

// RecordingCanvas implements pdfgen.Canvas without producing a real PDF.
// Tests inspect the recorded operations to assert layout behavior, and
// Output serializes them so byte-level idempotence can be checked.
type RecordingCanvas struct {
	ops       []CanvasOp
	pages     int
	fontStyle pdfgen.FontStyle
	fontSize  float64
	outputErr error
}

func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

// FailOutputWith makes Output return the given error
func (c *RecordingCanvas) FailOutputWith(err error) {
	c.outputErr = err
}

func (c *RecordingCanvas) AddPage() {
	c.pages++
	c.ops = append(c.ops, CanvasOp{Kind: "page", Page: c.pages})
}

func (c *RecordingCanvas) PageCount() int {
	return c.pages
}

func (c *RecordingCanvas) PageSize() (w, h float64) {
	return 210, 297
}

func (c *RecordingCanvas) SetFont(style pdfgen.FontStyle, size float64) {
	c.fontStyle = style
	c.fontSize = size
}

func (c *RecordingCanvas) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * c.fontSize * widthPerRune
}

func (c *RecordingCanvas) Text(x, y float64, s string) {
	c.ops = append(c.ops, CanvasOp{
		Kind: "text", Page: c.pages, X: x, Y: y,
		W: c.TextWidth(s), Text: s, Size: c.fontSize, Style: c.fontStyle,
	})
}

func (c *RecordingCanvas) Rect(x, y, w, h float64, style pdfgen.RectStyle) {
	c.ops = append(c.ops, CanvasOp{Kind: "rect", Page: c.pages, X: x, Y: y, W: w, H: h})
}

func (c *RecordingCanvas) Line(x1, y1, x2, y2 float64) {
	c.ops = append(c.ops, CanvasOp{Kind: "line", Page: c.pages, X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (c *RecordingCanvas) SetDrawColor(color pdfgen.Color) {}
func (c *RecordingCanvas) SetFillColor(color pdfgen.Color) {}
func (c *RecordingCanvas) SetTextColor(color pdfgen.Color) {}

func (c *RecordingCanvas) Image(data []byte, x, y, w, h float64) {
	c.ops = append(c.ops, CanvasOp{Kind: "image", Page: c.pages, X: x, Y: y, W: w, H: h})
}

func (c *RecordingCanvas) Output() ([]byte, error) {
	if c.outputErr != nil {
		return nil, c.outputErr
	}
	var buf bytes.Buffer
	for _, op := range c.ops {
		fmt.Fprintf(&buf, "%s p%d (%.2f,%.2f) %.2fx%.2f %q %s %.1f\n",
			op.Kind, op.Page, op.X, op.Y, op.W, op.H, op.Text, op.Style, op.Size)
	}
	return buf.Bytes(), nil
}

// Ops returns all recorded operations
func (c *RecordingCanvas) Ops() []CanvasOp {
	return c.ops
}

// ContainsText reports whether any drawn string contains the substring
func (c *RecordingCanvas) ContainsText(substr string) bool {
	for _, op := range c.ops {
		if op.Kind == "text" && strings.Contains(op.Text, substr) {
			return true
		}
	}
	return false
}
