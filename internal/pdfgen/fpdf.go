package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	ierr "github.com/hostora/hostora/internal/errors"
)

// brandFont is the family name the embedded TTF variants are registered under
const brandFont = "brand"

type pdfCanvas struct {
	pdf       *fpdf.Fpdf
	logoCount int
}

// NewPdfCanvas builds an A4 portrait canvas with the provider's fonts
// embedded. Page breaks are managed by the render context, so the automatic
// page break is disabled. The creation date is pinned so that generating the
// same document twice yields byte-identical output.
func NewPdfCanvas(assets AssetProvider) (Canvas, error) {
	regular, err := assets.FontRegular()
	if err != nil {
		return nil, err
	}
	bold, err := assets.FontBold()
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.AddUTF8FontFromBytes(brandFont, "", regular)
	pdf.AddUTF8FontFromBytes(brandFont, "B", bold)
	if err := pdf.Error(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to embed document fonts").
			Mark(ierr.ErrAssetLoad)
	}

	return &pdfCanvas{pdf: pdf}, nil
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) PageCount() int {
	return c.pdf.PageNo()
}

func (c *pdfCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *pdfCanvas) SetFont(style FontStyle, size float64) {
	c.pdf.SetFont(brandFont, string(style), size)
}

func (c *pdfCanvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *pdfCanvas) Rect(x, y, w, h float64, style RectStyle) {
	c.pdf.Rect(x, y, w, h, string(style))
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) SetDrawColor(col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *pdfCanvas) SetFillColor(col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *pdfCanvas) SetTextColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *pdfCanvas) Image(data []byte, x, y, w, h float64) {
	c.logoCount++
	name := fmt.Sprintf("img-%d", c.logoCount)
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (c *pdfCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to serialize document").
			Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), nil
}
