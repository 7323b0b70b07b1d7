package pdfgen

import (
	ierr "github.com/hostora/hostora/internal/errors"
)

const (
	// baselineRatio positions the text baseline inside a line box
	baselineRatio = 0.78

	cardPadding = 3.0
	cellPadding = 1.8
)

// DrawTextLine draws one already-measured line of text at the cursor within
// [x, x+width] and advances the cursor by one line height. The caller is
// responsible for page-break checks; single lines are assumed to fit.
func (rc *RenderContext) DrawTextLine(x, width float64, text string, style FontStyle, size float64, color Color, align Align) {
	lh := rc.LineHeight(size)
	rc.canvas.SetFont(style, size)
	rc.canvas.SetTextColor(color)

	tx := x
	switch align {
	case AlignRight:
		tx = x + width - rc.canvas.TextWidth(text)
	case AlignCenter:
		tx = x + (width-rc.canvas.TextWidth(text))/2
	}

	rc.canvas.Text(tx, rc.y+lh*baselineRatio, text)
	rc.y += lh
}

// DrawWrapped wraps text into [x, x+width] and draws it line by line,
// breaking pages between lines as needed. Returns the number of lines drawn.
func (rc *RenderContext) DrawWrapped(x, width float64, text string, style FontStyle, size float64, color Color, align Align) int {
	lines := rc.WrapText(style, size, text, width)
	lh := rc.LineHeight(size)
	for _, line := range lines {
		rc.EnsureSpace(lh)
		rc.DrawTextLine(x, width, line, style, size, color, align)
	}
	return len(lines)
}

// DrawLabelValue draws a "label: value" row where the value wraps within the
// remaining width and the row height grows to fit the wrapped value.
func (rc *RenderContext) DrawLabelValue(x, width, labelWidth float64, label, value string, size float64) {
	valueWidth := width - labelWidth
	if valueWidth <= 0 {
		rc.setErr(ierr.NewError("label column wider than row").
			WithReportableDetails(map[string]any{
				"width":       width,
				"label_width": labelWidth,
			}).
			Mark(ierr.ErrRenderInvariant))
		return
	}

	lines := rc.WrapText(FontRegular, size, value, valueWidth)
	lh := rc.LineHeight(size)

	height := lh * float64(len(lines))
	if height > rc.BottomLimit()-marginTop {
		// Value cannot fit any page; flow the lines with per-line breaks
		// instead of clipping
		rc.EnsureSpace(lh)
		startY := rc.y
		rc.DrawTextLine(x, labelWidth, label, FontBold, size, rc.palette.Muted, AlignLeft)
		rc.y = startY
		for _, line := range lines {
			rc.EnsureSpace(lh)
			rc.DrawTextLine(x+labelWidth, valueWidth, line, FontRegular, size, rc.palette.Text, AlignLeft)
		}
		return
	}
	rc.EnsureSpace(height)

	startY := rc.y
	rc.DrawTextLine(x, labelWidth, label, FontBold, size, rc.palette.Muted, AlignLeft)
	rc.y = startY
	for _, line := range lines {
		rc.DrawTextLine(x+labelWidth, valueWidth, line, FontRegular, size, rc.palette.Text, AlignLeft)
	}
}

// MeasureLabelValue returns the height DrawLabelValue would consume
func (rc *RenderContext) MeasureLabelValue(width, labelWidth float64, value string, size float64) float64 {
	valueWidth := width - labelWidth
	if valueWidth <= 0 {
		return rc.LineHeight(size)
	}
	lines := rc.WrapText(FontRegular, size, value, valueWidth)
	return rc.LineHeight(size) * float64(len(lines))
}

// CardOpts controls bordered card rendering
type CardOpts struct {
	Fill  bool
	Title string
}

// DrawCard draws a bordered rectangle sized to exactly fit the wrapped body
// lines plus fixed padding, with an optional bold title line. The whole card
// is kept on one page when it fits; cards taller than a page flow per line
// without a border (degenerate but never clipped).
func (rc *RenderContext) DrawCard(x, width float64, body []string, size float64, opts CardOpts) {
	innerWidth := width - 2*cardPadding
	if innerWidth <= 0 {
		rc.setErr(ierr.NewError("card narrower than its padding").
			WithReportableDetails(map[string]any{"width": width}).
			Mark(ierr.ErrRenderInvariant))
		return
	}

	lh := rc.LineHeight(size)
	wrapped := []cardLine{}
	if opts.Title != "" {
		for _, line := range rc.WrapText(FontBold, size, opts.Title, innerWidth) {
			wrapped = append(wrapped, cardLine{text: line, style: FontBold})
		}
	}
	for _, text := range body {
		for _, line := range rc.WrapText(FontRegular, size, text, innerWidth) {
			wrapped = append(wrapped, cardLine{text: line, style: FontRegular})
		}
	}

	height := lh*float64(len(wrapped)) + 2*cardPadding
	if height > rc.BottomLimit()-marginTop {
		// Card cannot fit any page; flow the lines instead of clipping
		for _, line := range wrapped {
			rc.EnsureSpace(lh)
			rc.DrawTextLine(x+cardPadding, innerWidth, line.text, line.style, size, rc.palette.Text, AlignLeft)
		}
		return
	}
	rc.EnsureSpace(height)

	rc.canvas.SetDrawColor(rc.palette.Border)
	if opts.Fill {
		rc.canvas.SetFillColor(rc.palette.Shade)
		rc.canvas.Rect(x, rc.y, width, height, RectFillStroke)
	} else {
		rc.canvas.Rect(x, rc.y, width, height, RectStroke)
	}

	rc.y += cardPadding
	for _, line := range wrapped {
		rc.DrawTextLine(x+cardPadding, innerWidth, line.text, line.style, size, rc.palette.Text, AlignLeft)
	}
	rc.y += cardPadding
}

type cardLine struct {
	text  string
	style FontStyle
}

// Column describes one table column by its relative width
type Column struct {
	Header string
	Ratio  float64
	Align  Align
}

// ColumnWidths converts relative ratios into absolute widths summing exactly
// to total; the last column absorbs the rounding remainder.
func ColumnWidths(columns []Column, total float64) []float64 {
	sum := 0.0
	for _, col := range columns {
		sum += col.Ratio
	}
	if sum <= 0 || len(columns) == 0 {
		return nil
	}

	widths := make([]float64, len(columns))
	used := 0.0
	for i, col := range columns {
		if i == len(columns)-1 {
			widths[i] = total - used
			break
		}
		widths[i] = total * col.Ratio / sum
		used += widths[i]
	}
	return widths
}

// DrawTable renders a header row (bold, shaded) followed by one row per
// entry. Each row's height expands to the tallest wrapped cell; rows break
// to a new page as a whole, repeating the header.
func (rc *RenderContext) DrawTable(columns []Column, rows [][]string, size float64) {
	widths := ColumnWidths(columns, rc.ContentWidth())
	if widths == nil {
		rc.setErr(ierr.NewError("table has no columns or zero total ratio").
			Mark(ierr.ErrRenderInvariant))
		return
	}

	rc.drawTableHeader(columns, widths, size)
	for _, row := range rows {
		rc.drawTableRow(columns, widths, row, size)
	}
}

func (rc *RenderContext) drawTableHeader(columns []Column, widths []float64, size float64) {
	lh := rc.LineHeight(size)
	height := lh + 2*cellPadding
	rc.EnsureSpace(height)

	x := rc.ContentLeft()
	rc.canvas.SetDrawColor(rc.palette.Border)
	rc.canvas.SetFillColor(rc.palette.Shade)

	startY := rc.y
	for i, col := range columns {
		rc.canvas.Rect(x, startY, widths[i], height, RectFillStroke)
		rc.y = startY + cellPadding
		rc.DrawTextLine(x+cellPadding, widths[i]-2*cellPadding, col.Header, FontBold, size, rc.palette.Text, col.Align)
		x += widths[i]
	}
	rc.y = startY + height
}

func (rc *RenderContext) drawTableRow(columns []Column, widths []float64, row []string, size float64) {
	lh := rc.LineHeight(size)

	// Wrap every cell first; the row height is set by the tallest cell
	cells := make([][]string, len(columns))
	maxLines := 1
	for i := range columns {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		cells[i] = rc.WrapText(FontRegular, size, text, widths[i]-2*cellPadding)
		if len(cells[i]) > maxLines {
			maxLines = len(cells[i])
		}
	}

	height := lh*float64(maxLines) + 2*cellPadding
	if rc.EnsureSpace(height) {
		rc.drawTableHeader(columns, widths, size)
	}

	x := rc.ContentLeft()
	startY := rc.y
	rc.canvas.SetDrawColor(rc.palette.Border)
	for i, col := range columns {
		rc.canvas.Rect(x, startY, widths[i], height, RectStroke)
		rc.y = startY + cellPadding
		for _, line := range cells[i] {
			rc.DrawTextLine(x+cellPadding, widths[i]-2*cellPadding, line, FontRegular, size, rc.palette.Text, col.Align)
		}
		x += widths[i]
	}
	rc.y = startY + height
}

// DrawBadge draws a small filled status badge at the given position and
// returns its width. The badge does not advance the cursor.
func (rc *RenderContext) DrawBadge(x, y float64, text string, background Color, size float64) float64 {
	const hPad = 2.5
	lh := rc.LineHeight(size)

	rc.canvas.SetFont(FontBold, size)
	width := rc.canvas.TextWidth(text) + 2*hPad
	height := lh + 1.5

	rc.canvas.SetFillColor(background)
	rc.canvas.SetDrawColor(background)
	rc.canvas.Rect(x, y, width, height, RectFillStroke)

	rc.canvas.SetTextColor(rc.palette.White)
	rc.canvas.Text(x+hPad, y+0.75+lh*baselineRatio, text)
	rc.canvas.SetTextColor(rc.palette.Text)
	return width
}

// DrawSeparator draws a horizontal rule across the content width
func (rc *RenderContext) DrawSeparator() {
	rc.EnsureSpace(3)
	rc.canvas.SetDrawColor(rc.palette.Border)
	rc.canvas.Line(rc.ContentLeft(), rc.y+1.5, rc.ContentRight(), rc.y+1.5)
	rc.y += 3
}

// DrawSignatureBoxes draws two side-by-side signature areas with fixed
// placeholder captions and space for a handwritten signature.
func (rc *RenderContext) DrawSignatureBoxes(leftCaption, rightCaption string) {
	const (
		size      = 10
		boxHeight = 34.0
		gap       = 10.0
	)
	rc.EnsureSpace(boxHeight + rc.LineHeight(size))

	width := (rc.ContentWidth() - gap) / 2
	leftX := rc.ContentLeft()
	rightX := leftX + width + gap

	startY := rc.y
	rc.DrawTextLine(leftX, width, leftCaption, FontBold, size, rc.palette.Text, AlignCenter)
	rc.y = startY
	rc.DrawTextLine(rightX, width, rightCaption, FontBold, size, rc.palette.Text, AlignCenter)

	captionBottom := startY + rc.LineHeight(size)
	hint := "(Ký và ghi rõ họ tên)"
	rc.y = captionBottom
	rc.DrawTextLine(leftX, width, hint, FontRegular, 8, rc.palette.Muted, AlignCenter)
	rc.y = captionBottom
	rc.DrawTextLine(rightX, width, hint, FontRegular, 8, rc.palette.Muted, AlignCenter)

	rc.y = startY + boxHeight
}
