package pdfgen

import (
	"context"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// RenderOrder draws the order page flow: header, info columns, notes, line
// items, totals, then the footer.
func (g *generator) RenderOrder(ctx context.Context, data *docgen.OrderData) ([]byte, error) {
	canvas, err := g.factory()
	if err != nil {
		return nil, err
	}
	rc := NewRenderContext(canvas)

	renderHeader(rc, headerOpts{
		Logo:        g.loadLogo(),
		CompanyName: data.Company.Name,
		Title:       "ĐƠN HÀNG",
		Number:      data.OrderNumber,
		Status:      data.Status.String(),
	})

	renderOrderMeta(rc, data)
	renderPartyColumns(rc,
		"Đơn vị cung cấp", companyRows(data.Company),
		"Khách hàng", customerRows(data.Customer),
	)
	renderNotes(rc, data.Notes)
	renderLineItemTable(rc, "Sản phẩm / Dịch vụ", data.LineItems)
	renderTotals(rc, data.Subtotal, data.Tax, data.Total, decimal.Zero, decimal.Zero, false)
	renderOrderFooter(rc, data.Company)

	if err := rc.Err(); err != nil {
		return nil, err
	}
	return canvas.Output()
}

// renderOrderMeta draws the order date under the header
func renderOrderMeta(rc *RenderContext, data *docgen.OrderData) {
	lh := rc.LineHeight(sizeBody)
	rc.EnsureSpace(lh)
	rc.DrawTextLine(rc.ContentLeft(), rc.ContentWidth(),
		"Ngày đặt: "+types.FormatDate(data.OrderDate),
		FontRegular, sizeBody, rc.Palette().Muted, AlignLeft)
	rc.MoveDown(4)
}
