package pdfgen

import (
	"context"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/types"
)

// RenderInvoice draws the invoice page flow:
// header, parties, line items, totals, payment method, notes.
func (g *generator) RenderInvoice(ctx context.Context, data *docgen.InvoiceData) ([]byte, error) {
	canvas, err := g.factory()
	if err != nil {
		return nil, err
	}
	rc := NewRenderContext(canvas)

	renderHeader(rc, headerOpts{
		Logo:        g.loadLogo(),
		CompanyName: data.Company.Name,
		Title:       "HÓA ĐƠN",
		Number:      data.InvoiceNumber,
		Status:      data.Status.String(),
	})

	renderInvoiceMeta(rc, data)
	renderPartyColumns(rc,
		"Đơn vị cung cấp", companyRows(data.Company),
		"Khách hàng", customerRows(data.Customer),
	)
	renderLineItemTable(rc, "Chi tiết dịch vụ", data.LineItems)
	renderTotals(rc,
		data.Subtotal, data.Tax, data.Total,
		data.AmountPaid, data.AmountRemaining,
		data.Status == types.InvoiceStatusPartial,
	)
	renderPaymentInstructions(rc, data.PaymentMethod, data.Company, data.InvoiceNumber)
	renderNotes(rc, data.Notes)

	if err := rc.Err(); err != nil {
		return nil, err
	}
	return canvas.Output()
}

// renderInvoiceMeta draws the issue/due dates under the header
func renderInvoiceMeta(rc *RenderContext, data *docgen.InvoiceData) {
	lh := rc.LineHeight(sizeBody)
	rc.EnsureSpace(lh)

	startY := rc.CursorY()
	half := rc.ContentWidth() / 2
	rc.DrawTextLine(rc.ContentLeft(), half,
		"Ngày lập: "+types.FormatDate(data.IssueDate),
		FontRegular, sizeBody, rc.Palette().Muted, AlignLeft)
	rc.y = startY
	rc.DrawTextLine(rc.ContentLeft()+half, half,
		"Hạn thanh toán: "+types.FormatDatePtr(data.DueDate),
		FontRegular, sizeBody, rc.Palette().Muted, AlignRight)
	rc.MoveDown(4)
}
