package pdfgen

import (
	"fmt"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// Font sizes shared by all document types
const (
	sizeTitle   = 16.0
	sizeHeading = 11.0
	sizeBody    = 10.0
	sizeSmall   = 8.5
	sizeBadge   = 9.0
)

const labelColumnWidth = 26.0

type headerOpts struct {
	Logo        []byte
	CompanyName string
	Title       string
	Number      string
	Status      string
}

// renderHeader draws the brand block (logo or company-name fallback) on the
// left and the document title, number, and status badge on the right.
func renderHeader(rc *RenderContext, opts headerOpts) {
	const logoW, logoH = 30.0, 12.0

	startY := rc.CursorY()
	leftBottom := startY

	if len(opts.Logo) > 0 {
		rc.Canvas().Image(opts.Logo, rc.ContentLeft(), startY, logoW, logoH)
		leftBottom = startY + logoH
	} else {
		rc.DrawTextLine(rc.ContentLeft(), rc.ContentWidth()/2, opts.CompanyName, FontBold, 13, rc.Palette().Text, AlignLeft)
		leftBottom = rc.CursorY()
	}

	rc.y = startY
	rc.DrawTextLine(rc.ContentLeft(), rc.ContentWidth(), opts.Title, FontBold, sizeTitle, rc.Palette().Text, AlignRight)
	rc.DrawTextLine(rc.ContentLeft(), rc.ContentWidth(), "Số: "+opts.Number, FontRegular, sizeBody, rc.Palette().Muted, AlignRight)

	badgeWidth := rc.TextWidth(FontBold, sizeBadge, opts.Status) + 5
	tone := types.ToneForStatus(opts.Status)
	rc.DrawBadge(rc.ContentRight()-badgeWidth, rc.CursorY()+1, opts.Status, ToneColor(tone), sizeBadge)
	rightBottom := rc.CursorY() + 1 + rc.LineHeight(sizeBadge) + 1.5

	if leftBottom > rightBottom {
		rc.y = leftBottom
	} else {
		rc.y = rightBottom
	}
	rc.MoveDown(3)
	rc.DrawSeparator()
	rc.MoveDown(2)
}

// partyRow is one label/value pair inside a party column
type partyRow struct {
	Label string
	Value string
}

func companyRows(p docgen.PartyInfo) []partyRow {
	return []partyRow{
		{"Công ty", p.Name},
		{"MST", p.TaxCode},
		{"Địa chỉ", p.Address},
		{"Điện thoại", p.Phone},
		{"Email", p.Email},
	}
}

func customerRows(p docgen.PartyInfo) []partyRow {
	return []partyRow{
		{"Khách hàng", p.Name},
		{"MST", p.TaxCode},
		{"Địa chỉ", p.Address},
		{"Điện thoại", p.Phone},
		{"Email", p.Email},
	}
}

// renderPartyColumns lays the issuing company and the counterparty side by
// side. Column heights are computed independently; the section advances by
// the taller of the two.
func renderPartyColumns(rc *RenderContext, leftTitle string, left []partyRow, rightTitle string, right []partyRow) {
	const gap = 8.0
	width := (rc.ContentWidth() - gap) / 2
	leftX := rc.ContentLeft()
	rightX := leftX + width + gap

	measure := func(rows []partyRow) float64 {
		h := rc.LineHeight(sizeHeading) + 1.5
		for _, row := range rows {
			h += rc.MeasureLabelValue(width, labelColumnWidth, row.Value, sizeBody)
		}
		return h
	}

	leftHeight := measure(left)
	rightHeight := measure(right)
	sectionHeight := leftHeight
	if rightHeight > sectionHeight {
		sectionHeight = rightHeight
	}

	if sectionHeight > rc.BottomLimit()-marginTop {
		// The taller column cannot fit any page; stack the columns and let
		// each flow across pages instead of clipping the side-by-side layout
		columns := []struct {
			title string
			rows  []partyRow
		}{
			{leftTitle, left},
			{rightTitle, right},
		}
		for _, col := range columns {
			rc.EnsureSpace(rc.LineHeight(sizeHeading) + 1.5)
			rc.DrawTextLine(rc.ContentLeft(), width, col.title, FontBold, sizeHeading, rc.Palette().Text, AlignLeft)
			rc.MoveDown(1.5)
			for _, row := range col.rows {
				rc.DrawLabelValue(rc.ContentLeft(), width, labelColumnWidth, row.Label, row.Value, sizeBody)
			}
			rc.MoveDown(4)
		}
		return
	}
	rc.EnsureSpace(sectionHeight)

	startY := rc.CursorY()
	drawColumn := func(x float64, title string, rows []partyRow) {
		rc.y = startY
		rc.DrawTextLine(x, width, title, FontBold, sizeHeading, rc.Palette().Text, AlignLeft)
		rc.MoveDown(1.5)
		for _, row := range rows {
			rc.DrawLabelValue(x, width, labelColumnWidth, row.Label, row.Value, sizeBody)
		}
	}

	drawColumn(leftX, leftTitle, left)
	drawColumn(rightX, rightTitle, right)

	rc.y = startY + sectionHeight
	rc.MoveDown(4)
}

func sectionHeading(rc *RenderContext, text string) {
	rc.EnsureSpace(rc.LineHeight(sizeHeading) + 2)
	rc.DrawTextLine(rc.ContentLeft(), rc.ContentWidth(), text, FontBold, sizeHeading, rc.Palette().Text, AlignLeft)
	rc.MoveDown(2)
}

// renderLineItemTable draws the billing rows with per-row height expansion
func renderLineItemTable(rc *RenderContext, heading string, items []docgen.LineItemData) {
	sectionHeading(rc, heading)
	rc.SetContinuationHeader(heading + " (tiếp theo)")
	defer rc.SetContinuationHeader("")

	columns := []Column{
		{Header: "STT", Ratio: 0.07, Align: AlignCenter},
		{Header: "Mô tả", Ratio: 0.41, Align: AlignLeft},
		{Header: "SL", Ratio: 0.08, Align: AlignCenter},
		{Header: "Đơn giá", Ratio: 0.17, Align: AlignRight},
		{Header: "Thuế", Ratio: 0.10, Align: AlignCenter},
		{Header: "Thành tiền", Ratio: 0.17, Align: AlignRight},
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			item.Description,
			fmt.Sprintf("%d", item.Quantity),
			types.FormatVND(item.UnitPrice),
			taxRateLabel(item.TaxRate),
			types.FormatVND(item.Amount),
		}
	}

	rc.DrawTable(columns, rows, sizeBody)
	rc.MoveDown(4)
}

func taxRateLabel(rate *decimal.Decimal) string {
	if rate == nil {
		return types.LabelTaxExempt
	}
	percent := rate.Mul(decimal.NewFromInt(100))
	return percent.StringFixed(0) + "%"
}

type totalsRow struct {
	Label string
	Value string
	Bold  bool
}

// renderTotals draws the right-aligned summary block. Paid/remaining rows
// appear only when the status indicates partial payment; the last row is
// always bold.
func renderTotals(rc *RenderContext, subtotal, tax, total, paid, remaining decimal.Decimal, partial bool) {
	rows := []totalsRow{
		{Label: "Tạm tính", Value: types.FormatVND(subtotal)},
		{Label: "Thuế", Value: types.FormatVND(tax)},
		{Label: "Tổng cộng", Value: types.FormatVND(total)},
	}
	if partial {
		rows = append(rows,
			totalsRow{Label: "Đã thanh toán", Value: types.FormatVND(paid)},
			totalsRow{Label: "Còn lại", Value: types.FormatVND(remaining)},
		)
	}
	rows[len(rows)-1].Bold = true

	const blockWidth = 78.0
	lh := rc.LineHeight(sizeBody) + 1
	rc.EnsureSpace(lh * float64(len(rows)))

	x := rc.ContentRight() - blockWidth
	for _, row := range rows {
		style := FontRegular
		if row.Bold {
			style = FontBold
		}
		startY := rc.CursorY()
		rc.DrawTextLine(x, blockWidth/2, row.Label, style, sizeBody, rc.Palette().Text, AlignLeft)
		rc.y = startY
		rc.DrawTextLine(x+blockWidth/2, blockWidth/2, row.Value, style, sizeBody, rc.Palette().Text, AlignRight)
		rc.MoveDown(1)
	}
	rc.MoveDown(3)
}

// renderPaymentInstructions draws bank transfer details or cash instructions
func renderPaymentInstructions(rc *RenderContext, method types.PaymentMethod, company docgen.PartyInfo, documentNumber string) {
	sectionHeading(rc, "Hình thức thanh toán")

	if method == types.PaymentMethodBankTransfer && company.BankAccount != "" {
		body := []string{
			"Ngân hàng: " + types.OrDefault(company.BankName, types.PlaceholderNA),
			"Số tài khoản: " + company.BankAccount,
			"Chủ tài khoản: " + types.OrDefault(company.BankHolder, company.Name),
			"Nội dung chuyển khoản: Thanh toan " + documentNumber,
		}
		rc.DrawCard(rc.ContentLeft(), rc.ContentWidth(), body, sizeBody, CardOpts{Fill: true, Title: "Chuyển khoản ngân hàng"})
	} else {
		rc.DrawWrapped(rc.ContentLeft(), rc.ContentWidth(),
			"Thanh toán tiền mặt trực tiếp tại văn phòng hoặc cho nhân viên thu ngân khi bàn giao dịch vụ.",
			FontRegular, sizeBody, rc.Palette().Text, AlignLeft)
	}
	rc.MoveDown(4)
}

// renderNotes draws the free-text notes section when present
func renderNotes(rc *RenderContext, notes string) {
	if notes == "" {
		return
	}
	sectionHeading(rc, "Ghi chú")
	rc.DrawWrapped(rc.ContentLeft(), rc.ContentWidth(), notes, FontRegular, sizeBody, rc.Palette().Muted, AlignLeft)
	rc.MoveDown(4)
}

// renderServiceSection draws the attachment cards of one service kind, or
// the defined empty message when the kind has no attachments.
func renderServiceSection(rc *RenderContext, kind types.ServiceKind, attachments []docgen.ServiceAttachment) {
	sectionHeading(rc, fmt.Sprintf("%s (%d)", kind.DisplayName(), len(attachments)))

	if len(attachments) == 0 {
		rc.DrawWrapped(rc.ContentLeft(), rc.ContentWidth(),
			"Không có dịch vụ nào trong hợp đồng này.",
			FontRegular, sizeBody, rc.Palette().Muted, AlignLeft)
		rc.MoveDown(4)
		return
	}

	for _, attachment := range attachments {
		body := make([]string, 0, len(attachment.Specs))
		for _, spec := range attachment.Specs {
			body = append(body, spec.Label+": "+spec.Value)
		}
		rc.DrawCard(rc.ContentLeft(), rc.ContentWidth(), body, sizeBody, CardOpts{Title: attachment.Label})
		rc.MoveDown(2)
	}
	rc.MoveDown(2)
}

// renderContractSummary draws the key contract terms as label/value rows
func renderContractSummary(rc *RenderContext, data *docgen.ContractData) {
	sectionHeading(rc, "Thông tin hợp đồng")

	rows := []partyRow{
		{"Số hợp đồng", data.ContractNumber},
		{"Trạng thái", data.Status.String()},
		{"Ngày bắt đầu", types.FormatDate(data.StartDate)},
		{"Ngày kết thúc", types.FormatDatePtr(data.EndDate)},
		{"Giá trị", types.FormatVND(data.Value)},
	}

	height := 0.0
	for _, row := range rows {
		height += rc.MeasureLabelValue(rc.ContentWidth(), labelColumnWidth+8, row.Value, sizeBody)
	}
	rc.EnsureSpace(height)
	for _, row := range rows {
		rc.DrawLabelValue(rc.ContentLeft(), rc.ContentWidth(), labelColumnWidth+8, row.Label, row.Value, sizeBody)
	}
	rc.MoveDown(4)
}

// renderOrderFooter closes the order with a thank-you and contact line
func renderOrderFooter(rc *RenderContext, company docgen.PartyInfo) {
	rc.DrawSeparator()
	rc.MoveDown(1)
	rc.DrawWrapped(rc.ContentLeft(), rc.ContentWidth(),
		"Cảm ơn quý khách đã sử dụng dịch vụ của chúng tôi!",
		FontBold, sizeBody, rc.Palette().Text, AlignCenter)
	rc.DrawWrapped(rc.ContentLeft(), rc.ContentWidth(),
		fmt.Sprintf("Mọi thắc mắc xin liên hệ: %s - %s", company.Email, company.Phone),
		FontRegular, sizeSmall, rc.Palette().Muted, AlignCenter)
}
