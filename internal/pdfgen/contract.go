package pdfgen

import (
	"context"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/types"
)

// RenderContract draws the contract page flow: summary, company, customer,
// the three service sections, then signatures.
func (g *generator) RenderContract(ctx context.Context, data *docgen.ContractData) ([]byte, error) {
	canvas, err := g.factory()
	if err != nil {
		return nil, err
	}
	rc := NewRenderContext(canvas)

	renderHeader(rc, headerOpts{
		Logo:        g.loadLogo(),
		CompanyName: data.Company.Name,
		Title:       "HỢP ĐỒNG DỊCH VỤ",
		Number:      data.ContractNumber,
		Status:      data.Status.String(),
	})

	renderContractSummary(rc, data)
	renderPartyColumns(rc,
		"Bên A (Cung cấp)", companyRows(data.Company),
		"Bên B (Sử dụng)", customerRows(data.Customer),
	)

	renderServiceSection(rc, types.ServiceKindDomain, data.Domains)
	renderServiceSection(rc, types.ServiceKindHosting, data.Hosting)
	renderServiceSection(rc, types.ServiceKindVPS, data.VPS)

	renderNotes(rc, data.Notes)

	rc.MoveDown(4)
	rc.DrawSignatureBoxes("ĐẠI DIỆN BÊN A", "ĐẠI DIỆN BÊN B")

	if err := rc.Err(); err != nil {
		return nil, err
	}
	return canvas.Output()
}
