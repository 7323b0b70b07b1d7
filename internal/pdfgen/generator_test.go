package pdfgen_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/pdfgen"
	"github.com/hostora/hostora/internal/testutil"
	"github.com/hostora/hostora/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderOnRecorder runs one generation call against a fresh recording canvas
// and returns the canvas for inspection.
func renderOnRecorder(t *testing.T, render func(g pdfgen.Generator) error) *testutil.RecordingCanvas {
	t.Helper()
	canvas := testutil.NewRecordingCanvas()
	gen := pdfgen.NewGeneratorWithFactory(func() (pdfgen.Canvas, error) {
		return canvas, nil
	}, testutil.GetLogger())

	require.NoError(t, render(gen))
	return canvas
}

func testCompany() docgen.PartyInfo {
	return docgen.PartyInfo{
		Name:        "Công ty TNHH Hostora",
		Email:       "lienhe@hostora.vn",
		Phone:       "0901 234 567",
		Address:     "123 Lê Lợi, Quận 1, TP.HCM",
		TaxCode:     "0312345678",
		BankName:    "Vietcombank",
		BankAccount: "0071000123456",
		BankHolder:  "CONG TY TNHH HOSTORA",
	}
}

func testCustomer() docgen.PartyInfo {
	return docgen.PartyInfo{
		Name:    "Nguyễn Văn An",
		Email:   "an.nguyen@example.vn",
		Phone:   types.PlaceholderMissing,
		Address: types.PlaceholderMissing,
		TaxCode: types.PlaceholderNA,
	}
}

func testInvoiceData() *docgen.InvoiceData {
	rate := decimal.NewFromFloat(0.1)
	return &docgen.InvoiceData{
		ID:              1,
		InvoiceNumber:   "INV-2024-0001",
		Status:          types.InvoiceStatusPaid,
		PaymentMethod:   types.PaymentMethodBankTransfer,
		Currency:        "VND",
		IssueDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         lo.ToPtr(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)),
		Subtotal:        decimal.NewFromInt(1000000),
		Tax:             decimal.NewFromInt(100000),
		Total:           decimal.NewFromInt(1100000),
		AmountPaid:      decimal.NewFromInt(1100000),
		AmountRemaining: decimal.Zero,
		Company:         testCompany(),
		Customer:        testCustomer(),
		LineItems: []docgen.LineItemData{
			{
				Description: "Hosting gói Premium 12 tháng",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(1000000),
				TaxRate:     &rate,
				Amount:      decimal.NewFromInt(1100000),
			},
		},
	}
}

func testContractData() *docgen.ContractData {
	return &docgen.ContractData{
		ID:             7,
		ContractNumber: "HD-2024-0007",
		Status:         types.ContractStatusActive,
		Currency:       "VND",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        lo.ToPtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Value:          decimal.NewFromInt(24000000),
		Company:        testCompany(),
		Customer:       testCustomer(),
	}
}

func testOrderData() *docgen.OrderData {
	return &docgen.OrderData{
		ID:          3,
		OrderNumber: "DH-2024-0003",
		Status:      types.OrderStatusCompleted,
		Currency:    "VND",
		OrderDate:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Subtotal:    decimal.NewFromInt(500000),
		Tax:         decimal.NewFromInt(50000),
		Total:       decimal.NewFromInt(550000),
		Company:     testCompany(),
		Customer:    testCustomer(),
		LineItems: []docgen.LineItemData{
			{
				Description: "Đăng ký tên miền example.vn",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(500000),
				TaxRate:     nil,
				Amount:      decimal.NewFromInt(500000),
			},
		},
	}
}

func TestRenderInvoiceBasic(t *testing.T) {
	data := testInvoiceData()
	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText("HÓA ĐƠN"))
	assert.True(t, canvas.ContainsText("Số: INV-2024-0001"))
	assert.True(t, canvas.ContainsText("PAID"))
	assert.True(t, canvas.ContainsText("Nguyễn Văn An"))
	assert.True(t, canvas.ContainsText("Tạm tính"))
	assert.True(t, canvas.ContainsText("Tổng cộng"))
	assert.True(t, canvas.ContainsText("1.100.000 VNĐ"))
	assert.True(t, canvas.ContainsText("Ngày lập: 01/06/2024"))
	assert.True(t, canvas.ContainsText("Hạn thanh toán: 15/06/2024"))

	// Fully paid invoices show no settlement breakdown
	assert.False(t, canvas.ContainsText("Đã thanh toán"))
	assert.False(t, canvas.ContainsText("Còn lại"))
}

func TestRenderInvoicePartialShowsSettlement(t *testing.T) {
	data := testInvoiceData()
	data.Status = types.InvoiceStatusPartial
	data.AmountPaid = decimal.NewFromInt(600000)
	data.AmountRemaining = decimal.NewFromInt(500000)

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText("Đã thanh toán"))
	assert.True(t, canvas.ContainsText("Còn lại"))
	assert.True(t, canvas.ContainsText("600.000 VNĐ"))
	assert.True(t, canvas.ContainsText("500.000 VNĐ"))
}

func TestRenderInvoiceTaxExemptItem(t *testing.T) {
	data := testInvoiceData()
	data.LineItems[0].TaxRate = nil

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText(types.LabelTaxExempt))
	assert.False(t, canvas.ContainsText("10%"))
}

func TestRenderInvoiceBankTransferCard(t *testing.T) {
	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), testInvoiceData())
		return err
	})

	assert.True(t, canvas.ContainsText("Chuyển khoản ngân hàng"))
	assert.True(t, canvas.ContainsText("Ngân hàng: Vietcombank"))
	assert.True(t, canvas.ContainsText("Số tài khoản: 0071000123456"))
	assert.True(t, canvas.ContainsText("Nội dung chuyển khoản: Thanh toan INV-2024-0001"))
}

func TestRenderInvoiceCashPayment(t *testing.T) {
	data := testInvoiceData()
	data.PaymentMethod = types.PaymentMethodCash

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText("tiền mặt"))
	assert.False(t, canvas.ContainsText("Chuyển khoản ngân hàng"))
}

func TestRenderInvoiceNotesSection(t *testing.T) {
	data := testInvoiceData()
	data.Notes = "Xuất hóa đơn VAT theo thông tin đã đăng ký."

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText("Ghi chú"))
	assert.True(t, canvas.ContainsText("Xuất hóa đơn VAT theo thông tin đã đăng ký."))
}

func TestRenderInvoiceIdempotent(t *testing.T) {
	gen := pdfgen.NewGeneratorWithFactory(func() (pdfgen.Canvas, error) {
		return testutil.NewRecordingCanvas(), nil
	}, testutil.GetLogger())

	first, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	require.NoError(t, err)
	second, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderInvoiceManyItemsPaginates(t *testing.T) {
	data := testInvoiceData()
	data.LineItems = nil
	for i := 0; i < 60; i++ {
		data.LineItems = append(data.LineItems, docgen.LineItemData{
			Description: fmt.Sprintf("Gia hạn hosting gói Business tháng %d với sao lưu hàng tuần", i+1),
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(250000),
			Amount:      decimal.NewFromInt(250000),
		})
	}

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	require.Greater(t, canvas.PageCount(), 1)
	assert.True(t, canvas.ContainsText("Chi tiết dịch vụ (tiếp theo)"))

	for _, op := range canvas.Ops() {
		if op.Kind == "text" {
			assert.LessOrEqual(t, op.Y, bottomLimit, "text %q on page %d", op.Text, op.Page)
			assert.GreaterOrEqual(t, op.X, 15.0-1e-9, "text %q on page %d", op.Text, op.Page)
		}
	}
}

func TestRenderInvoiceOverlongAddressPaginates(t *testing.T) {
	data := testInvoiceData()
	data.Customer.Address = strings.Repeat("Lô E2a-7, Đường D1, Khu Công nghệ cao, Thủ Đức ", 60)

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	require.Greater(t, canvas.PageCount(), 1)
	assert.True(t, canvas.ContainsText("Đơn vị cung cấp"))
	assert.True(t, canvas.ContainsText("Khách hàng"))

	for _, op := range canvas.Ops() {
		if op.Kind == "text" {
			assert.LessOrEqual(t, op.Y, bottomLimit, "text %q on page %d", op.Text, op.Page)
			assert.GreaterOrEqual(t, op.X, 15.0-1e-9, "text %q on page %d", op.Text, op.Page)
		}
	}
}

func TestRenderContractNoServices(t *testing.T) {
	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderContract(context.Background(), testContractData())
		return err
	})

	assert.True(t, canvas.ContainsText("HỢP ĐỒNG DỊCH VỤ"))
	assert.True(t, canvas.ContainsText("Thông tin hợp đồng"))
	assert.True(t, canvas.ContainsText("Tên miền (0)"))
	assert.True(t, canvas.ContainsText("Hosting (0)"))
	assert.True(t, canvas.ContainsText("VPS (0)"))
	assert.True(t, canvas.ContainsText("Không có dịch vụ nào trong hợp đồng này."))
	assert.True(t, canvas.ContainsText("ĐẠI DIỆN BÊN A"))
	assert.True(t, canvas.ContainsText("ĐẠI DIỆN BÊN B"))
	assert.True(t, canvas.ContainsText("(Ký và ghi rõ họ tên)"))
}

func TestRenderContractWithServices(t *testing.T) {
	data := testContractData()
	data.Domains = []docgen.ServiceAttachment{
		{
			Kind:  types.ServiceKindDomain,
			Label: "example.vn",
			Specs: []docgen.SpecRow{
				{Label: "Nhà đăng ký", Value: "PA Việt Nam"},
				{Label: "Ngày hết hạn", Value: "01/01/2025"},
			},
		},
		{Kind: types.ServiceKindDomain, Label: "#99"},
	}
	data.VPS = []docgen.ServiceAttachment{
		{
			Kind:  types.ServiceKindVPS,
			Label: "vps-01.hostora.vn",
			Specs: []docgen.SpecRow{
				{Label: "CPU", Value: "4 vCPU"},
				{Label: "RAM", Value: "8 GB"},
			},
		},
	}

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderContract(context.Background(), data)
		return err
	})

	assert.True(t, canvas.ContainsText("Tên miền (2)"))
	assert.True(t, canvas.ContainsText("example.vn"))
	assert.True(t, canvas.ContainsText("Nhà đăng ký: PA Việt Nam"))
	assert.True(t, canvas.ContainsText("#99"))
	assert.True(t, canvas.ContainsText("VPS (1)"))
	assert.True(t, canvas.ContainsText("CPU: 4 vCPU"))
	assert.True(t, canvas.ContainsText("Hosting (0)"))
}

func TestRenderOrderBasic(t *testing.T) {
	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderOrder(context.Background(), testOrderData())
		return err
	})

	assert.True(t, canvas.ContainsText("ĐƠN HÀNG"))
	assert.True(t, canvas.ContainsText("Số: DH-2024-0003"))
	assert.True(t, canvas.ContainsText("Ngày đặt: 20/05/2024"))
	assert.True(t, canvas.ContainsText("Sản phẩm / Dịch vụ"))
	assert.True(t, canvas.ContainsText("550.000 VNĐ"))
	assert.True(t, canvas.ContainsText("Cảm ơn quý khách đã sử dụng dịch vụ của chúng tôi!"))
	assert.True(t, canvas.ContainsText("lienhe@hostora.vn"))

	// Orders carry no settlement breakdown
	assert.False(t, canvas.ContainsText("Đã thanh toán"))
	assert.False(t, canvas.ContainsText("Còn lại"))
}

func TestRenderHeaderFallsBackToCompanyName(t *testing.T) {
	// No asset provider, so the header uses the text brand block
	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), testInvoiceData())
		return err
	})

	assert.True(t, canvas.ContainsText("Công ty TNHH Hostora"))
	for _, op := range canvas.Ops() {
		assert.NotEqual(t, "image", op.Kind)
	}
}

func TestRenderLongDescriptionWraps(t *testing.T) {
	data := testInvoiceData()
	data.LineItems[0].Description = strings.Repeat("máy chủ riêng ảo cấu hình cao ", 10)

	canvas := renderOnRecorder(t, func(g pdfgen.Generator) error {
		_, err := g.RenderInvoice(context.Background(), data)
		return err
	})

	// The description must span multiple drawn lines inside its column
	count := 0
	for _, op := range canvas.Ops() {
		if op.Kind == "text" && strings.Contains(op.Text, "máy chủ riêng ảo") {
			count++
		}
	}
	assert.Greater(t, count, 1)
}

func TestRenderHeaderDrawsLogoWhenAvailable(t *testing.T) {
	assets := testutil.NewInMemoryAssetProvider()
	assets.LogoBytes = []byte{0x89, 'P', 'N', 'G'}

	canvas := testutil.NewRecordingCanvas()
	gen := pdfgen.NewGeneratorWithAssets(func() (pdfgen.Canvas, error) {
		return canvas, nil
	}, assets, testutil.GetLogger())

	_, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	require.NoError(t, err)

	found := false
	for _, op := range canvas.Ops() {
		if op.Kind == "image" {
			found = true
		}
	}
	assert.True(t, found, "header must draw the logo image")
}

func TestRenderHeaderMissingLogoDegrades(t *testing.T) {
	assets := testutil.NewInMemoryAssetProvider()
	// LogoBytes left nil, so the provider reports the asset missing

	canvas := testutil.NewRecordingCanvas()
	gen := pdfgen.NewGeneratorWithAssets(func() (pdfgen.Canvas, error) {
		return canvas, nil
	}, assets, testutil.GetLogger())

	_, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	require.NoError(t, err, "a missing logo must not fail generation")
	assert.True(t, canvas.ContainsText("Công ty TNHH Hostora"))
}

func TestGeneratorOutputFailure(t *testing.T) {
	wantErr := fmt.Errorf("encode failed")
	canvas := testutil.NewRecordingCanvas()
	canvas.FailOutputWith(wantErr)
	gen := pdfgen.NewGeneratorWithFactory(func() (pdfgen.Canvas, error) {
		return canvas, nil
	}, testutil.GetLogger())

	_, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	assert.ErrorIs(t, err, wantErr)
}

func TestGeneratorFactoryFailure(t *testing.T) {
	wantErr := fmt.Errorf("font unavailable")
	gen := pdfgen.NewGeneratorWithFactory(func() (pdfgen.Canvas, error) {
		return nil, wantErr
	}, testutil.GetLogger())

	_, err := gen.RenderInvoice(context.Background(), testInvoiceData())
	assert.ErrorIs(t, err, wantErr)
}
