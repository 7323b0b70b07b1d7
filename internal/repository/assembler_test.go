package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/hostora/hostora/internal/config"
	"github.com/hostora/hostora/internal/domain/catalog"
	"github.com/hostora/hostora/internal/domain/contract"
	"github.com/hostora/hostora/internal/domain/customer"
	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/domain/invoice"
	"github.com/hostora/hostora/internal/domain/order"
	"github.com/hostora/hostora/internal/domain/settings"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/repository"
	"github.com/hostora/hostora/internal/testutil"
	"github.com/hostora/hostora/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assemblerFixture struct {
	invoices  *testutil.InMemoryInvoiceStore
	contracts *testutil.InMemoryContractStore
	orders    *testutil.InMemoryOrderStore
	customers *testutil.InMemoryCustomerStore
	catalog   *testutil.InMemoryCatalogStore
	settings  *testutil.InMemorySettingsStore
	repo      docgen.Repository
}

func newAssemblerFixture() *assemblerFixture {
	f := &assemblerFixture{
		invoices:  testutil.NewInMemoryInvoiceStore(),
		contracts: testutil.NewInMemoryContractStore(),
		orders:    testutil.NewInMemoryOrderStore(),
		customers: testutil.NewInMemoryCustomerStore(),
		catalog:   testutil.NewInMemoryCatalogStore(),
		settings:  testutil.NewInMemorySettingsStore(),
	}

	cfg := &config.Configuration{
		Company: config.CompanyConfig{
			Name:        "Công ty TNHH Hostora",
			TaxCode:     "0312345678",
			Email:       "lienhe@hostora.vn",
			Phone:       "0901 234 567",
			Address:     "123 Lê Lợi, Quận 1, TP.HCM",
			BankName:    "Vietcombank",
			BankAccount: "0071000123456",
			BankHolder:  "CONG TY TNHH HOSTORA",
		},
	}

	f.repo = repository.NewAssembler(cfg, testutil.GetLogger(),
		f.invoices, f.contracts, f.orders, f.customers, f.catalog, f.settings)
	return f
}

func (f *assemblerFixture) seedCustomer() {
	f.customers.Add(&customer.Customer{
		ID:      10,
		Name:    "Nguyễn Văn An",
		Email:   lo.ToPtr("an.nguyen@example.vn"),
		Phone:   lo.ToPtr("0987 654 321"),
		Address: lo.ToPtr("45 Trần Hưng Đạo, Hà Nội"),
		TaxCode: lo.ToPtr("0109876543"),
	})
}

func (f *assemblerFixture) seedInvoice() {
	f.invoices.Add(&invoice.Invoice{
		ID:            1,
		InvoiceNumber: "INV-2024-0001",
		CustomerID:    10,
		Status:        types.InvoiceStatusSent,
		PaymentMethod: types.PaymentMethodBankTransfer,
		Currency:      "VND",
		IssueDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(1000000),
		Tax:           decimal.NewFromInt(100000),
		Total:         decimal.NewFromInt(1100000),
		AmountPaid:    decimal.NewFromInt(300000),
	})
	rate := decimal.NewFromFloat(0.1)
	f.invoices.AddLineItem(1, &invoice.LineItem{
		ID:          1,
		InvoiceID:   1,
		Description: "Hosting gói Premium 12 tháng",
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(500000),
		TaxRate:     &rate,
	})
}

func TestGetInvoiceData(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.seedInvoice()

	data, err := f.repo.GetInvoiceData(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-0001", data.InvoiceNumber)
	assert.Equal(t, types.InvoiceStatusSent, data.Status)
	assert.True(t, data.AmountRemaining.Equal(decimal.NewFromInt(800000)))

	require.Len(t, data.LineItems, 1)
	item := data.LineItems[0]
	assert.Equal(t, "Hosting gói Premium 12 tháng", item.Description)
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(1100000)), "2 x 500.000 x 1.1")

	assert.Equal(t, "Nguyễn Văn An", data.Customer.Name)
	assert.Equal(t, "Công ty TNHH Hostora", data.Company.Name)
	assert.Equal(t, "0071000123456", data.Company.BankAccount)
}

func TestGetInvoiceDataClampsOverpayment(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.invoices.Add(&invoice.Invoice{
		ID:            2,
		InvoiceNumber: "INV-2024-0002",
		CustomerID:    10,
		Status:        types.InvoiceStatusPaid,
		PaymentMethod: types.PaymentMethodCash,
		Currency:      "VND",
		IssueDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Total:         decimal.NewFromInt(100000),
		AmountPaid:    decimal.NewFromInt(150000),
	})

	data, err := f.repo.GetInvoiceData(context.Background(), 2)
	require.NoError(t, err)

	assert.True(t, data.AmountRemaining.IsZero(), "overpayment must clamp remaining to zero")
}

func TestGetInvoiceDataInvalidID(t *testing.T) {
	f := newAssemblerFixture()

	for _, id := range []int64{0, -1} {
		_, err := f.repo.GetInvoiceData(context.Background(), id)
		assert.True(t, ierr.IsValidation(err), "id %d", id)
	}
}

func TestGetInvoiceDataNotFound(t *testing.T) {
	f := newAssemblerFixture()

	_, err := f.repo.GetInvoiceData(context.Background(), 404)
	assert.True(t, ierr.IsNotFound(err))
}

func TestCustomerPlaceholdersForMissingFields(t *testing.T) {
	f := newAssemblerFixture()
	f.customers.Add(&customer.Customer{ID: 10, Name: "Trần Thị Bình"})
	f.seedInvoice()

	data, err := f.repo.GetInvoiceData(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Trần Thị Bình", data.Customer.Name)
	assert.Equal(t, types.PlaceholderMissing, data.Customer.Email)
	assert.Equal(t, types.PlaceholderMissing, data.Customer.Phone)
	assert.Equal(t, types.PlaceholderMissing, data.Customer.Address)
	assert.Equal(t, types.PlaceholderNA, data.Customer.TaxCode)
}

func TestCustomerCompanyNamePreferred(t *testing.T) {
	f := newAssemblerFixture()
	f.customers.Add(&customer.Customer{
		ID:          10,
		Name:        "Trần Thị Bình",
		CompanyName: lo.ToPtr("Công ty CP Thương Mại Bình An"),
	})
	f.seedInvoice()

	data, err := f.repo.GetInvoiceData(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Công ty CP Thương Mại Bình An", data.Customer.Name)
}

func TestCompanySettingsOverrideDefaultsPerField(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.seedInvoice()
	f.settings.SetProfile(&settings.CompanyProfile{
		Name:  lo.ToPtr("Hostora Việt Nam"),
		Phone: lo.ToPtr("  1900 6868  "),
	})

	data, err := f.repo.GetInvoiceData(context.Background(), 1)
	require.NoError(t, err)

	// Configured fields win, blank fields inherit the defaults individually
	assert.Equal(t, "Hostora Việt Nam", data.Company.Name)
	assert.Equal(t, "1900 6868", data.Company.Phone)
	assert.Equal(t, "lienhe@hostora.vn", data.Company.Email)
	assert.Equal(t, "0312345678", data.Company.TaxCode)
}

func TestCompanySettingsFailureDegradesToDefaults(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.seedInvoice()
	f.settings.FailWith(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	data, err := f.repo.GetInvoiceData(context.Background(), 1)
	require.NoError(t, err, "settings failure must not fail document assembly")

	assert.Equal(t, "Công ty TNHH Hostora", data.Company.Name)
}

func TestGetContractData(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.contracts.Add(&contract.Contract{
		ID:             7,
		ContractNumber: "HD-2024-0007",
		CustomerID:     10,
		Status:         types.ContractStatusActive,
		Currency:       "VND",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Value:          decimal.NewFromInt(24000000),
		DomainIDs:      []int64{1, 99},
		HostingIDs:     []int64{5},
		VPSIDs:         []int64{8},
	})
	f.catalog.AddDomain(&catalog.Domain{
		ID:         1,
		Name:       "example.vn",
		Registrar:  lo.ToPtr("PA Việt Nam"),
		ExpiryDate: lo.ToPtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	f.catalog.AddHosting(&catalog.Hosting{
		ID:        5,
		PlanName:  "Business",
		StorageGB: lo.ToPtr(int64(20)),
	})
	f.catalog.AddVPS(&catalog.VPS{
		ID:       8,
		Hostname: "vps-01.hostora.vn",
		CPUCores: lo.ToPtr(int64(4)),
		RAMGB:    lo.ToPtr(int64(8)),
	})

	data, err := f.repo.GetContractData(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "HD-2024-0007", data.ContractNumber)

	require.Len(t, data.Domains, 2)
	assert.Equal(t, "example.vn", data.Domains[0].Label)
	assert.Equal(t, docgen.SpecRow{Label: "Nhà đăng ký", Value: "PA Việt Nam"}, data.Domains[0].Specs[0])
	assert.Equal(t, docgen.SpecRow{Label: "Ngày hết hạn", Value: "01/01/2025"}, data.Domains[0].Specs[1])

	// Unresolved IDs degrade to a raw identifier with no specs
	assert.Equal(t, "#99", data.Domains[1].Label)
	assert.Empty(t, data.Domains[1].Specs)

	require.Len(t, data.Hosting, 1)
	assert.Equal(t, "Business", data.Hosting[0].Label)
	assert.Equal(t, docgen.SpecRow{Label: "Dung lượng", Value: "20 GB"}, data.Hosting[0].Specs[1])
	assert.Equal(t, docgen.SpecRow{Label: "Băng thông", Value: types.PlaceholderNA}, data.Hosting[0].Specs[2])

	require.Len(t, data.VPS, 1)
	assert.Equal(t, "vps-01.hostora.vn", data.VPS[0].Label)
	assert.Equal(t, docgen.SpecRow{Label: "CPU", Value: "4 vCPU"}, data.VPS[0].Specs[0])
	assert.Equal(t, docgen.SpecRow{Label: "RAM", Value: "8 GB"}, data.VPS[0].Specs[1])
}

func TestGetContractDataEmptyServiceLists(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.contracts.Add(&contract.Contract{
		ID:             8,
		ContractNumber: "HD-2024-0008",
		CustomerID:     10,
		Status:         types.ContractStatusDraft,
		Currency:       "VND",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Value:          decimal.Zero,
	})

	data, err := f.repo.GetContractData(context.Background(), 8)
	require.NoError(t, err)

	assert.Empty(t, data.Domains)
	assert.Empty(t, data.Hosting)
	assert.Empty(t, data.VPS)
}

func TestGetOrderData(t *testing.T) {
	f := newAssemblerFixture()
	f.seedCustomer()
	f.orders.Add(&order.Order{
		ID:          3,
		OrderNumber: "DH-2024-0003",
		CustomerID:  10,
		Status:      types.OrderStatusCompleted,
		Currency:    "VND",
		OrderDate:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Subtotal:    decimal.NewFromInt(500000),
		Tax:         decimal.Zero,
		Total:       decimal.NewFromInt(500000),
	})
	f.orders.AddLineItem(3, &order.LineItem{
		ID:          1,
		OrderID:     3,
		Description: "fallback description",
		ServiceName: lo.ToPtr("Đăng ký tên miền example.vn"),
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(500000),
	})

	data, err := f.repo.GetOrderData(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "DH-2024-0003", data.OrderNumber)
	require.Len(t, data.LineItems, 1)

	// The service name takes precedence over the free-text description
	assert.Equal(t, "Đăng ký tên miền example.vn", data.LineItems[0].Description)
	assert.Nil(t, data.LineItems[0].TaxRate)
	assert.True(t, data.LineItems[0].Amount.Equal(decimal.NewFromInt(500000)))
}

func TestGetOrderDataNotFound(t *testing.T) {
	f := newAssemblerFixture()

	_, err := f.repo.GetOrderData(context.Background(), 404)
	assert.True(t, ierr.IsNotFound(err))
}
