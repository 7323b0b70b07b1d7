package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/hostora/hostora/internal/config"
	"github.com/hostora/hostora/internal/domain/catalog"
	"github.com/hostora/hostora/internal/domain/contract"
	"github.com/hostora/hostora/internal/domain/customer"
	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/domain/invoice"
	"github.com/hostora/hostora/internal/domain/order"
	"github.com/hostora/hostora/internal/domain/settings"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/types"
)

// assembler denormalizes document records into render-ready view models.
// It is read-only and performs no writes.
type assembler struct {
	cfg          *config.Configuration
	log          *logger.Logger
	invoiceRepo  invoice.Repository
	contractRepo contract.Repository
	orderRepo    order.Repository
	customerRepo customer.Repository
	catalogRepo  catalog.Repository
	settingsRepo settings.Repository
}

// NewAssembler creates the docgen data assembler over the entity repositories
func NewAssembler(
	cfg *config.Configuration,
	log *logger.Logger,
	invoiceRepo invoice.Repository,
	contractRepo contract.Repository,
	orderRepo order.Repository,
	customerRepo customer.Repository,
	catalogRepo catalog.Repository,
	settingsRepo settings.Repository,
) docgen.Repository {
	return &assembler{
		cfg:          cfg,
		log:          log,
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
	}
}

func (a *assembler) GetInvoiceData(ctx context.Context, invoiceID int64) (*docgen.InvoiceData, error) {
	if err := validateID(invoiceID); err != nil {
		return nil, err
	}

	inv, err := a.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items, err := a.invoiceRepo.ListLineItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	cust, err := a.customerRepo.Get(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	if inv.AmountPaid.GreaterThan(inv.Total) {
		a.log.Warnw("invoice paid amount exceeds total, clamping remaining to zero",
			"invoice_id", inv.ID, "total", inv.Total, "amount_paid", inv.AmountPaid)
	}

	data := &docgen.InvoiceData{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		Status:          inv.Status,
		PaymentMethod:   inv.PaymentMethod,
		Currency:        inv.Currency,
		IssueDate:       inv.IssueDate,
		DueDate:         inv.DueDate,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		AmountPaid:      inv.AmountPaid,
		AmountRemaining: inv.AmountRemaining(),
		Notes:           types.OrDefaultPtr(inv.Notes, ""),
		Company:         a.companyParty(ctx),
		Customer:        customerParty(cust),
		LineItems:       make([]docgen.LineItemData, len(items)),
	}

	for i, item := range items {
		data.LineItems[i] = docgen.LineItemData{
			Description: lineDescription(item.Description, item.ServiceName),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      item.Amount(),
		}
	}

	return data, nil
}

func (a *assembler) GetContractData(ctx context.Context, contractID int64) (*docgen.ContractData, error) {
	if err := validateID(contractID); err != nil {
		return nil, err
	}

	con, err := a.contractRepo.Get(ctx, contractID)
	if err != nil {
		return nil, err
	}

	cust, err := a.customerRepo.Get(ctx, con.CustomerID)
	if err != nil {
		return nil, err
	}

	domains, hosting, vps, err := a.resolveServices(ctx, con.DomainIDs, con.HostingIDs, con.VPSIDs)
	if err != nil {
		return nil, err
	}

	return &docgen.ContractData{
		ID:             con.ID,
		ContractNumber: con.ContractNumber,
		Status:         con.Status,
		Currency:       con.Currency,
		StartDate:      con.StartDate,
		EndDate:        con.EndDate,
		Value:          con.Value,
		Notes:          types.OrDefaultPtr(con.Notes, ""),
		Company:        a.companyParty(ctx),
		Customer:       customerParty(cust),
		Domains:        domains,
		Hosting:        hosting,
		VPS:            vps,
	}, nil
}

func (a *assembler) GetOrderData(ctx context.Context, orderID int64) (*docgen.OrderData, error) {
	if err := validateID(orderID); err != nil {
		return nil, err
	}

	ord, err := a.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := a.orderRepo.ListLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	cust, err := a.customerRepo.Get(ctx, ord.CustomerID)
	if err != nil {
		return nil, err
	}

	data := &docgen.OrderData{
		ID:          ord.ID,
		OrderNumber: ord.OrderNumber,
		Status:      ord.Status,
		Currency:    ord.Currency,
		OrderDate:   ord.OrderDate,
		Subtotal:    ord.Subtotal,
		Tax:         ord.Tax,
		Total:       ord.Total,
		Notes:       types.OrDefaultPtr(ord.Notes, ""),
		Company:     a.companyParty(ctx),
		Customer:    customerParty(cust),
		LineItems:   make([]docgen.LineItemData, len(items)),
	}

	for i, item := range items {
		data.LineItems[i] = docgen.LineItemData{
			Description: lineDescription(item.Description, item.ServiceName),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      item.Amount(),
		}
	}

	return data, nil
}

// resolveServices runs the three per-kind batched lookups concurrently; the
// batches are mutually independent. Unresolved IDs degrade to a raw "#<id>"
// label rather than failing the whole assembly.
func (a *assembler) resolveServices(
	ctx context.Context,
	domainIDs, hostingIDs, vpsIDs []int64,
) ([]docgen.ServiceAttachment, []docgen.ServiceAttachment, []docgen.ServiceAttachment, error) {
	var (
		wg         sync.WaitGroup
		domains    []*catalog.Domain
		hosting    []*catalog.Hosting
		vps        []*catalog.VPS
		domainsErr error
		hostingErr error
		vpsErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		domains, domainsErr = a.catalogRepo.ListDomainsByIDs(ctx, domainIDs)
	}()
	go func() {
		defer wg.Done()
		hosting, hostingErr = a.catalogRepo.ListHostingByIDs(ctx, hostingIDs)
	}()
	go func() {
		defer wg.Done()
		vps, vpsErr = a.catalogRepo.ListVPSByIDs(ctx, vpsIDs)
	}()
	wg.Wait()

	for _, err := range []error{domainsErr, hostingErr, vpsErr} {
		if err != nil {
			return nil, nil, nil, err
		}
	}

	domainByID := make(map[int64]*catalog.Domain, len(domains))
	for _, d := range domains {
		domainByID[d.ID] = d
	}
	hostingByID := make(map[int64]*catalog.Hosting, len(hosting))
	for _, h := range hosting {
		hostingByID[h.ID] = h
	}
	vpsByID := make(map[int64]*catalog.VPS, len(vps))
	for _, v := range vps {
		vpsByID[v.ID] = v
	}

	domainAttachments := make([]docgen.ServiceAttachment, 0, len(domainIDs))
	for _, id := range domainIDs {
		if d, ok := domainByID[id]; ok {
			domainAttachments = append(domainAttachments, domainAttachment(d))
			continue
		}
		a.log.Warnw("domain not resolved, degrading to raw identifier", "domain_id", id)
		domainAttachments = append(domainAttachments, unresolvedAttachment(types.ServiceKindDomain, id))
	}

	hostingAttachments := make([]docgen.ServiceAttachment, 0, len(hostingIDs))
	for _, id := range hostingIDs {
		if h, ok := hostingByID[id]; ok {
			hostingAttachments = append(hostingAttachments, hostingAttachment(h))
			continue
		}
		a.log.Warnw("hosting plan not resolved, degrading to raw identifier", "hosting_id", id)
		hostingAttachments = append(hostingAttachments, unresolvedAttachment(types.ServiceKindHosting, id))
	}

	vpsAttachments := make([]docgen.ServiceAttachment, 0, len(vpsIDs))
	for _, id := range vpsIDs {
		if v, ok := vpsByID[id]; ok {
			vpsAttachments = append(vpsAttachments, vpsAttachment(v))
			continue
		}
		a.log.Warnw("vps not resolved, degrading to raw identifier", "vps_id", id)
		vpsAttachments = append(vpsAttachments, unresolvedAttachment(types.ServiceKindVPS, id))
	}

	return domainAttachments, hostingAttachments, vpsAttachments, nil
}

// companyParty builds the issuing-company party from the settings row merged
// per-field with the configured defaults. A settings lookup failure degrades
// to the defaults rather than failing document generation.
func (a *assembler) companyParty(ctx context.Context) docgen.PartyInfo {
	profile, err := a.settingsRepo.GetCompanyProfile(ctx)
	if err != nil {
		a.log.Warnw("failed to load company settings, using configured defaults", "error", err)
		profile = nil
	}

	resolved := settings.Resolve(profile, a.cfg.Company)
	return docgen.PartyInfo{
		Name:        types.OrDefault(resolved.Name.Value, types.PlaceholderMissing),
		Email:       types.OrDefault(resolved.Email.Value, types.PlaceholderMissing),
		Phone:       types.OrDefault(resolved.Phone.Value, types.PlaceholderMissing),
		Address:     types.OrDefault(resolved.Address.Value, types.PlaceholderMissing),
		TaxCode:     types.OrDefault(resolved.TaxCode.Value, types.PlaceholderNA),
		BankName:    resolved.BankName.Value,
		BankAccount: resolved.BankAccount.Value,
		BankHolder:  resolved.BankHolder.Value,
	}
}

func customerParty(c *customer.Customer) docgen.PartyInfo {
	return docgen.PartyInfo{
		Name:    types.OrDefault(c.DisplayName(), types.PlaceholderMissing),
		Email:   types.OrDefaultPtr(c.Email, types.PlaceholderMissing),
		Phone:   types.OrDefaultPtr(c.Phone, types.PlaceholderMissing),
		Address: types.OrDefaultPtr(c.Address, types.PlaceholderMissing),
		TaxCode: types.OrDefaultPtr(c.TaxCode, types.PlaceholderNA),
	}
}

func lineDescription(description string, serviceName *string) string {
	if serviceName != nil && *serviceName != "" {
		return *serviceName
	}
	return types.OrDefault(description, types.PlaceholderNA)
}

func domainAttachment(d *catalog.Domain) docgen.ServiceAttachment {
	return docgen.ServiceAttachment{
		Kind:  types.ServiceKindDomain,
		Label: d.Name,
		Specs: []docgen.SpecRow{
			{Label: "Nhà đăng ký", Value: types.OrDefaultPtr(d.Registrar, types.PlaceholderNA)},
			{Label: "Ngày hết hạn", Value: types.FormatDatePtr(d.ExpiryDate)},
		},
	}
}

func hostingAttachment(h *catalog.Hosting) docgen.ServiceAttachment {
	return docgen.ServiceAttachment{
		Kind:  types.ServiceKindHosting,
		Label: h.PlanName,
		Specs: []docgen.SpecRow{
			{Label: "Tên miền", Value: types.OrDefaultPtr(h.DomainName, types.PlaceholderNA)},
			{Label: "Dung lượng", Value: formatGB(h.StorageGB)},
			{Label: "Băng thông", Value: formatGB(h.BandwidthGB)},
		},
	}
}

func vpsAttachment(v *catalog.VPS) docgen.ServiceAttachment {
	return docgen.ServiceAttachment{
		Kind:  types.ServiceKindVPS,
		Label: v.Hostname,
		Specs: []docgen.SpecRow{
			{Label: "CPU", Value: formatCores(v.CPUCores)},
			{Label: "RAM", Value: formatGB(v.RAMGB)},
			{Label: "Dung lượng", Value: formatGB(v.StorageGB)},
			{Label: "Địa chỉ IP", Value: types.OrDefaultPtr(v.IPAddress, types.PlaceholderNA)},
			{Label: "Hệ điều hành", Value: types.OrDefaultPtr(v.OS, types.PlaceholderNA)},
		},
	}
}

func unresolvedAttachment(kind types.ServiceKind, id int64) docgen.ServiceAttachment {
	return docgen.ServiceAttachment{
		Kind:  kind,
		Label: "#" + strconv.FormatInt(id, 10),
	}
}

func formatGB(v *int64) string {
	if v == nil {
		return types.PlaceholderNA
	}
	return fmt.Sprintf("%d GB", *v)
}

func formatCores(v *int64) string {
	if v == nil {
		return types.PlaceholderNA
	}
	return fmt.Sprintf("%d vCPU", *v)
}

func validateID(id int64) error {
	if id <= 0 {
		return ierr.NewError("invalid document id").
			WithHint("Document id must be a positive integer").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
