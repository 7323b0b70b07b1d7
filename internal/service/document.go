package service

import (
	"context"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/pdfgen"
)

// GeneratedDocument is a finished PDF plus the business number used to name
// the download.
type GeneratedDocument struct {
	Bytes          []byte
	DocumentNumber string
}

// DocumentService produces customer-facing PDF documents
type DocumentService interface {
	GenerateInvoicePDF(ctx context.Context, id int64) (*GeneratedDocument, error)
	GenerateContractPDF(ctx context.Context, id int64) (*GeneratedDocument, error)
	GenerateOrderPDF(ctx context.Context, id int64) (*GeneratedDocument, error)
}

type documentService struct {
	repo      docgen.Repository
	generator pdfgen.Generator
	log       *logger.Logger
}

func NewDocumentService(repo docgen.Repository, generator pdfgen.Generator, log *logger.Logger) DocumentService {
	return &documentService{
		repo:      repo,
		generator: generator,
		log:       log,
	}
}

func (s *documentService) GenerateInvoicePDF(ctx context.Context, id int64) (*GeneratedDocument, error) {
	data, err := s.repo.GetInvoiceData(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := s.generator.RenderInvoice(ctx, data)
	if err != nil {
		return nil, err
	}

	s.log.Debugw("generated invoice pdf",
		"invoice_id", id,
		"invoice_number", data.InvoiceNumber,
		"size_bytes", len(pdf))

	return &GeneratedDocument{Bytes: pdf, DocumentNumber: data.InvoiceNumber}, nil
}

func (s *documentService) GenerateContractPDF(ctx context.Context, id int64) (*GeneratedDocument, error) {
	data, err := s.repo.GetContractData(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := s.generator.RenderContract(ctx, data)
	if err != nil {
		return nil, err
	}

	s.log.Debugw("generated contract pdf",
		"contract_id", id,
		"contract_number", data.ContractNumber,
		"size_bytes", len(pdf))

	return &GeneratedDocument{Bytes: pdf, DocumentNumber: data.ContractNumber}, nil
}

func (s *documentService) GenerateOrderPDF(ctx context.Context, id int64) (*GeneratedDocument, error) {
	data, err := s.repo.GetOrderData(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := s.generator.RenderOrder(ctx, data)
	if err != nil {
		return nil, err
	}

	s.log.Debugw("generated order pdf",
		"order_id", id,
		"order_number", data.OrderNumber,
		"size_bytes", len(pdf))

	return &GeneratedDocument{Bytes: pdf, DocumentNumber: data.OrderNumber}, nil
}
