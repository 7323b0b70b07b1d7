package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/service"
)

const contentTypePDF = "application/pdf"

type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, log: log}
}

func (h *DocumentHandler) DownloadInvoicePDF(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GenerateInvoicePDF(ctx, id)
	if err != nil {
		h.log.Error("Failed to generate invoice pdf", "error", err, "invoice_id", id)
		c.Error(err)
		return
	}

	h.sendPDF(c, doc)
}

func (h *DocumentHandler) DownloadContractPDF(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GenerateContractPDF(ctx, id)
	if err != nil {
		h.log.Error("Failed to generate contract pdf", "error", err, "contract_id", id)
		c.Error(err)
		return
	}

	h.sendPDF(c, doc)
}

func (h *DocumentHandler) DownloadOrderPDF(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GenerateOrderPDF(ctx, id)
	if err != nil {
		h.log.Error("Failed to generate order pdf", "error", err, "order_id", id)
		c.Error(err)
		return
	}

	h.sendPDF(c, doc)
}

func (h *DocumentHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Error("Failed to parse id", "error", err, "raw", raw)
		c.Error(ierr.WithError(err).
			WithHint("Invalid document id").
			WithReportableDetails(map[string]any{"id": raw}).
			Mark(ierr.ErrValidation))
		return 0, false
	}
	return id, true
}

func (h *DocumentHandler) sendPDF(c *gin.Context, doc *service.GeneratedDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.DocumentNumber+".pdf"))
	c.Data(http.StatusOK, contentTypePDF, doc.Bytes)
}
