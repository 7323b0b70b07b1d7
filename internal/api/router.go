package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/hostora/hostora/internal/api/v1"
	"github.com/hostora/hostora/internal/rest/middleware"
)

type Handlers struct {
	Document *v1.DocumentHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("/:id/pdf", handlers.Document.DownloadInvoicePDF)
	}

	contracts := router.Group("/contracts")
	{
		contracts.GET("/:id/pdf", handlers.Document.DownloadContractPDF)
	}

	orders := router.Group("/orders")
	{
		orders.GET("/:id/pdf", handlers.Document.DownloadOrderPDF)
	}
}
