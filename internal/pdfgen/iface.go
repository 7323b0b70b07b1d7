package pdfgen

import (
	"context"

	"github.com/hostora/hostora/internal/domain/docgen"
	"github.com/hostora/hostora/internal/logger"
)

// Generator renders assembled document data into finished PDF bytes. One
// canvas is created per call, so a single Generator is safe for concurrent
// use.
type Generator interface {
	// RenderInvoice renders an invoice document
	RenderInvoice(ctx context.Context, data *docgen.InvoiceData) ([]byte, error)

	// RenderContract renders a contract document
	RenderContract(ctx context.Context, data *docgen.ContractData) ([]byte, error)

	// RenderOrder renders an order document
	RenderOrder(ctx context.Context, data *docgen.OrderData) ([]byte, error)
}

type generator struct {
	factory CanvasFactory
	assets  AssetProvider
	log     *logger.Logger
}

// NewGenerator creates the production generator: an fpdf canvas per call
// with fonts and logo loaded from the asset provider.
func NewGenerator(assets AssetProvider, log *logger.Logger) Generator {
	return &generator{
		factory: func() (Canvas, error) { return NewPdfCanvas(assets) },
		assets:  assets,
		log:     log,
	}
}

// NewGeneratorWithFactory creates a generator over an arbitrary canvas
// factory. Tests use this to substitute a recording canvas.
func NewGeneratorWithFactory(factory CanvasFactory, log *logger.Logger) Generator {
	return &generator{factory: factory, log: log}
}

// NewGeneratorWithAssets pairs an arbitrary canvas factory with an asset
// provider, so the logo path can be exercised without a real canvas.
func NewGeneratorWithAssets(factory CanvasFactory, assets AssetProvider, log *logger.Logger) Generator {
	return &generator{factory: factory, assets: assets, log: log}
}

// loadLogo returns the brand logo bytes, or nil when the logo is absent or
// unreadable; the header then falls back to a text brand block.
func (g *generator) loadLogo() []byte {
	if g.assets == nil {
		return nil
	}
	logo, err := g.assets.Logo()
	if err != nil {
		g.log.Debugw("logo unavailable, using text brand fallback", "error", err)
		return nil
	}
	return logo
}
