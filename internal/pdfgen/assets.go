package pdfgen

import (
	"os"

	"github.com/hostora/hostora/internal/config"
	ierr "github.com/hostora/hostora/internal/errors"
)

// AssetProvider supplies the static resources embedded into generated
// documents. Fonts are required; a missing logo is tolerated and the header
// falls back to a text brand block.
type AssetProvider interface {
	// FontRegular returns the regular TTF font bytes
	FontRegular() ([]byte, error)

	// FontBold returns the bold TTF font bytes
	FontBold() ([]byte, error)

	// Logo returns the brand logo image bytes (PNG)
	Logo() ([]byte, error)
}

type fsAssetProvider struct {
	cfg config.AssetsConfig
}

// NewFSAssetProvider reads assets from the configured filesystem paths
func NewFSAssetProvider(cfg *config.Configuration) AssetProvider {
	return &fsAssetProvider{cfg: cfg.Assets}
}

func (p *fsAssetProvider) FontRegular() ([]byte, error) {
	return readAsset(p.cfg.FontRegularPath, "regular font")
}

func (p *fsAssetProvider) FontBold() ([]byte, error) {
	return readAsset(p.cfg.FontBoldPath, "bold font")
}

func (p *fsAssetProvider) Logo() ([]byte, error) {
	if p.cfg.LogoPath == "" {
		return nil, ierr.NewError("no logo path configured").Mark(ierr.ErrAssetLoad)
	}
	return readAsset(p.cfg.LogoPath, "logo")
}

func readAsset(path string, name string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to load %s asset", name).
			WithReportableDetails(map[string]any{
				"path": path,
			}).
			Mark(ierr.ErrAssetLoad)
	}
	return data, nil
}
