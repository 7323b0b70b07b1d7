package testutil

import (
	ierr "github.com/hostora/hostora/internal/errors"
)

// InMemoryAssetProvider serves asset bytes from memory. A nil slice means
// the asset is absent.
type InMemoryAssetProvider struct {
	Regular   []byte
	Bold      []byte
	LogoBytes []byte
}

func NewInMemoryAssetProvider() *InMemoryAssetProvider {
	return &InMemoryAssetProvider{
		Regular: []byte("regular-font"),
		Bold:    []byte("bold-font"),
	}
}

func (p *InMemoryAssetProvider) FontRegular() ([]byte, error) {
	if p.Regular == nil {
		return nil, ierr.NewError("regular font missing").Mark(ierr.ErrAssetLoad)
	}
	return p.Regular, nil
}

func (p *InMemoryAssetProvider) FontBold() ([]byte, error) {
	if p.Bold == nil {
		return nil, ierr.NewError("bold font missing").Mark(ierr.ErrAssetLoad)
	}
	return p.Bold, nil
}

func (p *InMemoryAssetProvider) Logo() ([]byte, error) {
	if p.LogoBytes == nil {
		return nil, ierr.NewError("logo missing").Mark(ierr.ErrAssetLoad)
	}
	return p.LogoBytes, nil
}
