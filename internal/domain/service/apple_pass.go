package service

import (
	"context"

	"stampcard/internal/domain/entity"
)

// AssetFetcher downloads an image referenced by a pass. Failures are
// reported as *errors.AssetFetchError from the domain errors package.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// PassSignature is the result of signing a pass manifest. It is either
// Unsigned or Pkcs7Signed.
type PassSignature interface {
	isPassSignature()
}

// Unsigned records that no signature was produced and why.
type Unsigned struct {
	Reason string
}

// Pkcs7Signed carries a detached PKCS#7 signature over manifest.json.
type Pkcs7Signed struct {
	Signature []byte
}

func (Unsigned) isPassSignature()    {}
func (Pkcs7Signed) isPassSignature() {}

// PassSigner signs the manifest of an Apple pass bundle.
type PassSigner interface {
	Sign(ctx context.Context, manifest []byte) (PassSignature, error)
}

// ApplePass is a packaged Apple Wallet pass.
type ApplePass struct {
	SerialNumber       string
	PassTypeIdentifier string
	// Files holds every bundled file by name, manifest.json included.
	Files     map[string][]byte
	Manifest  map[string]string
	Signature PassSignature
	// Omitted lists assets that could not be fetched and were left out.
	Omitted []string
}

// Signed reports whether the pass carries a PKCS#7 signature.
func (p *ApplePass) Signed() bool {
	_, ok := p.Signature.(Pkcs7Signed)

	return ok
}

// ApplePassPackager builds an Apple pass bundle for a card.
type ApplePassPackager interface {
	Package(ctx context.Context, snap *entity.CardSnapshot, stripURL string) (*ApplePass, error)

	// Bundle zips a packaged pass.
	Bundle(pass *ApplePass) ([]byte, error)
}
