package apple

import (
	"context"

	"stampcard/internal/domain/service"
)

// UnsignedReason explains why bundles carry no signature entry.
const UnsignedReason = "PKCS#7 signing with an Apple pass type certificate is not configured"

type unsignedSigner struct{}

// NewUnsignedSigner returns a PassSigner that never signs. Packaged passes
// keep their manifest and report Unsigned so callers can tell the bundle
// is not installable.
func NewUnsignedSigner() service.PassSigner {
	return unsignedSigner{}
}

func (unsignedSigner) Sign(context.Context, []byte) (service.PassSignature, error) {
	return service.Unsigned{Reason: UnsignedReason}, nil
}
