package asset

import "stampcard/internal/errors"

// ErrAssetTooLarge is returned when a download exceeds the configured size.
var ErrAssetTooLarge = errors.New("asset exceeds maximum size")
