package service

// JWTSigner signs arbitrary claims as a compact RS256 JWT. It knows nothing
// about the claims it signs.
type JWTSigner interface {
	Sign(claims map[string]any, privateKeyPEM string) (string, error)
}
