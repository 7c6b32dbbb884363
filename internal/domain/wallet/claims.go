package wallet

import "time"

// Google endpoints and constants used in signed claims.
const (
	DefaultTokenURL   = "https://oauth2.googleapis.com/token"
	WalletIssuerScope = "https://www.googleapis.com/auth/wallet_object.issuer"
	SaveURLPrefix     = "https://pay.google.com/gp/v/save/"

	assertionLifetime = time.Hour
)

// OAuthAssertionClaims is the service-account assertion exchanged for a
// bearer token at tokenURL.
func OAuthAssertionClaims(serviceAccountEmail, tokenURL string, now time.Time) map[string]any {
	iat := now.Unix()

	return map[string]any{
		"iss":   serviceAccountEmail,
		"sub":   serviceAccountEmail,
		"aud":   tokenURL,
		"scope": WalletIssuerScope,
		"iat":   iat,
		"exp":   iat + int64(assertionLifetime/time.Second),
	}
}

// SaveToWalletClaims references one loyalty object. The resulting JWT is
// appended to SaveURLPrefix.
func SaveToWalletClaims(serviceAccountEmail string, origins []string, objectID string) map[string]any {
	if origins == nil {
		origins = []string{}
	}

	return map[string]any{
		"iss":     serviceAccountEmail,
		"aud":     "google",
		"typ":     "savetowallet",
		"origins": origins,
		"payload": map[string]any{
			"loyaltyObjects": []map[string]any{
				{"id": objectID},
			},
		},
	}
}
