package google

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"stampcard/internal/domain/constants"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/wallet"
	"stampcard/internal/errors"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	maxTokenBodyBytes  = 1 << 20
)

// assertionTokenSource exchanges a signed service-account assertion for a
// bearer token. bearerTransport caches the token, so one is only requested
// again once the previous one expires.
type assertionTokenSource struct {
	httpClient *http.Client
	signer     service.JWTSigner
	email      string
	privateKey string
	tokenURL   string
	timeout    time.Duration
	now        func() time.Time
}

var _ oauth2.TokenSource = (*assertionTokenSource)(nil)

// Token implements oauth2.TokenSource.
func (s *assertionTokenSource) Token() (*oauth2.Token, error) {
	return s.TokenContext(context.Background())
}

// TokenContext runs the exchange on ctx, bounded by the per-call timeout.
func (s *assertionTokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	now := s.now()

	assertion, err := s.signer.Sign(wallet.OAuthAssertionClaims(s.email, s.tokenURL, now), s.privateKey)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WithDetails(err.Error())
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "google oauth token request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBodyBytes))
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "read google oauth token response"))
	}

	if resp.StatusCode != http.StatusOK {
		perr := &domainerrors.ProviderError{
			Provider:   constants.ProviderGoogle,
			Operation:  "oauth token",
			StatusCode: resp.StatusCode,
			Reason:     oauthErrorReason(body),
			Body:       string(body),
		}
		if perr.Retryable() {
			return nil, errors.Retryable(perr)
		}

		return nil, perr
	}

	result := gjson.ParseBytes(body)
	accessToken := result.Get("access_token").String()
	if accessToken == "" {
		return nil, &domainerrors.ProviderError{
			Provider:   constants.ProviderGoogle,
			Operation:  "oauth token",
			StatusCode: resp.StatusCode,
			Reason:     "token response has no access_token",
			Body:       string(body),
		}
	}

	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}
	if ttl := result.Get("expires_in").Int(); ttl > 0 {
		token.Expiry = now.Add(time.Duration(ttl) * time.Second)
	}

	return token, nil
}

// bearerTransport authorizes provider calls with a cached bearer token. A
// refresh runs on the context of the request that needs it, so cancelling a
// sync also abandons its token exchange.
type bearerTransport struct {
	src  *assertionTokenSource
	base http.RoundTripper

	mu    sync.Mutex
	token *oauth2.Token
}

// RoundTrip implements http.RoundTripper.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenFor(req.Context())
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}

		return nil, err
	}

	authed := req.Clone(req.Context())
	token.SetAuthHeader(authed)

	return t.base.RoundTrip(authed)
}

func (t *bearerTransport) tokenFor(ctx context.Context) (*oauth2.Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token.Valid() {
		return t.token, nil
	}

	token, err := t.src.TokenContext(ctx)
	if err != nil {
		return nil, err
	}
	t.token = token

	return token, nil
}

// oauthErrorReason extracts "error_description" or "error" from a token
// endpoint error body.
func oauthErrorReason(body []byte) string {
	if desc := gjson.GetBytes(body, "error_description").String(); desc != "" {
		return desc
	}

	return gjson.GetBytes(body, "error").String()
}
