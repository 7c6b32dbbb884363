// Package google talks to the Google Wallet REST API.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/wallet"
	"stampcard/internal/errors"

	"github.com/tidwall/gjson"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/walletobjects/v1"
)

const (
	resourceClass  = "loyaltyClass"
	resourceObject = "loyaltyObject"
)

type gateway struct {
	svc     *walletobjects.Service
	signer  service.JWTSigner
	cfg     config.GoogleWalletConfig
	timeout time.Duration
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// GatewayParams holds dependencies for the Google Wallet gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Signer  service.JWTSigner
	Metrics service.MetricsRecorder
	Logger  *slog.Logger

	// HTTPClient is the base transport, replaced in tests.
	HTTPClient *http.Client `optional:"true"`
}

// NewGateway builds the gateway. A disabled account yields a gateway whose
// every call fails with a configuration error.
func NewGateway(params GatewayParams) (service.GoogleWalletGateway, error) {
	cfg := params.Config.Wallet.Google
	if !cfg.Enabled {
		params.Logger.Info("Google Wallet disabled, sync calls will fail with a configuration error")

		return disabledGateway{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := params.HTTPClient
	if base == nil {
		base = &http.Client{}
	}

	src := &assertionTokenSource{
		httpClient: base,
		signer:     params.Signer,
		email:      cfg.ServiceAccountEmail,
		privateKey: cfg.PrivateKey,
		tokenURL:   cfg.TokenURL,
		timeout:    cfg.RequestTimeout,
		now:        time.Now,
	}

	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	client := &http.Client{
		Transport: &bearerTransport{src: src, base: transport},
	}

	endpoint := cfg.APIBaseURL
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	svc, err := walletobjects.NewService(params.Ctx,
		option.WithHTTPClient(client),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create walletobjects service")
	}

	params.Logger.Info("Google Wallet gateway initialized",
		slog.String("issuer_id", cfg.IssuerID),
		slog.String("endpoint", endpoint),
	)

	return &gateway{
		svc:     svc,
		signer:  params.Signer,
		cfg:     cfg,
		timeout: cfg.RequestTimeout,
		metrics: params.Metrics,
		logger:  params.Logger,
	}, nil
}

// UpsertLoyaltyClass creates or updates a loyalty class by id.
func (g *gateway) UpsertLoyaltyClass(ctx context.Context, class *walletobjects.LoyaltyClass) (service.UpsertOutcome, error) {
	return g.upsert(ctx, resourceClass, resourceCalls{
		get: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyclass.Get(class.Id).Context(ctx).Do()

			return err
		},
		update: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyclass.Update(class.Id, class).Context(ctx).Do()

			return err
		},
		insert: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyclass.Insert(class).Context(ctx).Do()

			return err
		},
	})
}

// UpsertLoyaltyObject creates or updates a loyalty object by id.
func (g *gateway) UpsertLoyaltyObject(ctx context.Context, object *walletobjects.LoyaltyObject) (service.UpsertOutcome, error) {
	return g.upsert(ctx, resourceObject, resourceCalls{
		get: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyobject.Get(object.Id).Context(ctx).Do()

			return err
		},
		update: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyobject.Update(object.Id, object).Context(ctx).Do()

			return err
		},
		insert: func(ctx context.Context) error {
			_, err := g.svc.Loyaltyobject.Insert(object).Context(ctx).Do()

			return err
		},
	})
}

// SaveURL signs a save-to-wallet JWT for objectID.
func (g *gateway) SaveURL(objectID string) (string, error) {
	claims := wallet.SaveToWalletClaims(g.cfg.ServiceAccountEmail, g.cfg.Origins, objectID)

	signed, err := g.signer.Sign(claims, g.cfg.PrivateKey)
	if err != nil {
		return "", domainerrors.ErrConfiguration.WithDetails(err.Error())
	}

	return wallet.SaveURLPrefix + signed, nil
}

type resourceCalls struct {
	get    func(ctx context.Context) error
	update func(ctx context.Context) error
	insert func(ctx context.Context) error
}

// upsert runs GET, then PUT when the resource exists or POST otherwise. A
// 409 on POST means a concurrent sync created it first, so it falls back to
// PUT. Each HTTP call gets its own timeout.
func (g *gateway) upsert(ctx context.Context, resource string, calls resourceCalls) (service.UpsertOutcome, error) {
	err := g.call(ctx, resource, http.MethodGet, calls.get)
	if err == nil {
		return service.UpsertUpdated, g.wrap(resource, "update", g.call(ctx, resource, http.MethodPut, calls.update))
	}
	if statusOf(err) == 0 {
		return "", g.wrap(resource, "get", err)
	}

	err = g.call(ctx, resource, http.MethodPost, calls.insert)
	if statusOf(err) == http.StatusConflict {
		g.logger.Warn("Google Wallet resource created concurrently, updating instead",
			slog.String("resource", resource),
		)

		return service.UpsertUpdated, g.wrap(resource, "update", g.call(ctx, resource, http.MethodPut, calls.update))
	}

	return service.UpsertCreated, g.wrap(resource, "insert", err)
}

func (g *gateway) call(ctx context.Context, resource, method string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := fn(ctx)

	status := statusOf(err)
	if err == nil {
		status = http.StatusOK
	}
	g.metrics.ObserveProviderRequest(resource, method, status)

	return err
}

// wrap converts a walletobjects error into a ProviderError carrying the
// provider's status and body. Transport failures and timeouts are retryable.
func (g *gateway) wrap(resource, operation string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		perr := &domainerrors.ProviderError{
			Provider:   constants.ProviderGoogle,
			Operation:  operation + " " + resource,
			StatusCode: apiErr.Code,
			Reason:     apiErrorReason(apiErr),
			Body:       apiErr.Body,
		}
		if perr.Retryable() {
			return errors.Retryable(perr)
		}

		return perr
	}

	var perr *domainerrors.ProviderError
	if errors.As(err, &perr) {
		return err
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Retryable(errors.Wrapf(err, "google wallet %s %s", operation, resource))
}

func apiErrorReason(apiErr *googleapi.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}

	return gjson.Get(apiErr.Body, "error.message").String()
}

// statusOf returns the HTTP status of a walletobjects error, or 0 when the
// call never got an HTTP answer.
func statusOf(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	return 0
}

// disabledGateway is used when Google Wallet is not configured.
type disabledGateway struct{}

func (disabledGateway) UpsertLoyaltyClass(context.Context, *walletobjects.LoyaltyClass) (service.UpsertOutcome, error) {
	return "", domainerrors.ErrConfiguration.WithDetails("google wallet is disabled")
}

func (disabledGateway) UpsertLoyaltyObject(context.Context, *walletobjects.LoyaltyObject) (service.UpsertOutcome, error) {
	return "", domainerrors.ErrConfiguration.WithDetails("google wallet is disabled")
}

func (disabledGateway) SaveURL(string) (string, error) {
	return "", domainerrors.ErrConfiguration.WithDetails("google wallet is disabled")
}
