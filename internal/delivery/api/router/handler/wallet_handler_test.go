package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	mockUsecase "stampcard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"
)

func createTestWalletHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockWalletUsecase) {
	walletUC := mockUsecase.NewMockWalletUsecase(t)
	h := NewWalletHandler(WalletHandlerParams{
		WalletUC: walletUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.POST("/wallet/triggers", h.PublishTrigger)
	e.POST("/wallet/google/:cardId", h.SyncGoogle)
	e.GET("/wallet/google/:cardId/qr.png", h.GoogleSaveQR)
	e.GET("/wallet/apple/:cardId", h.ApplePass)

	return e, walletUC
}

func TestWalletHandler_SyncGoogle(t *testing.T) {
	e, walletUC := createTestWalletHandler(t)
	cardID := uuid.New()

	walletUC.EXPECT().SyncGoogle(mock.Anything, cardID).Return(&entity.GoogleSaveResult{
		SaveURL:  "https://pay.google.com/gp/v/save/abc",
		ObjectID: "3388000000022.card_1",
		ClassID:  "3388000000022.bean_there_loyalty",
	}, nil)

	rec := serve(e, http.MethodPost, "/wallet/google/"+cardID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"saveUrl": "https://pay.google.com/gp/v/save/abc",
		"objectId": "3388000000022.card_1",
		"classId": "3388000000022.bean_there_loyalty"
	}`, rec.Body.String())
}

func TestWalletHandler_SyncGoogle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "configuration",
			err:        domainerrors.ErrConfiguration.WithDetails("google wallet is disabled"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "CONFIGURATION_ERROR",
			wantError:  "Wallet provider is not configured",
		},
		{
			name:       "not found",
			err:        domainerrors.ErrCardNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "CARD_NOT_FOUND",
			wantError:  "Loyalty card not found",
		},
		{
			name: "provider body surfaced",
			err: errors.Wrap(&domainerrors.ProviderError{
				Provider:   constants.ProviderGoogle,
				Operation:  "insert loyaltyObject",
				StatusCode: http.StatusBadRequest,
				Reason:     "Invalid resource id",
				Body:       `{"error":{"message":"Invalid resource id"}}`,
			}, "failed to create loyalty object"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "PROVIDER_ERROR",
			wantError:  "Invalid resource id",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, walletUC := createTestWalletHandler(t)
			cardID := uuid.New()
			walletUC.EXPECT().SyncGoogle(mock.Anything, cardID).Return(nil, tt.err)

			rec := serve(e, http.MethodPost, "/wallet/google/"+cardID.String(), "")

			body := rec.Body.String()
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, gjson.Get(body, "success").Bool())
			assert.Equal(t, tt.wantCode, gjson.Get(body, "error_code").String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, gjson.Get(body, "error").String())
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body, "boom")
			}
		})
	}
}

func TestWalletHandler_SyncGoogle_InvalidCardID(t *testing.T) {
	e, _ := createTestWalletHandler(t)

	rec := serve(e, http.MethodPost, "/wallet/google/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", gjson.Get(rec.Body.String(), "error_code").String())
}

func TestWalletHandler_GoogleSaveQR(t *testing.T) {
	e, walletUC := createTestWalletHandler(t)
	cardID := uuid.New()

	walletUC.EXPECT().GoogleSaveQR(mock.Anything, cardID).Return([]byte("\x89PNG"), nil)

	rec := serve(e, http.MethodGet, "/wallet/google/"+cardID.String()+"/qr.png", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestWalletHandler_ApplePass_Metadata(t *testing.T) {
	e, walletUC := createTestWalletHandler(t)
	cardID := uuid.New()

	walletUC.EXPECT().PackageApple(mock.Anything, cardID).Return(&service.ApplePass{
		SerialNumber:       cardID.String(),
		PassTypeIdentifier: "pass.com.stampcard.loyalty",
		Files:              map[string][]byte{"pass.json": []byte(`{"formatVersion":1}`)},
		Manifest:           map[string]string{"pass.json": "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		Signature:          service.Unsigned{Reason: "signing certificate not configured"},
		Omitted:            []string{"strip.png"},
	}, nil)

	rec := serve(e, http.MethodGet, "/wallet/apple/"+cardID.String(), "")

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.False(t, gjson.Get(body, "data.signed").Bool())
	assert.Equal(t, "signing certificate not configured", gjson.Get(body, "data.unsigned_reason").String())
	assert.Equal(t, int64(1), gjson.Get(body, "data.pass.formatVersion").Int())
	assert.Equal(t, "strip.png", gjson.Get(body, "data.omitted.0").String())
}

func TestWalletHandler_ApplePass_Bundle(t *testing.T) {
	tests := []struct {
		name        string
		signature   service.PassSignature
		contentType string
	}{
		{name: "unsigned", signature: service.Unsigned{Reason: "no certificate"}, contentType: "application/zip"},
		{name: "signed", signature: service.Pkcs7Signed{Signature: []byte("sig")}, contentType: "application/vnd.apple.pkpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, walletUC := createTestWalletHandler(t)
			cardID := uuid.New()

			walletUC.EXPECT().BundleApple(mock.Anything, cardID).Return(&service.ApplePass{
				SerialNumber: cardID.String(),
				Signature:    tt.signature,
			}, []byte("PK"), nil)

			rec := serve(e, http.MethodGet, "/wallet/apple/"+cardID.String()+"?format=bundle", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get(echo.HeaderContentType))
			assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), cardID.String()+".pkpass")
			assert.Equal(t, "PK", rec.Body.String())
		})
	}
}

func TestWalletHandler_PublishTrigger(t *testing.T) {
	e, walletUC := createTestWalletHandler(t)
	cardID := uuid.New()

	walletUC.EXPECT().PublishTrigger(mock.Anything, &entity.SyncTrigger{
		CardID: cardID,
		Kind:   entity.TriggerBalanceChanged,
	}).Return(nil)

	rec := serve(e, http.MethodPost, "/wallet/triggers", `{"card_id":"`+cardID.String()+`","kind":"balance_changed"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "balance_changed", gjson.Get(rec.Body.String(), "data.kind").String())
}

func TestWalletHandler_PublishTrigger_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing card", body: `{"kind":"balance_changed"}`},
		{name: "bad card id", body: `{"card_id":"42","kind":"balance_changed"}`},
		{name: "unknown kind", body: `{"card_id":"` + uuid.NewString() + `","kind":"card_deleted"}`},
		{name: "malformed", body: `{"card_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestWalletHandler(t)

			rec := serve(e, http.MethodPost, "/wallet/triggers", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", gjson.Get(rec.Body.String(), "error_code").String())
		})
	}
}
