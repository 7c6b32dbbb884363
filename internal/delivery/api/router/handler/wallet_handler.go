package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mimePNG    = "image/png"
	mimePKPass = "application/vnd.apple.pkpass"
	mimeZip    = "application/zip"

	formatBundle = "bundle"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler exposes pass issuance and sync.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// GoogleSyncResponse is the result of a Google sync.
type GoogleSyncResponse struct {
	Success  bool   `json:"success"`
	SaveURL  string `json:"saveUrl"`
	ObjectID string `json:"objectId"`
	ClassID  string `json:"classId"`
}

// TriggerRequest queues a sync for a card.
type TriggerRequest struct {
	CardID string `json:"card_id" validate:"required,uuid"`
	Kind   string `json:"kind" validate:"required,oneof=card_created balance_changed design_saved"`
}

// AppleMetadata describes a packaged Apple pass that is returned as JSON.
type AppleMetadata struct {
	SerialNumber       string            `json:"serial_number"`
	PassTypeIdentifier string            `json:"pass_type_identifier"`
	Signed             bool              `json:"signed"`
	UnsignedReason     string            `json:"unsigned_reason,omitempty"`
	Manifest           map[string]string `json:"manifest"`
	Omitted            []string          `json:"omitted,omitempty"`
	PassJSON           any               `json:"pass"`
}

// SyncGoogle creates or updates the Google Wallet object of a card.
func (h *WalletHandler) SyncGoogle(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.walletUC.SyncGoogle(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, GoogleSyncResponse{
		Success:  true,
		SaveURL:  result.SaveURL,
		ObjectID: result.ObjectID,
		ClassID:  result.ClassID,
	})
}

// GoogleSaveQR returns the card's save URL as a QR code PNG.
func (h *WalletHandler) GoogleSaveQR(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.walletUC.GoogleSaveQR(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, mimePNG, png)
}

// ApplePass returns pass metadata, or the zipped bundle with ?format=bundle.
func (h *WalletHandler) ApplePass(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ctx := c.Request().Context()

	if c.QueryParam("format") == formatBundle {
		pass, bundle, err := h.walletUC.BundleApple(ctx, cardID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		contentType := mimeZip
		if pass.Signed() {
			contentType = mimePKPass
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+pass.SerialNumber+`.pkpass"`)

		return c.Blob(http.StatusOK, contentType, bundle)
	}

	pass, err := h.walletUC.PackageApple(ctx, cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, appleMetadata(pass))
}

// PublishTrigger queues a sync trigger.
func (h *WalletHandler) PublishTrigger(c echo.Context) error {
	var req TriggerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidation.ErrorCode(), "Invalid trigger input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidation.ErrorCode(), err.Error())
	}

	trigger := &entity.SyncTrigger{
		CardID: uuid.MustParse(req.CardID),
		Kind:   entity.TriggerKind(req.Kind),
	}
	if err := h.walletUC.PublishTrigger(c.Request().Context(), trigger); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"card_id": trigger.CardID.String(),
		"kind":    string(trigger.Kind),
	})
}

func appleMetadata(pass *service.ApplePass) AppleMetadata {
	meta := AppleMetadata{
		SerialNumber:       pass.SerialNumber,
		PassTypeIdentifier: pass.PassTypeIdentifier,
		Signed:             pass.Signed(),
		Manifest:           pass.Manifest,
		Omitted:            pass.Omitted,
		PassJSON:           rawJSON(pass.Files["pass.json"]),
	}
	if unsigned, ok := pass.Signature.(service.Unsigned); ok {
		meta.UnsignedReason = unsigned.Reason
	}

	return meta
}

func parseCardID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("cardId")
	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidation.WithDetails("card id is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidation.WithDetails("card id must be a uuid")
	}

	return id, nil
}
