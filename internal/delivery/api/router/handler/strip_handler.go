package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StripHandlerParams holds dependencies for StripHandler, injected by Fx.
type StripHandlerParams struct {
	fx.In

	StripUC usecase.StripUsecase
	Logger  *slog.Logger
}

// StripHandler serves strip scenes and rasters.
type StripHandler struct {
	stripUC usecase.StripUsecase
	logger  *slog.Logger
}

// NewStripHandler is the constructor for StripHandler
func NewStripHandler(params StripHandlerParams) *StripHandler {
	return &StripHandler{
		stripUC: params.StripUC,
		logger:  params.Logger,
	}
}

// PreviewRequest is an unsaved design sent by the design wizard.
type PreviewRequest struct {
	BusinessName string                `json:"business_name" validate:"max=120"`
	Branding     entity.BrandingConfig `json:"branding"`
	TargetStamps int                   `json:"target_stamps" validate:"min=1,max=50"`
	RewardName   string                `json:"reward_name"`
	Progress     int                   `json:"progress" validate:"min=0"`
	Width        int                   `json:"width" validate:"omitempty,min=1,max=4096"`
	Height       int                   `json:"height" validate:"omitempty,min=1,max=4096"`
	Background   string                `json:"-" validate:"hexcolor_or_empty"`
}

// Scene returns the declarative strip scene of a card.
func (h *StripHandler) Scene(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	scene, err := h.stripUC.Scene(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scene)
}

// Image returns the rasterized strip of a card.
func (h *StripHandler) Image(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.stripUC.Render(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")

	return c.Blob(http.StatusOK, mimePNG, png)
}

// Preview builds a scene from a design that is not saved yet.
func (h *StripHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidation.ErrorCode(), "Invalid preview input")
	}
	req.Background = req.Branding.Colors.Background

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidation.ErrorCode(), err.Error())
	}

	scene, err := h.stripUC.Preview(c.Request().Context(), &usecase.PreviewInput{
		BusinessName: req.BusinessName,
		Branding:     req.Branding,
		Rules:        entity.RulesConfig{TargetStamps: req.TargetStamps, RewardName: req.RewardName},
		Progress:     req.Progress,
		Width:        req.Width,
		Height:       req.Height,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scene)
}

// Hosted serves a strip previously uploaded for a wallet provider.
func (h *StripHandler) Hosted(c echo.Context) error {
	data, err := h.stripUC.Hosted(c.Request().Context(), c.Param("name"))
	if errors.Is(err, service.ErrStripNotFound) {
		return response.NotFound(c, "STRIP_NOT_FOUND", "Strip not found")
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, mimePNG, data)
}
