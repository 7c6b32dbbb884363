// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampcard/config"
	"stampcard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WalletHandler  *handler.WalletHandler
	StripHandler   *handler.StripHandler
	MetricsHandler *handler.MetricsHandler `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	walletHandler  *handler.WalletHandler
	stripHandler   *handler.StripHandler
	metricsHandler *handler.MetricsHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		walletHandler:  params.WalletHandler,
		stripHandler:   params.StripHandler,
		metricsHandler: params.MetricsHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, r.metricsHandler.Scrape)
	}

	walletGroup := e.Group("/wallet")
	{
		walletGroup.POST("/triggers", r.walletHandler.PublishTrigger)
		walletGroup.POST("/google/:cardId", r.walletHandler.SyncGoogle)
		walletGroup.GET("/google/:cardId/qr.png", r.walletHandler.GoogleSaveQR)
		walletGroup.GET("/apple/:cardId", r.walletHandler.ApplePass)
	}

	stripsGroup := e.Group("/strips")
	{
		stripsGroup.POST("/preview", r.stripHandler.Preview)
		stripsGroup.GET("/hosted/:name", r.stripHandler.Hosted)
		stripsGroup.GET("/:cardId/scene", r.stripHandler.Scene)
		stripsGroup.GET("/:cardId/image.png", r.stripHandler.Image)
	}
}
