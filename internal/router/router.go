package router

import (
	"net/http"

	"github.com/BOSTONE069/procurement-service/internal/handlers"
	"github.com/BOSTONE069/procurement-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// InitRoutes собирает маршрутизатор сервиса.
func InitRoutes(
	tenderHandler *handlers.TenderHandler,
	bidHandler *handlers.BidHandler,
	awardHandler *handlers.AwardHandler,
	limiter *middleware.RateLimiter,
	metrics *middleware.Metrics,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Wrap)
	r.Use(limiter.Wrap)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlers.PingHandler)

		r.Post("/tenders/new", tenderHandler.CreateTender)
		r.Get("/tenders", tenderHandler.GetTenders)
		r.Get("/tenders/awarded", awardHandler.GetAwardedTenders)
		r.Put("/tenders/{tenderId}/award", awardHandler.AwardTender)

		r.Post("/bids/new", bidHandler.CreateBid)
		r.Get("/bids/{tenderId}/list", bidHandler.GetTenderBid)
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}
