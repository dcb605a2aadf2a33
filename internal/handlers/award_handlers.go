package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/clock"
	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/services"
	"github.com/BOSTONE069/procurement-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

// AwardHandler - структура для обработки HTTP-запросов присуждения.
type AwardHandler struct {
	Service *services.AwardService
	Logger  *log.Logger
	Timeout time.Duration
	Clock   clock.Clock
}

// NewAwardHandler создаёт новый экземпляр AwardHandler.
func NewAwardHandler(service *services.AwardService, logger *log.Logger, timeout time.Duration, clk clock.Clock) *AwardHandler {
	return &AwardHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		Clock:   clk,
	}
}

// AwardTender обрабатывает запросы для присуждения тендера.
func (h *AwardHandler) AwardTender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	caller := utils.CallerIdentity(r)
	if caller == "" {
		utils.SendRejection(w)
		return
	}

	tenderId := chi.URLParam(r, "tenderId")

	winner, err := h.Service.AwardTender(ctx, tenderId, caller, h.Clock.Now())
	if errors.Is(err, models.ErrRejected) {
		utils.SendRejection(w)
		return
	}
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to award tender")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.OperationResponse{Success: true, Winner: winner})
}

// GetAwardedTenders обрабатывает запросы для получения присуждённых тендеров.
func (h *AwardHandler) GetAwardedTenders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	awards, err := h.Service.FetchAwardedTenders(ctx)
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch awarded tenders")
		return
	}
	if awards == nil {
		awards = []models.Award{}
	}

	utils.SendJSON(w, http.StatusOK, awards)
}
