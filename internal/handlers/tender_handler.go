package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/clock"
	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/services"
	"github.com/BOSTONE069/procurement-service/internal/utils"
)

// TenderHandler - структура для обработки HTTP-запросов к тендерам.
type TenderHandler struct {
	Service *services.TenderService
	Logger  *log.Logger
	Timeout time.Duration
	Clock   clock.Clock
}

// NewTenderHandler создаёт новый экземпляр TenderHandler.
func NewTenderHandler(service *services.TenderService, logger *log.Logger, timeout time.Duration, clk clock.Clock) *TenderHandler {
	return &TenderHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		Clock:   clk,
	}
}

// CreateTender обрабатывает запросы для создания тендера.
func (h *TenderHandler) CreateTender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	issuer := utils.CallerIdentity(r)
	if issuer == "" {
		utils.SendRejection(w)
		return
	}

	var req models.TenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid JSON format")
		return
	}

	err := h.Service.CreateTender(ctx, req.ID, req.Description, issuer, h.Clock.Now())
	if errors.Is(err, models.ErrRejected) {
		utils.SendRejection(w)
		return
	}
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create tender")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.OperationResponse{Success: true})
}

// GetTenders обрабатывает запросы для получения списка тендеров.
func (h *TenderHandler) GetTenders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenders, err := h.Service.FetchTenders(ctx)
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch tenders")
		return
	}
	if tenders == nil {
		tenders = []models.Tender{}
	}

	utils.SendJSON(w, http.StatusOK, tenders)
}
