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

	"github.com/go-chi/chi/v5"
)

// BidHandler - структура для обработки HTTP-запросов к предложениям.
type BidHandler struct {
	Service *services.BidService
	Logger  *log.Logger
	Timeout time.Duration
	Clock   clock.Clock
}

// NewBidHandler создает новый экземпляр BidHandler.
func NewBidHandler(service *services.BidService, logger *log.Logger, timeout time.Duration, clk clock.Clock) *BidHandler {
	return &BidHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		Clock:   clk,
	}
}

// CreateBid обрабатывает запросы для подачи предложения.
func (h *BidHandler) CreateBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidder := utils.CallerIdentity(r)
	if bidder == "" {
		utils.SendRejection(w)
		return
	}

	var req models.BidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid JSON format")
		return
	}

	err := h.Service.SubmitBid(ctx, req.TenderId, req.Amount, bidder, h.Clock.Now())
	if errors.Is(err, models.ErrRejected) {
		utils.SendRejection(w)
		return
	}
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to submit bid")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.OperationResponse{Success: true})
}

// GetTenderBid обрабатывает запросы для получения списка предложений по тендеру.
func (h *BidHandler) GetTenderBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenderId := chi.URLParam(r, "tenderId")

	bids, err := h.Service.FetchTenderBids(ctx, tenderId)
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch bids")
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}

	utils.SendJSON(w, http.StatusOK, bids)
}
