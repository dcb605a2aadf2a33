package services

import (
	"context"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/repository"
)

// BidService отвечает за подачу и просмотр предложений.
type BidService struct {
	TenderRepo repository.TenderRepository
	BidRepo    repository.BidRepository
}

// NewBidService создает новый экземпляр BidService.
func NewBidService(tenderRepo repository.TenderRepository, bidRepo repository.BidRepository) *BidService {
	return &BidService{TenderRepo: tenderRepo, BidRepo: bidRepo}
}

// SubmitBid подаёт предложение по открытому тендеру. Несуществующий тендер,
// статус отличный от Open и отрицательная сумма приводят к отклонению.
// Статус тендера проверяется только в момент подачи.
func (s *BidService) SubmitBid(ctx context.Context, tenderId string, amount int64, bidder models.Identity, now time.Time) error {
	if tenderId == "" || amount < 0 {
		return models.ErrRejected
	}

	tender, err := s.TenderRepo.GetTender(ctx, tenderId)
	if err != nil {
		return err
	}
	if tender == nil || tender.Status != models.OpenTender {
		return models.ErrRejected
	}

	bid := models.Bid{
		TenderId:    tenderId,
		Bidder:      bidder,
		Amount:      amount,
		SubmittedAt: now,
	}
	return s.BidRepo.CreateBid(ctx, bid)
}

// FetchTenderBids возвращает список предложений по тендеру.
func (s *BidService) FetchTenderBids(ctx context.Context, tenderId string) ([]models.Bid, error) {
	return s.BidRepo.GetTenderBid(ctx, tenderId)
}
