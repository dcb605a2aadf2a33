package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/repository"
)

// AwardService отвечает за присуждение тендеров и просмотр результатов.
type AwardService struct {
	TenderRepo repository.TenderRepository
	BidRepo    repository.BidRepository
	Events     *repository.EventLog

	// mu делает переход проверка-затем-запись атомарным: двойное
	// присуждение одного тендера невозможно даже при параллельных вызовах.
	mu sync.Mutex
}

// NewAwardService создаёт новый экземпляр AwardService.
func NewAwardService(tenderRepo repository.TenderRepository, bidRepo repository.BidRepository, events *repository.EventLog) *AwardService {
	return &AwardService{TenderRepo: tenderRepo, BidRepo: bidRepo, Events: events}
}

// AwardTender присуждает тендер предложению с минимальной суммой и возвращает
// идентичность победителя. Отклоняется, если тендер не найден, вызывающий не
// является заказчиком, тендер не в статусе Open или по нему нет предложений.
// Повторный вызов по уже присуждённому тендеру отклоняется проверкой статуса.
func (s *AwardService) AwardTender(ctx context.Context, tenderId string, caller models.Identity, now time.Time) (models.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tender, err := s.TenderRepo.GetTender(ctx, tenderId)
	if err != nil {
		return "", err
	}
	if tender == nil {
		return "", models.ErrRejected
	}
	if tender.Issuer != caller || tender.Status != models.OpenTender {
		return "", models.ErrRejected
	}

	bids, err := s.BidRepo.GetTenderBid(ctx, tenderId)
	if err != nil {
		return "", err
	}
	winner, ok := LowestBid(bids)
	if !ok {
		return "", models.ErrRejected
	}

	if err := s.TenderRepo.UpdateTenderStatus(ctx, tenderId, models.AwardedTender); err != nil {
		return "", err
	}

	s.Events.Append(now, fmt.Sprintf("tender %s awarded to %s for %d", tenderId, winner.Bidder, winner.Amount))
	return winner.Bidder, nil
}

// FetchAwardedTenders возвращает все присуждённые тендеры, заново вычисляя
// выигравшее предложение по текущему содержимому хранилища. Присуждённый
// тендер без предложений получает пустое выигравшее предложение вместо ошибки.
func (s *AwardService) FetchAwardedTenders(ctx context.Context) ([]models.Award, error) {
	tenders, err := s.TenderRepo.GetTenders(ctx)
	if err != nil {
		return nil, err
	}

	var awards []models.Award
	for _, tender := range tenders {
		if tender.Status != models.AwardedTender {
			continue
		}
		bids, err := s.BidRepo.GetTenderBid(ctx, tender.ID)
		if err != nil {
			return nil, err
		}
		winner, ok := LowestBid(bids)
		if !ok {
			winner = models.Bid{TenderId: tender.ID}
		}
		awards = append(awards, models.Award{
			ID:         tender.ID,
			Tender:     tender,
			WinningBid: winner,
		})
	}
	return awards, nil
}
