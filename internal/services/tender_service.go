package services

import (
	"context"
	"fmt"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/repository"
)

// TenderService отвечает за создание и просмотр тендеров.
type TenderService struct {
	Repo   repository.TenderRepository
	Events *repository.EventLog
}

// NewTenderService создаёт новый экземпляр TenderService.
func NewTenderService(repo repository.TenderRepository, events *repository.EventLog) *TenderService {
	return &TenderService{Repo: repo, Events: events}
}

// CreateTender создает новый тендер со статусом Open. Пустой id, пустое
// описание или занятый id приводят к отклонению.
func (s *TenderService) CreateTender(ctx context.Context, id, description string, issuer models.Identity, now time.Time) error {
	if id == "" || description == "" {
		return models.ErrRejected
	}

	tender := models.Tender{
		ID:          id,
		Description: description,
		Issuer:      issuer,
		Status:      models.OpenTender,
		CreatedAt:   now,
	}
	if err := s.Repo.CreateTender(ctx, tender); err != nil {
		return err
	}

	s.Events.Append(now, fmt.Sprintf("tender %s created by %s", id, issuer))
	return nil
}

// FetchTenders возвращает список всех тендеров.
func (s *TenderService) FetchTenders(ctx context.Context) ([]models.Tender, error) {
	return s.Repo.GetTenders(ctx)
}
