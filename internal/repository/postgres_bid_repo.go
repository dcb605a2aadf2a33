package repository

import (
	"context"
	"fmt"

	"github.com/BOSTONE069/procurement-service/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBidRepository - реализация BidRepository для базы данных.
// Уникальность записи обеспечивает колонка position (bigserial), составной
// ключ хранится рядом для сопоставления с реализацией в памяти.
type PostgresBidRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresBidRepository создает новый экземпляр PostgresBidRepository.
func NewPostgresBidRepository(db *pgxpool.Pool) *PostgresBidRepository {
	return &PostgresBidRepository{DB: db}
}

// CreateBid сохраняет новое предложение.
func (r *PostgresBidRepository) CreateBid(ctx context.Context, bid models.Bid) error {
	storageKey := fmt.Sprintf("%s-%s-%d", bid.TenderId, bid.Bidder, bid.SubmittedAt.UnixNano())
	_, err := r.DB.Exec(ctx, `
		INSERT INTO bid (storage_key, tender_id, bidder, amount, submitted_at)
		VALUES ($1, $2, $3, $4, $5)`,
		storageKey,
		bid.TenderId,
		bid.Bidder,
		bid.Amount,
		bid.SubmittedAt)
	return err
}

// GetTenderBid возвращает все предложения по тендеру в порядке подачи.
func (r *PostgresBidRepository) GetTenderBid(ctx context.Context, tenderId string) ([]models.Bid, error) {
	query := `SELECT tender_id, bidder, amount, submitted_at FROM bid WHERE tender_id = $1 ORDER BY position`
	rows, err := r.DB.Query(ctx, query, tenderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		var bid models.Bid
		if err := rows.Scan(
			&bid.TenderId,
			&bid.Bidder,
			&bid.Amount,
			&bid.SubmittedAt); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}
