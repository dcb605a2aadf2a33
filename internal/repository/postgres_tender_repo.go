package repository

import (
	"context"
	"errors"

	"github.com/BOSTONE069/procurement-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTenderRepository - реализация TenderRepository для базы данных.
// Семантика полностью совпадает с реализацией в памяти.
type PostgresTenderRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresTenderRepository создаёт новый экземпляр PostgresTenderRepository.
func NewPostgresTenderRepository(db *pgxpool.Pool) *PostgresTenderRepository {
	return &PostgresTenderRepository{DB: db}
}

// CreateTender сохраняет новый тендер. Повторное использование id отклоняется.
func (r *PostgresTenderRepository) CreateTender(ctx context.Context, tender models.Tender) error {
	tag, err := r.DB.Exec(ctx, `
		INSERT INTO tender (id, description, issuer, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		tender.ID,
		tender.Description,
		tender.Issuer,
		tender.Status,
		tender.CreatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrRejected
	}
	return nil
}

// GetTender возвращает тендер по id или nil, если тендер не найден.
func (r *PostgresTenderRepository) GetTender(ctx context.Context, tenderId string) (*models.Tender, error) {
	var tender models.Tender
	query := `SELECT id, description, issuer, status, created_at FROM tender WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, tenderId).Scan(
		&tender.ID,
		&tender.Description,
		&tender.Issuer,
		&tender.Status,
		&tender.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// UpdateTenderStatus меняет статус существующего тендера.
func (r *PostgresTenderRepository) UpdateTenderStatus(ctx context.Context, tenderId string, status models.TenderStatus) error {
	tag, err := r.DB.Exec(ctx, `UPDATE tender SET status = $1 WHERE id = $2`, status, tenderId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrRejected
	}
	return nil
}

// GetTenders возвращает список всех тендеров в порядке создания.
func (r *PostgresTenderRepository) GetTenders(ctx context.Context) ([]models.Tender, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, description, issuer, status, created_at FROM tender ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		var tender models.Tender
		if err := rows.Scan(
			&tender.ID,
			&tender.Description,
			&tender.Issuer,
			&tender.Status,
			&tender.CreatedAt); err != nil {
			return nil, err
		}
		tenders = append(tenders, tender)
	}
	return tenders, rows.Err()
}
