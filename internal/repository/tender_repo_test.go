package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestInMemoryTenderRepository(t *testing.T) {
	repo := repository.NewInMemoryTenderRepository()
	ctx := context.Background()
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	tender := models.Tender{
		ID:          "t1",
		Description: "desc",
		Issuer:      "gov",
		Status:      models.OpenTender,
		CreatedAt:   now,
	}
	require.NoError(t, repo.CreateTender(ctx, tender))

	got, err := repo.GetTender(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, tender, *got)

	missing, err := repo.GetTender(ctx, "t2")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestInMemoryTenderRepositoryDuplicate(t *testing.T) {
	repo := repository.NewInMemoryTenderRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateTender(ctx, models.Tender{ID: "t1", Status: models.OpenTender}))
	err := repo.CreateTender(ctx, models.Tender{ID: "t1", Status: models.OpenTender})
	require.ErrorIs(t, err, models.ErrRejected)
}

func TestInMemoryTenderRepositoryUpdateStatus(t *testing.T) {
	repo := repository.NewInMemoryTenderRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateTender(ctx, models.Tender{ID: "t1", Status: models.OpenTender}))
	require.NoError(t, repo.UpdateTenderStatus(ctx, "t1", models.AwardedTender))

	got, err := repo.GetTender(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, models.AwardedTender, got.Status)

	err = repo.UpdateTenderStatus(ctx, "missing", models.AwardedTender)
	require.ErrorIs(t, err, models.ErrRejected)
}

func TestInMemoryTenderRepositoryGetReturnsCopy(t *testing.T) {
	repo := repository.NewInMemoryTenderRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateTender(ctx, models.Tender{ID: "t1", Status: models.OpenTender}))

	got, err := repo.GetTender(ctx, "t1")
	require.NoError(t, err)
	got.Status = models.AwardedTender // мутация копии не видна хранилищу

	fresh, err := repo.GetTender(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, models.OpenTender, fresh.Status)
}

func TestInMemoryTenderRepositoryList(t *testing.T) {
	repo := repository.NewInMemoryTenderRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateTender(ctx, models.Tender{ID: "t1", Status: models.OpenTender}))
	require.NoError(t, repo.CreateTender(ctx, models.Tender{ID: "t2", Status: models.OpenTender}))

	tenders, err := repo.GetTenders(ctx)
	require.NoError(t, err)
	require.Len(t, tenders, 2)
}
