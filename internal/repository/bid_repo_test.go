package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestInMemoryBidRepositorySameTimestampKept(t *testing.T) {
	repo := repository.NewInMemoryBidRepository()
	ctx := context.Background()
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	// Одинаковые тендер, участник и метка времени: счётчик в составном
	// ключе сохраняет оба предложения.
	require.NoError(t, repo.CreateBid(ctx, models.Bid{TenderId: "t1", Bidder: "alice", Amount: 100, SubmittedAt: now}))
	require.NoError(t, repo.CreateBid(ctx, models.Bid{TenderId: "t1", Bidder: "alice", Amount: 90, SubmittedAt: now}))

	bids, err := repo.GetTenderBid(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, int64(100), bids[0].Amount)
	require.Equal(t, int64(90), bids[1].Amount)
}

func TestInMemoryBidRepositoryFiltersByTender(t *testing.T) {
	repo := repository.NewInMemoryBidRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.CreateBid(ctx, models.Bid{TenderId: "t1", Bidder: "alice", Amount: 100, SubmittedAt: now}))
	require.NoError(t, repo.CreateBid(ctx, models.Bid{TenderId: "t2", Bidder: "bob", Amount: 200, SubmittedAt: now}))

	bids, err := repo.GetTenderBid(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, models.Identity("alice"), bids[0].Bidder)

	empty, err := repo.GetTenderBid(ctx, "t3")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestInMemoryBidRepositorySubmissionOrder(t *testing.T) {
	repo := repository.NewInMemoryBidRepository()
	ctx := context.Background()
	now := time.Now()

	bidders := []models.Identity{"carol", "alice", "bob"}
	for i, bidder := range bidders {
		require.NoError(t, repo.CreateBid(ctx, models.Bid{
			TenderId:    "t1",
			Bidder:      bidder,
			Amount:      int64(100 + i),
			SubmittedAt: now,
		}))
	}

	bids, err := repo.GetTenderBid(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, bids, 3)
	for i, bidder := range bidders {
		require.Equal(t, bidder, bids[i].Bidder)
	}
}
