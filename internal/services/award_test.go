package services_test

import (
	"testing"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"
	"github.com/BOSTONE069/procurement-service/internal/services"

	"github.com/stretchr/testify/require"
)

func TestLowestBidEmpty(t *testing.T) {
	_, ok := services.LowestBid(nil)
	require.False(t, ok)

	_, ok = services.LowestBid([]models.Bid{})
	require.False(t, ok)
}

func TestLowestBidSingle(t *testing.T) {
	bids := []models.Bid{
		{TenderId: "t1", Bidder: "alice", Amount: 700},
	}
	winner, ok := services.LowestBid(bids)
	require.True(t, ok)
	require.Equal(t, models.Identity("alice"), winner.Bidder)
	require.Equal(t, int64(700), winner.Amount)
}

func TestLowestBidPicksMinimum(t *testing.T) {
	now := time.Now()
	bids := []models.Bid{
		{TenderId: "t1", Bidder: "alice", Amount: 500, SubmittedAt: now},
		{TenderId: "t1", Bidder: "bob", Amount: 200, SubmittedAt: now},
		{TenderId: "t1", Bidder: "carol", Amount: 350, SubmittedAt: now},
	}
	winner, ok := services.LowestBid(bids)
	require.True(t, ok)
	require.Equal(t, models.Identity("bob"), winner.Bidder)
	for _, bid := range bids {
		require.LessOrEqual(t, winner.Amount, bid.Amount)
	}
}

func TestLowestBidTieKeepsFirst(t *testing.T) {
	bids := []models.Bid{
		{TenderId: "t1", Bidder: "alice", Amount: 500},
		{TenderId: "t1", Bidder: "bob", Amount: 300},
		{TenderId: "t1", Bidder: "carol", Amount: 300},
	}
	winner, ok := services.LowestBid(bids)
	require.True(t, ok)
	// Равная сумма не сменяет текущего победителя.
	require.Equal(t, models.Identity("bob"), winner.Bidder)
}
