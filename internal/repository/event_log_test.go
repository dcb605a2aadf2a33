package repository_test

import (
	"testing"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestEventLogAppendOrder(t *testing.T) {
	log := repository.NewEventLog()
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	log.Append(now, "first")
	log.Append(now.Add(time.Second), "second")

	events := log.Events()
	require.Len(t, events, 2)
	require.Equal(t, "first", events[0].Message)
	require.Equal(t, "second", events[1].Message)
	require.Equal(t, now, events[0].Timestamp)
	require.NotEmpty(t, events[0].ID)
	require.NotEqual(t, events[0].ID, events[1].ID)
}

func TestEventLogEventsReturnsCopy(t *testing.T) {
	log := repository.NewEventLog()
	log.Append(time.Now(), "only")

	events := log.Events()
	events[0].Message = "mutated"

	require.Equal(t, "only", log.Events()[0].Message)
}
