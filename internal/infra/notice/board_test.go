package notice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard() *Board {
	return NewBoard(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBoard_NotifyAndDrain(t *testing.T) {
	board := newTestBoard()
	ctx := context.Background()

	board.Notify(ctx, entity.Notice{Level: entity.NoticeSuccess, Title: "Added to cart"})
	board.Notify(ctx, entity.Notice{Level: entity.NoticeError, Title: "Could not remove item"})

	assert.Equal(t, 2, board.Pending())

	notices := board.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "Added to cart", notices[0].Title)
	assert.Equal(t, entity.NoticeError, notices[1].Level)
	assert.NotEmpty(t, notices[0].ID)
	assert.False(t, notices[0].CreatedAt.IsZero())

	assert.Empty(t, board.Drain())
	assert.Zero(t, board.Pending())
}

func TestBoard_DropsOldestBeyondCapacity(t *testing.T) {
	board := newTestBoard()
	ctx := context.Background()

	for i := range DefaultCapacity + 5 {
		board.Notify(ctx, entity.Notice{Title: fmt.Sprintf("n%d", i)})
	}

	notices := board.Drain()
	require.Len(t, notices, DefaultCapacity)
	assert.Equal(t, "n5", notices[0].Title)
	assert.Equal(t, fmt.Sprintf("n%d", DefaultCapacity+4), notices[len(notices)-1].Title)
}
