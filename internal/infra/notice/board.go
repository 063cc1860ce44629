// Package notice holds the user notices raised by the use cases until the shell collects them.
package notice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the number of pending notices; the oldest are dropped first.
const DefaultCapacity = 50

// Board is an in-memory notice queue.
type Board struct {
	mu       sync.Mutex
	pending  []entity.Notice
	capacity int
	logger   *slog.Logger
	now      func() time.Time
}

var _ service.Notifier = (*Board)(nil)

// NewBoard is the constructor for Board.
func NewBoard(logger *slog.Logger) *Board {
	return &Board{
		capacity: DefaultCapacity,
		logger:   logger,
		now:      time.Now,
	}
}

// Notify queues a notice.
func (b *Board) Notify(ctx context.Context, n entity.Notice) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	metrics.RecordNotice(string(n.Level))
	deliverycontext.GetLoggerOrDefault(ctx, b.logger).Debug("Notice raised",
		slog.String("level", string(n.Level)),
		slog.String("title", n.Title),
	)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, n)
	if over := len(b.pending) - b.capacity; over > 0 {
		b.pending = append([]entity.Notice(nil), b.pending[over:]...)
	}
}

// Drain returns the pending notices oldest first and clears them.
func (b *Board) Drain() []entity.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	drained := b.pending
	b.pending = nil
	if drained == nil {
		drained = []entity.Notice{}
	}

	return drained
}

// Pending returns the number of notices not yet drained.
func (b *Board) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}
