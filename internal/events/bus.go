package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/metrics"
)

// Sink is one destination of domain events.
type Sink interface {
	Name() string
	Publish(ctx context.Context, e domain.Event) error
}

// Bus publishes every event to all sinks. Failures are logged and counted,
// never returned.
type Bus struct {
	sinks   []Sink
	metrics *metrics.Metrics
}

func NewBus(m *metrics.Metrics, sinks ...Sink) *Bus {
	return &Bus{
		sinks:   sinks,
		metrics: m,
	}
}

func (b *Bus) Publish(ctx context.Context, e domain.Event) {
	for _, s := range b.sinks {
		err := s.Publish(ctx, e)
		b.metrics.RecordEvent(s.Name(), err == nil)
		if err != nil {
			zap.L().Warn("Failed to publish event",
				zap.String("sink", s.Name()), zap.String("type", e.Type), zap.Uint("entity_id", e.EntityID), zap.Error(err))
		}
	}
}
