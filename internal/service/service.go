package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	ErrGoogleUnavailable     = errors.New("google service unavailable")
	ErrGoogleOperationFailed = errors.New("google operation failed")
	ErrEmailMissing          = errors.New("no email address")
)

// EventPublisher receives the change notifications of every service.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

const defaultBackgroundTimeout = 2 * time.Minute

// Background runs side effects that must outlive the request, such as the
// Google calls triggered by a save. Wait blocks until all of them returned.
type Background struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewBackground(timeout time.Duration) *Background {
	if timeout <= 0 {
		timeout = defaultBackgroundTimeout
	}

	return &Background{
		timeout: timeout,
	}
}

func (b *Background) Go(task string, fn func(ctx context.Context)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("Background task panicked", zap.String("task", task), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		fn(ctx)
	}()
}

func (b *Background) Wait() {
	b.wg.Wait()
}
