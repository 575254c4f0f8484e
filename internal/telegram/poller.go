package telegram

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mkorobko/orderbot/internal/bot"
)

// Poller pumps long-poll updates into the router with a bounded worker
// pool. Events of different users are processed concurrently; the order
// store serializes its own mutations.
type Poller struct {
	client  *Client
	router  *bot.Router
	timeout time.Duration
	workers int
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller constructs the update pump.
func NewPoller(client *Client, router *bot.Router, timeout time.Duration, workers int, logger *slog.Logger) *Poller {
	if workers <= 0 {
		workers = 1
	}
	return &Poller{
		client:  client,
		router:  router,
		timeout: timeout,
		workers: workers,
		logger:  logger,
	}
}

// Start launches background polling.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(runCtx)
}

// Stop terminates polling and waits for in-flight handlers to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.client.StopUpdates()
	<-done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	// A lingering webhook registration blocks getUpdates.
	if err := p.client.DropWebhook(ctx); err != nil {
		p.logger.Warn("drop webhook failed", slog.String("error", err.Error()))
	}

	updates := p.client.Updates(int(p.timeout.Seconds()))
	jobs := make(chan bot.Event)

	g, workCtx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-workCtx.Done():
					return nil
				case ev, ok := <-jobs:
					if !ok {
						return nil
					}
					p.router.Dispatch(workCtx, ev)
				}
			}
		})
	}

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case update, ok := <-updates:
			if !ok {
				break loop
			}
			ev, ok := Normalize(update)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				break loop
			case jobs <- ev:
			}
		}
	}

	close(jobs)
	_ = g.Wait()
	p.logger.Info("update polling stopped")
}
