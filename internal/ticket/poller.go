package ticket

import (
	"context"
	"log"
	"time"

	"storefront-core/internal/domain"
)

// FetchFunc fetches the current remote snapshot of a ticket conversation.
type FetchFunc func(ctx context.Context, ticketID string) (domain.Ticket, error)

// Poller refreshes a Thread from the remote source at a fixed interval while
// the ticket is in a non-terminal status. It stops itself when the status
// becomes terminal and must be stopped by the owner on teardown; both paths
// release the ticker. A response that lands after teardown is dropped, never
// applied.
type Poller struct {
	thread   *Thread
	fetch    FetchFunc
	interval time.Duration
	logger   *log.Logger
	onUpdate func()

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds a poller for the thread. onUpdate, if non-nil, runs after
// each poll that changed the message list.
func NewPoller(thread *Thread, fetch FetchFunc, interval time.Duration, logger *log.Logger, onUpdate func()) *Poller {
	return &Poller{
		thread:   thread,
		fetch:    fetch,
		interval: interval,
		logger:   logger,
		onUpdate: onUpdate,
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. Calling Start on a terminal thread
// returns immediately with the loop already finished.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go p.run(ctx)
}

// Stop tears the poller down and waits for the loop to exit.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	<-p.done
}

// Done is closed once the loop has exited, whether by Stop or by the ticket
// reaching a terminal status.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	if p.thread.Status().Terminal() {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remote, err := p.fetch(ctx, p.thread.TicketID())
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				p.logger.Printf("ticket %s: poll: %v", p.thread.TicketID(), err)
				continue
			}
			// the owner may have torn us down while the fetch was in
			// flight; a stale response must not touch the thread
			if ctx.Err() != nil {
				return
			}
			changed := p.thread.ApplyRemote(remote)
			if changed && p.onUpdate != nil {
				p.onUpdate()
			}
			if remote.Status.Terminal() {
				return
			}
		}
	}
}
