package discord

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrPromptTimeout signals that no matching event arrived within the wait
var ErrPromptTimeout = errors.New("prompt timed out")

// Dispatcher is the prompt/collector primitive: a flow registers a waiter
// for the next matching message or button press, and exactly one matching
// event is delivered to exactly one waiter. Events nobody is waiting for
// fall through to the global routes.
type Dispatcher struct {
	mu 		   sync.Mutex
	msgWaiters map[*msgWaiter]struct{}
	btnWaiters map[*btnWaiter]struct{}
}

type msgWaiter struct {
	match func(*MessageEvent) bool
	ch 	  chan *MessageEvent
}

type btnWaiter struct {
	match func(*ButtonEvent) bool
	ch 	  chan *ButtonEvent
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		msgWaiters: make(map[*msgWaiter]struct{}),
		btnWaiters: make(map[*btnWaiter]struct{}),
	}
}

// AwaitMessage waits for the next message in channelID from authorID.
// Replies from anyone else are ignored.
func (d *Dispatcher) AwaitMessage(ctx context.Context, channelID, authorID string, timeout time.Duration) (*MessageEvent, error) {
	w := &msgWaiter{
		match: func(ev *MessageEvent) bool {
			return ev.ChannelID == channelID && ev.AuthorID == authorID
		},
		ch: make(chan *MessageEvent, 1),
	}
	d.mu.Lock()
	d.msgWaiters[w] = struct{}{}
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.msgWaiters, w)
		d.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-w.ch:
		return ev, nil
	case <-timer.C:
		return nil, ErrPromptTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AwaitButton waits for the next button press satisfying match
func (d *Dispatcher) AwaitButton(ctx context.Context, match func(*ButtonEvent) bool, timeout time.Duration) (*ButtonEvent, error) {
	w := &btnWaiter{
		match: match,
		ch: make(chan *ButtonEvent, 1),
	}
	d.mu.Lock()
	d.btnWaiters[w] = struct{}{}
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.btnWaiters, w)
		d.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-w.ch:
		return ev, nil
	case <-timer.C:
		return nil, ErrPromptTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// DispatchMessage hands the event to the first matching waiter. The waiter
// is removed before delivery, so a second identical event cannot reach it.
func (d *Dispatcher) DispatchMessage(ev *MessageEvent) bool {
	d.mu.Lock()
	for w := range d.msgWaiters {
		if w.match(ev) {
			delete(d.msgWaiters, w)
			d.mu.Unlock()
			w.ch <- ev
			return true
		}
	}
	d.mu.Unlock()
	return false
}

// DispatchButton hands the press to the first matching waiter. When nobody
// matches (e.g. a second claim press after the first one won) the press is
// reported unconsumed and falls through to global routing.
func (d *Dispatcher) DispatchButton(ev *ButtonEvent) bool {
	d.mu.Lock()
	for w := range d.btnWaiters {
		if w.match(ev) {
			delete(d.btnWaiters, w)
			d.mu.Unlock()
			w.ch <- ev
			return true
		}
	}
	d.mu.Unlock()
	return false
}
