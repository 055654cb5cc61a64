package discord

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitMessageTimeout(t *testing.T) {
	d := NewDispatcher()
	_, err := d.AwaitMessage(context.Background(), "chan", "user", 20*time.Millisecond)
	require.ErrorIs(t, err, ErrPromptTimeout)
}

func TestAwaitMessageIgnoresOtherAuthors(t *testing.T) {
	d := NewDispatcher()
	done := make(chan *MessageEvent, 1)
	go func() {
		ev, err := d.AwaitMessage(context.Background(), "chan", "alice", time.Second)
		require.NoError(t, err)
		done <- ev
	}()

	// wait for the waiter to register
	require.Eventually(t, func() bool {
		return d.DispatchMessage(&MessageEvent{ChannelID: "chan", AuthorID: "alice", Content: "mine"})
	}, time.Second, 5*time.Millisecond)

	assert.False(t, d.DispatchMessage(&MessageEvent{ChannelID: "chan", AuthorID: "bob", Content: "not mine"}))
	assert.Equal(t, "mine", (<-done).Content)
}

func TestDispatchButtonSingleDelivery(t *testing.T) {
	d := NewDispatcher()
	go func() {
		d.AwaitButton(context.Background(), func(ev *ButtonEvent) bool {
			return ev.CustomID == "claim_order"
		}, time.Second)
	}()

	press := &ButtonEvent{CustomID: "claim_order", UserID: "f1"}
	require.Eventually(t, func() bool {
		return d.DispatchButton(press)
	}, time.Second, 5*time.Millisecond)

	// the waiter is gone, a second press falls through
	assert.False(t, d.DispatchButton(&ButtonEvent{CustomID: "claim_order", UserID: "f2"}))
}

// Concurrent presses on the same control must reach exactly one waiter.
func TestDispatchButtonClaimRace(t *testing.T) {
	d := NewDispatcher()
	got := make(chan *ButtonEvent, 1)
	go func() {
		ev, err := d.AwaitButton(context.Background(), func(ev *ButtonEvent) bool {
			return ev.CustomID == "claim_order"
		}, time.Second)
		require.NoError(t, err)
		got <- ev
	}()

	require.Eventually(t, func() bool {
		d.mu.Lock()
		n := len(d.btnWaiters)
		d.mu.Unlock()
		return n == 1
	}, time.Second, time.Millisecond)

	var wg sync.WaitGroup
	var mu sync.Mutex
	consumed := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if d.DispatchButton(&ButtonEvent{CustomID: "claim_order", UserID: "user"}) {
				mu.Lock()
				consumed++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, consumed)
	<-got
}

func TestAwaitButtonContextCancel(t *testing.T) {
	d := NewDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := d.AwaitButton(ctx, func(*ButtonEvent) bool { return true }, time.Minute)
		errCh <- err
	}()
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
}
