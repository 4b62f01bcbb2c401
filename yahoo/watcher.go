package yahoo

import (
	"context"
	"log"
	"time"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/itbasis/go-clock"
)

// MaxPollBackoff caps the delay growth when Yahoo throttles the watcher.
const MaxPollBackoff = 2 * time.Minute

// DraftWatcher polls a league's draft results and reports picks as they
// appear. One watcher instance tracks one draft; it is not safe for
// concurrent use.
type DraftWatcher struct {
	client        *Client
	clock         clock.Clock
	leagueKey     string
	interval      time.Duration
	expectedPicks int

	seen  map[int]bool
	delay time.Duration
}

// NewDraftWatcher builds a watcher polling every interval. expectedPicks is
// the full draft size (roster size times team count); with 0 the watcher
// cannot detect completion and runs until its context is cancelled.
func NewDraftWatcher(client *Client, clk clock.Clock, leagueKey string, interval time.Duration, expectedPicks int) *DraftWatcher {
	return &DraftWatcher{
		client:        client,
		clock:         clk,
		leagueKey:     leagueKey,
		interval:      interval,
		expectedPicks: expectedPicks,
		seen:          map[int]bool{},
		delay:         interval,
	}
}

// Poll fetches the draft once and returns the picks not seen before, in
// pick order, plus whether the draft is complete. Rate-limit errors double
// the next poll delay up to MaxPollBackoff; any successful poll resets it.
func (w *DraftWatcher) Poll(ctx context.Context) ([]*model.DraftPick, bool, error) {
	draft, err := w.client.fetchDraftResults(ctx, w.leagueKey)
	if err != nil {
		if IsRateLimited(err) {
			w.delay *= 2
			if w.delay > MaxPollBackoff {
				w.delay = MaxPollBackoff
			}
			log.Printf("rate limited polling draft %s, backing off to %s", w.leagueKey, w.delay)
		}
		return nil, false, err
	}
	w.delay = w.interval

	var fresh []*model.DraftPick
	for _, pick := range draft.Picks {
		if !w.seen[pick.Pick] {
			w.seen[pick.Pick] = true
			fresh = append(fresh, pick)
		}
	}

	done := w.expectedPicks > 0 && len(w.seen) >= w.expectedPicks
	return fresh, done, nil
}

// NextDelay is the wait before the next poll, grown by backoff when
// throttled.
func (w *DraftWatcher) NextDelay() time.Duration {
	return w.delay
}

// Watch polls until the draft completes or ctx is cancelled, sending each
// new pick on picks. The channel is closed on return.
func (w *DraftWatcher) Watch(ctx context.Context, picks chan<- *model.DraftPick) error {
	defer close(picks)

	for {
		fresh, done, err := w.Poll(ctx)
		if err != nil && !IsRateLimited(err) {
			return err
		}
		for _, p := range fresh {
			select {
			case picks <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if done {
			return nil
		}

		select {
		case <-w.clock.After(w.NextDelay()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
