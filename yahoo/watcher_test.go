package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/itbasis/go-clock"
)

// draftServer serves a draftresults payload whose pick list grows as the
// test advances it, and can be switched into rate-limit mode.
type draftServer struct {
	mu          sync.Mutex
	picks       int
	rateLimited bool
	srv         *httptest.Server
}

func newDraftServer(t *testing.T) *draftServer {
	t.Helper()
	ds := &draftServer{}
	ds.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds.mu.Lock()
		defer ds.mu.Unlock()
		if ds.rateLimited {
			w.WriteHeader(999)
			return
		}

		var entries []string
		for i := 1; i <= ds.picks; i++ {
			entries = append(entries, fmt.Sprintf(
				`"%d": {"draft_result": {"pick": %d, "round": %d, "team_key": "t.%d", "player_key": "p.%d"}}`,
				i-1, i, (i+1)/2, (i-1)%2+1, i))
		}
		entries = append(entries, fmt.Sprintf(`"count": %d`, ds.picks))

		fmt.Fprintf(w, `{"fantasy_content": {"league": [[{"league_key": "nfl.l.431"}], {"draft_results": {%s}}]}}`,
			strings.Join(entries, ","))
	}))
	t.Cleanup(ds.srv.Close)
	return ds
}

func (ds *draftServer) setPicks(n int) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.picks = n
}

func (ds *draftServer) setRateLimited(v bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.rateLimited = v
}

func TestWatcherPollReportsNewPicksOnce(t *testing.T) {
	ds := newDraftServer(t)
	c := NewForTest(ds.srv.URL, &http.Client{})
	w := NewDraftWatcher(c, clock.New(), "nfl.l.431", time.Second, 4)

	ds.setPicks(2)
	fresh, done, err := w.Poll(context.Background())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(fresh) != 2 || done {
		t.Fatalf("got %d fresh, done=%v", len(fresh), done)
	}

	// Same picks again: nothing new.
	fresh, done, err = w.Poll(context.Background())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(fresh) != 0 || done {
		t.Fatalf("got %d fresh, done=%v", len(fresh), done)
	}

	ds.setPicks(4)
	fresh, done, err = w.Poll(context.Background())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(fresh) != 2 || !done {
		t.Fatalf("got %d fresh, done=%v", len(fresh), done)
	}
	if fresh[0].Pick != 3 || fresh[1].Pick != 4 {
		t.Errorf("fresh picks: got %+v", fresh)
	}
}

func TestWatcherBackoffOnRateLimit(t *testing.T) {
	ds := newDraftServer(t)
	c := NewForTest(ds.srv.URL, &http.Client{})
	interval := 10 * time.Second
	w := NewDraftWatcher(c, clock.New(), "nfl.l.431", interval, 4)

	ds.setRateLimited(true)
	for i, want := range []time.Duration{20 * time.Second, 40 * time.Second, 80 * time.Second, MaxPollBackoff, MaxPollBackoff} {
		_, _, err := w.Poll(context.Background())
		if !IsRateLimited(err) {
			t.Fatalf("poll %d: expected rate limit, got %v", i, err)
		}
		if got := w.NextDelay(); got != want {
			t.Errorf("poll %d: delay %s, want %s", i, got, want)
		}
	}

	// A successful poll resets the delay.
	ds.setRateLimited(false)
	ds.setPicks(1)
	if _, _, err := w.Poll(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if got := w.NextDelay(); got != interval {
		t.Errorf("delay after success: got %s", got)
	}
}

func TestWatcherWatchUntilComplete(t *testing.T) {
	ds := newDraftServer(t)
	ds.setPicks(3)
	c := NewForTest(ds.srv.URL, &http.Client{})
	w := NewDraftWatcher(c, clock.New(), "nfl.l.431", time.Millisecond, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := make(chan error, 1)
	collected := make(chan int, 1)
	pickCh := make(chan *model.DraftPick, 8)
	go func() {
		n := 0
		for range pickCh {
			n++
			if n == 3 {
				// Final pick appears while the watcher is running.
				ds.setPicks(4)
			}
		}
		collected <- n
	}()
	go func() {
		results <- w.Watch(ctx, pickCh)
	}()

	if err := <-results; err != nil {
		t.Fatalf("watch: %v", err)
	}
	if n := <-collected; n != 4 {
		t.Errorf("collected %d picks", n)
	}
}
