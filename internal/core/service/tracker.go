package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

// TrackerState is the lifecycle state of one tracking session.
type TrackerState string

const (
	TrackerIdle       TrackerState = "idle"
	TrackerDebouncing TrackerState = "debouncing"
	TrackerFetching   TrackerState = "fetching"
	TrackerReady      TrackerState = "ready"
	TrackerError      TrackerState = "error"
)

// ErrorReason distinguishes the two user-visible failure states.
type ErrorReason string

const (
	ReasonNotFound    ErrorReason = "not_found"
	ReasonFetchFailed ErrorReason = "fetch_failed"
)

// TrackerSnapshot is one state-change notification emitted by a Tracker.
// Result is non-nil only in the ready state.
type TrackerSnapshot struct {
	State          TrackerState
	Reason         ErrorReason
	TrackingNumber string
	Result         *ports.ProgressResult
}

// TrackerConfig tunes one tracking session.
type TrackerConfig struct {
	// Debounce is the quiet period an identifier must remain unchanged before
	// a fetch is committed. Defaults to 500ms.
	Debounce time.Duration
	// Routed selects routed estimation (cooldown-gated) over pure haversine.
	Routed bool
}

const defaultDebounce = 500 * time.Millisecond

// Tracker coordinates one tracking session: it debounces identifier input,
// fetches and recomputes progress on commit, re-fetches on change-feed signals
// and manual refresh, and discards responses that arrive for a superseded
// identifier. All orchestration runs in a single goroutine; computation itself
// lives in ProgressService.
type Tracker struct {
	progress ports.ProgressService
	feed     ports.ContractFeed
	cfg      TrackerConfig
	log      zerolog.Logger

	input   chan string
	refresh chan struct{}
	out     chan TrackerSnapshot

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

type fetchResult struct {
	gen uint64
	res *ports.ProgressResult
	err error
}

// NewTracker creates a session. feed may be nil to disable change-feed driven
// refresh.
func NewTracker(progressSvc ports.ProgressService, feed ports.ContractFeed, cfg TrackerConfig, log zerolog.Logger) *Tracker {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	return &Tracker{
		progress: progressSvc,
		feed:     feed,
		cfg:      cfg,
		log:      log,
		input:    make(chan string),
		refresh:  make(chan struct{}),
		out:      make(chan TrackerSnapshot, 32),
		done:     make(chan struct{}),
	}
}

// Start launches the session goroutine. The session stops when ctx is
// cancelled or Close is called.
func (t *Tracker) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)
	go t.run(ctx)
}

// SetTrackingNumber feeds an identifier keystroke into the session. Every call
// resets the debounce window; an empty value returns the session to idle.
func (t *Tracker) SetTrackingNumber(id string) {
	select {
	case t.input <- id:
	case <-t.done:
	}
}

// Refresh requests an immediate re-fetch, bypassing the debounce window. The
// routed-estimation cooldown still applies.
func (t *Tracker) Refresh() {
	select {
	case t.refresh <- struct{}{}:
	case <-t.done:
	}
}

// Snapshots returns the stream of state-change notifications. Slow consumers
// lose intermediate snapshots, never the session.
func (t *Tracker) Snapshots() <-chan TrackerSnapshot {
	return t.out
}

// Close tears the session down: debounce timer, in-flight fetch, and feed
// subscription are all released. Safe to call more than once.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		if t.cancel != nil {
			t.cancel()
			<-t.done
		} else {
			close(t.done)
		}
	})
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.done)

	var (
		current  string
		gen      uint64
		fetching bool
	)

	debounce := time.NewTimer(t.cfg.Debounce)
	stopTimer(debounce)
	var debounceC <-chan time.Time
	defer debounce.Stop()

	results := make(chan fetchResult, 1)

	var changes <-chan struct{}
	var unsub func()
	defer func() {
		if unsub != nil {
			unsub()
		}
	}()

	emit := func(snap TrackerSnapshot) {
		select {
		case t.out <- snap:
		default:
			t.log.Debug().Str("state", string(snap.State)).Msg("snapshot dropped, consumer lagging")
		}
	}

	startFetch := func() {
		fetching = true
		emit(TrackerSnapshot{State: TrackerFetching, TrackingNumber: current})
		g, id := gen, current
		go func() {
			res, err := t.progress.Snapshot(ctx, id, t.cfg.Routed)
			select {
			case results <- fetchResult{gen: g, res: res, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	subscribe := func() {
		if t.feed == nil || unsub != nil {
			return
		}
		ch, stop, err := t.feed.Subscribe(ctx, current)
		if err != nil {
			t.log.Warn().Err(err).Str("tracking", current).Msg("change feed unavailable, realtime refresh disabled")
			return
		}
		changes, unsub = ch, stop
	}

	unsubscribe := func() {
		if unsub != nil {
			unsub()
			unsub = nil
			changes = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case id := <-t.input:
			unsubscribe()
			current = id
			gen++
			stopTimer(debounce)
			debounceC = nil
			if id == "" {
				emit(TrackerSnapshot{State: TrackerIdle})
				continue
			}
			debounce.Reset(t.cfg.Debounce)
			debounceC = debounce.C
			emit(TrackerSnapshot{State: TrackerDebouncing, TrackingNumber: id})

		case <-debounceC:
			debounceC = nil
			subscribe()
			startFetch()

		case <-t.refresh:
			if current == "" || fetching {
				continue
			}
			stopTimer(debounce)
			debounceC = nil
			subscribe()
			startFetch()

		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if fetching {
				continue
			}
			startFetch()

		case r := <-results:
			fetching = false
			if r.gen != gen {
				// Stale response for a superseded identifier; a slow fetch must
				// never overwrite a newer session's state.
				continue
			}
			if r.err != nil {
				reason := ReasonFetchFailed
				if errors.Is(r.err, domain.ErrContractNotFound) {
					reason = ReasonNotFound
				}
				emit(TrackerSnapshot{State: TrackerError, Reason: reason, TrackingNumber: current})
				continue
			}
			emit(TrackerSnapshot{State: TrackerReady, TrackingNumber: current, Result: r.res})
		}
	}
}

// stopTimer stops t and drains its channel so a later Reset arms it cleanly.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
