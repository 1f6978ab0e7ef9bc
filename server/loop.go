package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	TickPeriod       = 50 * time.Millisecond
	PassTimeout      = time.Second
	PlayerHitPenalty = 100
	KillReward       = 150
)

// EventSink receives one event per dispatched consequence. Publish is called
// from several goroutines and must not block.
type EventSink interface {
	Publish(ev CollisionEvent)
}

// PassReport summarizes one collision pass
type PassReport struct {
	At         time.Time
	Bodies     int
	Buckets    int
	Collisions int // colliding pairs
	Applied    int
	Failed     int
	Duration   time.Duration
}

// CollisionLoop periodically checks every entity against its bucket mates
// and applies the results through the stores.
type CollisionLoop struct {
	stores        Stores
	period        time.Duration
	passTimeout   time.Duration
	dispatchLimit int
	now           func() time.Time
	sink          EventSink
	metrics       *LoopMetrics

	// mu guards the lifecycle; Stop holds it until the run goroutine exits.
	// run never takes it.
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// LoopOption configures a CollisionLoop
type LoopOption func(*CollisionLoop)

// WithPeriod sets the time between passes
func WithPeriod(d time.Duration) LoopOption {
	return func(l *CollisionLoop) {
		if d > 0 {
			l.period = d
		}
	}
}

// WithPassTimeout bounds the repository work of a single pass
func WithPassTimeout(d time.Duration) LoopOption {
	return func(l *CollisionLoop) {
		if d > 0 {
			l.passTimeout = d
		}
	}
}

// WithDispatchLimit caps concurrent consequence dispatches; 0 means no cap
func WithDispatchLimit(n int) LoopOption {
	return func(l *CollisionLoop) { l.dispatchLimit = n }
}

// WithClock replaces the time source used to resolve positions
func WithClock(now func() time.Time) LoopOption {
	return func(l *CollisionLoop) { l.now = now }
}

// WithEventSink publishes every dispatched consequence to sink
func WithEventSink(sink EventSink) LoopOption {
	return func(l *CollisionLoop) { l.sink = sink }
}

// WithMetrics records pass statistics into m
func WithMetrics(m *LoopMetrics) LoopOption {
	return func(l *CollisionLoop) { l.metrics = m }
}

// NewCollisionLoop creates a stopped CollisionLoop
func NewCollisionLoop(stores Stores, opts ...LoopOption) *CollisionLoop {
	l := &CollisionLoop{
		stores:      stores,
		period:      TickPeriod,
		passTimeout: PassTimeout,
		now:         time.Now,
		metrics:     &LoopMetrics{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Metrics returns the loop's counters
func (l *CollisionLoop) Metrics() *LoopMetrics {
	return l.metrics
}

// Start begins ticking. Calling Start on a running loop does nothing.
func (l *CollisionLoop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return
	}
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.stop, l.done)
	Log.Infow("collision loop started", "period", l.period)
}

// Stop prevents any further pass from starting and waits for a pass already
// in flight to return. Stopping a stopped loop does nothing. A Start racing
// with Stop waits until the old run goroutine has exited.
func (l *CollisionLoop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop == nil {
		return
	}
	close(l.stop)
	<-l.done
	l.stop, l.done = nil, nil
	Log.Info("collision loop stopped")
}

// Running reports whether the loop is ticking
func (l *CollisionLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stop != nil
}

// run drives passes from a single goroutine, so passes never overlap: ticks
// that elapse while a pass is still running are dropped by the ticker.
func (l *CollisionLoop) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			l.tick()
		}
	}
}

func (l *CollisionLoop) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), l.passTimeout)
	defer cancel()

	report, err := l.RunPass(ctx)
	if err != nil {
		l.metrics.FetchFailures.Add(1)
		Log.Warnw("collision pass skipped", "err", err)
		return
	}
	l.metrics.Record(report)
	if report.Duration > l.period {
		l.metrics.Overruns.Add(1)
		Log.Debugw("collision pass overran its period", "duration", report.Duration, "period", l.period)
	}
}

type snapshot struct {
	players []Player
	enemies []Enemy
	bullets []Bullet
	config  *GameConfig
}

func (l *CollisionLoop) fetch(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := l.stores.Players.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch players: %w", err)
		}
		snap.players = players
		return nil
	})
	g.Go(func() error {
		enemies, err := l.stores.Enemies.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch enemies: %w", err)
		}
		snap.enemies = enemies
		return nil
	})
	g.Go(func() error {
		bullets, err := l.stores.Bullets.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch bullets: %w", err)
		}
		snap.bullets = bullets
		return nil
	})
	g.Go(func() error {
		cfg, err := l.stores.Config.Find(ctx)
		if err != nil {
			return fmt.Errorf("fetch game config: %w", err)
		}
		snap.config = cfg
		return nil
	})
	err := g.Wait()
	return snap, err
}

// RunPass runs one collision pass. It fails only when the snapshot cannot be
// read; failed consequences are logged, counted and left for the next pass.
func (l *CollisionLoop) RunPass(ctx context.Context) (PassReport, error) {
	start := time.Now()

	snap, err := l.fetch(ctx)
	if err != nil {
		return PassReport{}, err
	}

	// Sampled once so every body is resolved at the same instant.
	now := l.now()
	bodies := Bodies(snap.players, snap.enemies, snap.bullets, now)
	buckets := Partition(bodies, DisplayNumberOf(snap.config))
	hits := DetectCollisions(buckets)
	applied, failed := l.dispatch(ctx, now, Consequences(hits))

	return PassReport{
		At:         now,
		Bodies:     len(bodies),
		Buckets:    len(buckets),
		Collisions: len(hits) / 2,
		Applied:    applied,
		Failed:     failed,
		Duration:   time.Since(start),
	}, nil
}

// dispatch applies all consequences concurrently and waits for them to settle
func (l *CollisionLoop) dispatch(ctx context.Context, now time.Time, targets []Body) (int, int) {
	var g errgroup.Group
	if l.dispatchLimit > 0 {
		g.SetLimit(l.dispatchLimit)
	}
	var applied, failed atomic.Int64
	for _, b := range targets {
		g.Go(func() error {
			ev, err := l.apply(ctx, b)
			ev.At = now.UnixMilli()
			if err != nil {
				failed.Add(1)
				ev.Err = err.Error()
				Log.Warnw("collision consequence failed", "kind", b.Kind, "id", b.ID, "err", err)
			} else {
				applied.Add(1)
			}
			if l.sink != nil {
				l.sink.Publish(ev)
			}
			return nil
		})
	}
	_ = g.Wait()
	return int(applied.Load()), int(failed.Load())
}

func (l *CollisionLoop) apply(ctx context.Context, b Body) (CollisionEvent, error) {
	ev := CollisionEvent{Kind: b.Kind.String(), ID: b.ID}
	switch b.Kind {
	case KindPlayer:
		ev.ScoreDelta = -PlayerHitPenalty
		if err := l.stores.Scores.AddScore(ctx, b.ID, -PlayerHitPenalty); err != nil {
			return ev, fmt.Errorf("penalize player %s: %w", b.ID, err)
		}
	case KindBullet:
		ev.ShooterID = b.ShooterID
		if err := l.stores.Bullets.Delete(ctx, b.ID); err != nil {
			// No reward for a bullet we could not remove, or it would pay again.
			return ev, fmt.Errorf("delete bullet %s: %w", b.ID, err)
		}
		ev.Removed = true
		ev.ScoreDelta = KillReward
		if err := l.stores.Scores.AddScore(ctx, b.ShooterID, KillReward); err != nil {
			return ev, fmt.Errorf("reward shooter %s: %w", b.ShooterID, err)
		}
		Log.Debugw("kill", "bullet", b.ID, "shooter", b.ShooterID)
	case KindEnemy:
		if err := l.stores.Enemies.Delete(ctx, b.ID); err != nil {
			return ev, fmt.Errorf("delete enemy %s: %w", b.ID, err)
		}
		ev.Removed = true
	default:
		return ev, fmt.Errorf("unknown body kind %d", b.Kind)
	}
	return ev, nil
}
