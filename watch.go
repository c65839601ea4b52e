package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mlowicki/termprime/intseq"
	"github.com/mlowicki/termprime/numtheory"
)

var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func parseSchedule(spec string) (cron.Schedule, error) {
	sched, err := scheduleParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}
	return sched, nil
}

// Watch produces the next prime after Last on every tick of its schedule.
type Watch struct {
	ID     string
	Cron   string
	After  time.Time
	Count  int // ticks left, -1 means unlimited
	Last   int
	Primes *intseq.Sequence
	sched  cron.Schedule
}

func NewWatch(spec string, after time.Time, count, start int) (*Watch, error) {
	if count < -1 {
		return nil, fmt.Errorf("invalid count %d", count)
	}
	if start >= numtheory.MaxPrime {
		return nil, errNoNextPrime
	}
	sched, err := parseSchedule(spec)
	if err != nil {
		return nil, err
	}
	return &Watch{
		ID:     uuid.New().String(),
		Cron:   spec,
		After:  after,
		Count:  count,
		Last:   start,
		Primes: intseq.New(0),
		sched:  sched,
	}, nil
}

// Next returns the time of the next tick or zero time when the watch is done.
func (w *Watch) Next() time.Time {
	if w.Count == 0 {
		return time.Time{}
	}
	return w.sched.Next(w.After)
}

// Check emits the next prime if a tick is due at now.
func (w *Watch) Check(now time.Time) (int, bool) {
	if w.Count == 0 || w.Next().After(now) {
		return 0, false
	}
	if w.Last >= numtheory.MaxPrime {
		w.Count = 0
		return 0, false
	}
	w.After = now
	if w.Count != -1 {
		w.Count--
	}
	w.Last = numtheory.NextPrime(w.Last)
	w.Primes = intseq.Append(w.Primes, w.Last)
	return w.Last, true
}

// A Watcher drives a Watch from a timer. PrimesCh is closed once the watch is
// done or Stop is called.
type Watcher struct {
	PrimesCh chan int
	watch    *Watch
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func NewWatcher(w *Watch, logger *zap.Logger) *Watcher {
	wr := &Watcher{
		PrimesCh: make(chan int),
		watch:    w,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   logger.With(zap.String("watch", w.ID)),
	}
	go wr.run()
	return wr
}

func (wr *Watcher) run() {
	defer close(wr.doneCh)
	defer close(wr.PrimesCh)

	next := wr.watch.Next()
	if next.IsZero() {
		return
	}
	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()
	for {
		select {
		case <-wr.stopCh:
			wr.logger.Debug("watch stopped")
			return
		case now := <-timer.C:
			if p, ok := wr.watch.Check(now); ok {
				wr.logger.Debug("watch tick", zap.Int("prime", p))
				select {
				case wr.PrimesCh <- p:
				case <-wr.stopCh:
					return
				}
			}
		}
		next = wr.watch.Next()
		if next.IsZero() {
			wr.logger.Debug("watch finished", zap.Int("primes", wr.watch.Primes.Len()))
			return
		}
		timer.Reset(time.Until(next))
	}
}

// Stop ends the watcher and waits for its goroutine to exit.
func (wr *Watcher) Stop() {
	wr.stopOnce.Do(func() { close(wr.stopCh) })
	<-wr.doneCh
}
