package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"go.uber.org/zap"
)

type UI struct {
	prompt *Prompt
	cfg    *Config
	logger *zap.Logger
	// screen is false when termbox is not initialized.
	screen bool
	// errTimeout is how long an error stays on screen.
	errTimeout time.Duration

	mu        sync.Mutex
	results   []Result
	watcher   *Watcher
	blinkt    *Blinkt
	err       error
	cancelErr func()
}

func newUI(cfg *Config, logger *zap.Logger) *UI {
	return &UI{prompt: &Prompt{}, cfg: cfg, logger: logger, errTimeout: 5 * time.Second}
}

func NewUI(cfg *Config, logger *zap.Logger) (*UI, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	ui := newUI(cfg, logger)
	ui.screen = true
	return ui, nil
}

// showErr displays error message to user.
func (ui *UI) showErr(err error) {
	ui.logger.Debug("command failed", zap.Error(err))
	ui.mu.Lock()
	if ui.cancelErr != nil {
		ui.cancelErr()
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-time.After(ui.errTimeout):
			ui.clearErr()
			cancel()
			ui.Redraw()
		case <-ctx.Done():
		}
	}()
	ui.cancelErr = cancel
	ui.err = err
	ui.mu.Unlock()
	ui.Redraw()
}

// clearErr hides error message.
func (ui *UI) clearErr() {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	ui.err = nil
}

func (ui *UI) Err() error {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.err
}

func (ui *UI) print(x, y int, text string, fg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}

func (ui *UI) Redraw() {
	if !ui.screen {
		return
	}
	ui.mu.Lock()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	_, h := termbox.Size()
	first := firstVisible(len(ui.results), h-2)
	for i, res := range ui.results[first:] {
		fg := termbox.ColorDefault
		if res.Prime {
			fg = termbox.ColorGreen
		}
		ui.print(0, i, fmt.Sprintf("%d. %s => %s", first+i+1, res.Input, res.Output), fg)
	}
	if ui.err != nil {
		ui.print(0, h-2, ui.err.Error(), termbox.ColorRed)
	}
	ui.mu.Unlock()
	ui.prompt.Redraw()
	termbox.Flush()
}

// firstVisible is the index of the oldest result that fits in rows lines.
func firstVisible(results, rows int) int {
	if rows < 0 {
		rows = 0
	}
	if results > rows {
		return results - rows
	}
	return 0
}

func (ui *UI) Close() {
	ui.stopWatch()
	ui.mu.Lock()
	if ui.blinkt != nil {
		ui.blinkt.Stop()
		ui.blinkt = nil
	}
	ui.mu.Unlock()
	if ui.screen {
		termbox.Close()
	}
}

func (ui *UI) Results() []Result {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	res := make([]Result, len(ui.results))
	copy(res, ui.results)
	return res
}

// addResult stores res, drops the oldest results beyond MaxResults and
// shows res on the blinkt.
func (ui *UI) addResult(res Result) {
	res.ID = uuid.New().String()
	ui.mu.Lock()
	defer ui.mu.Unlock()
	ui.results = append(ui.results, res)
	if extra := len(ui.results) - ui.cfg.MaxResults; extra > 0 {
		ui.results = append(ui.results[:0], ui.results[extra:]...)
	}
	if ui.blinkt != nil {
		ui.blinkt.Stop()
	}
	ui.blinkt = NewBlinkt(ui.cfg.Blinkt.Brightness, res.Value, res.Prime)
	ui.logger.Debug("result", zap.String("id", res.ID), zap.String("input", res.Input))
}

func (ui *UI) getIdx(token string) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return -1, fmt.Errorf("invalid index: %w", err)
	}
	if idx < 1 || idx > len(ui.results) {
		return -1, errors.New("index out of range")
	}
	return idx, nil
}

func (ui *UI) drop(tokens []string) error {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if len(ui.results) == 0 {
		return errors.New("nothing to drop")
	}
	idx := 1
	if len(tokens) > 1 {
		var err error
		idx, err = ui.getIdx(tokens[1])
		if err != nil {
			return err
		}
	}
	ui.results = append(ui.results[:idx-1], ui.results[idx:]...)
	return nil
}

// watch [CRON [COUNT [START]]]
func (ui *UI) startWatch(tokens []string) error {
	spec, count, start := ui.cfg.Watch.Schedule, ui.cfg.Watch.Count, 1
	if len(tokens) > 1 {
		spec = tokens[1]
	}
	if len(tokens) > 2 {
		nums, err := parseInts(tokens[2:], 1)
		if err != nil {
			return err
		}
		count = nums[0]
		if len(nums) > 1 {
			start = nums[1]
		}
	}
	w, err := NewWatch(spec, time.Now(), count, start)
	if err != nil {
		return err
	}
	ui.stopWatch()
	wr := NewWatcher(w, ui.logger)
	ui.mu.Lock()
	ui.watcher = wr
	ui.mu.Unlock()
	go func() {
		for p := range wr.PrimesCh {
			ui.addResult(Result{Input: "watch " + w.Cron, Output: strconv.Itoa(p), Value: p, Prime: true})
			ui.Redraw()
		}
	}()
	ui.logger.Info("watch started", zap.String("watch", w.ID), zap.String("cron", spec))
	return nil
}

func (ui *UI) stopWatch() {
	ui.mu.Lock()
	wr := ui.watcher
	ui.watcher = nil
	ui.mu.Unlock()
	if wr != nil {
		wr.Stop()
	}
}

func (ui *UI) handle(tokens []string) error {
	if len(tokens) == 0 {
		return errNotEnoughArgs
	}
	switch tokens[0] {
	case "watch":
		return ui.startWatch(tokens)
	case "stop":
		ui.stopWatch()
	case "drop":
		return ui.drop(tokens)
	case "clear":
		ui.mu.Lock()
		ui.results = nil
		ui.mu.Unlock()
	default:
		res, err := evaluate(tokens)
		if err != nil {
			return err
		}
		ui.addResult(res)
	}
	return nil
}

func (ui *UI) HandleCommand(line Line) {
	ui.clearErr()
	err := line.Err
	if err == nil {
		err = ui.handle(line.Tokens)
	}
	if err != nil {
		ui.showErr(err)
		return
	}
	ui.Redraw()
}

func (ui *UI) Run() {
	ui.Redraw()
	eventsCh := make(chan termbox.Event)
	go func() {
		for {
			switch ev := termbox.PollEvent(); ev.Type {
			case termbox.EventKey:
				switch ev.Key {
				case termbox.KeyCtrlZ:
					syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
				case termbox.KeyCtrlC, termbox.KeyEsc:
					close(eventsCh)
					return
				default:
					eventsCh <- ev
				}
			case termbox.EventError:
				panic(ev.Err)
			case termbox.EventResize:
				ui.Redraw()
			}
		}
	}()
	for line := range ui.prompt.Run(eventsCh) {
		ui.HandleCommand(line)
	}
}
