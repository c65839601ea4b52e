package main

import (
	"sync"

	gsq "github.com/kballard/go-shellquote"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

const (
	arrowLeft  = '←'
	arrowRight = '→'
	// cells kept visible on either side of the cursor while scrolling
	scrollMargin = 5
)

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

// Line is one submitted prompt input.
type Line struct {
	Tokens []string
	Err    error
}

// Prompt is a single line editor. cursor indexes runes, offset is the first
// visible cell. mu guards all three; the console redraws from other goroutines.
type Prompt struct {
	mu     sync.Mutex
	text   []rune
	cursor int
	offset int
}

func (p *Prompt) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.text)
}

func (p *Prompt) Insert(r rune) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = append(p.text, 0)
	copy(p.text[p.cursor+1:], p.text[p.cursor:])
	p.text[p.cursor] = r
	p.cursor++
}

func (p *Prompt) Backspace() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor == 0 {
		return
	}
	copy(p.text[p.cursor-1:], p.text[p.cursor:])
	p.text = p.text[:len(p.text)-1]
	p.cursor--
}

func (p *Prompt) Left() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Prompt) Right() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor < len(p.text) {
		p.cursor++
	}
}

func (p *Prompt) Home() {
	p.mu.Lock()
	p.cursor = 0
	p.mu.Unlock()
}

func (p *Prompt) End() {
	p.mu.Lock()
	p.cursor = len(p.text)
	p.mu.Unlock()
}

func (p *Prompt) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Prompt) reset() {
	p.text = p.text[:0]
	p.cursor = 0
	p.offset = 0
}

// cursorCell is the cell column of the cursor, ignoring scrolling.
func (p *Prompt) cursorCell() int {
	return runewidth.StringWidth(string(p.text[:p.cursor]))
}

// CursorX is the on-screen column of the cursor. Call after Redraw.
func (p *Prompt) CursorX() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursorX()
}

func (p *Prompt) cursorX() int {
	return p.cursorCell() - p.offset
}

// scroll keeps the cursor inside a window of the given width.
func (p *Prompt) scroll(width int) {
	margin := scrollMargin
	if m := (width - 1) / 2; margin > m {
		margin = m
	}
	c := p.cursorCell()
	if c-p.offset > width-1-margin && c > width-1 {
		p.offset = c - (width - 1 - margin)
	}
	if p.offset > 0 && c-p.offset < margin {
		p.offset = c - margin
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// Submit tokenizes the text and clears the prompt.
func (p *Prompt) Submit() Line {
	p.mu.Lock()
	defer p.mu.Unlock()
	tokens, err := gsq.Split(string(p.text))
	p.reset()
	return Line{Tokens: tokens, Err: err}
}

func (p *Prompt) draw(x, y, w int) {
	p.scroll(w)

	const coldef = termbox.ColorDefault
	const colred = termbox.ColorRed

	fill(x, y, w, 1, termbox.Cell{Ch: ' '})
	lx := 0
	for _, r := range p.text {
		rx := lx - p.offset
		if rx >= w {
			termbox.SetCell(x+w-1, y, arrowRight, colred, coldef)
			break
		}
		if rx >= 0 {
			termbox.SetCell(x+rx, y, r, coldef, coldef)
		}
		lx += runewidth.RuneWidth(r)
	}
	if p.offset != 0 {
		termbox.SetCell(x, y, arrowLeft, colred, coldef)
	}
}

func (p *Prompt) Redraw() {
	w, h := termbox.Size()
	termbox.SetCell(0, h-1, '>', termbox.ColorDefault, termbox.ColorDefault)
	p.mu.Lock()
	p.draw(1, h-1, w-1)
	x := 1 + p.cursorX()
	p.mu.Unlock()
	termbox.SetCursor(x, h-1)
}

// Run edits the prompt from events and emits every non-empty submitted line.
func (p *Prompt) Run(events <-chan termbox.Event) <-chan Line {
	ch := make(chan Line)
	go func() {
		for ev := range events {
			switch ev.Type {
			case termbox.EventKey:
				switch ev.Key {
				case termbox.KeyArrowLeft, termbox.KeyCtrlB:
					p.Left()
				case termbox.KeyArrowRight, termbox.KeyCtrlF:
					p.Right()
				case termbox.KeyBackspace, termbox.KeyBackspace2:
					p.Backspace()
				case termbox.KeyHome, termbox.KeyCtrlA:
					p.Home()
				case termbox.KeyEnd, termbox.KeyCtrlE:
					p.End()
				case termbox.KeySpace:
					p.Insert(' ')
				case termbox.KeyEnter:
					if line := p.Submit(); line.Err != nil || len(line.Tokens) > 0 {
						ch <- line
					}
				default:
					if ev.Ch != 0 {
						p.Insert(ev.Ch)
					}
				}
			case termbox.EventError:
				panic(ev.Err)
			}
			p.Redraw()
			termbox.Flush()
		}
		close(ch)
	}()
	return ch
}
