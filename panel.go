package main

import (
	"time"

	"dscheirer.com/fourdigit/fourdigit"
	"dscheirer.com/fourdigit/glyph"
	"dscheirer.com/fourdigit/gpio"
	"github.com/jonboulle/clockwork"
	"github.com/nsf/termbox-go"
)

// a digit that hasn't been lit for this long has gone dark
const dPanelFade = 50 * time.Millisecond

// redraw at most this often
const dPanelDraw = 40 * time.Millisecond

// panel watches the simulated lines and works out what a person looking
// at the display would see
type panel struct {
	digits   map[int]int // line id -> position
	segments map[int]int // line id -> segment
	selected int
	segs     glyph.Pattern
	latched  [fourdigit.NumDigits]glyph.Pattern
	lastLit  [fourdigit.NumDigits]time.Time
	lastDraw time.Time
	clock    clockwork.Clock
	draw     func(lines []string)
}

func newPanel(s *settings, clock clockwork.Clock, draw func(lines []string)) *panel {
	p := &panel{
		digits:   make(map[int]int),
		segments: make(map[int]int),
		selected: -1,
		clock:    clock,
		draw:     draw,
	}
	for i, id := range s.GetInts(sDigitPins) {
		p.digits[id] = i
	}
	for i, id := range s.GetInts(sSegmentPins) {
		p.segments[id] = i
	}
	return p
}

// observe is hooked to the simulated bank
func (p *panel) observe(id int, high bool) {
	if seg, ok := p.segments[id]; ok {
		p.segs[seg] = high
		return
	}
	pos, ok := p.digits[id]
	if !ok {
		return
	}
	if !high {
		// whatever was selected before is done being lit
		if p.selected >= 0 {
			p.latch(p.selected)
		}
		p.selected = pos
		return
	}
	if p.selected == pos {
		p.latch(pos)
		p.selected = -1
	}
}

// latch records what the digit showed while it was lit
func (p *panel) latch(pos int) {
	now := p.clock.Now()
	p.latched[pos] = p.segs
	p.lastLit[pos] = now
	if now.Sub(p.lastDraw) >= dPanelDraw {
		p.lastDraw = now
		p.render()
	}
}

func (p *panel) visible() [fourdigit.NumDigits]glyph.Pattern {
	var ret [fourdigit.NumDigits]glyph.Pattern
	now := p.clock.Now()
	for i := range ret {
		if !p.lastLit[i].IsZero() && now.Sub(p.lastLit[i]) <= dPanelFade {
			ret[i] = p.latched[i]
		}
	}
	if p.selected >= 0 {
		ret[p.selected] = p.segs
	}
	return ret
}

func (p *panel) render() {
	v := p.visible()
	p.draw(glyph.Render(v[:]...))
}

func termboxDraw(lines []string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y, line := range lines {
		for x, ch := range line {
			termbox.SetCell(x+2, y+1, ch, termbox.ColorRed|termbox.AttrBold, termbox.ColorDefault)
		}
	}
	for x, ch := range "q to quit" {
		termbox.SetCell(x+2, len(lines)+2, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
	termbox.Flush()
}

// startPanel draws the simulated display in the terminal. Keys go to a
// goroutine that stops the runtime on q, Esc or ctrl-c.
func startPanel(rt runtimeConfig, sim *gpio.Sim) (func(), error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)

	p := newPanel(rt.settings, rt.clock, termboxDraw)
	sim.Observe(p.observe)

	go func() {
		for {
			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
					rt.stop()
					return
				}
			case termbox.EventInterrupt:
				return
			}
		}
	}()

	return func() {
		termbox.Interrupt()
		termbox.Close()
	}, nil
}
