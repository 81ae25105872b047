package fourdigit

import (
	"time"

	"dscheirer.com/fourdigit/glyph"
)

// Hold keeps calling render until dur has passed. Only one digit is ever
// lit, so this loop is what makes a multi digit render look steady. render
// always runs at least once.
func (d *Display) Hold(dur time.Duration, render func() error) error {
	start := d.clock.Now()
	now := start
	for {
		before := now
		writes := d.writes
		if err := render(); err != nil {
			return err
		}
		now = d.clock.Now()
		elapsed := now.Sub(start)
		if elapsed >= dur {
			return nil
		}
		// nothing lit, or a clock that didn't move: repeating the pass
		// would only spin, so wait out the rest
		if d.writes == writes || !now.After(before) {
			d.clock.Sleep(dur - elapsed)
			return nil
		}
	}
}

func (d *Display) showWindow(window []glyph.Pattern) {
	for pos, pat := range window {
		d.writePattern(pat, pos)
	}
}

// DisplayScrollingText moves text across the display from the right, one
// character every characterDelay, until the last character has reached
// the leftmost digit. The text starts and ends on blank digits.
// characterDelay <= 0 shows the first four characters once instead.
func (d *Display) DisplayScrollingText(text string, characterDelay time.Duration) error {
	if characterDelay <= 0 {
		return d.DisplayText(text)
	}
	frames := scrollFrames(text)
	for _, window := range frames {
		w := window
		err := d.Hold(characterDelay, func() error {
			d.showWindow(w)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// scrollFrames pads text with NumDigits-1 blanks on each side and returns
// every NumDigits wide window, len(text)+NumDigits-1 of them
func scrollFrames(text string) [][]glyph.Pattern {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	pad := NumDigits - 1
	strip := make([]glyph.Pattern, 0, len(runes)+2*pad)
	for i := 0; i < pad; i++ {
		strip = append(strip, glyph.Blank)
	}
	for _, r := range runes {
		strip = append(strip, glyph.Lookup(r))
	}
	for i := 0; i < pad; i++ {
		strip = append(strip, glyph.Blank)
	}

	frames := make([][]glyph.Pattern, 0, len(strip)-NumDigits+1)
	for start := 0; start+NumDigits <= len(strip); start++ {
		frames = append(frames, strip[start:start+NumDigits])
	}
	return frames
}
