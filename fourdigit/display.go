// Package fourdigit drives a 4 digit, 8 segment LED display directly from
// output lines by multiplexing: one digit is lit at a time, and cycling
// through them fast enough makes all four look lit at once.
//
// Digit lines are active low (low selects the digit), segment lines are
// active high (high lights the segment).
package fourdigit

import (
	"log"
	"time"

	"dscheirer.com/fourdigit/glyph"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

const (
	NumDigits   = 4
	NumSegments = glyph.NumSegments
)

// DefaultSettleDelay is how long each digit stays lit. Too short and a
// digit bleeds into its neighbor, too long and the display flickers.
const DefaultSettleDelay = 5 * time.Millisecond

var (
	ErrBadPosition = errors.New("digit position out of range")
	ErrBadDigit    = errors.New("digit value out of range")
	ErrNegative    = errors.New("negative values are not supported")
)

// Line is a digital output
type Line interface {
	Output()
	High()
	Low()
}

// Display owns the digit and segment lines for one display
type Display struct {
	digits   [NumDigits]Line
	segments [NumSegments]Line
	clock    clockwork.Clock
	settle   time.Duration
	dump     bool
	writes   int
}

// Option configures a Display
type Option func(*Display)

// WithClock replaces the real clock, mostly for tests
func WithClock(c clockwork.Clock) Option {
	return func(d *Display) {
		d.clock = c
	}
}

// WithSettleDelay sets how long each digit is held after it's written
func WithSettleDelay(settle time.Duration) Option {
	return func(d *Display) {
		d.settle = settle
	}
}

// WithDebugDump logs every digit written as ASCII art
func WithDebugDump(on bool) Option {
	return func(d *Display) {
		d.dump = on
	}
}

// New takes the digit lines left to right and the segment lines in
// glyph.Seg* order. Every line becomes an output and every digit starts
// deselected.
func New(digits [NumDigits]Line, segments [NumSegments]Line, opts ...Option) *Display {
	d := &Display{
		digits:   digits,
		segments: segments,
		clock:    clockwork.NewRealClock(),
		settle:   DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, l := range d.digits {
		l.Output()
		l.High()
	}
	for _, l := range d.segments {
		l.Output()
	}
	return d
}

// SettleDelay returns the per-digit hold time
func (d *Display) SettleDelay() time.Duration {
	return d.settle
}

func (d *Display) selectDigit(position int) {
	for i, l := range d.digits {
		if i == position {
			l.Low()
		} else {
			l.High()
		}
	}
}

func (d *Display) writePattern(pat glyph.Pattern, position int) {
	d.selectDigit(position)
	for i, l := range d.segments {
		if pat[i] {
			l.High()
		} else {
			l.Low()
		}
	}
	if d.dump {
		d.dumpPattern(pat, position)
	}
	d.writes++
	d.clock.Sleep(d.settle)
}

func (d *Display) dumpPattern(pat glyph.Pattern, position int) {
	line := "\n"
	for _, row := range glyph.Render(pat) {
		line += row + "\n"
	}
	log.Printf("digit %d:%s", position, line)
}

func validPosition(position int) bool {
	return position >= 0 && position < NumDigits
}

// DisplayCharacter lights c at position and holds it for the settle delay.
// Characters without a pattern show as an underscore.
func (d *Display) DisplayCharacter(c rune, position int) error {
	if !validPosition(position) {
		return errors.Wrapf(ErrBadPosition, "position %d", position)
	}
	d.writePattern(glyph.Lookup(c), position)
	return nil
}

// DisplayDigit shows a single decimal digit, 0-9
func (d *Display) DisplayDigit(value int, position int) error {
	if value < 0 || value > 9 {
		return errors.Wrapf(ErrBadDigit, "digit %d", value)
	}
	return d.DisplayCharacter(rune('0'+value), position)
}

// DisplayInteger shows value right justified. Only the lowest four digits
// fit, anything above that is dropped, and zeros below a dropped digit are
// still drawn (70007 shows as 0007). Positions left of the number are not
// written.
func (d *Display) DisplayInteger(value int) error {
	if value < 0 {
		return errors.Wrapf(ErrNegative, "value %d", value)
	}
	if value == 0 {
		return d.DisplayDigit(0, NumDigits-1)
	}
	for pos := NumDigits - 1; pos >= 0 && value != 0; pos, value = pos-1, value/10 {
		if err := d.DisplayDigit(value%10, pos); err != nil {
			return err
		}
	}
	return nil
}

// DisplayText shows the first four characters of text, left justified.
// Shorter text leaves the remaining positions alone.
func (d *Display) DisplayText(text string) error {
	pos := 0
	for _, r := range text {
		if pos == NumDigits {
			break
		}
		if err := d.DisplayCharacter(r, pos); err != nil {
			return err
		}
		pos++
	}
	return nil
}

// Clear deselects every digit and turns every segment off
func (d *Display) Clear() {
	for _, l := range d.digits {
		l.High()
	}
	for _, l := range d.segments {
		l.Low()
	}
}

// Close blanks the display. The lines belong to whoever opened them.
func (d *Display) Close() error {
	d.Clear()
	return nil
}
