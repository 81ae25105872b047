// utility functions
package main

import (
	"sync"

	"dscheirer.com/fourdigit/fourdigit"
	"dscheirer.com/fourdigit/gpio"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

type runtimeConfig struct {
	settings *settings
	clock    clockwork.Clock
	display  *fourdigit.Display
	logger   flogger
	quit     chan struct{}
	once     *sync.Once
}

func initRuntime(s *settings, clock clockwork.Clock, display *fourdigit.Display) runtimeConfig {
	return runtimeConfig{
		settings: s,
		clock:    clock,
		display:  display,
		logger:   &ThreadLogger{name: "Display"},
		quit:     make(chan struct{}),
		once:     &sync.Once{},
	}
}

// stop can be called from any goroutine, any number of times
func (rt runtimeConfig) stop() {
	rt.once.Do(func() {
		close(rt.quit)
	})
}

func (rt runtimeConfig) stopped() bool {
	select {
	case <-rt.quit:
		return true
	default:
		return false
	}
}

// openDisplay takes the configured pins from the bank
func openDisplay(s *settings, bank gpio.Bank, clock clockwork.Clock) (*fourdigit.Display, error) {
	var digits [fourdigit.NumDigits]fourdigit.Line
	var segments [fourdigit.NumSegments]fourdigit.Line

	digitPins := s.GetInts(sDigitPins)
	segmentPins := s.GetInts(sSegmentPins)
	if len(digitPins) != len(digits) || len(segmentPins) != len(segments) {
		return nil, errors.New("wrong number of display pins")
	}

	for i, id := range digitPins {
		l, err := bank.Line(id)
		if err != nil {
			return nil, errors.Wrapf(err, "digit %d", i)
		}
		digits[i] = l
	}
	for i, id := range segmentPins {
		l, err := bank.Line(id)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d", i)
		}
		segments[i] = l
	}

	return fourdigit.New(digits, segments,
		fourdigit.WithClock(clock),
		fourdigit.WithSettleDelay(s.GetDuration(sSettleDelay)),
		fourdigit.WithDebugDump(s.GetBool(sDebug))), nil
}
