// Package gpio hands out digital output lines from a pin bank: memory-mapped
// BCM pins via go-rpio, periph.io's pin registry, or a simulated bank that
// only records what would have been written.
package gpio

import (
	"strings"

	"github.com/pkg/errors"
)

// Line is one digital output
type Line interface {
	Output()
	High()
	Low()
}

// Bank owns a set of lines, addressed by BCM number
type Bank interface {
	Line(id int) (Line, error)
	Close() error
}

// Kind picks the bank implementation
type Kind string

const (
	KindRPIO   Kind = "rpio"
	KindPeriph Kind = "periph"
	KindSim    Kind = "sim"
)

// highest BCM pin on the 40 pin header
const maxPin = 27

// ParseKind accepts the config spelling of a bank kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRPIO, KindPeriph, KindSim:
		return k, nil
	}
	return "", errors.Errorf("unknown gpio driver %q", s)
}

// Open a bank of the given kind
func Open(kind Kind) (Bank, error) {
	switch kind {
	case KindRPIO:
		return openRPIO()
	case KindPeriph:
		return openPeriph()
	case KindSim:
		return NewSim(), nil
	}
	return nil, errors.Errorf("unknown gpio driver %q", string(kind))
}

func checkPin(id int) error {
	if id < 0 || id > maxPin {
		return errors.Errorf("Bad pin number: %d", id)
	}
	return nil
}
