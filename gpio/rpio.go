package gpio

import (
	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"
)

type rpioBank struct{}

func openRPIO() (*rpioBank, error) {
	// maps /dev/gpiomem, needs to run on a pi
	if err := rpio.Open(); err != nil {
		return nil, errors.Wrap(err, "rpio open")
	}
	return &rpioBank{}, nil
}

// rpio.Pin already has Output/High/Low
func (rb *rpioBank) Line(id int) (Line, error) {
	if err := checkPin(id); err != nil {
		return nil, err
	}
	return rpio.Pin(id), nil
}

func (rb *rpioBank) Close() error {
	return errors.Wrap(rpio.Close(), "rpio close")
}
