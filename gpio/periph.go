package gpio

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	pgpio "periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

type periphBank struct{}

type periphLine struct {
	pin pgpio.PinOut
}

func openPeriph() (*periphBank, error) {
	// load the gpio drivers
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}
	return &periphBank{}, nil
}

func (pb *periphBank) Line(id int) (Line, error) {
	if err := checkPin(id); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("GPIO%d", id)
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.Errorf("no pin named %s", name)
	}
	return &periphLine{pin: pin}, nil
}

func (pb *periphBank) Close() error {
	return nil
}

// periph sets the direction on the first Out call. Low is safe here, a
// digit is only selected while its segments are high.
func (pl *periphLine) Output() {
	pl.out(pgpio.Low)
}

func (pl *periphLine) High() {
	pl.out(pgpio.High)
}

func (pl *periphLine) Low() {
	pl.out(pgpio.Low)
}

// there's nobody to report a failed write to, so just log it
func (pl *periphLine) out(l pgpio.Level) {
	if err := pl.pin.Out(l); err != nil {
		log.Printf("%s: %s", pl.pin.Name(), err.Error())
	}
}
