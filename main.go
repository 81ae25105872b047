package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dscheirer.com/fourdigit/gpio"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

var openBank = gpio.Open

// fourdigit -config={config file} [-mode=clock|count|text|scroll] [-text=...] [-term]

func main() {
	configFile := flag.String("config", "", "config file path")
	mode := flag.String("mode", "", "display mode: clock, count, text or scroll")
	text := flag.String("text", "", "text for the text and scroll modes")
	term := flag.Bool("term", false, "draw the simulated display in the terminal")
	flag.Parse()

	settings, err := loadSettings(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *mode != "" {
		settings.Set(sMode, *mode)
	}
	if *text != "" {
		settings.Set(sText, *text)
	}
	if *term {
		settings.Set(sTerminal, true)
		settings.Set(sDriver, string(gpio.KindSim))
	}
	if err := settings.validate(); err != nil {
		log.Fatal(err.Error())
	}

	if err := run(settings); err != nil {
		log.Fatal(err.Error())
	}
}

// run owns everything that needs cleaning up, so errors come back here
// instead of exiting past the deferred closes
func run(settings *settings) error {
	terminal := settings.GetBool(sTerminal)
	// the terminal panel owns the screen, so log to the file only
	logs := setupLogging(settings, !terminal)
	defer logs.Close()

	log.Println(">>> Settings <<<")
	settings.Dump()

	kind, _ := gpio.ParseKind(settings.GetString(sDriver))
	bank, err := openBank(kind)
	if err != nil {
		return errors.Wrapf(err, "could not open %s pins", kind)
	}
	defer bank.Close()

	sim, isSim := bank.(*gpio.Sim)
	if isSim {
		sim.LogWrites(settings.GetBool(sDebug) && !terminal)
	}
	if terminal && !isSim {
		return errors.Errorf("the terminal panel needs the %s driver", gpio.KindSim)
	}

	clock := clockwork.NewRealClock()
	display, err := openDisplay(settings, bank, clock)
	if err != nil {
		return errors.Wrap(err, "could not set up the display")
	}
	defer display.Close()

	rt := initRuntime(settings, clock, display)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		log.Printf("Got %v, stopping", sig)
		rt.stop()
	}()

	if terminal {
		closePanel, err := startPanel(rt, sim)
		if err != nil {
			return errors.Wrap(err, "could not start the terminal")
		}
		defer closePanel()
	}

	runEffects(rt)
	return nil
}
