package main

import (
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"dscheirer.com/fourdigit/gpio"
	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

// autoClock advances itself instead of blocking the sleeper
type autoClock struct {
	clockwork.FakeClock
}

func (c *autoClock) Sleep(d time.Duration) {
	c.FakeClock.Advance(d)
}

type testRig struct {
	rt    runtimeConfig
	sim   *gpio.Sim
	clock *autoClock
	panel *panel
	draws int
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

// testRuntime wires a display to a simulated bank with a panel watching it
func testRuntime(t *testing.T, overrides map[string]interface{}) *testRig {
	logCaller(runtime.Caller(1))

	s := defaultSettings()
	s.Set(sLogFile, "")
	s.Set(sDriver, string(gpio.KindSim))
	for k, v := range overrides {
		s.Set(k, v)
	}
	assert.NilError(t, s.validate())

	rig := &testRig{
		sim:   gpio.NewSim(),
		clock: &autoClock{FakeClock: clockwork.NewFakeClock()},
	}
	rig.panel = newPanel(s, rig.clock, func(lines []string) {
		rig.draws++
	})
	rig.sim.Observe(rig.panel.observe)

	display, err := openDisplay(s, rig.sim, rig.clock)
	assert.NilError(t, err)
	rig.rt = initRuntime(s, rig.clock, display)
	return rig
}
