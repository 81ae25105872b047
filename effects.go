package main

import (
	"time"

	"dscheirer.com/fourdigit/fourdigit"
)

// runEffects keeps the display refreshed in the configured mode until
// quit, or until runTime runs out
func runEffects(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("Exiting runEffects")
	}()

	settings := rt.settings
	mode := settings.GetString(sMode)
	runTime := settings.GetDuration(sRunTime)
	refresh := settings.GetDuration(sRefreshTime)
	start := rt.clock.Now()

	rt.logger.Printf("Starting %s mode", mode)

	for !rt.stopped() {
		if runTime > 0 && rt.clock.Now().Sub(start) >= runTime {
			rt.logger.Printf("Run time of %v is up", runTime)
			return
		}

		if err := runEffect(rt, mode, start); err != nil {
			rt.logger.Printf("Error: %s", err.Error())
			// don't spin on a bad render
			rt.clock.Sleep(refresh)
		}
	}
	rt.logger.Println("Got a quit signal in runEffects")
}

// runEffect does one refresh period of the mode
func runEffect(rt runtimeConfig, mode string, start time.Time) error {
	settings := rt.settings
	display := rt.display
	refresh := settings.GetDuration(sRefreshTime)
	now := rt.clock.Now()

	switch mode {
	case modeClock:
		hour, minute := now.Hour(), now.Minute()
		return display.Hold(refresh, func() error {
			return displayClock(display, hour, minute)
		})
	case modeCount:
		secs := int(now.Sub(start) / time.Second)
		return display.Hold(refresh, func() error {
			return display.DisplayInteger(secs)
		})
	case modeText:
		text := settings.GetString(sText)
		return display.Hold(refresh, func() error {
			return display.DisplayText(text)
		})
	case modeScroll:
		text := settings.GetString(sText)
		if text == "" {
			// nothing to scroll, just wait out the period
			return display.Hold(refresh, func() error { return nil })
		}
		return display.DisplayScrollingText(text, settings.GetDuration(sScrollDelay))
	}
	// validate() should have caught this
	rt.logger.Printf("Unknown mode %s", mode)
	rt.clock.Sleep(refresh)
	return nil
}

// displayClock shows hour and minute as HMM or HHMM, only the leading zero
// of the hour is left dark
func displayClock(display *fourdigit.Display, hour, minute int) error {
	if hour > 0 {
		return display.DisplayInteger(hour*100 + minute)
	}
	// 0:05 would come out as a bare 5
	if err := display.DisplayDigit(0, 1); err != nil {
		return err
	}
	if err := display.DisplayDigit(minute/10, 2); err != nil {
		return err
	}
	return display.DisplayDigit(minute%10, 3)
}
