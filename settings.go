package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"dscheirer.com/fourdigit/fourdigit"
	"dscheirer.com/fourdigit/glyph"
	"dscheirer.com/fourdigit/gpio"
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// setting keys
const (
	sDriver      = "driver"
	sDigitPins   = "digitPins"
	sSegmentPins = "segmentPins"
	sSettleDelay = "settleDelay"
	sScrollDelay = "scrollDelay"
	sRefreshTime = "refreshTime"
	sMode        = "mode"
	sText        = "text"
	sRunTime     = "runTime"
	sLogFile     = "logFile"
	sDebug       = "debug_dump"
	sTerminal    = "terminal"
)

// display modes
const (
	modeClock  = "clock"
	modeCount  = "count"
	modeText   = "text"
	modeScroll = "scroll"
)

// keep settings generic, type-convert on the fly
type settings struct {
	settings map[string]interface{}
}

func defaultSettings() *settings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sDigitPins] = []int{26, 19, 13, 6}
	s[sSegmentPins] = []int{21, 20, 16, 12, 25, 24, 23, 18}
	s[sSettleDelay] = fourdigit.DefaultSettleDelay
	s[sScrollDelay], _ = time.ParseDuration("300ms")
	s[sRefreshTime], _ = time.ParseDuration("100ms")
	s[sMode] = modeClock
	s[sText] = "HELLO"
	s[sRunTime] = time.Duration(0) // forever
	s[sLogFile] = "/var/log/fourdigit.log"
	s[sDebug] = false
	s[sTerminal] = false

	driver := string(gpio.KindSim)
	if runtime.GOARCH == "arm" {
		driver = string(gpio.KindRPIO)
	}
	s[sDriver] = driver

	return &settings{settings: s}
}

func (s *settings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err != nil {
			continue
		}

		var err error
		switch initVal.(type) {
		case []int:
			var pins []int
			pins, err = getInts(data, k)
			if err == nil {
				s.settings[k] = pins
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try true and false
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var dur2 time.Duration
				dur2, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = dur2
				}
			}
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		default:
			err = fmt.Errorf("Bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

// pin lists can be numbers or numeric strings
func getInts(data []byte, key string) ([]int, error) {
	ret := []int{}
	var inner error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = err
			return
		}
		var v int64
		switch dataType {
		case jsonparser.Number:
			v, inner = jsonparser.ParseInt(value)
		case jsonparser.String:
			v, inner = strconv.ParseInt(string(value), 0, 64)
		default:
			inner = errors.Errorf("not a pin number: %s", string(value))
		}
		ret = append(ret, int(v))
	}, key)
	if err != nil {
		return nil, err
	}
	return ret, inner
}

func loadSettings(path string) (*settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load conf file '%s'", path)
	}

	log.Printf("Reading configuration from '%s'", path)
	if err := s.settingsFromJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *settings) validate() error {
	if n := len(s.GetInts(sDigitPins)); n != fourdigit.NumDigits {
		return errors.Errorf("%s needs %d pins, got %d", sDigitPins, fourdigit.NumDigits, n)
	}
	if n := len(s.GetInts(sSegmentPins)); n != glyph.NumSegments {
		return errors.Errorf("%s needs %d pins, got %d", sSegmentPins, glyph.NumSegments, n)
	}
	if _, err := gpio.ParseKind(s.GetString(sDriver)); err != nil {
		return err
	}
	switch s.GetString(sMode) {
	case modeClock, modeCount, modeText, modeScroll:
	default:
		return errors.Errorf("unknown mode %q", s.GetString(sMode))
	}
	if s.GetDuration(sRefreshTime) <= 0 {
		return errors.Errorf("%s must be positive", sRefreshTime)
	}
	// zero is fine for these, no settle time or no scrolling
	for _, k := range []string{sSettleDelay, sScrollDelay, sRunTime} {
		if s.GetDuration(k) < 0 {
			return errors.Errorf("%s can't be negative", k)
		}
	}
	return nil
}

func (s *settings) Set(key string, val interface{}) {
	s.settings[key] = val
}

func (s *settings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *settings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *settings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *settings) GetInts(key string) []int {
	switch v := s.settings[key].(type) {
	case []int:
		return v
	default:
		return nil
	}
}

func (s *settings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.settings[k]
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
