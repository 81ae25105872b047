package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.NilError(t, s.validate())
	assert.Equal(t, s.GetString(sMode), modeClock)
	assert.Equal(t, s.GetDuration(sSettleDelay), 5*time.Millisecond)
	assert.Equal(t, len(s.GetInts(sDigitPins)), 4)
	assert.Equal(t, len(s.GetInts(sSegmentPins)), 8)

	// wrong type or missing key
	assert.Equal(t, s.GetDuration(sMode), time.Duration(-1))
	assert.Equal(t, s.GetString("nope"), "")
	assert.Equal(t, s.GetBool(sMode), false)
	assert.Assert(t, s.GetInts(sText) == nil)
}

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{
		"driver": "periph",
		"digitPins": [2, 3, "4", "0x11"],
		"segmentPins": [5, 6, 7, 8, 9, 10, 11, 12],
		"settleDelay": "3ms",
		"scrollDelay": "1s",
		"mode": "scroll",
		"text": "piclock",
		"debug_dump": "TRUE",
		"terminal": true,
		"unknown": 12
	}`))
	assert.NilError(t, err)
	assert.NilError(t, s.validate())

	assert.Equal(t, s.GetString(sDriver), "periph")
	assert.DeepEqual(t, s.GetInts(sDigitPins), []int{2, 3, 4, 17})
	assert.DeepEqual(t, s.GetInts(sSegmentPins), []int{5, 6, 7, 8, 9, 10, 11, 12})
	assert.Equal(t, s.GetDuration(sSettleDelay), 3*time.Millisecond)
	assert.Equal(t, s.GetDuration(sScrollDelay), time.Second)
	assert.Equal(t, s.GetString(sMode), modeScroll)
	assert.Equal(t, s.GetString(sText), "piclock")
	assert.Equal(t, s.GetBool(sDebug), true)
	assert.Equal(t, s.GetBool(sTerminal), true)

	// untouched keys keep their defaults
	assert.Equal(t, s.GetDuration(sRefreshTime), 100*time.Millisecond)
}

func TestSettingsFromJSONErrors(t *testing.T) {
	for _, bad := range []string{
		`{"settleDelay": "soon"}`,
		`{"settleDelay": 5}`,
		`{"debug_dump": "maybe"}`,
		`{"digitPins": [1, true, 3, 4]}`,
		`{"digitPins": 7}`,
		`{"mode": 7}`,
	} {
		s := defaultSettings()
		assert.Assert(t, s.settingsFromJSON([]byte(bad)) != nil, bad)
	}
}

func TestValidate(t *testing.T) {
	s := defaultSettings()
	s.Set(sDigitPins, []int{1, 2, 3})
	assert.ErrorContains(t, s.validate(), "digitPins needs 4 pins, got 3")

	s = defaultSettings()
	s.Set(sSegmentPins, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.ErrorContains(t, s.validate(), "segmentPins needs 8 pins, got 9")

	s = defaultSettings()
	s.Set(sDriver, "i2c")
	assert.ErrorContains(t, s.validate(), "unknown gpio driver")

	s = defaultSettings()
	s.Set(sMode, "alarm")
	assert.ErrorContains(t, s.validate(), "unknown mode")

	s = defaultSettings()
	s.Set(sRefreshTime, time.Duration(0))
	assert.ErrorContains(t, s.validate(), "refreshTime")

	for _, k := range []string{sSettleDelay, sScrollDelay, sRunTime} {
		s = defaultSettings()
		s.Set(k, -time.Millisecond)
		assert.ErrorContains(t, s.validate(), k+" can't be negative")

		s.Set(k, time.Duration(0))
		assert.NilError(t, s.validate())
	}

	s = defaultSettings()
	assert.NilError(t, s.settingsFromJSON([]byte(`{"settleDelay": "-5ms"}`)))
	assert.ErrorContains(t, s.validate(), "settleDelay can't be negative")
}

func TestLoadSettings(t *testing.T) {
	s, err := loadSettings("")
	assert.NilError(t, err)
	assert.Equal(t, s.GetString(sMode), modeClock)

	_, err = loadSettings("/does/not/exist.conf")
	assert.ErrorContains(t, err, "could not load conf file")

	dir, err := ioutil.TempDir("", "fourdigit")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "fourdigit.conf")
	assert.NilError(t, ioutil.WriteFile(path, []byte(`{"mode": "count"}`), 0644))
	s, err = loadSettings(path)
	assert.NilError(t, err)
	assert.Equal(t, s.GetString(sMode), modeCount)

	assert.NilError(t, ioutil.WriteFile(path, []byte(`{"runTime": "later"}`), 0644))
	_, err = loadSettings(path)
	assert.ErrorContains(t, err, "setting runTime")
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir, err := ioutil.TempDir("", "fourdigit")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)

	s := defaultSettings()
	s.Set(sLogFile, filepath.Join(dir, "fourdigit.log"))
	closer := setupLogging(s, false)

	logger := &ThreadLogger{name: "Test"}
	logger.Printf("hello %d", 42)
	logger.Println("goodbye")
	assert.NilError(t, closer.Close())

	data, err := ioutil.ReadFile(filepath.Join(dir, "fourdigit.log"))
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(data), "[Test] hello 42"))
	assert.Assert(t, strings.Contains(string(data), "[Test] goodbye"))
}
