package gpio

import (
	"fmt"
	"log"
)

// Sim is a bank with no hardware behind it. It remembers the level of
// every line and keeps an audit of the writes.
type Sim struct {
	levels   map[int]bool
	outputs  map[int]bool
	audit    []string
	logIt    bool
	observer func(id int, high bool)
}

type simLine struct {
	sim *Sim
	id  int
}

// NewSim makes an empty simulated bank
func NewSim() *Sim {
	return &Sim{
		levels:  make(map[int]bool),
		outputs: make(map[int]bool),
		audit:   make([]string, 0),
	}
}

// LogWrites turns on logging of every write
func (s *Sim) LogWrites(on bool) {
	s.logIt = on
}

// Observe registers a callback that sees every level change
func (s *Sim) Observe(fn func(id int, high bool)) {
	s.observer = fn
}

func (s *Sim) Line(id int) (Line, error) {
	if err := checkPin(id); err != nil {
		return nil, err
	}
	return &simLine{sim: s, id: id}, nil
}

func (s *Sim) Close() error {
	s.record("close")
	return nil
}

// Level is the last level written to the line, low if never written
func (s *Sim) Level(id int) bool {
	return s.levels[id]
}

// IsOutput reports whether the line was configured as an output
func (s *Sim) IsOutput(id int) bool {
	return s.outputs[id]
}

// Audit returns every write so far, in order
func (s *Sim) Audit() []string {
	return s.audit
}

// ClearAudit drops the recorded writes, levels are kept
func (s *Sim) ClearAudit() {
	s.audit = s.audit[:0]
}

func (s *Sim) record(msg string) {
	if s.logIt {
		log.Println(msg)
	}
	s.audit = append(s.audit, msg)
}

func (s *Sim) set(id int, high bool) {
	s.levels[id] = high
	if high {
		s.record(fmt.Sprintf("pin %d high", id))
	} else {
		s.record(fmt.Sprintf("pin %d low", id))
	}
	if s.observer != nil {
		s.observer(id, high)
	}
}

func (sl *simLine) Output() {
	sl.sim.outputs[sl.id] = true
	sl.sim.record(fmt.Sprintf("pin %d output", sl.id))
}

func (sl *simLine) High() {
	sl.sim.set(sl.id, true)
}

func (sl *simLine) Low() {
	sl.sim.set(sl.id, false)
}
