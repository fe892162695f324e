// Package simulator orchestrates models and connectors via discrete event
// simulation. It owns the model list, connector list, pending message
// buffer, and the shared services bundle, and implements the step
// algorithm described in the engine's design notes: Phase EXT delivers
// pending messages, Phase TA advances every model's clock by the smallest
// until_next_event, Phase INT fires every model whose timer reached zero
// and routes its output through the connector table into the next step's
// pending buffer.
package simulator

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randsource"
	"github.com/rfielding/devs-sim/services"
)

// Connector is a purely declarative 5-tuple wiring one model's output port
// to another model's input port.
type Connector struct {
	ID         string
	SourceID   string
	SourcePort model.PortName
	TargetID   string
	TargetPort model.PortName
}

// Message is the wire-level message flowing between models in the outer
// simulator. It exists only during a single step and, between steps, as
// the pending buffer.
type Message struct {
	SourceID   string
	SourcePort model.PortName
	TargetID   string
	TargetPort model.PortName
	Time       float64
	Content    string
}

// ModelEntry pairs a model with the id the simulator and connectors
// address it by.
type ModelEntry struct {
	ID    string
	Model model.Model
}

// Simulator is the core of the engine: models, connectors, and a random
// number source, plus the state retained between steps (global time and
// the pending message buffer).
type Simulator struct {
	models     []ModelEntry
	connectors []Connector
	messages   []Message
	history    []Message
	svc        *services.Services
	logger     *slog.Logger
}

// New constructs a Simulator seeded from the current time.
func New(models []ModelEntry, connectors []Connector) *Simulator {
	return NewWithSource(models, connectors, randsource.New())
}

// NewSeeded constructs a Simulator with a fixed seed, for reproducible runs.
func NewSeeded(models []ModelEntry, connectors []Connector, seed int64) *Simulator {
	return NewWithSource(models, connectors, randsource.NewSeeded(seed))
}

// NewWithSource constructs a Simulator around an already-constructed random
// source, letting callers share one stream across several simulators or
// control its lifecycle independently.
func NewWithSource(models []ModelEntry, connectors []Connector, rng *randsource.Source) *Simulator {
	return &Simulator{
		models:     models,
		connectors: connectors,
		svc:        services.New(rng),
		logger:     slog.Default(),
	}
}

// Put replaces the simulator's models and connectors.
func (s *Simulator) Put(models []ModelEntry, connectors []Connector) {
	s.models = models
	s.connectors = connectors
}

// GetMessages returns the currently pending messages - those produced by
// the most recent step, awaiting delivery on the next one.
func (s *Simulator) GetMessages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// GetGlobalTime returns the simulator's current logical time.
func (s *Simulator) GetGlobalTime() float64 { return s.svc.GlobalTime() }

func (s *Simulator) find(id string) (model.Model, int) {
	for i, m := range s.models {
		if m.ID == id {
			return m.Model, i
		}
	}
	return nil, -1
}

// GetStatus returns the status string of the model with the given id.
func (s *Simulator) GetStatus(id string) (string, error) {
	m, _ := s.find(id)
	if m == nil {
		return "", model.NewError(model.KindModelNotFound, "Simulator.GetStatus")
	}
	return m.Status(), nil
}

// GetRecords returns the accumulated records of the model with the given
// id.
func (s *Simulator) GetRecords(id string) ([]model.ModelRecord, error) {
	m, _ := s.find(id)
	if m == nil {
		return nil, model.NewError(model.KindModelNotFound, "Simulator.GetRecords")
	}
	return m.Records(), nil
}

// InjectInput creates a message during simulation execution without
// routing it through a connector. It is appended after whatever is already
// pending, and participates in the next step's Phase EXT.
func (s *Simulator) InjectInput(msg Message) {
	s.messages = append(s.messages, msg)
}

// InjectInputWithID is a convenience wrapper that stamps a uuid v7 onto the
// message's SourceID when the caller omits one (e.g. for synthetic
// injections with no real producing model), grounded on the ambient ID
// generation approach used elsewhere in the stack.
func (s *Simulator) InjectInputWithID(msg Message) Message {
	if msg.SourceID == "" {
		if id, err := uuid.NewV7(); err == nil {
			msg.SourceID = id.String()
		}
	}
	s.InjectInput(msg)
	return msg
}

// Reset clears the pending buffer and global time. It does not reseed the
// random source, so replications driven off the same simulator traverse
// independent portions of the stream.
func (s *Simulator) Reset() {
	s.ResetMessages()
	s.ResetGlobalTime()
	s.history = nil
}

// ResetMessages clears the pending message buffer.
func (s *Simulator) ResetMessages() { s.messages = nil }

// ResetGlobalTime resets the simulator's global time to zero.
func (s *Simulator) ResetGlobalTime() { s.svc.SetGlobalTime(0) }

func (s *Simulator) targetsFor(sourceID string, sourcePort model.PortName) []Connector {
	var out []Connector
	for _, c := range s.connectors {
		if c.SourceID == sourceID && c.SourcePort == sourcePort {
			out = append(out, c)
		}
	}
	return out
}

// Step executes a single discrete event simulation step: Phase EXT, Phase
// TA, Phase INT, in that order, and returns the newly produced pending
// messages.
func (s *Simulator) Step() ([]Message, error) {
	pending := s.messages

	// Phase EXT.
	if len(pending) > 0 {
		s.logger.Debug("phase_ext", "global_time", s.svc.GlobalTime(), "pending", len(pending))
		for _, msg := range pending {
			m, _ := s.find(msg.TargetID)
			if m == nil {
				// A message whose target model is not in the model list is
				// simply dropped: a Put between steps removed it, or a
				// connector names a target that was never registered.
				continue
			}
			if err := m.External(s.svc, model.ModelMessage{Port: msg.TargetPort, Content: msg.Content}); err != nil {
				return nil, err
			}
		}
	}

	// Phase TA.
	var delta float64
	if len(pending) == 0 {
		delta = math.Inf(1)
		for _, m := range s.models {
			delta = math.Min(delta, m.Model.UntilNextEvent())
		}
	}
	s.logger.Debug("phase_ta", "global_time", s.svc.GlobalTime(), "delta", delta)
	if math.IsInf(delta, 1) {
		s.logger.Info("quiescent", "global_time", s.svc.GlobalTime())
		s.messages = nil
		return nil, nil
	}
	for _, m := range s.models {
		m.Model.TimeAdvance(delta)
	}
	s.svc.SetGlobalTime(s.svc.GlobalTime() + delta)

	// Phase INT.
	s.logger.Debug("phase_int", "global_time", s.svc.GlobalTime())
	var next []Message
	for _, m := range s.models {
		if m.Model.UntilNextEvent() != 0 {
			continue
		}
		produced, err := m.Model.Internal(s.svc)
		if err != nil {
			return nil, err
		}
		for _, out := range produced {
			for _, c := range s.targetsFor(m.ID, out.Port) {
				next = append(next, Message{
					SourceID:   m.ID,
					SourcePort: out.Port,
					TargetID:   c.TargetID,
					TargetPort: c.TargetPort,
					Time:       s.svc.GlobalTime(),
					Content:    out.Content,
				})
			}
		}
	}
	s.messages = next
	s.history = append(s.history, next...)
	return s.GetMessages(), nil
}

// StepUntil repeatedly steps until global time reaches or exceeds until,
// returning the concatenation of every step's output messages except the
// final step that crosses the threshold (matching the original
// implementation's check-after-step boundary behavior).
func (s *Simulator) StepUntil(until float64) ([]Message, error) {
	var all []Message
	for {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
		if s.svc.GlobalTime() < until {
			all = append(all, s.GetMessages()...)
		} else {
			break
		}
	}
	return all, nil
}

// StepN runs exactly n steps, returning the concatenation of every step's
// output messages.
func (s *Simulator) StepN(n int) ([]Message, error) {
	var all []Message
	for i := 0; i < n; i++ {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
		all = append(all, s.GetMessages()...)
	}
	return all, nil
}

// Trace renders the full routed-message history as a Mermaid sequence
// diagram, adapted from the teacher's GenerateSequenceDiagram: one
// participant per model id seen as a source or target, then one arrow per
// routed message in firing order. maxEvents caps how many messages are
// rendered before the remainder is collapsed into a trailing note; a value
// of 0 or less renders the entire history.
func (s *Simulator) Trace(maxEvents int) string {
	var sb strings.Builder
	sb.WriteString("sequenceDiagram\n")

	if len(s.history) == 0 {
		return sb.String()
	}

	participants := make(map[string]bool)
	for _, m := range s.history {
		participants[m.SourceID] = true
		participants[m.TargetID] = true
	}
	sorted := make([]string, 0, len(participants))
	for p := range participants {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)
	for _, p := range sorted {
		sb.WriteString(fmt.Sprintf("    participant %s\n", p))
	}
	sb.WriteString("\n")

	limit := len(s.history)
	if maxEvents > 0 && maxEvents < limit {
		limit = maxEvents
	}
	for _, m := range s.history[:limit] {
		sb.WriteString(fmt.Sprintf("    %s->>%s: %s.%s=%q (t=%.4f)\n", m.SourceID, m.TargetID, m.SourcePort, m.TargetPort, m.Content, m.Time))
	}
	if limit < len(s.history) {
		sb.WriteString(fmt.Sprintf("    Note over %s: ... (%d more events)\n", sorted[0], len(s.history)-limit))
	}

	return sb.String()
}

// RecordsReport renders a markdown table of per-model record counts by
// action, adapted from the teacher's metrics table generator.
func (s *Simulator) RecordsReport() string {
	counts := make(map[string]map[string]int)
	order := make([]string, 0, len(s.models))
	for _, m := range s.models {
		actionCounts := make(map[string]int)
		for _, r := range m.Model.Records() {
			actionCounts[r.Action]++
		}
		counts[m.ID] = actionCounts
		order = append(order, m.ID)
	}
	out := "| Model | Action | Count |\n|---|---|---|\n"
	for _, id := range order {
		actions := counts[id]
		if len(actions) == 0 {
			out += fmt.Sprintf("| %s | - | 0 |\n", id)
			continue
		}
		for action, n := range actions {
			out += fmt.Sprintf("| %s | %s | %d |\n", id, action, n)
		}
	}
	return out
}
