package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

// ExternalInputCoupling routes a message arriving on the coupled model's
// own input port to a named child's input port.
type ExternalInputCoupling struct {
	OuterPort model.PortName
	ChildID   string
	ChildPort model.PortName
}

// ExternalOutputCoupling routes a message emitted by a child's output port
// to the coupled model's own output port.
type ExternalOutputCoupling struct {
	ChildID   string
	ChildPort model.PortName
	OuterPort model.PortName
}

// InternalCoupling routes a message emitted by one child's output port to
// another child's input port, entirely inside the coupled model.
type InternalCoupling struct {
	SourceChildID string
	SourcePort    model.PortName
	TargetChildID string
	TargetPort    model.PortName
}

type childEntry struct {
	id    string
	model model.Model
}

type parkedMessage struct {
	childID string
	port    model.PortName
	content string
}

// Coupled hosts an ordered list of child models plus the three coupling
// tables, and itself satisfies the model contract - so it can be nested
// inside another coupled model or sit directly in a simulator's model list
// indistinguishably from an atomic model ("closure under coupling").
//
// The parked_messages buffer is the mechanism that preserves DEVS
// atomicity across the internal/external boundary at this nesting level:
// a message produced by one child's internal transition is never delivered
// to another child within the same outer step.
type Coupled struct {
	recorder

	Children         []childEntry
	ExternalInputs   []ExternalInputCoupling
	ExternalOutputs  []ExternalOutputCoupling
	InternalCouplings []InternalCoupling

	parked []parkedMessage
}

// NewCoupled constructs an empty Coupled model. Use AddChild and the
// AddXxxCoupling helpers to assemble it before handing it to a simulator.
func NewCoupled(storeRecords bool) *Coupled {
	return &Coupled{recorder: newRecorder(storeRecords)}
}

// AddChild registers a child model under the given id, unique within this
// coupled model.
func (c *Coupled) AddChild(id string, m model.Model) {
	c.Children = append(c.Children, childEntry{id: id, model: m})
}

func (c *Coupled) AddExternalInput(coupling ExternalInputCoupling) {
	c.ExternalInputs = append(c.ExternalInputs, coupling)
}

func (c *Coupled) AddExternalOutput(coupling ExternalOutputCoupling) {
	c.ExternalOutputs = append(c.ExternalOutputs, coupling)
}

func (c *Coupled) AddInternalCoupling(coupling InternalCoupling) {
	c.InternalCouplings = append(c.InternalCouplings, coupling)
}

func (c *Coupled) child(id string) model.Model {
	for _, ch := range c.Children {
		if ch.id == id {
			return ch.model
		}
	}
	return nil
}

// ChildRecords returns the named child's accumulated records. Coupled
// itself never records its own activity - only its children do - so
// callers that need visibility into a nested model's arrivals and
// departures (e.g. for response-time analyses) must go through this
// rather than Records, which is always empty for a Coupled model.
func (c *Coupled) ChildRecords(id string) []model.ModelRecord {
	child := c.child(id)
	if child == nil {
		return nil
	}
	return child.Records()
}

func (c *Coupled) External(svc *services.Services, incoming model.ModelMessage) error {
	for _, coupling := range c.ExternalInputs {
		if coupling.OuterPort != incoming.Port {
			continue
		}
		child := c.child(coupling.ChildID)
		if child == nil {
			return model.NewError(model.KindModelNotFound, "Coupled.External")
		}
		if err := child.External(svc, model.ModelMessage{Port: coupling.ChildPort, Content: incoming.Content}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Coupled) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	// Step 1: drain parked messages from the previous outer step.
	parked := c.parked
	c.parked = nil
	for _, pm := range parked {
		child := c.child(pm.childID)
		if child == nil {
			return nil, model.NewError(model.KindModelNotFound, "Coupled.Internal")
		}
		if err := child.External(svc, model.ModelMessage{Port: pm.port, Content: pm.content}); err != nil {
			return nil, err
		}
	}

	var outgoing []model.ModelMessage
	for _, ch := range c.Children {
		if ch.model.UntilNextEvent() != 0 {
			continue
		}
		produced, err := ch.model.Internal(svc)
		if err != nil {
			return nil, err
		}
		for _, msg := range produced {
			for _, coupling := range c.InternalCouplings {
				if coupling.SourceChildID == ch.id && coupling.SourcePort == msg.Port {
					c.parked = append(c.parked, parkedMessage{
						childID: coupling.TargetChildID,
						port:    coupling.TargetPort,
						content: msg.Content,
					})
				}
			}
			for _, coupling := range c.ExternalOutputs {
				if coupling.ChildID == ch.id && coupling.ChildPort == msg.Port {
					outgoing = append(outgoing, model.ModelMessage{Port: coupling.OuterPort, Content: msg.Content})
				}
			}
		}
	}
	return outgoing, nil
}

func (c *Coupled) TimeAdvance(delta float64) {
	for _, ch := range c.Children {
		ch.model.TimeAdvance(delta)
	}
}

func (c *Coupled) UntilNextEvent() float64 {
	min := math.Inf(1)
	for _, ch := range c.Children {
		min = math.Min(min, ch.model.UntilNextEvent())
	}
	return min
}

func (c *Coupled) Status() string {
	return "Coupled"
}
