// Package linegraph compiles chains of virtual series resistors into
// single composite Line components, so the host MNA solver sees one
// element per electrically-equivalent chain instead of one per link.
package linegraph

import (
	"errors"

	"github.com/age-series/libage-sub000/uf"
)

// Errors returned by Compiler methods, the GraphPrecondition family
// from the source specification's error taxonomy.
var (
	ErrUnknownComponent  = errors.New("linegraph: unknown component")
	ErrSelfConnection    = errors.New("linegraph: component cannot connect to itself")
	ErrAlreadyBuilt      = errors.New("linegraph: compiler already built")
	ErrUnsupportedEdge   = errors.New("linegraph: connection kind not supported by the compiler")
	ErrPrecondition      = errors.New("linegraph: internal chain precondition violated")
)

// PinKind distinguishes a compiler-tracked virtual resistor pin from an
// opaque pin on a real, already-accepted component.
type PinKind int

const (
	// PinVirtual identifies a pin of a virtual resistor tracked by this
	// compiler.
	PinVirtual PinKind = iota
	// PinReal identifies a pin of a component already accepted by the
	// host circuit, opaque to this compiler.
	PinReal
)

// Pin is a tagged-variant reference to either a virtual resistor's pin
// or a real component's pin, replacing a multi-polarity overloaded
// connect with single dispatch on Kind.
type Pin struct {
	Kind      PinKind
	Component string
	Index     int
}

// VirtualPin returns a Pin referring to pin index (0 = positive, 1 =
// negative) of the virtual resistor with the given id.
func VirtualPin(id string, index int) Pin {
	return Pin{Kind: PinVirtual, Component: id, Index: index}
}

// RealPin returns a Pin referring to pin index of the real, host-owned
// component with the given id.
func RealPin(id string, index int) Pin {
	return Pin{Kind: PinReal, Component: id, Index: index}
}

// virtualResistor is a compiler-tracked placeholder resistor with two
// disjoint-set pins.
type virtualResistor struct {
	id         string
	resistance float64
	pins       [2]*uf.Node
}

type pinOwner struct {
	vr  *virtualResistor
	idx int
}

type realEdge struct {
	virtual *uf.Node
	realID  string
	realIdx int
}

// Circuit is the external collaborator the compiler emits its results
// to: the host MNA circuit accepting newly-built composite components
// and the real-to-real connections that replace the collapsed virtual
// chains.
type Circuit interface {
	AddLine(l *Line) error
	Connect(aID string, aIdx int, bID string, bIdx int) error
}

// Compiler accumulates virtual resistors and their connections, then
// compiles maximal series chains into Line components on Build.
type Compiler struct {
	virtuals   map[string]*virtualResistor
	owner      map[*uf.Node]pinOwner
	neighbors  map[*uf.Node][]*uf.Node
	hasRealSet map[*uf.Node]bool // keyed by current uf root
	realEdges  []realEdge
	built      bool
}

// NewCompiler returns an empty Compiler.
func NewCompiler() *Compiler {
	return &Compiler{
		virtuals:   make(map[string]*virtualResistor),
		owner:      make(map[*uf.Node]pinOwner),
		neighbors:  make(map[*uf.Node][]*uf.Node),
		hasRealSet: make(map[*uf.Node]bool),
	}
}

// AddVirtual registers a virtual resistor with the given id and
// resistance. It returns false without mutating the compiler if id is
// already registered or Build has already been called.
func (c *Compiler) AddVirtual(id string, resistance float64) bool {
	if c.built {
		return false
	}
	if _, ok := c.virtuals[id]; ok {
		return false
	}
	vr := &virtualResistor{id: id, resistance: resistance}
	vr.pins[0] = uf.NewNode(0)
	vr.pins[1] = uf.NewNode(0)
	c.virtuals[id] = vr
	c.owner[vr.pins[0]] = pinOwner{vr: vr, idx: 0}
	c.owner[vr.pins[1]] = pinOwner{vr: vr, idx: 1}
	return true
}

func (c *Compiler) resolveVirtual(p Pin) (*uf.Node, error) {
	vr, ok := c.virtuals[p.Component]
	if !ok {
		return nil, ErrUnknownComponent
	}
	if p.Index != 0 && p.Index != 1 {
		return nil, ErrUnknownComponent
	}
	return vr.pins[p.Index], nil
}

func (c *Compiler) markReal(node *uf.Node) {
	root := uf.Find(node)
	c.hasRealSet[root] = true
}

func (c *Compiler) hasReal(node *uf.Node) bool {
	return c.hasRealSet[uf.Find(node)]
}

// Connect joins two pins, dispatching on their tagged kind: two virtual
// pins unite in the disjoint set (and record a direct chain edge); a
// virtual pin and a real pin mark the virtual pin's root as carrying
// real connectivity and queue the edge for reissue at Build. Two real
// pins are outside this compiler's concern.
func (c *Compiler) Connect(a, b Pin) error {
	if c.built {
		return ErrAlreadyBuilt
	}
	if a.Kind == PinVirtual && b.Kind == PinVirtual && a.Component == b.Component {
		return ErrSelfConnection
	}
	switch {
	case a.Kind == PinVirtual && b.Kind == PinVirtual:
		na, err := c.resolveVirtual(a)
		if err != nil {
			return err
		}
		nb, err := c.resolveVirtual(b)
		if err != nil {
			return err
		}
		hasRealA, hasRealB := c.hasReal(na), c.hasReal(nb)
		uf.Unite(na, nb)
		if hasRealA || hasRealB {
			c.markReal(na)
		}
		c.neighbors[na] = append(c.neighbors[na], nb)
		c.neighbors[nb] = append(c.neighbors[nb], na)
		return nil
	case a.Kind == PinVirtual && b.Kind == PinReal:
		return c.connectVirtualReal(a, b)
	case a.Kind == PinReal && b.Kind == PinVirtual:
		return c.connectVirtualReal(b, a)
	default:
		return ErrUnsupportedEdge
	}
}

func (c *Compiler) connectVirtualReal(virtual, real Pin) error {
	node, err := c.resolveVirtual(virtual)
	if err != nil {
		return err
	}
	c.markReal(node)
	c.realEdges = append(c.realEdges, realEdge{virtual: node, realID: real.Component, realIdx: real.Index})
	return nil
}

// isBreakPoint reports whether the pin at node forbids chain
// continuation: its disjoint-set root carries real connectivity, or its
// set size is not exactly two (a fan-out junction, or an isolated pin
// with no virtual neighbor at all).
func (c *Compiler) isBreakPoint(node *uf.Node) bool {
	return c.hasReal(node) || uf.Size(node) != 2
}
