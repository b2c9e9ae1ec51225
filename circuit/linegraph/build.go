package linegraph

import (
	"fmt"
	"sort"
)

// Part is the single slice of a Line corresponding to one original
// virtual resistor in its chain, in chain order.
type Part struct {
	Line       *Line
	Index      int
	Resistance float64
}

// Line is the composite component emitted for one maximal chain of
// virtual resistors: a single solver element with one Part per original
// resistor. Its solver-side electrical behavior is outside this
// package's concern; this is the minimal shape the Circuit interface
// needs to receive.
type Line struct {
	ID    string
	Parts []*Part
}

type pinBinding struct {
	lineID string
	index  int
}

// chainOf walks the chain starting at a given outer resistor.
func (c *Compiler) chainOf(start *virtualResistor) ([]*virtualResistor, error) {
	chain := []*virtualResistor{start}
	anchorIdx := -1
	var innerPin int
	for idx := 0; idx < 2; idx++ {
		if !c.isBreakPoint(start.pins[idx]) {
			innerPin = idx
			anchorIdx = idx
			break
		}
	}
	if anchorIdx == -1 {
		return chain, nil // degenerate single-element chain
	}
	neighbors := c.neighbors[start.pins[innerPin]]
	if len(neighbors) != 1 {
		return nil, ErrPrecondition
	}
	owner := c.owner[neighbors[0]]
	cur := owner.vr
	enteredPin := owner.idx
	for {
		chain = append(chain, cur)
		if c.isOuter(cur) {
			break
		}
		outIdx := 1 - enteredPin
		outPin := cur.pins[outIdx]
		if c.hasReal(outPin) {
			return nil, ErrPrecondition
		}
		nexts := c.neighbors[outPin]
		if len(nexts) != 1 {
			return nil, ErrPrecondition
		}
		nextOwner := c.owner[nexts[0]]
		cur = nextOwner.vr
		enteredPin = nextOwner.idx
	}
	return chain, nil
}

func (c *Compiler) isOuter(vr *virtualResistor) bool {
	return c.isBreakPoint(vr.pins[0]) || c.isBreakPoint(vr.pins[1])
}

// Build compiles every registered virtual resistor into Line components
// and emits them, along with the real connections that reproduce the
// original electrical topology, to circuit. After Build succeeds or
// fails, the compiler refuses further additions or connections.
func (c *Compiler) Build(circuit Circuit) error {
	if c.built {
		return ErrAlreadyBuilt
	}
	c.built = true

	ids := make([]string, 0, len(c.virtuals))
	for id := range c.virtuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	visited := make(map[*virtualResistor]bool)
	var chains [][]*virtualResistor
	for _, id := range ids {
		vr := c.virtuals[id]
		if visited[vr] || !c.isOuter(vr) {
			continue
		}
		chain, err := c.chainOf(vr)
		if err != nil {
			return err
		}
		for _, v := range chain {
			visited[v] = true
		}
		chains = append(chains, chain)
	}

	var lines []*Line
	bindings := make(map[*virtualResistor]map[int]pinBinding)
	for i, chain := range chains {
		line := &Line{ID: fmt.Sprintf("line#%d", i)}
		for idx, vr := range chain {
			part := &Part{Line: line, Index: idx, Resistance: vr.resistance}
			line.Parts = append(line.Parts, part)
		}
		lines = append(lines, line)

		bind := func(vr *virtualResistor, pin, linePin int) {
			if bindings[vr] == nil {
				bindings[vr] = make(map[int]pinBinding)
			}
			bindings[vr][pin] = pinBinding{lineID: line.ID, index: linePin}
		}

		if len(chain) == 1 {
			bind(chain[0], 0, 0)
			bind(chain[0], 1, 1)
			continue
		}

		start := chain[0]
		startFree := 0
		for idx := 0; idx < 2; idx++ {
			if c.isBreakPoint(start.pins[idx]) {
				startFree = idx
			}
		}
		bind(start, startFree, 0)

		end := chain[len(chain)-1]
		enteredPin := entryPinOf(c, chain)
		endFree := 1 - enteredPin
		bind(end, endFree, 1)
	}

	for _, l := range lines {
		if err := circuit.AddLine(l); err != nil {
			return err
		}
	}

	for _, e := range c.realEdges {
		owner := c.owner[e.virtual]
		bind, ok := bindings[owner.vr][owner.idx]
		if !ok {
			return ErrPrecondition
		}
		if err := circuit.Connect(bind.lineID, bind.index, e.realID, e.realIdx); err != nil {
			return err
		}
	}

	seen := make(map[[2]string]bool)
	for vr, perPin := range bindings {
		for pin, bind := range perPin {
			node := vr.pins[pin]
			for _, nb := range c.neighbors[node] {
				nbOwner, ok := c.owner[nb]
				if !ok {
					continue
				}
				nbBind, ok := bindings[nbOwner.vr][nbOwner.idx]
				if !ok {
					continue
				}
				if bind.lineID == nbBind.lineID {
					continue // internal chain edge, not a cross-chain connection
				}
				key := edgeKey(bind.lineID, bind.index, nbBind.lineID, nbBind.index)
				if seen[key] {
					continue
				}
				seen[key] = true
				if err := circuit.Connect(bind.lineID, bind.index, nbBind.lineID, nbBind.index); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// entryPinOf returns the pin index of the chain's last element through
// which it was entered from its predecessor, derived by replaying the
// chain's adjacency (the chain itself carries no recorded entry pin).
func entryPinOf(c *Compiler, chain []*virtualResistor) int {
	if len(chain) < 2 {
		return 0
	}
	prev := chain[len(chain)-2]
	last := chain[len(chain)-1]
	for pin := 0; pin < 2; pin++ {
		for _, nb := range c.neighbors[last.pins[pin]] {
			if owner, ok := c.owner[nb]; ok && owner.vr == prev {
				return pin
			}
		}
	}
	return 0
}

func edgeKey(lineA string, idxA int, lineB string, idxB int) [2]string {
	a := fmt.Sprintf("%s#%d", lineA, idxA)
	b := fmt.Sprintf("%s#%d", lineB, idxB)
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
