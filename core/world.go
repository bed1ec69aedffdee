// File: world.go
// Role: World arena: node placement, index lookups, connection lists and the
//       layout-done signal.
// Determinism:
//   - Nodes are stored and enumerated in placement order (arena index asc).
//   - Connections per node are append-only, in insertion order.
// Concurrency:
//   - Placement (AddNode/SetSockets) happens before any collapse tick.
//   - Node(i).State and Node(i).Candidates are owned by the collapse step of
//     node i and are not guarded; distinct indices never race.
//   - Connection lists and the layout signal are guarded by mu.

package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/districts/seed"
)

// initialCandidateCapacity matches the four assignable tiles.
const initialCandidateCapacity = len(AllTiles)

// Node is one arena record.
//
// Candidates == nil models missing candidate storage; the collapse treats such
// a node as structurally malformed. Sockets is optional adjacency data.
type Node struct {
	ID          NodeID
	State       CollapseState
	Candidates  *CandidateSet
	Sockets     []Socket
	connections []Connection
}

// HasSockets reports whether socket data is present.
func (n *Node) HasSockets() bool { return len(n.Sockets) > 0 }

// LayoutSignal is the macro-layout completion record the connectivity pass
// waits on. ConnectionCount stays 0 until connectivity completes.
type LayoutSignal struct {
	Done            bool
	NodeCount       int
	ConnectionCount int
}

// World owns every node of one generation run.
type World struct {
	mu sync.RWMutex // guards connections of every node and layout

	seed   seed.Seed
	nodes  []Node
	index  map[uint32]int // NodeID.Value → arena index
	layout LayoutSignal
}

// NewWorld creates an empty world bound to s.
// Complexity: O(1).
func NewWorld(s seed.Seed) *World {
	return &World{
		seed:  s,
		index: make(map[uint32]int),
	}
}

// Seed returns the world's global seed.
func (w *World) Seed() seed.Seed { return w.seed }

// AddNode places a node in Initialized status with empty candidate storage.
//
// Errors:
//   - ErrZeroNodeID if id.Value == 0.
//   - ErrDuplicateNode if id.Value is already placed.
//
// Complexity: O(1) amortized.
func (w *World) AddNode(id NodeID) error {
	if id.Value == 0 {
		return ErrZeroNodeID
	}
	if _, ok := w.index[id.Value]; ok {
		return fmt.Errorf("AddNode(%d): %w", id.Value, ErrDuplicateNode)
	}
	w.index[id.Value] = len(w.nodes)
	w.nodes = append(w.nodes, Node{
		ID:         id,
		State:      CollapseState{Status: Initialized},
		Candidates: NewCandidateSet(initialCandidateCapacity),
	})

	return nil
}

// Len returns the number of placed nodes.
func (w *World) Len() int { return len(w.nodes) }

// Node returns the arena record at index i. The pointer stays valid until the
// next AddNode.
func (w *World) Node(i int) *Node { return &w.nodes[i] }

// Index returns the arena index of the node with the given id value.
func (w *World) Index(value uint32) (int, bool) {
	i, ok := w.index[value]
	return i, ok
}

// Lookup returns the node with the given id value or ErrNodeNotFound.
func (w *World) Lookup(value uint32) (*Node, error) {
	i, ok := w.index[value]
	if !ok {
		return nil, fmt.Errorf("Lookup(%d): %w", value, ErrNodeNotFound)
	}
	return &w.nodes[i], nil
}

// SetSockets attaches socket data to a node. Pass nil to clear it.
func (w *World) SetSockets(value uint32, sockets []Socket) error {
	n, err := w.Lookup(value)
	if err != nil {
		return err
	}
	n.Sockets = append([]Socket(nil), sockets...)
	return nil
}

// Connect appends c to the source node's list.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is unknown.
//   - ErrSelfConnection if c.From == c.To.
//   - ErrNegativeCost if c.TraversalCost < 0.
//   - ErrDuplicateConnection if the source already links to c.To.
//
// Complexity: O(deg(from)) for the duplicate check.
// Concurrency: write lock on mu.
func (w *World) Connect(c Connection) error {
	if err := w.validateConnection(c); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	src := &w.nodes[w.index[c.From]]
	if hasTarget(src.connections, c.To) {
		return fmt.Errorf("Connect(%d→%d): %w", c.From, c.To, ErrDuplicateConnection)
	}
	src.connections = append(src.connections, c)

	return nil
}

// ApplyConnections appends a planned batch under a single write lock.
// Invalid or duplicate entries are skipped; the number applied is returned.
// Complexity: O(B·deg).
func (w *World) ApplyConnections(batch []Connection) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	applied := 0
	for _, c := range batch {
		if w.validateConnection(c) != nil {
			continue
		}
		src := &w.nodes[w.index[c.From]]
		if hasTarget(src.connections, c.To) {
			continue
		}
		src.connections = append(src.connections, c)
		applied++
	}

	return applied
}

// HasConnection reports whether from already links to to.
// Concurrency: read lock on mu.
func (w *World) HasConnection(from, to uint32) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	i, ok := w.index[from]
	if !ok {
		return false
	}
	return hasTarget(w.nodes[i].connections, to)
}

// Connections returns a copy of the node's outgoing connection list.
// Concurrency: read lock on mu.
func (w *World) Connections(value uint32) ([]Connection, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	i, ok := w.index[value]
	if !ok {
		return nil, fmt.Errorf("Connections(%d): %w", value, ErrNodeNotFound)
	}
	out := make([]Connection, len(w.nodes[i].connections))
	copy(out, w.nodes[i].connections)

	return out, nil
}

// TotalConnections returns the sum of every node's list length.
// Complexity: O(V).
func (w *World) TotalConnections() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	total := 0
	for i := range w.nodes {
		total += len(w.nodes[i].connections)
	}
	return total
}

// MarkLayoutDone raises the layout-done signal with the current node count.
// It does not touch ConnectionCount.
func (w *World) MarkLayoutDone() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.layout.Done = true
	w.layout.NodeCount = len(w.nodes)
}

// Layout returns a copy of the layout signal.
func (w *World) Layout() LayoutSignal {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.layout
}

// RecordConnectionCount stores the connectivity pass result on the signal.
func (w *World) RecordConnectionCount(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.layout.ConnectionCount = n
}

// AllTerminal reports whether every node reached a terminal status.
// An empty world is trivially terminal.
func (w *World) AllTerminal() bool {
	for i := range w.nodes {
		if !w.nodes[i].State.Status.IsTerminal() {
			return false
		}
	}
	return true
}

func (w *World) validateConnection(c Connection) error {
	if _, ok := w.index[c.From]; !ok {
		return fmt.Errorf("connect from %d: %w", c.From, ErrNodeNotFound)
	}
	if _, ok := w.index[c.To]; !ok {
		return fmt.Errorf("connect to %d: %w", c.To, ErrNodeNotFound)
	}
	if c.From == c.To {
		return ErrSelfConnection
	}
	if c.TraversalCost < 0 {
		return ErrNegativeCost
	}
	return nil
}

func hasTarget(list []Connection, to uint32) bool {
	for _, c := range list {
		if c.To == to {
			return true
		}
	}
	return false
}
