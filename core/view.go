// File: view.go
// Role: Read-only snapshot of a World for downstream consumers and encoders.
// Determinism:
//   - Nodes appear in arena order; connections in insertion order.
// Concurrency:
//   - Connection lists are copied under the read lock. Collapse state is read
//     without a lock; take snapshots between ticks.

package core

// NodeView is the exported, encodable state of one node.
type NodeView struct {
	ID           NodeID       `yaml:"id" json:"id"`
	Status       string       `yaml:"status" json:"status"`
	AssignedTile string       `yaml:"assigned_tile,omitempty" json:"assigned_tile,omitempty"`
	Iteration    int          `yaml:"iteration" json:"iteration"`
	Entropy      int          `yaml:"entropy" json:"entropy"`
	Candidates   []Candidate  `yaml:"candidates,omitempty" json:"candidates,omitempty"`
	Connections  []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
}

// WorldView is a point-in-time copy of a World.
type WorldView struct {
	Seed   uint64       `yaml:"seed" json:"seed"`
	Layout LayoutSignal `yaml:"layout" json:"layout"`
	Nodes  []NodeView   `yaml:"nodes" json:"nodes"`
}

// Snapshot copies every node's outputs into a WorldView.
// Complexity: O(V + E).
func (w *World) Snapshot() WorldView {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := WorldView{
		Seed:   w.seed.Value(),
		Layout: w.layout,
		Nodes:  make([]NodeView, len(w.nodes)),
	}
	for i := range w.nodes {
		n := &w.nodes[i]
		nv := NodeView{
			ID:        n.ID,
			Status:    n.State.Status.String(),
			Iteration: n.State.Iteration,
			Entropy:   n.State.Entropy,
		}
		if n.State.IsCollapsed {
			nv.AssignedTile = n.State.AssignedTile.String()
		} else if n.Candidates != nil && n.Candidates.Len() > 0 {
			nv.Candidates = n.Candidates.Items()
		}
		if len(n.connections) > 0 {
			nv.Connections = make([]Connection, len(n.connections))
			copy(nv.Connections, n.connections)
		}
		out.Nodes[i] = nv
	}

	return out
}
