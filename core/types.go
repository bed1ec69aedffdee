// File: types.go
// Role: Value types (NodeID, Coord, Status, Tile, Connection, CollapseState)
//       and the package sentinel errors.
//
// Errors:
//
//	ErrZeroNodeID          - node id value 0 is reserved for "no parent".
//	ErrDuplicateNode       - a node with the same id value already exists.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrDuplicateConnection - source already has a connection to the target.
//	ErrSelfConnection      - connection from a node to itself.
//	ErrNegativeCost        - traversal cost below zero.
//	ErrCandidatesSealed    - candidate set already populated in this run.
//	ErrNegativeWeight      - candidate weight below zero.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core operations.
var (
	// ErrZeroNodeID indicates an attempt to register a node with Value 0.
	ErrZeroNodeID = errors.New("core: node id 0 is reserved")

	// ErrDuplicateNode indicates a node id value is already registered.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateConnection indicates the source already links to the target.
	ErrDuplicateConnection = errors.New("core: duplicate connection target")

	// ErrSelfConnection indicates a connection whose source equals its target.
	ErrSelfConnection = errors.New("core: self connection not allowed")

	// ErrNegativeCost indicates a connection with TraversalCost < 0.
	ErrNegativeCost = errors.New("core: negative traversal cost")

	// ErrCandidatesSealed indicates Populate on a set that was already populated.
	ErrCandidatesSealed = errors.New("core: candidate set already populated")

	// ErrNegativeWeight indicates a candidate with Weight < 0.
	ErrNegativeWeight = errors.New("core: negative candidate weight")
)

// Coord is a signed position on the macro grid.
type Coord struct {
	X int32 `yaml:"x" json:"x"`
	Y int32 `yaml:"y" json:"y"`
}

// Length returns the Euclidean distance of c from the origin.
// Complexity: O(1).
func (c Coord) Length() float64 {
	return math.Hypot(float64(c.X), float64(c.Y))
}

// Parity returns (X XOR Y) & 1. Negative coordinates are handled by the
// two's-complement low bit, so (-1,0) is odd like (1,0).
func (c Coord) Parity() int32 {
	return (c.X ^ c.Y) & 1
}

// NodeID identifies a graph node. It is immutable once the node is placed.
//
// Value is unique within a World and never 0. ParentID 0 means "no parent";
// it is a non-owning back-reference.
type NodeID struct {
	Value    uint32 `yaml:"value" json:"value"`
	Level    uint8  `yaml:"level" json:"level"`
	ParentID uint32 `yaml:"parent_id,omitempty" json:"parent_id,omitempty"`
	Coord    Coord  `yaml:"coord" json:"coord"`
}

// IsDistrict reports whether the node is a top-level district (Level 0).
func (id NodeID) IsDistrict() bool { return id.Level == 0 }

// Status is the collapse state machine position of a node.
type Status uint8

const (
	// Initialized nodes have no candidates yet.
	Initialized Status = iota
	// InProgress nodes hold a shrinking candidate set.
	InProgress
	// Completed nodes carry an assigned tile.
	Completed
	// Contradiction nodes had every candidate eliminated.
	Contradiction
	// Failed nodes hit a structural error or a degenerate selection.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Initialized:
		return "Initialized"
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	case Contradiction:
		return "Contradiction"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether s absorbs further processing.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Contradiction || s == Failed
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool { return s <= Failed }

// Tile is the discrete identity a node collapses to.
//
// The four tiles carry fixed semantics used by constraint propagation:
//
//	TileCentral  (1) dominates near the origin; rejected far from it.
//	TilePolar    (2) polarity-sensitive; rejected on odd coordinate parity.
//	TileOutskirt (3) peripheral.
//	TileFrontier (4) peripheral.
//
// Even tiles (2, 4) are socket-sensitive.
type Tile uint8

const (
	// TileNone is the zero value; never assigned to a completed node.
	TileNone Tile = iota
	// TileCentral is the central district type.
	TileCentral
	// TilePolar is the polarity-sensitive district type.
	TilePolar
	// TileOutskirt is the inner peripheral district type.
	TileOutskirt
	// TileFrontier is the outer peripheral district type.
	TileFrontier
)

// AllTiles lists the assignable tiles in ascending id order.
var AllTiles = [...]Tile{TileCentral, TilePolar, TileOutskirt, TileFrontier}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileNone:
		return "None"
	case TileCentral:
		return "Central"
	case TilePolar:
		return "Polar"
	case TileOutskirt:
		return "Outskirt"
	case TileFrontier:
		return "Frontier"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is an assignable tile.
func (t Tile) Valid() bool { return t >= TileCentral && t <= TileFrontier }

// IsCentral reports whether t is the central type.
func (t Tile) IsCentral() bool { return t == TileCentral }

// IsPolaritySensitive reports whether t is rejected on odd parity.
func (t Tile) IsPolaritySensitive() bool { return t == TilePolar }

// IsPeripheral reports whether t favors positions far from the origin.
func (t Tile) IsPeripheral() bool { return t >= TileOutskirt && t.Valid() }

// IsSocketSensitive reports whether t is checked against socket data.
func (t Tile) IsSocketSensitive() bool { return t.Valid() && t%2 == 0 }

// Socket is an opaque adjacency descriptor owned by an external tile
// prototype system. Only presence matters to the collapse.
type Socket uint32

// ConnectionType is the traversal direction of a Connection.
type ConnectionType uint8

const (
	// Bidirectional connections are traversable both ways.
	Bidirectional ConnectionType = iota
	// OneWay connections are traversable From→To only.
	OneWay
)

// String returns the type name.
func (t ConnectionType) String() string {
	if t == OneWay {
		return "OneWay"
	}
	return "Bidirectional"
}

// Polarity is the gate a traveler must satisfy to use a connection.
type Polarity uint8

const (
	// PolarityNone places no requirement.
	PolarityNone Polarity = iota
	// PolarityEven requires even parity.
	PolarityEven
	// PolarityOdd requires odd parity.
	PolarityOdd
)

// Connection is a directed record stored in the source node's list.
type Connection struct {
	From             uint32         `yaml:"from" json:"from"`
	To               uint32         `yaml:"to" json:"to"`
	Type             ConnectionType `yaml:"type" json:"type"`
	RequiredPolarity Polarity       `yaml:"required_polarity" json:"required_polarity"`
	TraversalCost    float64        `yaml:"traversal_cost" json:"traversal_cost"`
}

// CollapseState is the per-node state machine record.
//
// Invariant: IsCollapsed implies Status == Completed and AssignedTile != TileNone.
// Salt is the recovery seed offset; it only changes through an explicit reset.
type CollapseState struct {
	Status       Status
	Entropy      int
	Iteration    int
	AssignedTile Tile
	IsCollapsed  bool
	Salt         uint64
}

// Complete assigns t and moves the state to Completed.
func (s *CollapseState) Complete(t Tile) {
	s.AssignedTile = t
	s.IsCollapsed = true
	s.Status = Completed
}

// Consistent reports whether the IsCollapsed invariant holds.
func (s CollapseState) Consistent() bool {
	if !s.IsCollapsed {
		return true
	}
	return s.Status == Completed && s.AssignedTile != TileNone
}
