// File: types.go
// Role: Node, Edge, Graph, options, sentinel errors and NewGraph.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muEdgeAdj for edges and adjacency). Lock order is always muNode → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNegativeISite    - node site index is negative.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrDuplicateNode    - node ID already registered with a different site index.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrInconsistentEdge - edge roles match neither orientation of the queried endpoints.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvperiodic/vec3"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeISite indicates a negative site index.
	ErrNegativeISite = errors.New("core: node isite is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates a node ID re-registered with a different isite.
	ErrDuplicateNode = errors.New("core: node already exists with another isite")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInconsistentEdge indicates that an edge's Start/End roles match
	// neither orientation of the endpoints it was queried with.
	ErrInconsistentEdge = errors.New("core: edge roles do not match its endpoints")
)

// Node is one coordination environment instance.
//
// ID is opaque and unique within its Graph. ISite is the stable index of the
// environment's site in the original, non-periodic structure. Metadata is
// shared on clones.
type Node struct {
	ID       string
	ISite    int
	Metadata map[string]interface{}
}

// Edge is one keyed connection between two nodes.
//
// From/To are node IDs in insertion orientation. Start/End are the isites of
// the conceptual source and target: traversed Start→End, the End node's image
// is the Start node's image translated by Delta.
type Edge struct {
	// ID is the edge key: "e1", "e2", ... unique and monotonic per graph.
	ID string

	From, To string

	Start, End int

	Delta vec3.Vec3

	// Data holds per-edge payload (bond data, ligand lists, ...). Shared on clones.
	Data map[string]interface{}

	seq uint64
}

// IsLoop reports whether e connects a node to (an image of) itself.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Periodic reports whether traversing e crosses into another lattice image.
func (e *Edge) Periodic() bool { return !e.Delta.IsZero() }

// Other returns the endpoint of e opposite to id. For loops it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// NodeOption customizes a node at AddNode time.
type NodeOption func(n *Node)

// WithNodeMetadata attaches metadata to the node being added.
func WithNodeMetadata(md map[string]interface{}) NodeOption {
	return func(n *Node) { n.Metadata = md }
}

// EdgeOption customizes an edge at AddEdge time.
type EdgeOption func(e *Edge)

// WithEdgeData attaches a payload map to the edge being added.
func WithEdgeData(data map[string]interface{}) EdgeOption {
	return func(e *Edge) { e.Data = data }
}

// WithRoles overrides the Start/End isites that default to the isites of
// the from and to nodes.
func WithRoles(start, end int) EdgeOption {
	return func(e *Edge) {
		e.Start = start
		e.End = end
	}
}

// Graph is an undirected multigraph with self-loops whose edges carry
// integer lattice translations.
//
// Iteration order is deterministic: nodes in insertion order, edges in
// creation order.
type Graph struct {
	muNode    sync.RWMutex // guards nodes, order, index
	muEdgeAdj sync.RWMutex // guards edges, adjacency

	edgeSeq uint64

	nodes map[string]*Node
	order []string
	index map[string]int

	edges map[string]*Edge

	// adjacency[u][v][eid] mirrors undirected edges; loops are stored once under [u][u].
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph returns an empty periodic multigraph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		index:     make(map[string]int),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}
