package arena

import (
	"unsafe"

	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/internal/assert"
)

// Handle is a stable index into an Arena's backing slice. Parent links are
// expressed as Handles rather than pointers so they stay valid for the
// arena's entire lifetime and the search tree stays trivially
// serializable.
type Handle int32

// None is the sentinel "no parent" handle, used by the root node.
const None Handle = -1

// Node is one search-tree node: an embedded board state, a back-link to
// its parent, and its path cost (== depth, since every move costs 1).
type Node struct {
	State      board.GameState
	Parent     Handle
	CostToNode float64
}

// sizeofNode is used only to translate a byte budget into a slot count;
// this is the one place unsafe appears in the module.
var sizeofNode = int(unsafe.Sizeof(Node{}))

// SizeofNode reports the size in bytes of one arena slot, for callers that
// need to translate a byte budget into a node-count budget themselves.
func SizeofNode() int {
	return sizeofNode
}

// Arena is a linear bump allocator over a fixed-capacity slice of Node.
// It owns every node it hands out; no other component may retain a node
// past the arena's teardown.
type Arena struct {
	nodes []Node
}

// New preallocates an Arena with room for exactly capacity nodes. capacity
// must be >= 1.
func New(capacity int) *Arena {
	assert.Truef(capacity >= 1, "arena: capacity must be >= 1, got %d", capacity)

	return &Arena{nodes: make([]Node, 0, capacity)}
}

// Cap reports the arena's fixed capacity.
func (a *Arena) Cap() int {
	return cap(a.nodes)
}

// Len reports the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Alloc reserves the next slot and returns its handle. It returns
// (None, false) once the arena's capacity is exhausted — the driver
// converts this into the FULL terminal result.
func (a *Arena) Alloc() (Handle, bool) {
	if len(a.nodes) == cap(a.nodes) {
		return None, false
	}
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, Node{})

	return h, true
}

// Get returns a pointer to the node at h. The returned pointer is valid
// until the arena is discarded; it is never invalidated by further Alloc
// calls because the backing slice never grows past its preallocated
// capacity.
func (a *Arena) Get(h Handle) *Node {
	return &a.nodes[h]
}

// RollbackLast undoes the most recent Alloc, identified by h. It is only
// valid when h is the handle of the last allocation; calling it with any
// other handle is a programmer error (it would silently discard a node
// still referenced as someone's parent).
func (a *Arena) RollbackLast(h Handle) {
	assert.Truef(int(h) == len(a.nodes)-1,
		"arena: RollbackLast(%d) is not the most recent allocation (len=%d)", h, len(a.nodes))
	a.nodes = a.nodes[:len(a.nodes)-1]
}
