package host

// Node is an opaque handle to a node in the host tree.
type Node any

// Handler is an event handler registered on a node. Hosts compare
// handlers by identity when removing them.
type Handler any

// Event is delivered to handlers when a host dispatches an event.
type Event struct {
	Type   string // "click", "input", etc.
	Target Node
	Value  string
}

// Host is the set of primitives the reconciler consumes.
type Host interface {
	// CreateElement creates a detached element node for tag.
	CreateElement(tag string) (Node, error)

	// CreateText creates a detached text node with empty content.
	CreateText() (Node, error)

	AppendChild(parent, child Node) error

	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(parent, child, ref Node) error

	// ReplaceChild puts newChild at oldChild's position and detaches oldChild.
	ReplaceChild(parent, newChild, oldChild Node) error

	RemoveChild(parent, child Node) error

	// Parent returns the node's current parent, or nil when detached.
	Parent(n Node) Node

	// SetProperty sets key on n. A nil value clears it.
	SetProperty(n Node, key string, value any) error

	AddEventListener(n Node, event string, h Handler) error
	RemoveEventListener(n Node, event string, h Handler) error
}
