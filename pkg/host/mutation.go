package host

// Op is the kind of primitive a host performed.
type Op uint8

const (
	OpCreateElement  Op = 0x01 // Create element node
	OpCreateText     Op = 0x02 // Create text node
	OpAppendChild    Op = 0x03 // Append node under parent
	OpInsertBefore   Op = 0x04 // Insert node before a sibling
	OpReplaceChild   Op = 0x05 // Replace node entirely
	OpRemoveChild    Op = 0x06 // Detach node from parent
	OpSetProperty    Op = 0x07 // Set attribute or node value
	OpClearProperty  Op = 0x08 // Clear attribute or node value
	OpAddListener    Op = 0x09 // Register event handler
	OpRemoveListener Op = 0x0A // Unregister event handler
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpAppendChild:
		return "AppendChild"
	case OpInsertBefore:
		return "InsertBefore"
	case OpReplaceChild:
		return "ReplaceChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpSetProperty:
		return "SetProperty"
	case OpClearProperty:
		return "ClearProperty"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	default:
		return "Unknown"
	}
}

// IsStructural reports whether op changes the shape of the tree.
func (op Op) IsStructural() bool {
	switch op {
	case OpAppendChild, OpInsertBefore, OpReplaceChild, OpRemoveChild:
		return true
	}
	return false
}

// Mutation is a single recorded host primitive.
type Mutation struct {
	Op     Op     `json:"op"`
	Target string `json:"target"`           // Path or label of the affected node
	Parent string `json:"parent,omitempty"` // Parent path for structural ops
	Key    string `json:"key,omitempty"`    // Property key or event name
	Value  string `json:"value,omitempty"`  // New value, tag, or text
}
