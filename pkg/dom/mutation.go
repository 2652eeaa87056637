package dom

// MutationOp identifies a tree mutation.
type MutationOp uint8

const (
	OpInsert MutationOp = iota // Node attached or moved
	OpRemove                   // Node detached
	OpSetAttr
	OpRemoveAttr
	OpSetStyle
	OpRemoveStyle
	OpSetText
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSetAttr:
		return "set-attr"
	case OpRemoveAttr:
		return "remove-attr"
	case OpSetStyle:
		return "set-style"
	case OpRemoveStyle:
		return "remove-style"
	case OpSetText:
		return "set-text"
	default:
		return "unknown"
	}
}

// Mutation describes one observed change to the host tree. Listener
// registration is not a mutation; only changes a renderer would have to
// reproduce are reported.
type Mutation struct {
	Op     MutationOp
	Target Node   // Node the change applies to
	Parent Node   // OpInsert/OpRemove: the parent
	Index  int    // OpInsert: position within the parent
	Name   string // Attribute or style property name
	Value  string // New attribute, style, or text value
}
