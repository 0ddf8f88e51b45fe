package Trees

import "fmt"

// EmptyError is returned when an operation needs a root but the tree has none.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return e.Op + ": empty tree has no root node"
}

// ParentError is returned when an operation needs a parent but the node is a root.
type ParentError struct {
	Op string
}

func (e *ParentError) Error() string {
	return e.Op + ": node has no parent"
}

// OrphanError is returned when an operation needs the owning tree but the node
// isn't attached to any.
type OrphanError struct {
	Op string
}

func (e *OrphanError) Error() string {
	return e.Op + ": orphan node has no associated tree"
}

// CycleError is returned when an operation would make a node its own ancestor.
// Nothing is modified when it's returned.
type CycleError struct {
	Op string
}

func (e *CycleError) Error() string {
	return e.Op + ": operation introduces cycle"
}

// MissingError is returned when a keyed lookup finds no child with the key.
type MissingError struct {
	Op  string
	Key any
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s: key %v undefined", e.Op, e.Key)
}

// PolicyError reports a method used on a node whose child storage policy
// doesn't support it, or a subtree moved between trees of different
// policies. Misuse of a policy specific method panics with it.
type PolicyError struct {
	Op   string
	Have Policy
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: not supported by %v child storage", e.Op, e.Have)
}
