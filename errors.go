package richtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the richtext package.
var (
	// ErrNotInParagraph is returned when a geometry query targets a caret,
	// selection, or probe shape that is not currently a child of the
	// queried paragraph.
	ErrNotInParagraph = errors.New("richtext: node is not a child of this paragraph")
)

// OwnershipError reports the node that failed a paragraph-ownership check.
// It wraps [ErrNotInParagraph] so callers can match with errors.Is.
type OwnershipError struct {
	// Node is the queried node.
	Node Node
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("richtext: node %v is not a child of this paragraph", e.Node)
}

func (e *OwnershipError) Unwrap() error {
	return ErrNotInParagraph
}
