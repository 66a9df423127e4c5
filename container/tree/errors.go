package tree

import "github.com/pkg/errors"

var (
	// ErrDuplicateKey is returned by Insert when the key already exists in a
	// tree configured with the Reject policy.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrEmptyTree is returned by operations which require the tree to have
	// a root node.
	ErrEmptyTree = errors.New("empty tree")

	// ErrUnsupported is returned by structural operations that the tree does
	// not implement, such as rebalancing.
	ErrUnsupported = errors.New("unsupported operation")
)
