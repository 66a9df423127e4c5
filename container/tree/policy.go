package tree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DuplicatePolicy defines how a tree handles the insertion of a key which
// compares equal to a key already present.
//
// The zero-value is Reject.
type DuplicatePolicy uint8

const (
	// Reject refuses duplicate keys: Insert returns ErrDuplicateKey and the
	// tree is left unchanged. Keys in the tree are strictly ordered.
	Reject DuplicatePolicy = iota

	// CountOccurrences keeps a single node per distinct key and counts how
	// many times the key was inserted. Remove decrements the count and only
	// unlinks the node when the last occurrence goes away.
	CountOccurrences

	// AllowEqualRight stores every inserted key in its own node, placing
	// equal keys in the right subtree. Under this policy the ordering
	// becomes left < key <= right.
	AllowEqualRight
)

var policyNames = [...]string{
	Reject:           "reject",
	CountOccurrences: "count",
	AllowEqualRight:  "allow-equal-right",
}

func (p DuplicatePolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "DuplicatePolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseDuplicatePolicy returns the policy named by s. Names are matched
// case-insensitively against the values returned by String.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, policyName := range policyNames {
		if name == policyName {
			return DuplicatePolicy(p), nil
		}
	}
	return Reject, errors.Errorf("unknown duplicate key policy: %q", s)
}

// MarshalText satisfies encoding.TextMarshaler.
func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler.
func (p *DuplicatePolicy) UnmarshalText(b []byte) error {
	policy, err := ParseDuplicatePolicy(string(b))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
