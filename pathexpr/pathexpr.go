// Package pathexpr parses dotted, optionally indexed property paths such as
// "foo.bar[2].baz" into navigable segment chains.
//
// A path is split on '.' into segments. Each segment carries a name and an
// optional index operator: "[]" marks an indexed access with no element
// chosen (a wildcard), "[2]" selects a concrete element. Malformed index
// text (reversed brackets, non-numeric or non-canonical digits) is treated
// as if no index operator were present; callers decide the fallback.
package pathexpr

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned by Parse for an empty path string. Passing an
// empty path is a usage error, not a recoverable parse failure.
var ErrEmptyPath = errors.New("empty path expression")

// Expression is a parsed property path. The segment chain is built once by
// Parse and must be treated as read-only afterwards.
type Expression struct {
	raw   string
	root  *Segment
	depth int
}

// Segment is one dot-delimited token of a path expression. Segments form a
// singly linked chain from root to leaf; every non-root segment holds a
// back-reference to its parent.
type Segment struct {
	name     string
	indexed  bool
	hasIndex bool
	index    int

	parent *Segment
	child  *Segment
	root   bool
	leaf   bool
}

// Parse parses a path string into an Expression. It fails only on an empty
// path; malformed index operators degrade to plain name segments.
func Parse(path string) (*Expression, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	tokens := strings.Split(path, ".")
	segments := make([]*Segment, len(tokens))

	for i, token := range tokens {
		segments[i] = parseSegment(token)
	}

	for i, seg := range segments {
		seg.root = i == 0
		seg.leaf = i == len(segments)-1

		if i > 0 {
			seg.parent = segments[i-1]
			segments[i-1].child = seg
		}
	}

	return &Expression{raw: path, root: segments[0], depth: len(segments)}, nil
}

// parseSegment parses a single token. The name is the text before the first
// '[' (or the whole token without brackets); anything bracket-related that
// does not form a canonical index is dropped.
func parseSegment(token string) *Segment {
	open := strings.IndexByte(token, '[')
	if open == -1 {
		return &Segment{name: token}
	}

	seg := &Segment{name: token[:open]}

	closing := strings.IndexByte(token, ']')
	if closing < open {
		// missing or reversed closing bracket
		return seg
	}

	body := token[open+1 : closing]
	if body == "" {
		seg.indexed = true
		return seg
	}

	idx, ok := parseIndex(body)
	if !ok {
		return seg
	}

	seg.indexed = true
	seg.hasIndex = true
	seg.index = idx

	return seg
}

// parseIndex accepts only canonical non-negative decimal text: the parsed
// value must round-trip to exactly the original text, so "01", "+2" and
// "abc" all yield false.
func parseIndex(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || strconv.Itoa(n) != text {
		return 0, false
	}

	return n, true
}

// IndexOf extracts the concrete index from a single property token such as
// "items[2]" without parsing a full expression. It returns false for absent,
// wildcard and malformed index operators alike.
func IndexOf(token string) (int, bool) {
	open := strings.IndexByte(token, '[')
	if open == -1 {
		return 0, false
	}

	closing := strings.IndexByte(token, ']')
	if closing < open {
		return 0, false
	}

	return parseIndex(token[open+1 : closing])
}

// Depth returns the number of segments in the chain.
func (e *Expression) Depth() int {
	return e.depth
}

// Root returns the first segment of the chain.
func (e *Expression) Root() *Segment {
	return e.root
}

// Leaf walks the chain from the root and returns the last segment.
func (e *Expression) Leaf() *Segment {
	seg := e.root
	for !seg.leaf {
		seg = seg.child
	}

	return seg
}

// String returns the original path string.
func (e *Expression) String() string {
	return e.raw
}

// Name returns the segment's identifier text with index markers stripped.
func (s *Segment) Name() string {
	return s.name
}

// IsIndexed reports whether the segment carries an index operator, either
// wildcard ("[]") or concrete ("[2]").
func (s *Segment) IsIndexed() bool {
	return s.indexed
}

// HasIndex reports whether the segment carries a concrete index.
func (s *Segment) HasIndex() bool {
	return s.hasIndex
}

// Index returns the concrete index and true, or 0 and false for segments
// without one (plain names and wildcards).
func (s *Segment) Index() (int, bool) {
	return s.index, s.hasIndex
}

// IsRoot reports whether the segment is first in its chain.
func (s *Segment) IsRoot() bool {
	return s.root
}

// IsLeaf reports whether the segment is last in its chain.
func (s *Segment) IsLeaf() bool {
	return s.leaf
}

// Parent returns the previous segment in the chain, or nil for the root.
func (s *Segment) Parent() *Segment {
	return s.parent
}

// Child returns the next segment in the chain, or nil for the leaf.
func (s *Segment) Child() *Segment {
	return s.child
}

// PathToRoot returns the dotted concatenation of segment names from the
// chain start down to this segment, inclusive.
func (s *Segment) PathToRoot() string {
	if s.parent == nil {
		return s.name
	}

	return s.parent.PathToRoot() + "." + s.name
}

// PathToLeaf returns the dotted concatenation of segment names from this
// segment to the chain end, inclusive.
func (s *Segment) PathToLeaf() string {
	if s.child == nil {
		return s.name
	}

	return s.name + "." + s.child.PathToLeaf()
}
