// Package route implements PathPattern and Tree: a trie of routable
// cards and tools keyed by path segment, with conflict detection at
// construction time (spec.md §4.7).
package route

import (
	"fmt"
	"strings"
)

// SegmentKind discriminates a PathPattern segment.
type SegmentKind int

const (
	// SegmentStatic matches a literal path component exactly.
	SegmentStatic SegmentKind = iota
	// SegmentDynamic matches exactly one path component, captured by name.
	SegmentDynamic
	// SegmentGreedy matches one or more trailing components, captured by
	// name. Must be the last segment in a pattern.
	SegmentGreedy
)

// Segment is one element of a PathPattern.
type Segment struct {
	Kind  SegmentKind
	Value string // literal text for Static, capture name for Dynamic/Greedy
}

// Annotated returns the segment's annotated string form, used both as the
// trie key and for deterministic ordering (":name", "*name", or the
// literal for Static).
func (s Segment) Annotated() string {
	switch s.Kind {
	case SegmentDynamic:
		return ":" + s.Value
	case SegmentGreedy:
		return "*" + s.Value
	default:
		return s.Value
	}
}

// PathPattern is a parsed sequence of route segments.
type PathPattern struct {
	segments []Segment
	raw      string
}

// ErrGreedyNotLast is returned by ParsePattern when a greedy segment
// appears anywhere but the final position.
type ErrGreedyNotLast struct {
	Pattern string
}

func (e *ErrGreedyNotLast) Error() string {
	return fmt.Sprintf("route: greedy segment must be last in pattern %q", e.Pattern)
}

// ParsePattern parses a slash-separated pattern string ("users/:id/*rest")
// into a PathPattern, rejecting a greedy segment that isn't last.
func ParsePattern(raw string) (PathPattern, error) {
	raw = strings.Trim(raw, "/")
	var segs []Segment
	if raw != "" {
		for _, part := range strings.Split(raw, "/") {
			switch {
			case strings.HasPrefix(part, ":"):
				segs = append(segs, Segment{Kind: SegmentDynamic, Value: part[1:]})
			case strings.HasPrefix(part, "*"):
				segs = append(segs, Segment{Kind: SegmentGreedy, Value: part[1:]})
			default:
				segs = append(segs, Segment{Kind: SegmentStatic, Value: part})
			}
		}
	}
	for i, s := range segs {
		if s.Kind == SegmentGreedy && i != len(segs)-1 {
			return PathPattern{}, &ErrGreedyNotLast{Pattern: raw}
		}
	}
	return PathPattern{segments: segs, raw: raw}, nil
}

// MustParsePattern is ParsePattern but panics on error; for patterns
// known at compile time.
func MustParsePattern(raw string) PathPattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments returns the pattern's segments in order.
func (p PathPattern) Segments() []Segment { return p.segments }

// IsEmpty reports whether the pattern has no segments (the root path).
func (p PathPattern) IsEmpty() bool { return len(p.segments) == 0 }

// String returns the pattern's annotated form, joined by "/".
func (p PathPattern) String() string {
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.Annotated()
	}
	return strings.Join(parts, "/")
}

// PathMatch is the result of matching a runtime path against a pattern.
type PathMatch struct {
	Params map[string]string
	Exact  bool
}

// Match matches components against p, returning captured params and
// whether the match consumed every component exactly.
func (p PathPattern) Match(components []string) (PathMatch, bool) {
	params := map[string]string{}
	ci := 0
	for si, seg := range p.segments {
		switch seg.Kind {
		case SegmentStatic:
			if ci >= len(components) || components[ci] != seg.Value {
				return PathMatch{}, false
			}
			ci++
		case SegmentDynamic:
			if ci >= len(components) {
				return PathMatch{}, false
			}
			params[seg.Value] = components[ci]
			ci++
		case SegmentGreedy:
			if ci >= len(components) {
				return PathMatch{}, false
			}
			params[seg.Value] = strings.Join(components[ci:], "/")
			ci = len(components)
			_ = si
		}
	}
	return PathMatch{Params: params, Exact: ci == len(components)}, ci == len(components)
}
