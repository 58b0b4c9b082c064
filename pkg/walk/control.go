// Package walk implements the depth-first card walker: VisitContext (the
// traversal state every visitor callback reads), CardVisitor (the
// extension point), and CardWalker (the dispatcher), per spec.md §4.2-4.4.
package walk

// ControlFlow is the two-variant return value every CardVisitor method
// uses to tell the walker whether to recurse into the current entity's
// children.
type ControlFlow int

const (
	// Continue recurses into the current entity's children as usual.
	Continue ControlFlow = iota

	// Break skips the current entity's children. The walker still calls
	// the matching leave callback, still pops any style it pushed, and
	// still undoes context side effects; traversal resumes with the next
	// sibling. Break is not a cancellation primitive — the walk as a
	// whole always runs to completion (spec.md §4.3, §5).
	Break
)
