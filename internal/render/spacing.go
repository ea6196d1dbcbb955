package render

// Spacing is a tagged spacing value: either a literal number of twips or a
// function of the rendered item's position, resolved lazily at render time.
// The zero value is "unset"; callers fall back to a theme default.
type Spacing struct {
	set     bool
	literal int
	fn      func(isLast bool, index int) int
}

// Literal returns a fixed spacing value.
func Literal(twips int) Spacing {
	return Spacing{set: true, literal: twips}
}

// Computed returns a spacing value evaluated with the concrete item's
// last-item flag and index at render time. Both parameters are part of the
// interface even though some configurations consume only one.
func Computed(fn func(isLast bool, index int) int) Spacing {
	return Spacing{set: true, fn: fn}
}

// IsSet reports whether the spacing was explicitly configured.
func (s Spacing) IsSet() bool {
	return s.set
}

// Resolve evaluates the spacing for an item. Literal values bypass
// invocation; unset spacing resolves to zero.
func (s Spacing) Resolve(isLast bool, index int) int {
	if !s.set {
		return 0
	}
	if s.fn != nil {
		return s.fn(isLast, index)
	}
	return s.literal
}

// ResolveOr evaluates the spacing, substituting def when unset.
func (s Spacing) ResolveOr(def int, isLast bool, index int) int {
	if !s.set {
		return def
	}
	return s.Resolve(isLast, index)
}
