package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN values compare unequal to everything (including themselves) and are
// not less than anything, following the IEEE 754 comparison rules. Avoid
// storing NaN in containers that will be sorted.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}
