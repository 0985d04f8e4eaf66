package dataset

// Mask is a per-row boolean vector aligned by row index.
// A true entry means the row passed the predicate that produced the mask.
type Mask []bool

// NewMask returns a mask of length n with every entry set to value.
func NewMask(n int, value bool) Mask {
	m := make(Mask, n)
	if value {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// And combines two masks element-wise with logical AND.
// The result has the length of the shorter mask.
func (m Mask) And(other Mask) Mask {
	n := min(len(m), len(other))
	out := make(Mask, n)
	for i := range n {
		out[i] = m[i] && other[i]
	}
	return out
}

// Or combines two masks element-wise with logical OR.
// The result has the length of the shorter mask.
func (m Mask) Or(other Mask) Mask {
	n := min(len(m), len(other))
	out := make(Mask, n)
	for i := range n {
		out[i] = m[i] || other[i]
	}
	return out
}

// Not returns the element-wise negation of the mask.
func (m Mask) Not() Mask {
	out := make(Mask, len(m))
	for i, v := range m {
		out[i] = !v
	}
	return out
}

// All reports whether every entry is true. An empty mask is all true.
func (m Mask) All() bool {
	for _, v := range m {
		if !v {
			return false
		}
	}
	return true
}

// Failed returns the row indices whose entry is false, in ascending order.
func (m Mask) Failed() []int {
	var idx []int
	for i, v := range m {
		if !v {
			idx = append(idx, i)
		}
	}
	return idx
}
