// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion and membership testing while keeping a
// dense list of elements in insertion order. The thread queue uses it to
// answer "is a thread with this identity already queued?" without scanning.
package sparse

// maxDense bounds the size of the sparse array. Values at or above it are
// tracked in an overflow map so that a single very large identity does not
// force a huge allocation.
const maxDense = 1 << 20

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// The sparse array grows on demand, so callers only pass a capacity hint.
// It is sized for the common case of small, densely packed thread identities.
type SparseSet struct {
	sparse   []uint32            // Maps value -> index in dense
	dense    []uint32            // Contains the actual values
	overflow map[uint32]struct{} // Values >= maxDense
}

// NewSparseSet creates a new sparse set sized for values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	if capacity > maxDense {
		capacity = maxDense
	}
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set.
// Returns false if the value was already present.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}

	if value >= maxDense {
		if s.overflow == nil {
			s.overflow = make(map[uint32]struct{})
		}
		s.overflow[value] = struct{}{}
		s.dense = append(s.dense, value)
		return true
	}

	if int(value) >= len(s.sparse) {
		s.grow(value)
	}
	//nolint:gosec // G115: len(dense) is bounded by maxDense plus overflow entries
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// grow extends the sparse array so that value becomes addressable.
func (s *SparseSet) grow(value uint32) {
	n := 2 * len(s.sparse)
	if n <= int(value) {
		n = int(value) + 1
	}
	if n > maxDense {
		n = maxDense
	}
	sparse := make([]uint32, n)
	copy(sparse, s.sparse)
	s.sparse = sparse
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	if value >= maxDense {
		_, ok := s.overflow[value]
		return ok
	}
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of elements in the set
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// Clone returns an independent copy of the set.
func (s *SparseSet) Clone() *SparseSet {
	c := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense), cap(s.dense)),
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	if s.overflow != nil {
		c.overflow = make(map[uint32]struct{}, len(s.overflow))
		for v := range s.overflow {
			c.overflow[v] = struct{}{}
		}
	}
	return c
}
