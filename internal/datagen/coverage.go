package datagen

// CoverageTracker records which landmarks were observed during an attempt.
type CoverageTracker struct {
	seen  []bool // Indexed by landmark
	count int    // Number of true entries in seen
}

// NewCoverageTracker creates a tracker for n landmarks, none observed.
func NewCoverageTracker(n int) *CoverageTracker {
	return &CoverageTracker{seen: make([]bool, n)}
}

// MarkSeen records landmark i as observed. Indices outside [0, n) are ignored.
func (c *CoverageTracker) MarkSeen(i int) {
	if i < 0 || i >= len(c.seen) || c.seen[i] {
		return
	}
	c.seen[i] = true
	c.count++
}

// IsComplete reports whether every landmark has been observed.
func (c *CoverageTracker) IsComplete() bool {
	return c.count == len(c.seen)
}

// Seen returns how many distinct landmarks have been observed.
func (c *CoverageTracker) Seen() int {
	return c.count
}

// Missing returns the indices of landmarks not yet observed, ascending.
func (c *CoverageTracker) Missing() []int {
	missing := make([]int, 0, len(c.seen)-c.count)
	for i, ok := range c.seen {
		if !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

// Reset marks every landmark as unobserved.
func (c *CoverageTracker) Reset() {
	clear(c.seen)
	c.count = 0
}
