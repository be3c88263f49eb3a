package slicekit

// matching searches for a maximum bipartite matching between a left side of size n and a right side of size m,
// where left[i] may be paired with right[j] only when edge(i, j) is true.
//
// It uses augmenting paths: a left element that finds all compatible right elements taken
// tries to move the current owner of one of them to another compatible element.
type matching struct {
	n, m int
	edge func(i, j int) bool
	// owner[j] is the left index paired with right j, or -1.
	owner []int
	seen  []bool
}

func newMatching(n, m int, edge func(i, j int) bool) *matching {
	owner := make([]int, m)
	for j := range owner {
		owner[j] = -1
	}
	return &matching{
		n:     n,
		m:     m,
		edge:  edge,
		owner: owner,
		seen:  make([]bool, m),
	}
}

// Perfect reports whether every left and every right element could be paired.
func (mm *matching) Perfect() bool {
	if mm.n != mm.m {
		return false
	}
	for i := 0; i < mm.n; i++ {
		clear(mm.seen)
		if !mm.augment(i) {
			return false
		}
	}
	return true
}

func (mm *matching) augment(i int) bool {
	for j := 0; j < mm.m; j++ {
		if mm.seen[j] || !mm.edge(i, j) {
			continue
		}
		mm.seen[j] = true
		if mm.owner[j] < 0 || mm.augment(mm.owner[j]) {
			mm.owner[j] = i
			return true
		}
	}
	return false
}
