package slicekit

import (
	"testing"

	"go.llib.dev/testcase/assert"
)

func edges(adj [][]bool) func(i, j int) bool {
	return func(i, j int) bool { return adj[i][j] }
}

func TestMatching_Perfect(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.True(t, newMatching(0, 0, nil).Perfect())
	})
	t.Run("different side sizes", func(t *testing.T) {
		assert.False(t, newMatching(1, 2, func(i, j int) bool { return true }).Perfect())
	})
	t.Run("identity", func(t *testing.T) {
		assert.True(t, newMatching(3, 3, func(i, j int) bool { return i == j }).Perfect())
	})
	t.Run("requires moving an earlier pair", func(t *testing.T) {
		m := newMatching(3, 3, edges([][]bool{
			{true, true, false},
			{true, false, false},
			{false, true, true},
		}))
		assert.True(t, m.Perfect())
		assert.Equal(t, []int{1, 0, 2}, m.owner)
	})
	t.Run("two left elements compete for a single right one", func(t *testing.T) {
		m := newMatching(3, 3, edges([][]bool{
			{true, false, false},
			{true, false, false},
			{true, true, true},
		}))
		assert.False(t, m.Perfect())
	})
}
