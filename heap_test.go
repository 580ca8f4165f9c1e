package lexsearch

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestBoundedHeapKeepsKSmallest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n, k = 500, 17

	input := make([]int, n)
	for i := range input {
		input[i] = rng.Intn(10_000)
	}

	h := newBoundedHeap(k, intCmp)
	for _, v := range input {
		h.push(v)
	}
	got := h.finish()

	want := append([]int(nil), input...)
	sort.Ints(want)
	want = want[:k]

	require.Equal(t, want, got)
	require.True(t, sort.IntsAreSorted(got))
}

func TestBoundedHeapCapacityZero(t *testing.T) {
	h := newBoundedHeap(0, intCmp)
	require.False(t, h.push(1))
	require.Empty(t, h.finish())
}

func TestBoundedHeapFewerItemsThanCapacity(t *testing.T) {
	h := newBoundedHeap(10, intCmp)
	for _, v := range []int{5, 3, 8} {
		h.push(v)
	}
	require.Equal(t, []int{3, 5, 8}, h.finish())
}
