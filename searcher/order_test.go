package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	t.Run("center-out order for common widths", func(t *testing.T) {
		o := NewOrderer()

		require.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, o.Order(7), "Width 7 should start at the middle column")
		require.Equal(t, []int{2, 1, 3, 0}, o.Order(4), "Even widths should start right of the middle")
		require.Equal(t, []int{1, 0, 2}, o.Order(3))
		require.Equal(t, []int{1, 0}, o.Order(2))
		require.Equal(t, []int{0}, o.Order(1))
	})

	t.Run("every column appears exactly once", func(t *testing.T) {
		o := NewOrderer()
		for width := 1; width <= 12; width++ {
			order := o.Order(width)
			require.Len(t, order, width)
			require.ElementsMatch(t, columns(width), order, "Order for width %d should be a permutation", width)
		}
	})

	t.Run("orders are memoized per width", func(t *testing.T) {
		o := NewOrderer()
		first := o.Order(7)
		second := o.Order(7)

		require.Same(t, &first[0], &second[0], "Repeated calls should share the computed order")
		require.Len(t, o.orders, 1)
	})

	t.Run("non-positive width", func(t *testing.T) {
		require.Empty(t, NewOrderer().Order(0))
	})
}

func columns(width int) []int {
	cols := make([]int, width)
	for i := range cols {
		cols[i] = i
	}
	return cols
}
