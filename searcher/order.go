package searcher

import "sync"

// Orderer computes the center-out column visiting order for a board width.
// Center columns take part in more lines, so visiting them first lets
// alpha-beta cut earlier. Orders are computed once per width and shared.
type Orderer struct {
	mu     sync.Mutex
	orders map[int][]int
}

func NewOrderer() *Orderer {
	return &Orderer{orders: make(map[int][]int)}
}

// Order returns every column of a board of the given width, starting at
// ceil((width+1)/2)-1 and alternating left then right outwards.
// The returned slice is shared and must not be modified.
func (o *Orderer) Order(width int) []int {
	o.mu.Lock()
	defer o.mu.Unlock()

	if order, ok := o.orders[width]; ok {
		return order
	}
	order := centerOut(width)
	o.orders[width] = order
	return order
}

func centerOut(width int) []int {
	if width <= 0 {
		return []int{}
	}
	order := make([]int, 0, width)
	center := (width+2)/2 - 1
	order = append(order, center)
	for k := 1; len(order) < width; k++ {
		if left := center - k; left >= 0 {
			order = append(order, left)
		}
		if right := center + k; right < width {
			order = append(order, right)
		}
	}
	return order
}
