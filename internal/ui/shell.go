package ui

import "sync"

// Tabs the shell can show.
const (
	TabProducts = "products"
	TabOrders   = "orders"
)

// Shell holds which of the two catalog views is active. Both views keep
// their state while hidden, so switching back shows the last snapshot
// without a refetch.
type Shell struct {
	mu       sync.Mutex
	active   string
	Products *ProductView
	Orders   *OrderView
}

func NewShell(products *ProductView, orders *OrderView) *Shell {
	return &Shell{active: TabProducts, Products: products, Orders: orders}
}

// Activate switches tabs; unknown names are ignored.
func (s *Shell) Activate(tab string) {
	if tab != TabProducts && tab != TabOrders {
		return
	}
	s.mu.Lock()
	s.active = tab
	s.mu.Unlock()
}

func (s *Shell) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
