package repository

import (
	"sort"
	"sync"
)

// TableRegistry tracks occupancy for a fixed set of tables. All tables start
// free; Book is an atomic check-and-set so two orders within one process can
// never claim the same table.
type TableRegistry struct {
	mu       sync.Mutex
	occupied map[int]bool
}

// NewTableRegistry creates a registry for tables 1..count, all free.
func NewTableRegistry(count int) *TableRegistry {
	occupied := make(map[int]bool, count)
	for i := 1; i <= count; i++ {
		occupied[i] = false
	}
	return &TableRegistry{occupied: occupied}
}

// ListFree returns the ids of all free tables in ascending order.
func (r *TableRegistry) ListFree() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	free := make([]int, 0, len(r.occupied))
	for id, taken := range r.occupied {
		if !taken {
			free = append(free, id)
		}
	}
	sort.Ints(free)
	return free
}

// Book marks the table occupied and returns true iff it exists and is free.
// On failure the registry is unchanged.
func (r *TableRegistry) Book(tableID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken, exists := r.occupied[tableID]
	if !exists || taken {
		return false
	}
	r.occupied[tableID] = true
	return true
}

// Free releases the table. Unknown ids are silently ignored.
func (r *TableRegistry) Free(tableID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.occupied[tableID]; exists {
		r.occupied[tableID] = false
	}
}

// IsOccupied reports whether the table exists and is currently booked.
func (r *TableRegistry) IsOccupied(tableID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupied[tableID]
}
