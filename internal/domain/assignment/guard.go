package assignment

import (
	"sort"
	"sync"
)

// Key identifies a single capacity-bounded resource for serialization.
type Key struct {
	Kind ResourceKind
	ID   uint
}

// Guard serializes assignment-affecting operations per resource. Every
// mutation that reads occupancy and then commits (ship create/reassign,
// capacity shrink) holds the locks of the involved resources across the
// whole check-then-commit window, so two accepted assignments can never
// jointly exceed a capacity through a stale occupancy read.
//
// Lock entries are kept for the lifetime of the process; the map is
// bounded by the number of distinct resources touched.
type Guard struct {
	mu    sync.Mutex
	locks map[Key]*sync.Mutex
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{locks: make(map[Key]*sync.Mutex)}
}

// Acquire locks the given resources and returns a release function.
// Duplicate keys are collapsed, and locks are always taken in a global
// order (kind, then ID) so a dock-to-dock move cannot deadlock against the
// reverse move.
func (g *Guard) Acquire(keys ...Key) (release func()) {
	ordered := dedupeAndSort(keys)

	locks := make([]*sync.Mutex, 0, len(ordered))
	for _, k := range ordered {
		locks = append(locks, g.lockFor(k))
	}

	for _, l := range locks {
		l.Lock()
	}

	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

func (g *Guard) lockFor(k Key) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.locks[k]
	if !ok {
		l = &sync.Mutex{}
		g.locks[k] = l
	}
	return l
}

func dedupeAndSort(keys []Key) []Key {
	seen := make(map[Key]struct{}, len(keys))
	ordered := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ordered = append(ordered, k)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Kind != ordered[j].Kind {
			return ordered[i].Kind < ordered[j].Kind
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}
