package tags

import "sync"

// moduleLocks hands out one mutex per module so concurrent pipeline calls for
// the same module cannot interleave their read-modify-write cycles.
type moduleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newModuleLocks() *moduleLocks {
	return &moduleLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *moduleLocks) get(moduleID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[moduleID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[moduleID] = lock
	}
	return lock
}
