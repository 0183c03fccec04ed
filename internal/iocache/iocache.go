// Package iocache persists render history across invocations.
package iocache

import (
	"sync"

	"github.com/huangsam/gantt/internal/contract"
)

// HistoryStoreManager owns the HistoryStore used by the current process.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.HistoryManager = &HistoryStoreManager{} // Compile-time check

// GetHistoryStore returns the render HistoryStore.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
