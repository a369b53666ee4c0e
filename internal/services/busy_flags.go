package services

import (
	"sync"

	"transaction-analyzer/internal/models"
)

type BusyFlags struct {
	mu    sync.RWMutex
	flags map[models.BusyFlag]bool
}

func NewBusyFlags() BusyFlagsInterface {
	return &BusyFlags{
		flags: make(map[models.BusyFlag]bool, len(models.AllBusyFlags)),
	}
}

// TryBegin raises flag, refusing when it is already raised
func (b *BusyFlags) TryBegin(flag models.BusyFlag) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flags[flag] {
		return false
	}
	b.flags[flag] = true
	return true
}

func (b *BusyFlags) End(flag models.BusyFlag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flags[flag] = false
}

func (b *BusyFlags) IsSet(flag models.BusyFlag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.flags[flag]
}

// Snapshot reports every known flag, raised or not
func (b *BusyFlags) Snapshot() map[models.BusyFlag]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[models.BusyFlag]bool, len(models.AllBusyFlags))
	for _, flag := range models.AllBusyFlags {
		out[flag] = b.flags[flag]
	}
	return out
}
