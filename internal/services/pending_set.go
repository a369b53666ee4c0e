package services

import (
	"sort"
	"sync"

	"transaction-analyzer/internal/models"
)

// PendingSet is the set of record ids whose delete is still in flight
type PendingSet struct {
	mu  sync.RWMutex
	ids map[models.RecordID]struct{}
}

func NewPendingSet() PendingSetInterface {
	return &PendingSet{
		ids: make(map[models.RecordID]struct{}),
	}
}

func (p *PendingSet) Begin(id models.RecordID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids[id] = struct{}{}
}

// TryBegin inserts id and reports false when it was already pending
func (p *PendingSet) TryBegin(id models.RecordID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.ids[id]; ok {
		return false
	}
	p.ids[id] = struct{}{}
	return true
}

func (p *PendingSet) End(id models.RecordID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ids, id)
}

func (p *PendingSet) IsPending(id models.RecordID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.ids[id]
	return ok
}

// IDs returns the pending ids in sorted order
func (p *PendingSet) IDs() []models.RecordID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]models.RecordID, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *PendingSet) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.ids)
}
