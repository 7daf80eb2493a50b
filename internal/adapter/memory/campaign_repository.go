package memory

import (
	"context"
	"fmt"
	"sync"

	"anonvote/internal/core/domain"
)

// CampaignRepository is an arena of campaigns addressed by both their
// address and their number. Each campaign carries its own lock so writes to
// one campaign never wait on another.
type CampaignRepository struct {
	mu      sync.RWMutex
	ordered []*entry
	byAddr  map[domain.Address]*entry
}

// entry guards c with mu. meta is set once in Create and never written
// again, so it is safe to read under the arena lock alone.
type entry struct {
	meta domain.CampaignMetadata

	mu sync.RWMutex
	c  *domain.Campaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{byAddr: make(map[domain.Address]*entry)}
}

// Create holds the arena lock across build so numbers are handed out
// without gaps.
func (r *CampaignRepository) Create(_ context.Context, build func(number int) (*domain.Campaign, error)) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := build(len(r.ordered))
	if err != nil {
		return nil, err
	}
	if _, ok := r.byAddr[c.Address]; ok {
		return nil, fmt.Errorf("campaign %s already exists", c.Address)
	}
	e := &entry{meta: c.Metadata(), c: c.Clone()}
	r.ordered = append(r.ordered, e)
	r.byAddr[c.Address] = e
	return c, nil
}

func (r *CampaignRepository) lookup(addr domain.Address) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byAddr[addr]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return e, nil
}

// Get returns a snapshot without the voter record.
func (r *CampaignRepository) Get(_ context.Context, addr domain.Address) (*domain.Campaign, error) {
	e, err := r.lookup(addr)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.c.Snapshot(), nil
}

// Update runs fn on a copy scoped to the caller's voter entry and swaps it in
// only if fn succeeds.
func (r *CampaignRepository) Update(_ context.Context, addr domain.Address, call domain.Call, fn func(c *domain.Campaign) error) error {
	e, err := r.lookup(addr)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := e.c.Snapshot()
	if e.c.Voters[call.Caller] {
		cp.Voters[call.Caller] = true
	}
	if err = fn(cp); err != nil {
		return err
	}
	voters := e.c.Voters
	for id, voted := range cp.Voters {
		if voted {
			voters[id] = true
		}
	}
	cp.Voters = voters
	e.c = cp
	return nil
}

func (r *CampaignRepository) HasVoted(_ context.Context, addr domain.Address, id domain.Identity) (bool, error) {
	e, err := r.lookup(addr)
	if err != nil {
		return false, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.c.Voters[id], nil
}

func (r *CampaignRepository) List(_ context.Context) ([]domain.CampaignMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.CampaignMetadata, 0, len(r.ordered))
	for _, e := range r.ordered {
		items = append(items, e.meta)
	}
	return items, nil
}

func (r *CampaignRepository) GetByNumber(_ context.Context, number int) (domain.CampaignMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if number < 0 || number >= len(r.ordered) {
		return domain.CampaignMetadata{}, fmt.Errorf("%w: campaign %d", domain.ErrOutOfRange, number)
	}
	return r.ordered[number].meta, nil
}

func (r *CampaignRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered), nil
}
