package memory

import (
	"context"
	"sync"

	"anonvote/internal/core/domain"
)

// GroupService keeps anonymous groups as plain sets of identity commitments.
// It honours the membership contract without any proof machinery and is
// used for single-process deployments and tests.
type GroupService struct {
	mu     sync.RWMutex
	last   domain.GroupID
	groups map[domain.GroupID]map[domain.Commitment]struct{}
}

func NewGroupService() *GroupService {
	return &GroupService{groups: make(map[domain.GroupID]map[domain.Commitment]struct{})}
}

// CreateGroup hands out ids starting at 1.
func (s *GroupService) CreateGroup(_ context.Context) (domain.GroupID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	s.groups[s.last] = make(map[domain.Commitment]struct{})
	return s.last, nil
}

func (s *GroupService) IsGroup(_ context.Context, id domain.GroupID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.groups[id]
	return ok, nil
}

func (s *GroupService) AddMember(_ context.Context, id domain.GroupID, commitment domain.Commitment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.groups[id]
	if !ok {
		return domain.ErrGroupNotFound
	}
	if _, ok = members[commitment]; ok {
		return domain.ErrMemberExists
	}
	members[commitment] = struct{}{}
	return nil
}

func (s *GroupService) IsMember(_ context.Context, id domain.GroupID, commitment domain.Commitment) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members, ok := s.groups[id]
	if !ok {
		return false, domain.ErrGroupNotFound
	}
	_, ok = members[commitment]
	return ok, nil
}

func (s *GroupService) MemberCount(_ context.Context, id domain.GroupID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members, ok := s.groups[id]
	if !ok {
		return 0, domain.ErrGroupNotFound
	}
	return len(members), nil
}
