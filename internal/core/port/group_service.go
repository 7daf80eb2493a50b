package port

import (
	"context"

	"anonvote/internal/core/domain"
)

// GroupService is the anonymous membership capability campaigns delegate
// to. Groups are partitioned by id, so campaigns never observe each other's
// members. Proof verification lives behind this boundary and is not part of
// the election core.
type GroupService interface {
	// CreateGroup allocates a new, empty group with a non-zero id.
	CreateGroup(ctx context.Context) (domain.GroupID, error)
	IsGroup(ctx context.Context, id domain.GroupID) (bool, error)
	// AddMember fails with domain.ErrMemberExists when commitment is already
	// a member and domain.ErrGroupNotFound for unknown groups.
	AddMember(ctx context.Context, id domain.GroupID, commitment domain.Commitment) error
	IsMember(ctx context.Context, id domain.GroupID, commitment domain.Commitment) (bool, error)
	MemberCount(ctx context.Context, id domain.GroupID) (int, error)
}
