package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"anonvote/internal/core/domain"
	"anonvote/internal/core/port"
)

var _ port.GroupService = (*GroupService)(nil)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// GroupService stores anonymous groups as sets of identity commitments.
// Membership uniqueness is enforced by the primary key of
// anon_group_members.
type GroupService struct {
	pool *pgxpool.Pool
}

func NewGroupService(pool *pgxpool.Pool) *GroupService {
	return &GroupService{pool: pool}
}

func (s *GroupService) CreateGroup(ctx context.Context) (domain.GroupID, error) {
	var id int64
	if err := s.pool.QueryRow(ctx, `INSERT INTO anon_groups DEFAULT VALUES RETURNING id`).Scan(&id); err != nil {
		return 0, err
	}
	return domain.GroupID(id), nil
}

func (s *GroupService) IsGroup(ctx context.Context, id domain.GroupID) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM anon_groups WHERE id = $1)`, int64(id)).Scan(&ok)
	return ok, err
}

func (s *GroupService) AddMember(ctx context.Context, id domain.GroupID, commitment domain.Commitment) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO anon_group_members (group_id, commitment) VALUES ($1, $2)`,
		int64(id), string(commitment))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return domain.ErrMemberExists
		case foreignKeyViolation:
			return domain.ErrGroupNotFound
		}
	}
	return err
}

func (s *GroupService) IsMember(ctx context.Context, id domain.GroupID, commitment domain.Commitment) (bool, error) {
	var exists, member bool
	err := s.pool.QueryRow(ctx, `SELECT
    EXISTS (SELECT 1 FROM anon_groups WHERE id = $1),
    EXISTS (SELECT 1 FROM anon_group_members WHERE group_id = $1 AND commitment = $2)`,
		int64(id), string(commitment)).Scan(&exists, &member)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrGroupNotFound
	}
	return member, nil
}

func (s *GroupService) MemberCount(ctx context.Context, id domain.GroupID) (int, error) {
	var (
		exists bool
		n      int
	)
	err := s.pool.QueryRow(ctx, `SELECT
    EXISTS (SELECT 1 FROM anon_groups WHERE id = $1),
    (SELECT count(*) FROM anon_group_members WHERE group_id = $1)`, int64(id)).Scan(&exists, &n)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrGroupNotFound
	}
	return n, nil
}
