package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"anonvote/internal/core/domain"
	"anonvote/internal/core/port"
)

// CampaignUseCase runs the operations of individual campaigns. Mutations go
// through CampaignRepository.Update, which provides the per-campaign write
// lock; the domain aggregate decides whether a call is allowed.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	groups port.GroupService
	clock  port.Clock
	logger *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo port.CampaignRepository, groups port.GroupService, clock port.Clock, logger *slog.Logger) *CampaignUseCase {
	if clock == nil {
		clock = port.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{repo: repo, groups: groups, clock: clock, logger: logger}
}

func (u *CampaignUseCase) call(caller domain.Identity) domain.Call {
	return domain.Call{Caller: caller, Now: u.clock.Now()}
}

// Vote casts caller's ballot. The clock is read once so the window check and
// the stored vote time agree.
func (u *CampaignUseCase) Vote(ctx context.Context, caller domain.Identity, addr domain.Address, candidateID int) error {
	if caller == "" {
		return fmt.Errorf("%w: empty caller", domain.ErrInvalidInput)
	}
	var votersCount int64
	call := u.call(caller)
	err := u.repo.Update(ctx, addr, call, func(c *domain.Campaign) error {
		if err := c.Vote(call, candidateID); err != nil {
			return err
		}
		votersCount = c.VotersCount
		return nil
	})
	if err != nil {
		return err
	}
	u.logger.Info("vote accepted",
		slog.String("address", string(addr)),
		slog.Int64("voters", votersCount),
	)
	return nil
}

// AddCandidate appends a candidate and returns its id.
func (u *CampaignUseCase) AddCandidate(ctx context.Context, caller domain.Identity, addr domain.Address, name string) (int, error) {
	var id int
	call := u.call(caller)
	err := u.repo.Update(ctx, addr, call, func(c *domain.Campaign) error {
		var err error
		id, err = c.AddCandidate(call, name)
		return err
	})
	if err != nil {
		return 0, err
	}
	u.logger.Info("candidate added",
		slog.String("address", string(addr)),
		slog.Int("candidate_id", id),
	)
	return id, nil
}

// JoinGroup forwards the commitment to the group linked to the campaign.
// Duplicate commitments are rejected by the group service.
func (u *CampaignUseCase) JoinGroup(ctx context.Context, addr domain.Address, commitment domain.Commitment) error {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return err
	}
	if err = u.groups.AddMember(ctx, c.GroupID, commitment); err != nil {
		return err
	}
	u.logger.Info("group member added",
		slog.String("address", string(addr)),
		slog.Uint64("group_id", uint64(c.GroupID)),
	)
	return nil
}

func (u *CampaignUseCase) VotingStatus(ctx context.Context, addr domain.Address) (bool, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return false, err
	}
	return c.VotingOpen(u.clock.Now()), nil
}

func (u *CampaignUseCase) RemainingTime(ctx context.Context, addr domain.Address) (time.Duration, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return 0, err
	}
	return c.RemainingTime(u.clock.Now()), nil
}

func (u *CampaignUseCase) Candidate(ctx context.Context, addr domain.Address, id int) (domain.Candidate, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return domain.Candidate{}, err
	}
	return c.Candidate(id)
}

func (u *CampaignUseCase) CandidatesCount(ctx context.Context, addr domain.Address) (int, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return 0, err
	}
	return len(c.Candidates), nil
}

// Candidates returns every candidate with its tally, ordered by id.
func (u *CampaignUseCase) Candidates(ctx context.Context, addr domain.Address) ([]domain.Candidate, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return nil, err
	}
	return c.Candidates, nil
}

func (u *CampaignUseCase) VotersCount(ctx context.Context, addr domain.Address) (int64, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return 0, err
	}
	return c.VotersCount, nil
}

func (u *CampaignUseCase) Summary(ctx context.Context, addr domain.Address) (*port.CampaignSummary, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	return &port.CampaignSummary{
		Address:         c.Address,
		Number:          c.Number,
		Owner:           c.Owner,
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime(),
		Date:            c.Date,
		GroupID:         c.GroupID,
		Private:         c.Private,
		Status:          c.Status(now),
		Remaining:       c.RemainingTime(now),
		CandidatesCount: len(c.Candidates),
		VotersCount:     c.VotersCount,
	}, nil
}

func (u *CampaignUseCase) IsOwner(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return false, err
	}
	return c.IsOwner(id), nil
}

func (u *CampaignUseCase) IsVoted(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error) {
	return u.repo.HasVoted(ctx, addr, id)
}

func (u *CampaignUseCase) IsEligible(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return false, err
	}
	return c.IsEligible(id), nil
}

func (u *CampaignUseCase) Group(ctx context.Context, addr domain.Address) (*port.GroupInfo, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return nil, err
	}
	n, err := u.groups.MemberCount(ctx, c.GroupID)
	if err != nil {
		return nil, err
	}
	return &port.GroupInfo{GroupID: c.GroupID, MemberCount: n}, nil
}

func (u *CampaignUseCase) IsMember(ctx context.Context, addr domain.Address, commitment domain.Commitment) (bool, error) {
	c, err := u.repo.Get(ctx, addr)
	if err != nil {
		return false, err
	}
	return u.groups.IsMember(ctx, c.GroupID, commitment)
}
