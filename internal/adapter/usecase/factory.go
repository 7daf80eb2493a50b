package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"anonvote/internal/core/domain"
	"anonvote/internal/core/port"
)

// CampaignFactory creates campaigns and answers registry queries. It owns
// no state of its own: numbering and indexing live in the repository.
type CampaignFactory struct {
	repo   port.CampaignRepository
	groups port.GroupService
	clock  port.Clock
	logger *slog.Logger
}

var _ port.CampaignFactory = (*CampaignFactory)(nil)

// NewCampaignFactory wires a factory. A nil clock means the wall clock and
// a nil logger means slog.Default.
func NewCampaignFactory(repo port.CampaignRepository, groups port.GroupService, clock port.Clock, logger *slog.Logger) *CampaignFactory {
	if clock == nil {
		clock = port.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignFactory{repo: repo, groups: groups, clock: clock, logger: logger}
}

// CreateCampaign validates params before touching the group service, so an
// invalid request has no side effects at all.
func (f *CampaignFactory) CreateCampaign(ctx context.Context, caller domain.Identity, params domain.CampaignParams) (domain.Address, error) {
	if caller == "" {
		return "", fmt.Errorf("%w: empty caller", domain.ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return "", err
	}
	groupID, err := f.groups.CreateGroup(ctx)
	if err != nil {
		return "", fmt.Errorf("create group: %w", err)
	}

	call := domain.Call{Caller: caller, Now: f.clock.Now()}
	addr := domain.NewAddress()
	c, err := f.repo.Create(ctx, func(number int) (*domain.Campaign, error) {
		return domain.NewCampaign(call, params, addr, number, groupID)
	})
	if err != nil {
		return "", fmt.Errorf("store campaign: %w", err)
	}

	f.logger.Info("campaign created",
		slog.String("address", string(c.Address)),
		slog.Int("number", c.Number),
		slog.Uint64("group_id", uint64(c.GroupID)),
		slog.Int("candidates", len(c.Candidates)),
		slog.Time("start_time", c.StartTime),
		slog.Int("duration_minutes", c.DurationMinutes),
	)
	return c.Address, nil
}

func (f *CampaignFactory) DeployedCampaigns(ctx context.Context) ([]domain.Address, error) {
	list, err := f.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	addrs := make([]domain.Address, 0, len(list))
	for _, m := range list {
		addrs = append(addrs, m.Address)
	}
	return addrs, nil
}

func (f *CampaignFactory) CampaignByID(ctx context.Context, id int) (domain.CampaignMetadata, error) {
	return f.repo.GetByNumber(ctx, id)
}

func (f *CampaignFactory) CampaignAddressByID(ctx context.Context, id int) (domain.Address, error) {
	m, err := f.repo.GetByNumber(ctx, id)
	if err != nil {
		return "", err
	}
	return m.Address, nil
}

func (f *CampaignFactory) CampaignCount(ctx context.Context) (int, error) {
	return f.repo.Count(ctx)
}
