package port

import (
	"context"
	"time"

	"anonvote/internal/core/domain"
)

// CampaignFactory creates campaigns and indexes them by creation order. It
// is the primary port for everything that spans campaigns.
type CampaignFactory interface {
	// CreateCampaign creates a campaign owned by caller, registers a fresh
	// anonymous group for it and assigns the next campaign number. It
	// returns the address of the new campaign.
	CreateCampaign(ctx context.Context, caller domain.Identity, params domain.CampaignParams) (domain.Address, error)

	// DeployedCampaigns lists campaign addresses in creation order.
	DeployedCampaigns(ctx context.Context) ([]domain.Address, error)

	// CampaignByID returns metadata of the campaign numbered id, or
	// domain.ErrOutOfRange.
	CampaignByID(ctx context.Context, id int) (domain.CampaignMetadata, error)

	// CampaignAddressByID returns the address of the campaign numbered id,
	// or domain.ErrOutOfRange.
	CampaignAddressByID(ctx context.Context, id int) (domain.Address, error)

	// CampaignCount returns the number of created campaigns.
	CampaignCount(ctx context.Context) (int, error)
}

// CampaignUseCase exposes the operations of a single campaign. Every method
// reads the current time from the configured clock; mutating methods take
// the caller identity explicitly.
type CampaignUseCase interface {
	Vote(ctx context.Context, caller domain.Identity, addr domain.Address, candidateID int) error
	AddCandidate(ctx context.Context, caller domain.Identity, addr domain.Address, name string) (int, error)
	// JoinGroup adds commitment to the campaign's anonymous group. Any
	// caller may join; the commitment is not linked to the caller.
	JoinGroup(ctx context.Context, addr domain.Address, commitment domain.Commitment) error

	VotingStatus(ctx context.Context, addr domain.Address) (bool, error)
	RemainingTime(ctx context.Context, addr domain.Address) (time.Duration, error)
	Candidate(ctx context.Context, addr domain.Address, id int) (domain.Candidate, error)
	CandidatesCount(ctx context.Context, addr domain.Address) (int, error)
	Candidates(ctx context.Context, addr domain.Address) ([]domain.Candidate, error)
	VotersCount(ctx context.Context, addr domain.Address) (int64, error)
	Summary(ctx context.Context, addr domain.Address) (*CampaignSummary, error)
	IsOwner(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error)
	IsVoted(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error)
	IsEligible(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error)
	Group(ctx context.Context, addr domain.Address) (*GroupInfo, error)
	IsMember(ctx context.Context, addr domain.Address, commitment domain.Commitment) (bool, error)
}

// CampaignSummary is the read model of one campaign at a point in time.
// Status and Remaining are derived from the clock when the summary is built.
type CampaignSummary struct {
	Address         domain.Address
	Number          int
	Owner           domain.Identity
	Name            string
	Description     string
	DurationMinutes int
	StartTime       time.Time
	EndTime         time.Time
	Date            string
	GroupID         domain.GroupID
	Private         bool
	Status          domain.Status
	Remaining       time.Duration
	CandidatesCount int
	VotersCount     int64
}

// GroupInfo describes the anonymous group linked to a campaign.
type GroupInfo struct {
	GroupID     domain.GroupID
	MemberCount int
}
