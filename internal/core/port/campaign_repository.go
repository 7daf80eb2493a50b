package port

import (
	"context"

	"anonvote/internal/core/domain"
)

// CampaignRepository persists campaigns. It is an outbound port.
// Implementations must serialize writes per campaign: Update runs fn with
// exclusive access and stores the result only when fn returns nil.
type CampaignRepository interface {
	// Create reserves the next campaign number, builds the campaign with it
	// and stores it. Numbers start at zero and have no gaps: a failed build
	// or store releases the number.
	Create(ctx context.Context, build func(number int) (*domain.Campaign, error)) (*domain.Campaign, error)

	// Get returns a snapshot of the campaign without its voter record
	// (VotersCount is set). Unknown addresses yield domain.ErrCampaignNotFound.
	Get(ctx context.Context, addr domain.Address) (*domain.Campaign, error)

	// Update applies fn atomically. The campaign passed to fn has the voter
	// record of call.Caller loaded, which is all a single call can consult.
	// Votes recorded by fn are stamped with call.Now.
	Update(ctx context.Context, addr domain.Address, call domain.Call, fn func(c *domain.Campaign) error) error

	// HasVoted reports the voter record entry of id.
	HasVoted(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error)

	// List returns metadata of all campaigns ordered by number.
	List(ctx context.Context) ([]domain.CampaignMetadata, error)

	// GetByNumber returns metadata by campaign number or domain.ErrOutOfRange.
	GetByNumber(ctx context.Context, number int) (domain.CampaignMetadata, error)

	// Count returns the number of stored campaigns.
	Count(ctx context.Context) (int, error)
}
