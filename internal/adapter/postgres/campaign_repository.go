package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"anonvote/internal/core/domain"
	"anonvote/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignRepository using pgxpool. The
// campaigns row doubles as the per-campaign write lock (SELECT ... FOR
// UPDATE inside Update).
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const selectCampaign = `
        SELECT address, number, owner, name, description, start_time,
               duration_minutes, date, group_id, private, eligible_voters, voters_count
        FROM campaigns
        WHERE address = $1`

// Create takes the next number from campaign_counter. The counter row is
// locked until commit and rolled back with the transaction, so numbers stay
// gap-free.
func (r *CampaignRepository) Create(ctx context.Context, build func(number int) (*domain.Campaign, error)) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var number int
		err := tx.QueryRow(ctx, `UPDATE campaign_counter SET next_number = next_number + 1 RETURNING next_number - 1`).Scan(&number)
		if err != nil {
			return err
		}
		if c, err = build(number); err != nil {
			return err
		}
		eligible := make([]string, 0, len(c.Eligible))
		for id := range c.Eligible {
			eligible = append(eligible, string(id))
		}
		_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (address, number, owner, name, description, start_time, duration_minutes, date, group_id, private, eligible_voters, voters_count)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,0)`,
			string(c.Address), c.Number, string(c.Owner), c.Name, c.Description, c.StartTime,
			c.DurationMinutes, c.Date, int64(c.GroupID), c.Private, eligible)
		if err != nil {
			return err
		}
		rows := make([][]any, 0, len(c.Candidates))
		for i, cand := range c.Candidates {
			rows = append(rows, []any{string(c.Address), i, cand.Name, cand.VoteCount})
		}
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"candidates"},
			[]string{"campaign_address", "id", "name", "vote_count"}, pgx.CopyFromRows(rows))
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the campaign without its voter record.
func (r *CampaignRepository) Get(ctx context.Context, addr domain.Address) (*domain.Campaign, error) {
	return loadCampaign(ctx, r.pool, selectCampaign, addr)
}

// Update locks the campaign row, loads the caller's voter entry and writes back
// only what fn changed: new candidates, changed tallies, the caller's voter
// entry and the voters counter.
func (r *CampaignRepository) Update(ctx context.Context, addr domain.Address, call domain.Call, fn func(c *domain.Campaign) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		c, err := loadCampaign(ctx, tx, selectCampaign+` FOR UPDATE`, addr)
		if err != nil {
			return err
		}
		var voted bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM voters WHERE campaign_address = $1 AND identity = $2)`,
			string(addr), string(call.Caller)).Scan(&voted)
		if err != nil {
			return err
		}
		if voted {
			c.Voters[call.Caller] = true
		}
		before := c.Clone()

		if err = fn(c); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for i, cand := range c.Candidates {
			switch {
			case i >= len(before.Candidates):
				batch.Queue(`INSERT INTO candidates (campaign_address, id, name, vote_count) VALUES ($1,$2,$3,$4)`,
					string(addr), i, cand.Name, cand.VoteCount)
			case cand.VoteCount != before.Candidates[i].VoteCount:
				batch.Queue(`UPDATE candidates SET vote_count = $3 WHERE campaign_address = $1 AND id = $2`,
					string(addr), i, cand.VoteCount)
			}
		}
		for id, v := range c.Voters {
			if v && !before.Voters[id] {
				batch.Queue(`INSERT INTO voters (campaign_address, identity, voted_at) VALUES ($1,$2,$3)`,
					string(addr), string(id), call.Now.UTC())
			}
		}
		if c.VotersCount != before.VotersCount {
			batch.Queue(`UPDATE campaigns SET voters_count = $2 WHERE address = $1`, string(addr), c.VotersCount)
		}
		if batch.Len() == 0 {
			return nil
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

func (r *CampaignRepository) HasVoted(ctx context.Context, addr domain.Address, id domain.Identity) (bool, error) {
	var exists, voted bool
	err := r.pool.QueryRow(ctx, `SELECT
    EXISTS (SELECT 1 FROM campaigns WHERE address = $1),
    EXISTS (SELECT 1 FROM voters WHERE campaign_address = $1 AND identity = $2)`,
		string(addr), string(id)).Scan(&exists, &voted)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrCampaignNotFound
	}
	return voted, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.CampaignMetadata, error) {
	rows, err := r.pool.Query(ctx, `SELECT number, address, name, description, duration_minutes, start_time, date
        FROM campaigns ORDER BY number`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMetadata)
}

func (r *CampaignRepository) GetByNumber(ctx context.Context, number int) (domain.CampaignMetadata, error) {
	rows, err := r.pool.Query(ctx, `SELECT number, address, name, description, duration_minutes, start_time, date
        FROM campaigns WHERE number = $1`, number)
	if err != nil {
		return domain.CampaignMetadata{}, err
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanMetadata)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CampaignMetadata{}, fmt.Errorf("%w: campaign %d", domain.ErrOutOfRange, number)
	}
	return m, err
}

func (r *CampaignRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

func scanMetadata(row pgx.CollectableRow) (domain.CampaignMetadata, error) {
	var (
		m    domain.CampaignMetadata
		addr string
	)
	err := row.Scan(&m.Number, &addr, &m.Name, &m.Description, &m.DurationMinutes, &m.StartTime, &m.Date)
	m.Address = domain.Address(addr)
	m.StartTime = m.StartTime.UTC()
	return m, err
}

func loadCampaign(ctx context.Context, q querier, query string, addr domain.Address) (*domain.Campaign, error) {
	var (
		c        domain.Campaign
		address  string
		owner    string
		groupID  int64
		eligible []string
	)
	err := q.QueryRow(ctx, query, string(addr)).Scan(
		&address,
		&c.Number,
		&owner,
		&c.Name,
		&c.Description,
		&c.StartTime,
		&c.DurationMinutes,
		&c.Date,
		&groupID,
		&c.Private,
		&eligible,
		&c.VotersCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Address = domain.Address(address)
	c.Owner = domain.Identity(owner)
	c.GroupID = domain.GroupID(groupID)
	c.StartTime = c.StartTime.UTC()
	c.Eligible = make(map[domain.Identity]struct{}, len(eligible))
	for _, id := range eligible {
		c.Eligible[domain.Identity(id)] = struct{}{}
	}
	c.Voters = make(map[domain.Identity]bool)

	rows, err := q.Query(ctx, `SELECT name, vote_count FROM candidates WHERE campaign_address = $1 ORDER BY id`, address)
	if err != nil {
		return nil, err
	}
	c.Candidates, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Candidate])
	if err != nil {
		return nil, err
	}
	return &c, nil
}
