package postgres

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonvote/internal/config/configs"
	"anonvote/internal/core/domain"
	"anonvote/internal/db"
)

// testPool connects to TEST_PSQL_ADDRESS, migrates it and empties every
// table. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE anon_group_members, anon_groups, voters, candidates, campaigns RESTART IDENTITY`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `UPDATE campaign_counter SET next_number = 0`)
	require.NoError(t, err)
	return pool
}

var start = time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)

func create(t *testing.T, repo *CampaignRepository, groups *GroupService, p domain.CampaignParams) *domain.Campaign {
	t.Helper()
	ctx := context.Background()
	gid, err := groups.CreateGroup(ctx)
	require.NoError(t, err)
	c, err := repo.Create(ctx, func(number int) (*domain.Campaign, error) {
		return domain.NewCampaign(domain.Call{Caller: "owner"}, p, domain.NewAddress(), number, gid)
	})
	require.NoError(t, err)
	return c
}

func params(name string) domain.CampaignParams {
	return domain.CampaignParams{
		CandidateNames:  []string{"Alice", "Bob", "Charlie"},
		DurationMinutes: 10,
		Name:            name,
		Description:     "desc",
		StartTime:       start,
		Date:            "2026-07-01",
	}
}

func TestCampaignRepository(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewCampaignRepository(pool)
	groups := NewGroupService(pool)

	for i := 0; i < 3; i++ {
		c := create(t, repo, groups, params(fmt.Sprintf("c%d", i)))
		assert.Equal(t, i, c.Number)
	}

	// failed build releases the number
	_, err := repo.Create(ctx, func(int) (*domain.Campaign, error) { return nil, domain.ErrInvalidInput })
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	c := create(t, repo, groups, params("c3"))
	assert.Equal(t, 3, c.Number)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, c.Address, list[3].Address)

	_, err = repo.GetByNumber(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	got, err := repo.Get(ctx, c.Address)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("owner"), got.Owner)
	assert.True(t, got.StartTime.Equal(start))
	require.Len(t, got.Candidates, 3)
	assert.Equal(t, "Charlie", got.Candidates[2].Name)

	_, err = repo.Get(ctx, domain.NewAddress())
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestCampaignRepositoryUpdate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewCampaignRepository(pool)
	c := create(t, repo, NewGroupService(pool), params("update"))
	now := start.Add(time.Minute)

	vote := func(id domain.Identity, candidate int) error {
		call := domain.Call{Caller: id, Now: now}
		return repo.Update(ctx, c.Address, call, func(c *domain.Campaign) error {
			return c.Vote(call, candidate)
		})
	}
	require.NoError(t, vote("v1", 1))
	assert.ErrorIs(t, vote("v1", 0), domain.ErrAlreadyVoted)
	assert.ErrorIs(t, vote("v2", 7), domain.ErrInvalidCandidate)

	owner := domain.Call{Caller: "owner", Now: now}
	require.NoError(t, repo.Update(ctx, c.Address, owner, func(c *domain.Campaign) error {
		_, err := c.AddCandidate(owner, "Diana")
		return err
	}))

	got, err := repo.Get(ctx, c.Address)
	require.NoError(t, err)
	require.Len(t, got.Candidates, 4)
	assert.EqualValues(t, 1, got.Candidates[1].VoteCount)
	assert.EqualValues(t, 1, got.VotersCount)

	voted, err := repo.HasVoted(ctx, c.Address, "v1")
	require.NoError(t, err)
	assert.True(t, voted)
	voted, err = repo.HasVoted(ctx, c.Address, "v2")
	require.NoError(t, err)
	assert.False(t, voted)

	var votedAt time.Time
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT voted_at FROM voters WHERE campaign_address = $1 AND identity = $2`,
		string(c.Address), "v1").Scan(&votedAt))
	assert.True(t, votedAt.Equal(now), "voted_at %s, want %s", votedAt, now)
}

func TestCampaignRepositoryConcurrentVotes(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewCampaignRepository(pool)
	c := create(t, repo, NewGroupService(pool), params("concurrent"))
	now := start.Add(time.Minute)

	const voters = 20
	var wg sync.WaitGroup
	wg.Add(voters)
	for i := 0; i < voters; i++ {
		i := i
		go func() {
			defer wg.Done()
			id := domain.Identity(fmt.Sprintf("voter-%d", i))
			call := domain.Call{Caller: id, Now: now}
			_ = repo.Update(ctx, c.Address, call, func(c *domain.Campaign) error {
				return c.Vote(call, i%3)
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, c.Address)
	require.NoError(t, err)
	assert.EqualValues(t, voters, got.VotersCount)
	var total int64
	for _, cand := range got.Candidates {
		total += cand.VoteCount
	}
	assert.EqualValues(t, voters, total)
}

func TestGroupService(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	svc := NewGroupService(pool)

	gid, err := svc.CreateGroup(ctx)
	require.NoError(t, err)
	assert.NotZero(t, gid)

	ok, err := svc.IsGroup(ctx, gid)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.AddMember(ctx, gid, "12345"))
	assert.ErrorIs(t, svc.AddMember(ctx, gid, "12345"), domain.ErrMemberExists)
	assert.ErrorIs(t, svc.AddMember(ctx, gid+100, "1"), domain.ErrGroupNotFound)

	n, err := svc.MemberCount(ctx, gid)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	member, err := svc.IsMember(ctx, gid, "12345")
	require.NoError(t, err)
	assert.True(t, member)

	_, err = svc.IsMember(ctx, gid+100, "1")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}
