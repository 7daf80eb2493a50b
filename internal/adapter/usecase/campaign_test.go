package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anonvote/internal/adapter/memory"
	"anonvote/internal/core/domain"
	"anonvote/internal/core/port/mocks"
)

type fixture struct {
	clock   *fakeClock
	groups  *memory.GroupService
	factory *CampaignFactory
	svc     *CampaignUseCase
	addr    domain.Address
	start   time.Time
}

// newFixture creates the "Presidential Election" campaign starting one
// minute after the current time, as a deployment would.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	fx := &fixture{
		clock:  &fakeClock{now: now},
		groups: memory.NewGroupService(),
		start:  now.Add(time.Minute),
	}
	repo := memory.NewCampaignRepository()
	fx.factory = NewCampaignFactory(repo, fx.groups, fx.clock, discard)
	fx.svc = NewCampaignUseCase(repo, fx.groups, fx.clock, discard)

	p := validParams("Presidential Election")
	p.StartTime = fx.start
	addr, err := fx.factory.CreateCampaign(context.Background(), "owner", p)
	require.NoError(t, err)
	fx.addr = addr
	return fx
}

func (fx *fixture) at(offset time.Duration) {
	fx.clock.Set(fx.start.Add(offset))
}

func TestCampaignInfo(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	s, err := fx.svc.Summary(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("owner"), s.Owner)
	assert.Equal(t, "Presidential Election", s.Name)
	assert.Equal(t, 10, s.DurationMinutes)
	assert.Equal(t, 0, s.Number)
	assert.True(t, s.StartTime.Equal(fx.start))
	assert.True(t, s.EndTime.Equal(fx.start.Add(10*time.Minute)))
	assert.Equal(t, domain.StatusPending, s.Status)
	assert.Equal(t, 3, s.CandidatesCount)

	c, err := fx.svc.Candidate(ctx, fx.addr, 0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)

	_, err = fx.svc.Candidate(ctx, fx.addr, 3)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	n, err := fx.svc.CandidatesCount(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestVoteScenario(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.at(time.Minute)

	require.NoError(t, fx.svc.Vote(ctx, "voter1", fx.addr, 1))

	c, err := fx.svc.Candidate(ctx, fx.addr, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.VoteCount)

	err = fx.svc.Vote(ctx, "voter1", fx.addr, 0)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	voters, err := fx.svc.VotersCount(ctx, fx.addr)
	require.NoError(t, err)
	assert.EqualValues(t, 1, voters)

	voted, err := fx.svc.IsVoted(ctx, fx.addr, "voter1")
	require.NoError(t, err)
	assert.True(t, voted)
	voted, err = fx.svc.IsVoted(ctx, fx.addr, "voter2")
	require.NoError(t, err)
	assert.False(t, voted)

	require.NoError(t, fx.svc.Vote(ctx, "voter2", fx.addr, 2))
	all, err := fx.svc.Candidates(ctx, fx.addr)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.EqualValues(t, []int64{0, 1, 1}, []int64{all[0].VoteCount, all[1].VoteCount, all[2].VoteCount})
}

func TestVoteBeforeStartAndInvalidCandidate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	err := fx.svc.Vote(ctx, "voter2", fx.addr, 1)
	assert.ErrorIs(t, err, domain.ErrVotingNotStarted)

	fx.at(time.Minute)
	err = fx.svc.Vote(ctx, "voter2", fx.addr, 99)
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)

	voted, err := fx.svc.IsVoted(ctx, fx.addr, "voter2")
	require.NoError(t, err)
	assert.False(t, voted)

	fx.at(10 * time.Minute)
	err = fx.svc.Vote(ctx, "voter2", fx.addr, 1)
	assert.ErrorIs(t, err, domain.ErrVotingEnded)
}

func TestVotingStatusAndRemainingTime(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	fx.at(-30 * time.Second)
	open, err := fx.svc.VotingStatus(ctx, fx.addr)
	require.NoError(t, err)
	assert.False(t, open)

	fx.at(30 * time.Second)
	open, err = fx.svc.VotingStatus(ctx, fx.addr)
	require.NoError(t, err)
	assert.True(t, open)
	remaining, err := fx.svc.RemainingTime(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, 9*time.Minute+30*time.Second, remaining)

	fx.at(10*time.Minute + 10*time.Second)
	open, err = fx.svc.VotingStatus(ctx, fx.addr)
	require.NoError(t, err)
	assert.False(t, open)
	remaining, err = fx.svc.RemainingTime(ctx, fx.addr)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestAddCandidateOwnerOnly(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	_, err := fx.svc.AddCandidate(ctx, "voter1", fx.addr, "Diana")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	n, err := fx.svc.CandidatesCount(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	id, err := fx.svc.AddCandidate(ctx, "owner", fx.addr, "Diana")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	n, err = fx.svc.CandidatesCount(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// votes for the new candidate count like any other
	fx.at(time.Minute)
	require.NoError(t, fx.svc.Vote(ctx, "voter1", fx.addr, 3))
	c, err := fx.svc.Candidate(ctx, fx.addr, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.VoteCount)
}

func TestIsOwner(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	ok, err := fx.svc.IsOwner(ctx, fx.addr, "owner")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fx.svc.IsOwner(ctx, fx.addr, "voter1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJoinGroup(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	commitment, err := domain.ParseCommitment("0x1234abcd")
	require.NoError(t, err)
	require.NoError(t, fx.svc.JoinGroup(ctx, fx.addr, commitment))

	member, err := fx.svc.IsMember(ctx, fx.addr, commitment)
	require.NoError(t, err)
	assert.True(t, member)

	info, err := fx.svc.Group(ctx, fx.addr)
	require.NoError(t, err)
	assert.NotZero(t, info.GroupID)
	assert.Equal(t, 1, info.MemberCount)

	err = fx.svc.JoinGroup(ctx, fx.addr, commitment)
	assert.ErrorIs(t, err, domain.ErrMemberExists)
	info, err = fx.svc.Group(ctx, fx.addr)
	require.NoError(t, err)
	assert.Equal(t, 1, info.MemberCount)

	// joining does not touch the voter record
	voters, err := fx.svc.VotersCount(ctx, fx.addr)
	require.NoError(t, err)
	assert.Zero(t, voters)
}

func TestJoinGroupIsolatedPerCampaign(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	other, err := fx.factory.CreateCampaign(ctx, "someone", validParams("other"))
	require.NoError(t, err)

	require.NoError(t, fx.svc.JoinGroup(ctx, fx.addr, "77"))
	require.NoError(t, fx.svc.JoinGroup(ctx, other, "77"))

	member, err := fx.svc.IsMember(ctx, other, "78")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestJoinGroupForwardsToGroupService(t *testing.T) {
	ctx := context.Background()
	groups := mocks.NewMockGroupService(t)
	groups.EXPECT().CreateGroup(mock.Anything).Return(domain.GroupID(42), nil).Once()
	groups.EXPECT().AddMember(mock.Anything, domain.GroupID(42), domain.Commitment("5")).Return(nil).Once()
	groups.EXPECT().AddMember(mock.Anything, domain.GroupID(42), domain.Commitment("5")).Return(domain.ErrMemberExists).Once()

	repo := memory.NewCampaignRepository()
	f := NewCampaignFactory(repo, groups, nil, discard)
	svc := NewCampaignUseCase(repo, groups, nil, discard)

	addr, err := f.CreateCampaign(ctx, "owner", validParams("mocked"))
	require.NoError(t, err)
	require.NoError(t, svc.JoinGroup(ctx, addr, "5"))
	assert.ErrorIs(t, svc.JoinGroup(ctx, addr, "5"), domain.ErrMemberExists)
}

func TestPrivateCampaign(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	p := validParams("board")
	p.StartTime = fx.start
	p.Private = true
	p.EligibleVoters = []domain.Identity{"alice", "bob"}
	addr, err := fx.factory.CreateCampaign(ctx, "owner", p)
	require.NoError(t, err)

	fx.at(time.Minute)
	assert.ErrorIs(t, fx.svc.Vote(ctx, "mallory", addr, 0), domain.ErrNotEligible)
	require.NoError(t, fx.svc.Vote(ctx, "alice", addr, 0))

	ok, err := fx.svc.IsEligible(ctx, addr, "bob")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fx.svc.IsEligible(ctx, addr, "mallory")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownCampaign(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	addr := domain.NewAddress()

	err := fx.svc.Vote(ctx, "v", addr, 0)
	assert.True(t, errors.Is(err, domain.ErrCampaignNotFound))
	_, err = fx.svc.Summary(ctx, addr)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assert.ErrorIs(t, fx.svc.JoinGroup(ctx, addr, "1"), domain.ErrCampaignNotFound)
}
