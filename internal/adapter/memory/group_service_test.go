package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonvote/internal/core/domain"
)

func TestGroupService(t *testing.T) {
	ctx := context.Background()
	svc := NewGroupService()

	g1, err := svc.CreateGroup(ctx)
	require.NoError(t, err)
	g2, err := svc.CreateGroup(ctx)
	require.NoError(t, err)
	assert.NotZero(t, g1)
	assert.NotEqual(t, g1, g2)

	ok, err := svc.IsGroup(ctx, g1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.IsGroup(ctx, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.AddMember(ctx, g1, "123"))
	assert.ErrorIs(t, svc.AddMember(ctx, g1, "123"), domain.ErrMemberExists)
	// groups are partitioned
	require.NoError(t, svc.AddMember(ctx, g2, "123"))

	n, err := svc.MemberCount(ctx, g1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err = svc.IsMember(ctx, g1, "123")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.IsMember(ctx, g1, "456")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.AddMember(ctx, 99, "1"), domain.ErrGroupNotFound)
	_, err = svc.MemberCount(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}
