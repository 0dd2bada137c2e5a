package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questbets/database"
	"questbets/repository/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates user with lowercased address", func(t *testing.T) {
		user, err := repo.Create(ctx, "0xABCDEF0123", testutil.StringPtr("disc#1"), nil)
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "0xabcdef0123", user.Address)
		require.NotNil(t, user.DiscordHandle)
		assert.Equal(t, "disc#1", *user.DiscordHandle)
		assert.Nil(t, user.XHandle)
		assert.Zero(t, user.Points)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate address rejected by unique constraint", func(t *testing.T) {
		_, err := repo.Create(ctx, "0xsame", nil, nil)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "0xSAME", nil, nil)
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))
	})
}

func TestUserRepository_GetByAddress(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	userBetRepo := NewUserBetRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown address returns nil without error", func(t *testing.T) {
		user, err := userRepo.GetByAddress(ctx, "0xnobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		created, err := userRepo.Create(ctx, "0xMiXeD", nil, testutil.StringPtr("@handle"))
		require.NoError(t, err)

		user, err := userRepo.GetByAddress(ctx, "0xmIxEd")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "0xmixed", user.Address)
	})

	t.Run("eagerly loads bet selections", func(t *testing.T) {
		bet := testutil.CreateTestBet("loaded_question")
		require.NoError(t, betRepo.Upsert(ctx, bet))

		created, err := userRepo.Create(ctx, "0xloader", nil, nil)
		require.NoError(t, err)

		ub := testutil.CreateTestUserBet(created.ID, bet.ID, "yes")
		require.NoError(t, userBetRepo.Create(ctx, ub))

		user, err := userRepo.GetByAddress(ctx, "0xloader")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Len(t, user.UserBets, 1)
		assert.Equal(t, "yes", user.UserBets[0].SelectedOutcome)
		require.NotNil(t, user.UserBets[0].Bet)
		assert.Equal(t, "loaded_question", user.UserBets[0].Bet.BetID)
	})
}

func TestUserRepository_GetLeaderboard(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty leaderboard", func(t *testing.T) {
		entries, err := repo.GetLeaderboard(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("ordered by points descending", func(t *testing.T) {
		for _, address := range []string{"0xlow", "0xhigh", "0xmid"} {
			_, err := repo.Create(ctx, address, nil, nil)
			require.NoError(t, err)
		}

		// Points are adjusted out of band for the campaign
		for address, points := range map[string]int64{"0xlow": 1, "0xhigh": 50, "0xmid": 10} {
			_, err := testDB.DB.Exec(ctx, `UPDATE users SET points = $1 WHERE address = $2`, points, address)
			require.NoError(t, err)
		}

		entries, err := repo.GetLeaderboard(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "0xhigh", entries[0].Address)
		assert.Equal(t, int64(50), entries[0].Points)
		assert.Equal(t, "0xmid", entries[1].Address)
		assert.Equal(t, "0xlow", entries[2].Address)
	})
}

func TestUserRepository_CountAndAddresses(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for _, address := range []string{"0xone", "0xtwo"} {
		_, err := repo.Create(ctx, address, nil, nil)
		require.NoError(t, err)
	}

	count, err = repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	addresses, err := repo.GetAllAddresses(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0xone", "0xtwo"}, addresses)
}
