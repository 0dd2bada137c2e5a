package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questbets/repository/testutil"
)

func TestBetRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	t.Run("insert assigns identifiers", func(t *testing.T) {
		bet := testutil.CreateTestBet("first_question")

		err := repo.Upsert(ctx, bet)
		require.NoError(t, err)
		assert.NotEmpty(t, bet.ID)
		assert.False(t, bet.CreatedAt.IsZero())
	})

	t.Run("upsert on same natural key updates in place", func(t *testing.T) {
		original := testutil.CreateTestBet("repeated_question")
		err := repo.Upsert(ctx, original)
		require.NoError(t, err)

		updated := testutil.CreateTestBetWithTitle("repeated_question", "Updated title")
		err = repo.Upsert(ctx, updated)
		require.NoError(t, err)

		// Row identity is stable across upserts
		assert.Equal(t, original.ID, updated.ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)

		bets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, bets, count)

		var found bool
		for _, b := range bets {
			if b.BetID == "repeated_question" {
				found = true
				assert.Equal(t, "Updated title", b.Title)
			}
		}
		assert.True(t, found)
	})
}

func TestBetRepository_GetAll(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		bets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, bets)
	})

	t.Run("returns all seeded bets", func(t *testing.T) {
		ids := []string{"question_a", "question_b", "question_c"}
		for _, id := range ids {
			require.NoError(t, repo.Upsert(ctx, testutil.CreateTestBet(id)))
		}

		bets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, bets, 3)

		got := make(map[string]bool)
		for _, b := range bets {
			got[b.BetID] = true
			assert.NotEmpty(t, b.Title)
			require.NotNil(t, b.ResolutionURL)
		}
		for _, id := range ids {
			assert.True(t, got[id])
		}

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
