package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questbets/models"
)

func TestUserBetsService_GetUserBets_GlobalView(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	mockUserBetRepo := new(MockUserBetRepository)
	svc := NewUserBetsService(mockUserRepo, mockUserBetRepo)

	allBets := []*models.UserBet{
		{
			ID:              "ub-1",
			UserID:          "user-1",
			BetID:           "row-a",
			SelectedOutcome: "yes",
			User:            &models.User{ID: "user-1", Address: "0x1"},
			Bet:             &models.Bet{ID: "row-a", BetID: "a"},
		},
	}

	mockUserBetRepo.On("GetAllWithRelations", ctx).Return(allBets, nil)
	mockUserRepo.On("CountAll", ctx).Return(2, nil)
	mockUserRepo.On("GetAllAddresses", ctx).Return([]string{"0x1", "0x2"}, nil)

	view, err := svc.GetUserBets(ctx, "")
	require.NoError(t, err)

	global, ok := view.(models.GlobalUserBetsView)
	require.True(t, ok, "expected global view, got %T", view)
	assert.Equal(t, 2, global.TotalUsers)
	assert.Equal(t, []string{"0x1", "0x2"}, global.UserAddresses)
	assert.Equal(t, allBets, global.UserBets)
}

func TestUserBetsService_GetUserBets_SingleUser(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	mockUserBetRepo := new(MockUserBetRepository)
	svc := NewUserBetsService(mockUserRepo, mockUserBetRepo)

	user := &models.User{
		ID:            "user-1",
		Address:       "0x1",
		DiscordHandle: strPtr("disc"),
		XHandle:       strPtr("xh"),
		UserBets: []*models.UserBet{
			{SelectedOutcome: "yes", Bet: &models.Bet{BetID: "a"}},
			{SelectedOutcome: "no", Bet: &models.Bet{BetID: "b"}},
			{SelectedOutcome: "yes", Bet: &models.Bet{BetID: "c"}},
		},
	}

	mockUserRepo.On("GetByAddress", ctx, "0x1").Return(user, nil)

	view, err := svc.GetUserBets(ctx, "0x1")
	require.NoError(t, err)

	single, ok := view.(models.SingleUserBetsView)
	require.True(t, ok, "expected single-user view, got %T", view)
	assert.Equal(t, 1, single.TotalUsers)
	assert.Equal(t, []string{"0x1"}, single.UserAddresses)
	assert.Equal(t, []models.BetSelection{
		{BetID: "a", SelectedOutcome: "yes"},
		{BetID: "b", SelectedOutcome: "no"},
		{BetID: "c", SelectedOutcome: "yes"},
	}, single.UserBetSelections)
	assert.Equal(t, "disc", *single.UserHandlers.DiscordHandler)
	assert.Equal(t, "xh", *single.UserHandlers.XHandler)
	assert.Equal(t, "user-1", single.UserID)

	mockUserBetRepo.AssertNotCalled(t, "GetAllWithRelations")
}

func TestUserBetsService_GetUserBets_UnknownAddress(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	mockUserBetRepo := new(MockUserBetRepository)
	svc := NewUserBetsService(mockUserRepo, mockUserBetRepo)

	mockUserRepo.On("GetByAddress", ctx, "0xneverseen").Return(nil, nil)

	view, err := svc.GetUserBets(ctx, "0xNeverSeen")
	require.NoError(t, err)

	single, ok := view.(models.SingleUserBetsView)
	require.True(t, ok, "expected single-user view, got %T", view)
	assert.Equal(t, 0, single.TotalUsers)
	assert.Empty(t, single.UserAddresses)
	assert.Empty(t, single.UserBetSelections)
	assert.Nil(t, single.UserHandlers.DiscordHandler)
	assert.Empty(t, single.UserID)
}

func TestUserBetsService_GetUserBets_CaseInsensitiveLookup(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	mockUserBetRepo := new(MockUserBetRepository)
	svc := NewUserBetsService(mockUserRepo, mockUserBetRepo)

	user := &models.User{ID: "user-1", Address: "0xabc"}
	mockUserRepo.On("GetByAddress", ctx, "0xabc").Return(user, nil)

	view, err := svc.GetUserBets(ctx, "0xABC")
	require.NoError(t, err)

	single := view.(models.SingleUserBetsView)
	assert.Equal(t, []string{"0xabc"}, single.UserAddresses)
	mockUserRepo.AssertExpectations(t)
}
