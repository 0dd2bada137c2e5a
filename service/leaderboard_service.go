package service

import (
	"context"
	"fmt"

	"questbets/models"
)

// leaderboardService implements the LeaderboardService interface
type leaderboardService struct {
	userRepo UserRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(userRepo UserRepository) LeaderboardService {
	return &leaderboardService{userRepo: userRepo}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, err := s.userRepo.GetLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, nil
}
