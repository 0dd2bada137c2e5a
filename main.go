package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"questbets/cmd"
	"questbets/config"
	"questbets/database"
	"questbets/models"
	"questbets/repository"
)

func main() {
	// Local overrides; absence is fine in deployed environments
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			if err := handleMigrationCommand(); err != nil {
				log.Fatal("Migration error:", err)
			}
			return
		case "seed":
			if err := handleSeedCommand(); err != nil {
				log.Fatal("Seed error:", err)
			}
			return
		}
	}

	// Normal service operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: questbets migrate [up|down|status] [args...]")
	}

	cfg := config.Get()

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp(cfg.DatabaseURL)
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(cfg.DatabaseURL, steps)
	case "status":
		version, dirty, err := database.MigrateStatus(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		log.Printf("Migration version: %d (dirty: %v)", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// handleSeedCommand upserts the campaign's bet catalog
func handleSeedCommand() error {
	cfg := config.Get()
	ctx := context.Background()

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	betRepo := repository.NewBetRepository(db)
	for _, bet := range campaignBets() {
		if err := betRepo.Upsert(ctx, bet); err != nil {
			return err
		}
		log.Printf("Seeded bet %s", bet.BetID)
	}

	log.Println("Seed data created successfully")
	return nil
}

func campaignBets() []*models.Bet {
	return []*models.Bet{
		{
			BetID:                "testnet_announcement_video_likes",
			Title:                "More than 700 likes on the testnet announcement video",
			Description:          "Will the testnet announcement video reach more than 700 likes until July 10th?",
			Category:             "Community",
			ResolutionDate:       "2025-07-10",
			ResolutionXMethod:    strPtr("get_tweet_data"),
			ResolutionXParameter: strPtr("1935668887577632966"),
		},
		{
			BetID:          "new_ai_model_surpass_o3",
			Title:          "New AI Model Surpassing OpenAI's o3",
			Description:    "Will any provider release an AI model with a score higher than 71 on the Artificial Intelligence Index according to artificialanalysis.ai/#artificial-analysis-intelligence-index before July 10th surpassing OpenAI's o3 pro model?",
			Category:       "AI",
			ResolutionDate: "2025-07-10",
			ResolutionURL:  strPtr("https://artificialanalysis.ai/leaderboards/models"),
		},
		{
			BetID:                "genlayer_ama_375_members",
			Title:                "Genlayer AMA Membership Milestone",
			Description:          "Will one Genlayer AMA surpass more than 375 members according to @Cryptony09's post from X?",
			Category:             "Community",
			ResolutionDate:       "2025-07-10",
			ResolutionXMethod:    strPtr("get_user_latest_tweets"),
			ResolutionXParameter: strPtr("Cryptony09"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
