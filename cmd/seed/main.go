// Command seed wipes the database and fills it with sample communities,
// messages, replies and reactions for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/thaisassuncao/community-app/internal/adapter/postgres"
	"github.com/thaisassuncao/community-app/internal/analytics"
	"github.com/thaisassuncao/community-app/internal/app"
	"github.com/thaisassuncao/community-app/internal/domain"
	"github.com/thaisassuncao/community-app/internal/reaction"
	"github.com/thaisassuncao/community-app/internal/sentiment"
)

var sampleCommunities = []domain.NewCommunity{
	{Name: "Ruby on Rails", Description: "Discuta tudo relacionado ao Ruby on Rails framework!"},
	{Name: "JavaScript", Description: "Compartilhe suas dicas JavaScript!"},
	{Name: "Conversa Geral", Description: "Converse sobre qualquer coisa relacionada a tech!"},
}

var sampleContents = []string{
	"Este framework é ótimo e excelente!",
	"Isso é ruim e péssimo",
	"Hoje vou almoçar macarrão",
	"Adorei esta comunidade, muito legal!",
	"Não gostei muito, está chato",
	"Projeto interessante e bem estruturado",
}

var sampleReplies = []string{
	"Concordo totalmente!",
	"Não concordo com isso",
	"Interessante ponto de vista",
	"Excelente observação!",
}

func main() {
	databaseURL := flag.String("database", os.Getenv("DATABASE_URL"), "PostgreSQL URL (or set DATABASE_URL env)")
	flag.Parse()

	if *databaseURL == "" {
		log.Fatal("Database URL required (--database or DATABASE_URL env)")
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Cleaning database")
	if _, err := pool.Exec(ctx, "TRUNCATE users, communities, messages, reactions CASCADE"); err != nil {
		return fmt.Errorf("failed to clean database: %w", err)
	}

	clock := clockwork.NewRealClock()
	userRepo := postgres.NewUserRepo(pool)
	communityRepo := postgres.NewCommunityRepo(pool)
	messageRepo := postgres.NewMessageRepo(pool)
	reactionRepo := postgres.NewReactionRepo(pool)

	svc := app.NewService(
		userRepo,
		communityRepo,
		messageRepo,
		sentiment.NewAnalyzer(),
		reaction.NewGuard(reactionRepo, clock),
		analytics.NewScorer(messageRepo, communityRepo),
		analytics.NewDetector(messageRepo),
		nil,
		clock,
	)

	slog.Info("Creating users")
	users := make([]*domain.User, 0, 5)
	for i := 1; i <= 5; i++ {
		user, err := userRepo.FindOrCreate(ctx, fmt.Sprintf("user%d", i))
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	slog.Info("Creating communities")
	var messageCount, reactionCount int
	for _, in := range sampleCommunities {
		community, err := svc.CreateCommunity(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to create community %q: %w", in.Name, err)
		}

		for range 10 {
			author := users[rand.IntN(len(users))]
			message, _, err := svc.CreateMessage(ctx, domain.NewMessage{
				Username:    author.Username,
				CommunityID: community.ID,
				Content:     sampleContents[rand.IntN(len(sampleContents))],
				UserIP:      fmt.Sprintf("192.168.1.%d", rand.IntN(255)+1),
			})
			if err != nil {
				return fmt.Errorf("failed to create message: %w", err)
			}
			messageCount++

			for range rand.IntN(4) {
				replier := users[rand.IntN(len(users))]
				if _, _, err := svc.CreateMessage(ctx, domain.NewMessage{
					Username:    replier.Username,
					CommunityID: community.ID,
					Content:     sampleReplies[rand.IntN(len(sampleReplies))],
					UserIP:      fmt.Sprintf("192.168.1.%d", rand.IntN(255)+1),
					ParentID:    &message.ID,
				}); err != nil {
					return fmt.Errorf("failed to create reply: %w", err)
				}
				messageCount++
			}

			kinds := domain.ReactionKinds()
			for range rand.IntN(5) + 1 {
				reactor := users[rand.IntN(len(users))]
				kind := kinds[rand.IntN(len(kinds))]
				_, err := svc.CreateReaction(ctx, message.ID, reactor.ID, kind)
				if errors.Is(err, domain.ErrDuplicateReaction) {
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to create reaction: %w", err)
				}
				reactionCount++
			}
		}
	}

	slog.Info("Seed completed",
		"users", len(users),
		"communities", len(sampleCommunities),
		"messages", messageCount,
		"reactions", reactionCount)
	return nil
}
