package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/adapters/persistence"
	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

// Creates the admin account (or resets its password) and the single personal_info row.
//
//	OWNER_EMAIL=me@example.com OWNER_PASSWORD=secret go run ./scripts
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("adding owner into database...")

	ownerEmail := strings.TrimSpace(os.Getenv("OWNER_EMAIL"))
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if ownerEmail == "" || ownerPassword == "" {
		appLogger.Fatal("OWNER_EMAIL and OWNER_PASSWORD are required", nil)
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		appLogger.Fatal("cannot hash password", err)
	}

	if err := persistence.Migrate(cfg.DB.DSN, appLogger); err != nil {
		appLogger.Fatal("cannot run migrations", err)
	}
	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect DB", err)
	}
	defer pool.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	owner := &profile.Profile{
		ID:           uuid.New(),
		Email:        ownerEmail,
		Role:         profile.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := persistence.NewPostgresProfileRepo(pool, appLogger).Upsert(ctx, owner); err != nil {
		appLogger.Fatal("cannot add owner", err)
	}

	var hasInfo bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM personal_info)`).Scan(&hasInfo); err != nil {
		appLogger.Fatal("cannot check personal_info", err)
	}
	if !hasInfo {
		info := &personalinfo.PersonalInfo{
			ID:        uuid.New(),
			Name:      cfg.App.OwnerName,
			Email:     ownerEmail,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := persistence.NewPostgresPersonalInfoRepo(pool, appLogger).Save(ctx, info); err != nil {
			appLogger.Fatal("cannot seed personal_info", err)
		}
		appLogger.Info("seeded personal_info")
	}

	appLogger.Info("added or updated owner successfully", zap.String("email", ownerEmail))
}
