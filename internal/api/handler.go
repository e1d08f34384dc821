package api

import (
	"time"

	"github.com/cyclia-app/cyclia/internal/db"
	"github.com/cyclia-app/cyclia/internal/services"
	"gorm.io/gorm"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	repos           *db.Repositories
	auth            *services.AuthService
	cycles          *services.CycleService
	stats           *services.StatsService
	export          *services.ExportService
	secretKey       []byte
	location        *time.Location
	tokenTTL        time.Duration
	recoveryLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, tokenTTL time.Duration) *Handler {
	if location == nil {
		location = time.UTC
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	repos := db.NewRepositories(database)
	return &Handler{
		repos:           repos,
		auth:            services.NewAuthService(repos.Users),
		cycles:          services.NewCycleService(repos.Cycles, repos.Symptoms),
		stats:           services.NewStatsService(repos.Cycles),
		export:          services.NewExportService(repos.Cycles),
		secretKey:       []byte(secret),
		location:        location,
		tokenTTL:        tokenTTL,
		recoveryLimiter: newAttemptLimiter(),
	}
}
