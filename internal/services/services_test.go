package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/testutil"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	cfg      *config.Config
	accounts *AccountService
	auth     *AuthService
	analyses *AnalysisService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		BcryptCost:  4,
		AdminEmails: []string{"admin@example.com"},
	}
	m := metrics.New()
	accounts := NewAccountService(db, cfg, m)
	return &fixture{
		db:       db,
		cfg:      cfg,
		accounts: accounts,
		auth:     NewAuthService(db, cfg, accounts, m),
		analyses: NewAnalysisService(db, m),
	}
}

// clock returns increasing timestamps one minute apart.
func clock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}
