// Package bootstrap seeds the singleton records on process startup. Every
// step is idempotent, so running it again (or from two instances at once)
// creates nothing twice.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/account"
	"github.com/elishalema/portfolio-service/internal/auth"
	"github.com/elishalema/portfolio-service/internal/profile"
	"github.com/elishalema/portfolio-service/pkg/utilities"
)

// visitStartOffset makes the visit counter look lived-in on a fresh install.
const visitStartOffset = 12480

// DefaultProfile is the profile inserted when none exists yet.
func DefaultProfile() *profile.Profile {
	return &profile.Profile{
		ID:         profile.SingletonID,
		Bio:        "Passionate designer and developer focused on creating premium digital experiences.",
		Experience: "4+ Years",
		Location:   "Tanzania",
		Email:      "elishalema@example.com",
	}
}

// TableEnsurer is implemented by every repository.
type TableEnsurer interface {
	EnsureTable(ctx context.Context) error
}

// ProfileSeeder inserts the default profile if absent.
type ProfileSeeder interface {
	EnsureDefault(ctx context.Context, p *profile.Profile) error
}

// StatsSeeder inserts the stats row with its starting offset if absent.
type StatsSeeder interface {
	EnsureCounter(ctx context.Context, start int64) error
}

type Config struct {
	AdminUsername string
	AdminPassword string
}

type Deps struct {
	Tables   []TableEnsurer
	Accounts account.Store
	Profiles ProfileSeeder
	Stats    StatsSeeder
	Hasher   auth.PasswordHasher
}

// Run ensures tables and the three singleton records exist. Store errors are
// logged but never abort startup; the API serves whatever the store allows.
func Run(ctx context.Context, log *zap.SugaredLogger, cfg Config, d Deps) {
	for _, t := range d.Tables {
		if err := t.EnsureTable(ctx); err != nil {
			log.Errorw("ensure table failed", "err", err)
		}
	}

	ensureAdmin(ctx, log, cfg, d)

	if err := d.Profiles.EnsureDefault(ctx, DefaultProfile()); err != nil {
		log.Errorw("seed profile failed", "err", err)
	}
	if err := d.Stats.EnsureCounter(ctx, visitStartOffset); err != nil {
		log.Errorw("seed stats failed", "err", err)
	}
}

func ensureAdmin(ctx context.Context, log *zap.SugaredLogger, cfg Config, d Deps) {
	if cfg.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin account creation")
		return
	}
	_, err := d.Accounts.GetByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Errorw("look up admin account failed", "err", err)
		return
	}
	hash, err := d.Hasher.Hash(cfg.AdminPassword)
	if err != nil {
		log.Errorw("hash admin password failed", "err", err)
		return
	}
	a := &account.Account{
		ID:           utilities.NewRecordID(),
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}
	if err := d.Accounts.Insert(ctx, a); err != nil {
		log.Errorw("create admin account failed", "err", err)
		return
	}
	log.Infow("admin account created", "username", cfg.AdminUsername)
}
