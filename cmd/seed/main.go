// Command seed replaces all works, skills and the profile with the demo
// content. One-shot: run it once against a fresh database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	profilerepo "github.com/elishalema/portfolio-service/internal/profile/repo"
	skillrepo "github.com/elishalema/portfolio-service/internal/skill/repo"
	workrepo "github.com/elishalema/portfolio-service/internal/work/repo"
	"github.com/elishalema/portfolio-service/pkg/database"
	"github.com/elishalema/portfolio-service/pkg/utilities"
)

func main() {
	_ = godotenv.Load()

	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	cfg := database.ConfigFromEnv()
	sqlDB, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")

	ctx := context.Background()
	works := workrepo.NewWorkRepo(sqlxDB)
	skills := skillrepo.NewSkillRepo(sqlxDB)
	profiles := profilerepo.NewProfileRepo(sqlxDB)

	for _, ensure := range []func(context.Context) error{works.EnsureTable, skills.EnsureTable, profiles.EnsureTable} {
		if err := ensure(ctx); err != nil {
			sugar.Fatalf("ensure table: %v", err)
		}
	}

	// stagger created_at so the listing orders match the seed order
	base := time.Now().Add(-time.Duration(len(initialWorks)) * time.Minute)

	if err := works.DeleteAll(ctx); err != nil {
		sugar.Fatalf("clear works: %v", err)
	}
	for i := range initialWorks {
		w := initialWorks[i]
		w.ID = utilities.NewRecordID()
		if w.Status == "" {
			w.Status = "Live"
		}
		w.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := works.Insert(ctx, &w); err != nil {
			sugar.Fatalf("insert work %q: %v", w.Title, err)
		}
	}
	sugar.Infow("works seeded", "count", len(initialWorks))

	if err := skills.DeleteAll(ctx); err != nil {
		sugar.Fatalf("clear skills: %v", err)
	}
	for i := range initialSkills {
		s := initialSkills[i]
		s.ID = utilities.NewRecordID()
		s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := skills.Insert(ctx, &s); err != nil {
			sugar.Fatalf("insert skill %q: %v", s.Name, err)
		}
	}
	sugar.Infow("skills seeded", "count", len(initialSkills))

	p := initialProfile
	p.UpdatedAt = time.Now()
	if err := profiles.Replace(ctx, &p); err != nil {
		sugar.Fatalf("seed profile: %v", err)
	}
	sugar.Info("profile seeded")

	sugar.Info("database fully seeded")
}
