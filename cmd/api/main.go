package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	accountrepo "github.com/elishalema/portfolio-service/internal/account/repo"
	"github.com/elishalema/portfolio-service/internal/auth"
	"github.com/elishalema/portfolio-service/internal/bootstrap"
	messagerepo "github.com/elishalema/portfolio-service/internal/message/repo"
	profilerepo "github.com/elishalema/portfolio-service/internal/profile/repo"
	"github.com/elishalema/portfolio-service/internal/router"
	skillrepo "github.com/elishalema/portfolio-service/internal/skill/repo"
	statsrepo "github.com/elishalema/portfolio-service/internal/stats/repo"
	workrepo "github.com/elishalema/portfolio-service/internal/work/repo"
	"github.com/elishalema/portfolio-service/pkg/database"
	"github.com/elishalema/portfolio-service/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting portfolio-service")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		sugar.Fatal("JWT_SECRET is required")
	}

	// init db
	cfg := database.ConfigFromEnv()
	sqlDB, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	// wrap with sqlx for convenience in repos/services
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")
	defer sqlxDB.Close()

	// seed singleton records before the listener starts accepting traffic
	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	accounts := accountrepo.NewAccountRepo(sqlxDB)
	profiles := profilerepo.NewProfileRepo(sqlxDB)
	siteStats := statsrepo.NewStatsRepo(sqlxDB)
	works := workrepo.NewWorkRepo(sqlxDB)
	skills := skillrepo.NewSkillRepo(sqlxDB)
	messages := messagerepo.NewMessageRepo(sqlxDB)
	bootstrap.Run(context.Background(), sugar,
		bootstrap.Config{AdminUsername: adminUser, AdminPassword: os.Getenv("ADMIN_PASSWORD")},
		bootstrap.Deps{
			Tables:   []bootstrap.TableEnsurer{accounts, profiles, siteStats, works, skills, messages},
			Accounts: accounts,
			Profiles: profiles,
			Stats:    siteStats,
			Hasher:   auth.BcryptHasher{Cost: 10},
		})

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// mount http server
	handler := router.RegisterRoutes(sugar, sqlxDB, []byte(secret))
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: handler,
	}

	sugar.Infow("service is running; press Ctrl+C to stop", "port", port)

	// run server in background
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ping db once more
	if err := sqlDB.PingContext(doneCtx); err != nil {
		sugar.Warnf("db ping on shutdown failed: %v", err)
	}

	// shutdown http server
	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
