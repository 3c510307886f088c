// Seed inserts a handful of demo registrations so the broadcast can be
// exercised against a fresh database. It does nothing if users already exist.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"birthday-botique/internal/config"
	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/repository"
	pg "birthday-botique/internal/infra/db/postgres"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	userRepo := pg.NewPostgresUserRepo(pool)

	existing, err := userRepo.ListAll(ctx, repository.NoTX)
	if err != nil {
		log.Fatalf("list users: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("%d users already present. No changes.\n", len(existing))
		return
	}

	now := time.Now()
	demo := []struct {
		chatID int64
		dob    time.Time
	}{
		{1001, time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{1002, time.Date(1985, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)},
		{1003, time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, d := range demo {
		u, err := model.NewUser(d.chatID, d.dob)
		if err != nil {
			log.Fatalf("build user %d: %v", d.chatID, err)
		}
		if err := userRepo.Save(ctx, repository.NoTX, u); err != nil {
			log.Fatalf("save user %d: %v", d.chatID, err)
		}
	}
	fmt.Printf("Seeded %d demo users (chat 1002 has a birthday today).\n", len(demo))
}
