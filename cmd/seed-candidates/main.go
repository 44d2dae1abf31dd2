// Command seed-candidates bulk-loads candidates from a JSON file into the
// database. Existing candidates are matched by name and skipped, so re-running
// against the same file is safe.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/postgres"
	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

type candidateFixture struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	Platform string `json:"platform"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

func main() {
	var (
		databaseURL = flag.String("database", os.Getenv("DATABASE_URL"), "Postgres URL (or set DATABASE_URL env)")
		file        = flag.String("file", "candidates.json", "JSON file with an array of candidates")
		dryRun      = flag.Bool("dry-run", false, "Dry run mode (don't write to the database)")
		verbose     = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	if *databaseURL == "" {
		log.Fatal("Postgres URL required (--database or DATABASE_URL env)")
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	fixtures, err := loadFixtures(*file)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.Connect(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := postgres.NewCandidateRepo(pool)
	if err := seed(ctx, repo, fixtures, *dryRun); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	slog.Info("Seeding complete")
}

func loadFixtures(path string) ([]candidateFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fixtures []candidateFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i, f := range fixtures {
		if f.Name == "" {
			return nil, fmt.Errorf("candidate %d has no name", i)
		}
	}
	return fixtures, nil
}

func seed(ctx context.Context, repo *postgres.CandidateRepo, fixtures []candidateFixture, dryRun bool) error {
	start := time.Now()
	slog.Info("Starting seed", "candidates", len(fixtures), "dry_run", dryRun)

	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing candidates: %w", err)
	}
	byName := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		byName[c.Name] = struct{}{}
	}

	var created, skipped int
	for _, f := range fixtures {
		if _, ok := byName[f.Name]; ok {
			slog.Debug("Skipping existing candidate", "name", f.Name)
			skipped++
			continue
		}

		if !dryRun {
			_, err := repo.Create(ctx, domain.NewCandidate{
				Name:     f.Name,
				Party:    f.Party,
				Platform: f.Platform,
				Bio:      f.Bio,
				ImageURL: f.ImageURL,
			})
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", f.Name, err)
			}
		}
		created++
		slog.Debug("Created candidate", "name", f.Name)
	}

	slog.Info("Seed finished",
		"created", created,
		"skipped", skipped,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}
