// Command seed bulk-imports the public quote fixtures. It is safe to run
// repeatedly: quotes are keyed by text and duplicates are skipped.
package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/caowens/lifted-api/internal/config"
	"github.com/caowens/lifted-api/internal/database"
	"github.com/caowens/lifted-api/internal/logging"
	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultDataset = "data/inspirational_quotes.json"

type seedQuote struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	logger := logging.New(cfg.Log)

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", "err", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		logger.Fatal("bootstrapping schema", "err", err)
	}

	raw, err := os.ReadFile(datasetPath())
	if err != nil {
		logger.Fatal("reading dataset", "err", err)
	}

	var entries []seedQuote
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Fatal("parsing dataset", "err", err)
	}

	store := quotes.NewStore(db)
	seeded := 0
	for _, entry := range entries {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			logger.Warn("skipping entry with empty text")
			continue
		}

		author := strings.TrimSpace(entry.Author)
		if author == "" {
			author = "Unknown"
		}
		tags := entry.Tags
		if tags == nil {
			tags = []string{}
		}

		inserted, err := store.InsertPublicIfAbsent(text, author, tags)
		if err != nil {
			// One bad record must not abort the whole import.
			logger.Error("seeding quote", "text", truncate(text, 30), "err", err)
			continue
		}
		if !inserted {
			logger.Info("skipped duplicate", "text", truncate(text, 30))
			continue
		}
		seeded++
	}

	total, err := store.Count(quotes.Filter{Scope: quotes.ScopePublic})
	if err != nil {
		logger.Fatal("counting quotes", "err", err)
	}

	logger.Info("seeding complete", "seeded", seeded, "public_total", total)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func configPath() string {
	if path := os.Getenv("LIFTED_CONFIG"); path != "" {
		return path
	}
	return "configs/base.yaml"
}

func datasetPath() string {
	if path := os.Getenv("LIFTED_SEED_DATASET"); path != "" {
		return path
	}
	return defaultDataset
}
