package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/khoahotran/portfolio-builder/internal/application/seed"
)

// Writes the sample portfolios straight into kv_store, overwriting whatever
// is stored under STORAGE_KEY. Run migrations first.
func main() {
	fmt.Println("seeding sample portfolios into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	key := os.Getenv("STORAGE_KEY")
	if key == "" {
		key = "portfolios"
	}

	list := seed.DefaultSeeder().Seed(time.Now().UTC())
	payload, err := json.Marshal(list)
	if err != nil {
		log.Fatalf("cannot encode samples: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
	`
	_, err = pool.Exec(context.Background(), query, key, payload)
	if err != nil {
		log.Fatalf("cannot write samples: %v", err)
	}

	fmt.Printf("stored %d sample portfolios under '%s' successfully!\n", len(list), key)
}
