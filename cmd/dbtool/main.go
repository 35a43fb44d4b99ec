package main

import (
	"context"
	"database/sql"
	"log"
	"trip-bot-service/internal/adapters/repositories"
	"trip-bot-service/internal/config"
	"trip-bot-service/internal/platform/db"
	"trip-bot-service/internal/platform/obs"
)

// dbtool creates the state schema in Postgres (DATABASE_URL) or, when unset,
// in the SQLite file at DB_PATH.
func main() {
	obs.InitLogging()
	config.LoadDotenv()

	conn, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(context.Background(), conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

func open() (*sql.DB, error) {
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		log.Println("Using Postgres from DATABASE_URL")
		return db.Open(databaseURL)
	}

	dbPath := config.Get("DB_PATH", "data/state.db")
	log.Printf("Using SQLite path=%s", dbPath)
	return db.OpenSqlite(dbPath)
}
