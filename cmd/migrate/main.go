// Standalone migration runner. The API server applies migrations on startup
// too; this exists for applying schema changes without starting the server.
package main

import (
	"flag"
	"log"
	"os"

	"wikiquiz/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	defaultPath := os.Getenv("DATABASE_PATH")
	if defaultPath == "" {
		defaultPath = "quiz_history.db"
	}
	dbPath := flag.String("db", defaultPath, "path to the sqlite database file")
	flag.Parse()

	db, err := database.NewSQLiteDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Migrations applied to %s", *dbPath)
}
