package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Path to the migrations directory")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		log.Fatalf("failed to create migrations table: %v", err)
	}

	if *rollback {
		rollbackLast(db, *dir)
		return
	}

	applyAll(db, *dir)
}

func applyAll(db *sql.DB, dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var names []string
	for _, file := range files {
		name := file.Name()
		if filepath.Ext(name) == ".sql" && !strings.HasSuffix(name, "_rollback.sql") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var applied bool
		err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations WHERE name = $1)", name).Scan(&applied)
		if err != nil {
			log.Fatalf("failed to check migration status: %v", err)
		}
		if applied {
			fmt.Printf("Migration already applied: %s\n", name)
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("failed to start transaction: %v", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Fatalf("failed to apply migration %s: %v", name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (name) VALUES ($1)", name); err != nil {
			tx.Rollback()
			log.Fatalf("failed to record migration %s: %v", name, err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit migration %s: %v", name, err)
		}

		fmt.Printf("Successfully applied migration: %s\n", name)
	}
}

func rollbackLast(db *sql.DB, dir string) {
	var name string
	err := db.QueryRow(`
		SELECT name
		FROM migrations
		ORDER BY applied_at DESC, id DESC
		LIMIT 1
	`).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Fatal("No migrations to rollback")
		}
		log.Fatalf("failed to get last migration: %v", err)
	}

	rollbackFile := strings.TrimSuffix(name, ".sql") + "_rollback.sql"
	rollbackPath := filepath.Join(dir, rollbackFile)
	content, err := os.ReadFile(rollbackPath)
	if err != nil {
		log.Fatalf("failed to read rollback file %s: %v", rollbackPath, err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to start transaction: %v", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		log.Fatalf("failed to execute rollback: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM migrations WHERE name = $1", name); err != nil {
		tx.Rollback()
		log.Fatalf("failed to remove migration record: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit rollback: %v", err)
	}

	fmt.Printf("Successfully rolled back migration: %s\n", name)
}
