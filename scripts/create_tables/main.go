package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Read environment to determine table prefix
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev" // Default to dev
	}

	prefix := os.Getenv("TABLE_PREFIX")
	if prefix == "" {
		prefix = env + "_"
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	createSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]sdocuments (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			folder_id UUID,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			background TEXT,
			last_saved TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]sdocuments_user_idx ON %[1]sdocuments (user_id);

		CREATE TABLE IF NOT EXISTS %[1]sdrafts (
			user_id UUID NOT NULL,
			document_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, document_id)
		);

		CREATE TABLE IF NOT EXISTS %[1]spiles (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			folder_id UUID,
			name TEXT NOT NULL,
			cards JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]spiles_user_idx ON %[1]spiles (user_id);

		CREATE TABLE IF NOT EXISTS %[1]sfolders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			color_light TEXT NOT NULL,
			color_dark TEXT NOT NULL,
			text_color TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]sfolders_user_idx ON %[1]sfolders (user_id, kind);

		CREATE TABLE IF NOT EXISTS %[1]stodos (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			text TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]stodos_user_idx ON %[1]stodos (user_id);

		CREATE TABLE IF NOT EXISTS %[1]sstatistics (
			user_id UUID NOT NULL,
			date DATE NOT NULL,
			percentage DOUBLE PRECISION NOT NULL,
			cards_studied INTEGER NOT NULL,
			total_cards INTEGER NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, date)
		);

		CREATE TABLE IF NOT EXISTS %[1]sshares (
			id UUID PRIMARY KEY,
			recipient_email TEXT NOT NULL,
			sharer_id UUID NOT NULL,
			sharer_email TEXT NOT NULL,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			cards JSONB,
			document JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]sshares_recipient_idx ON %[1]sshares (recipient_email);

		CREATE TABLE IF NOT EXISTS %[1]suser_settings (
			user_id UUID PRIMARY KEY,
			weekly_goal INTEGER NOT NULL DEFAULT 7,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`, prefix)

	if _, err := db.Exec(createSQL); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	fmt.Printf("All tables created successfully (prefix: %s)\n", prefix)
}
