package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"clean-backend/internal/auth"
	"clean-backend/internal/config"
	"clean-backend/internal/content"
	"clean-backend/internal/database"
	"clean-backend/internal/logging"
	"clean-backend/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const minPasswordLength = 8

func main() {
	_ = godotenv.Load()

	fmt.Println("Creating Admin User")
	fmt.Println("===================")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.New(cfg.LogLevel, true)

	if !cfg.UseDatabase() {
		log.Fatal().Msg("DATABASE_URL must be set; the in-memory store does not outlive this command")
	}

	db, dialect, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db, dialect); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	users := store.NewSQL(db).Users
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter admin username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read username")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		log.Fatal().Msg("Username cannot be empty")
	}

	existing, err := users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		fmt.Printf("User %s already exists.\n", username)
		fmt.Print("Grant admin rights and reset the password? (y/N): ")
		confirm, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read confirmation")
		}
		confirm = strings.TrimSpace(strings.ToLower(confirm))
		if confirm != "y" && confirm != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}

		hash := readPasswordHash()
		if err := users.UpdatePassword(ctx, existing.ID, hash); err != nil {
			log.Fatal().Err(err).Msg("Failed to update password")
		}
		if err := users.SetAdmin(ctx, existing.ID, true); err != nil {
			log.Fatal().Err(err).Msg("Failed to grant admin rights")
		}
		fmt.Printf("Successfully updated user %s to admin.\n", username)
		return
	case !errors.Is(err, store.ErrNotFound):
		log.Fatal().Err(err).Msg("Failed to look up user")
	}

	hash := readPasswordHash()
	user, err := users.Create(ctx, content.User{Username: username, PasswordHash: hash, IsAdmin: true})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	fmt.Printf("Successfully created admin user: %s\n", user.Username)
	fmt.Printf("User ID: %d\n", user.ID)
}

// readPasswordHash prompts twice without echo and returns the bcrypt hash.
func readPasswordHash() string {
	fmt.Print("Enter admin password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}
	if len(password) < minPasswordLength {
		log.Fatal().Msgf("Password must be at least %d characters long", minPasswordLength)
	}

	fmt.Print("Confirm admin password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password confirmation")
	}
	if string(password) != string(confirm) {
		log.Fatal().Msg("Passwords do not match")
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}
	return hash
}
