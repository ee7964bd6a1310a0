package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Dialect is the SQL flavor behind a connection.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Driver names the database/sql driver and its DSN for a DATABASE_URL.
// postgres:// and postgresql:// go to lib/pq; sqlite://, file: and :memory:
// go to go-sqlite3.
func Driver(databaseURL string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return Postgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return SQLite, strings.TrimPrefix(databaseURL, "sqlite://"), nil
	case strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:":
		return SQLite, databaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme: %s", safeDatabaseURL(databaseURL))
	}
}

func Connect(databaseURL string) (*sql.DB, Dialect, error) {
	dialect, dsn, err := Driver(databaseURL)
	if err != nil {
		return nil, "", err
	}
	log.Info().Str("dialect", string(dialect)).Str("url", safeDatabaseURL(databaseURL)).Msg("connecting to database")

	if dialect == Postgres {
		if err := checkSSL(databaseURL); err != nil {
			return nil, "", fmt.Errorf("failed to configure SSL: %w", err)
		}
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	switch dialect {
	case Postgres:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(1 * time.Minute)
	case SQLite:
		// every connection to :memory: opens a fresh database
		db.SetMaxOpenConns(1)
	}

	log.Info().Msg("database connection established")
	return db, dialect, nil
}

// safeDatabaseURL drops the password so the URL can be logged.
func safeDatabaseURL(databaseURL string) string {
	parsed, err := url.Parse(databaseURL)
	if err != nil || parsed.Scheme == "" {
		return "(unparsed)"
	}
	safe := &url.URL{
		Scheme:   parsed.Scheme,
		Host:     parsed.Host,
		Path:     parsed.Path,
		Opaque:   parsed.Opaque,
		RawQuery: parsed.RawQuery,
	}
	if parsed.User != nil && parsed.User.Username() != "" {
		safe.User = url.User(parsed.User.Username())
	}
	return safe.String()
}

// checkSSL validates the sslmode parameters lib/pq will read from the URL.
func checkSSL(databaseURL string) error {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}
	query := parsed.Query()
	sslMode := query.Get("sslmode")

	switch sslMode {
	case "", "disable":
		log.Debug().Msg("database SSL disabled")
		return nil
	case "require":
		log.Info().Msg("database SSL: encrypted connection without certificate validation")
		return nil
	case "verify-ca", "verify-full":
		rootCert := query.Get("sslrootcert")
		if rootCert == "" {
			return fmt.Errorf("sslrootcert is required for %s mode", sslMode)
		}
		if _, err := os.Stat(rootCert); err != nil {
			return fmt.Errorf("failed to read CA certificate file %s: %w", rootCert, err)
		}
		log.Info().Str("mode", sslMode).Str("root_cert", rootCert).Msg("database SSL: certificate validation")
		return nil
	default:
		return fmt.Errorf("unsupported SSL mode: %s", sslMode)
	}
}
