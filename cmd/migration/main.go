package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage")

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	dsn := strings.TrimSpace(os.Getenv("DB_URL"))
	if dsn == "" {
		return errors.New("DB_URL is required")
	}
	dsn = applyDriverFlags(dsn)

	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dsn)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("close migrator: source=%v db=%v", srcErr, dbErr)
		}
	}()

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "up":
		return runUp(m, dir)
	case "down":
		return runDown(m, args[1:])
	case "version":
		return showVersion(m)
	case "force":
		return forceVersion(m, args[1:])
	default:
		return errUsage
	}
}

func runUp(m *migrate.Migrate, dir string) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Print("schema already up to date")
			return nil
		}
		return err
	}
	log.Printf("schema migrated from %s", dir)
	return nil
}

func runDown(m *migrate.Migrate, args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n <= 0 {
			return fmt.Errorf("down wants a positive step count, got %q", args[0])
		}
		steps = n
	}

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Print("nothing to roll back")
			return nil
		}
		return err
	}
	log.Printf("rolled back %d migration(s)", steps)
	return nil
}

func showVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Println("schema version: none")
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	default:
		fmt.Printf("schema version: %d (dirty=%t)\n", version, dirty)
	}
	return nil
}

func forceVersion(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return errors.New("force wants a version argument")
	}

	v, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 32)
	if err != nil || v < 0 {
		return fmt.Errorf("force wants a non-negative version, got %q", args[0])
	}

	if err := m.Force(int(v)); err != nil {
		return fmt.Errorf("force schema version %d: %w", v, err)
	}
	log.Printf("schema version forced to %d", v)
	return nil
}

// migrationsDir picks the first existing directory among the MIGRATIONS_DIR
// override and the in-repo / in-container defaults.
func migrationsDir() (string, error) {
	for _, dir := range []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	} {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}

	return "", errors.New("no migrations directory (set MIGRATIONS_DIR or run from the repo root)")
}

// applyDriverFlags mirrors the API server's connection tweaks so both
// binaries talk to postgres the same way.
func applyDriverFlags(dsn string) string {
	switch strings.TrimSpace(strings.ToLower(os.Getenv("DB_DISABLE_PREPARED_BINARY_RESULT"))) {
	case "1", "true", "t", "yes", "y", "on":
	default:
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed == nil {
		return dsn
	}
	q := parsed.Query()
	if q.Get("disable_prepared_binary_result") == "" {
		q.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = q.Encode()
	}
	return parsed.String()
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s up | down [steps] | version | force <version>\n", prog)
}
