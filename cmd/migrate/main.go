// ABOUTME: Offline migration utility for upgrading stored data to the current schema version.
// ABOUTME: Provides dry-run and backup capabilities for safe migration.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/paradiigm/cardstack/migrate"
	"github.com/paradiigm/cardstack/storage"
)

func main() {
	backend := flag.String("backend", "", "Storage backend: badger or sqlite (default from config)")
	dataDir := flag.String("data-dir", "", "Data directory (default from config)")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Write a JSON backup of all stored keys before migration")
	force := flag.Bool("force", false, "Migrate even when the stored version marker is unrecognized")
	flag.Parse()

	if err := run(*backend, *dataDir, *dryRun, *backup, *force); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func run(backend, dataDir string, dryRun, createBackup, force bool) error {
	cfg, err := storage.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	kv, err := cfg.Open()
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() { _ = kv.Close() }()

	version := migrate.Detect(kv)
	log.Printf("Stored data version: %s (current: %s)", version, migrate.CurrentVersion)

	if version == migrate.CurrentVersion {
		log.Println("Data is already at the current version, nothing to do")
		return nil
	}

	known := version == "1" || version == "2"
	if !known && !force {
		log.Printf("WARNING: unrecognized version marker %q", version)
		log.Printf("Migrating will replace stored data with the built-in defaults")
		log.Printf("Use -force flag to proceed")
		return fmt.Errorf("migration requires -force flag")
	}

	if dryRun {
		log.Printf("[DRY RUN] Would perform the following actions:")
		if version == "2" {
			log.Printf("[DRY RUN] - Normalize companies from contact names and rewrite company links")
			log.Printf("[DRY RUN] - Replace events and profile with the current seed data")
		} else {
			log.Printf("[DRY RUN] - Replace contacts with the seed dataset")
			log.Printf("[DRY RUN] - Normalize companies and replace events and profile with seed data")
		}
		log.Printf("[DRY RUN] - Write version marker %q", migrate.CurrentVersion)
		return nil
	}

	if createBackup {
		path := fmt.Sprintf("cardstack-backup-%s.json", time.Now().Format("20060102-150405"))
		if err := writeBackup(kv, path); err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}
		log.Printf("Backup written to %s", path)
	}

	migrate.Load(kv)

	log.Println("Migration completed successfully")
	return nil
}

// writeBackup dumps every stored key and its raw value to a JSON file.
func writeBackup(kv storage.KV, path string) error {
	keys, err := kv.Keys()
	if err != nil {
		return err
	}

	dump := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, err := kv.Get(key)
		if err != nil {
			return fmt.Errorf("reading %s: %w", key, err)
		}
		if json.Valid(value) {
			dump[key] = json.RawMessage(value)
		} else {
			encoded, _ := json.Marshal(string(value))
			dump[key] = encoded
		}
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
