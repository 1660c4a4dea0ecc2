package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectBackupDB opens the SQLite file backing the Local Backup Store.
//
// Env vars:
//   - BACKUP_DB_PATH (default: backup.db)
//
// SQL logging stays off: backup rows carry lead contact data.
func ConnectBackupDB() (*gorm.DB, error) {
	path := getenvDefault("BACKUP_DB_PATH", "backup.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup database: %w", err)
	}
	log.Printf("[db] backup store opened path=%s", path)
	return db, nil
}
