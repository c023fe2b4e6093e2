package database

import (
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"iddss/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Session{},
		&entities.DesignStep{},
		&entities.Recommendation{},
		&entities.UserAction{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := migrateSessionsAddObjectives(db); err != nil {
		log.Printf("[db] migrate warn: %v", err)
	}

	return db
}

// migrateSessionsAddObjectives backfills the learning_objectives column on
// sessions tables created before the column existed. Fresh DBs are covered
// by AutoMigrate; a failure here must not block startup.
func migrateSessionsAddObjectives(db *gorm.DB) error {
	type colInfo struct {
		Cid  int
		Name string
		Type string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(sessions)`).Scan(&cols).Error; err != nil {
		return err
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, "learning_objectives") {
			return nil
		}
	}
	return db.Exec(`ALTER TABLE sessions ADD COLUMN learning_objectives TEXT`).Error
}
