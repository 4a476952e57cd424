// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	├── store.go         # Bulk-import helpers spanning several entities
//	├── crud/            # Generic find/save/delete/exists repository
//	├── categories/      # Category lookups by name
//	└── words/           # Word relationships (categories, stage words, pronunciations)
//
// # Usage
//
//	db, err := database.NewDatabase("./pronunciation.db")
//	level, err := db.Levels.FindByID("l1")
//	err = db.Words.AddCategory("w1", "c1")
//
// The schema is derived from the entity mappings with AutoMigrate. There is
// no versioned migration history.
package database
