// Package interfaces documents the core abstractions used throughout the application.
//
// # Layers
//
// Every resource is served by three layers, each talking to the next through
// a small interface:
//
//	gin handler (internal/http) → service (internal/services) → repository (internal/database)
//
// ## HTTP stores (internal/http)
//
//   - ResourceStore[T]: list/get/create/update/delete of one entity (resource.go)
//   - CategoryStore: adds lookups by category and sub-category name (categories.go)
//   - LevelStore: adds the words of a level (levels.go)
//   - WordStore: adds category tagging, stage words and pronunciations (words.go)
//   - UserStore: adds the game progress of a user (users.go)
//   - Pinger: database connectivity for /health (health.go)
//
// ## Repositories (internal/services/interfaces.go)
//
//   - Repository[T]: FindAll, FindByID, Save, DeleteByID, DeleteAll, ExistsByID
//   - CategoryRepository, WordRepository: entity-specific queries
//
// ## Import (internal/importers)
//
//   - Store: get-or-create levels and categories, save and tag words
//
// # Adding a New Resource
//
//  1. Add the entity in internal/entities with GetID/SetID and a BeforeCreate
//     hook, and list it in the migrated models in internal/database/database.go.
//
//  2. Add a crud.Repository[T] field to database.Database.
//
//  3. Wrap it in services.NewService[T] (or a dedicated service when the
//     resource needs extra behaviour).
//
//  4. Add a ResourceOptions value and constructor in internal/http, then
//     register the group in router.go:
//
//     group := api.Group("/badges")
//     NewBadgesController(cfg.Badges).register(group, "/createBadge")
//
//  5. Add a compile-time check to checks.go.
package interfaces
