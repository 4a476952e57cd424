package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/pronunciationapp/backend/internal/database"
	"github.com/pronunciationapp/backend/internal/database/categories"
	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/database/words"
	"github.com/pronunciationapp/backend/internal/entities"
	"github.com/pronunciationapp/backend/internal/http"
	"github.com/pronunciationapp/backend/internal/importers"
	"github.com/pronunciationapp/backend/internal/services"
)

// =============================================================================
// Repositories
// =============================================================================

var _ services.Repository[entities.Level] = (*crud.Repository[entities.Level])(nil)
var _ services.Repository[entities.StageWord] = (*crud.Repository[entities.StageWord])(nil)
var _ services.Repository[entities.GameProgress] = (*crud.Repository[entities.GameProgress])(nil)
var _ services.Repository[entities.User] = (*crud.Repository[entities.User])(nil)
var _ services.Repository[entities.Pronunciation] = (*crud.Repository[entities.Pronunciation])(nil)
var _ services.CategoryRepository = (*categories.Repository)(nil)
var _ services.WordRepository = (*words.Repository)(nil)

// =============================================================================
// HTTP Stores
// =============================================================================

var _ http.CategoryStore = (*services.CategoryService)(nil)
var _ http.LevelStore = (*services.LevelService)(nil)
var _ http.WordStore = (*services.WordService)(nil)
var _ http.UserStore = (*services.UserService)(nil)
var _ http.ResourceStore[entities.StageWord] = (*services.Service[entities.StageWord])(nil)
var _ http.ResourceStore[entities.GameProgress] = (*services.Service[entities.GameProgress])(nil)
var _ http.ResourceStore[entities.Pronunciation] = (*services.Service[entities.Pronunciation])(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ importers.Store = (*database.Database)(nil)
