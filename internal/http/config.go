package http

import (
	"go.uber.org/zap"

	"github.com/pronunciationapp/backend/internal/entities"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Database is only used for health checks.
	Database Pinger
	Logger   *zap.Logger
	Version  string

	Categories     CategoryStore
	Levels         LevelStore
	Words          WordStore
	StageWords     ResourceStore[entities.StageWord]
	GameProgress   ResourceStore[entities.GameProgress]
	Users          UserStore
	Pronunciations ResourceStore[entities.Pronunciation]
}
