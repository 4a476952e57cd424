package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Resources whose store is nil are not mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	if cfg.Categories != nil {
		group := api.Group("/categories")
		search := NewCategorySearchController(cfg.Categories)
		group.GET("/search", search.Search)
		NewCategoriesController(cfg.Categories).register(group, "/createCategory")
	}

	if cfg.Levels != nil {
		group := api.Group("/levels")
		NewLevelsController(cfg.Levels).register(group, "/createLevel")
		levelWords := NewLevelWordsController(cfg.Levels)
		group.GET("/:id/words", levelWords.ListWords)
	}

	if cfg.Words != nil {
		group := api.Group("/words")
		NewWordsController(cfg.Words).register(group, "/createWord")
		relations := NewWordRelationsController(cfg.Words)
		group.GET("/:id/categories", relations.ListCategories)
		group.POST("/:id/categories/:categoryId", relations.AddCategory)
		group.DELETE("/:id/categories/:categoryId", relations.RemoveCategory)
		group.GET("/:id/stage-words", relations.ListStageWords)
		group.GET("/:id/pronunciations", relations.ListPronunciations)
	}

	if cfg.StageWords != nil {
		NewStageWordsController(cfg.StageWords).register(api.Group("/stage-words"), "/createStageWord")
	}

	if cfg.GameProgress != nil {
		NewGameProgressController(cfg.GameProgress).register(api.Group("/game-progress"), "/createGameProgress")
	}

	if cfg.Users != nil {
		group := api.Group("/users")
		NewUsersController(cfg.Users).register(group, "/createUser")
		progress := NewUserProgressController(cfg.Users)
		group.GET("/:id/game-progress", progress.GetGameProgress)
	}

	if cfg.Pronunciations != nil {
		NewPronunciationsController(cfg.Pronunciations).register(api.Group("/pronunciations"), "/createPronunciation")
	}

	return router
}
