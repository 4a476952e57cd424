package http

import "github.com/pronunciationapp/backend/internal/entities"

var (
	stageWordOptions = ResourceOptions{
		Name:              "stage word",
		AllDeletedMessage: "All stage words deleted!",
		DeletedMessage:    "Stage word deleted!",
	}
	gameProgressOptions = ResourceOptions{
		Name:              "game progress",
		AllDeletedMessage: "All game progress deleted!",
		DeletedMessage:    "Game progress deleted!",
	}
	pronunciationOptions = ResourceOptions{
		Name:              "pronunciation",
		AllDeletedMessage: "All pronunciations deleted!",
		DeletedMessage:    "Pronunciation deleted!",
	}
)

func NewStageWordsController(store ResourceStore[entities.StageWord]) *ResourceController[entities.StageWord, *entities.StageWord] {
	return NewResourceController[entities.StageWord](store, stageWordOptions)
}

func NewGameProgressController(store ResourceStore[entities.GameProgress]) *ResourceController[entities.GameProgress, *entities.GameProgress] {
	return NewResourceController[entities.GameProgress](store, gameProgressOptions)
}

func NewPronunciationsController(store ResourceStore[entities.Pronunciation]) *ResourceController[entities.Pronunciation, *entities.Pronunciation] {
	return NewResourceController[entities.Pronunciation](store, pronunciationOptions)
}
