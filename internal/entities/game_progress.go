package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Stage string

const (
	Stage01 Stage = "STAGE_01"
	Stage02 Stage = "STAGE_02"
	Stage03 Stage = "STAGE_03"
	Stage04 Stage = "STAGE_04"
	Stage05 Stage = "STAGE_05"
)

// Stages lists every stage in play order.
var Stages = []Stage{Stage01, Stage02, Stage03, Stage04, Stage05}

func (s Stage) Valid() bool {
	if s == "" {
		return true
	}
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	stage := Stage(raw)
	if !stage.Valid() {
		return fmt.Errorf("unknown stage %q", raw)
	}
	*s = stage
	return nil
}

// GameProgress is the aggregate game state of one user.
type GameProgress struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	CurrentScore   int        `json:"currentScore"`
	CurrentStage   Stage      `gorm:"size:10" json:"currentStage"`
	LastPlayedDate *time.Time `json:"lastPlayedDate,omitempty"`
	WordsLearned   int        `json:"wordsLearned"`
}

func (GameProgress) TableName() string {
	return "game_progresses"
}

func (g *GameProgress) GetID() string   { return g.ID }
func (g *GameProgress) SetID(id string) { g.ID = id }

func (g *GameProgress) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}
