package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type StageWordStatus string

const (
	StageWordStatusDone    StageWordStatus = "DONE"
	StageWordStatusPending StageWordStatus = "PENDING"
	StageWordStatusFail    StageWordStatus = "FAIL"
)

// Valid reports whether s is one of the known statuses. The empty status
// is allowed and stored as-is.
func (s StageWordStatus) Valid() bool {
	switch s {
	case "", StageWordStatusDone, StageWordStatusPending, StageWordStatusFail:
		return true
	}
	return false
}

func (s *StageWordStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status := StageWordStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("unknown stage word status %q", raw)
	}
	*s = status
	return nil
}

// StageWord tracks a learner's attempts at a single word within a stage.
type StageWord struct {
	ID                  string          `gorm:"primaryKey;size:36" json:"id"`
	Status              StageWordStatus `gorm:"size:10" json:"status"`
	ListenedQty         int             `json:"listenedQty"`
	LastUpdatedDateTime *time.Time      `json:"lastUpdatedDateTime,omitempty"`
	WordID              *string         `gorm:"column:word_fk;index;size:36" json:"wordId,omitempty"`
}

func (s *StageWord) GetID() string   { return s.ID }
func (s *StageWord) SetID(id string) { s.ID = id }

func (s *StageWord) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
