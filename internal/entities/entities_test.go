package entities

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageWordStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    StageWordStatus
		wantErr bool
	}{
		{input: `"DONE"`, want: StageWordStatusDone},
		{input: `"PENDING"`, want: StageWordStatusPending},
		{input: `"FAIL"`, want: StageWordStatusFail},
		{input: `""`, want: ""},
		{input: `"done"`, wantErr: true},
		{input: `"SKIPPED"`, wantErr: true},
		{input: `3`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var status StageWordStatus
			err := json.Unmarshal([]byte(tt.input), &status)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestStage_UnmarshalJSON(t *testing.T) {
	for _, stage := range Stages {
		var got Stage
		require.NoError(t, json.Unmarshal([]byte(`"`+string(stage)+`"`), &got))
		assert.Equal(t, stage, got)
	}

	var got Stage
	err := json.Unmarshal([]byte(`"STAGE_06"`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STAGE_06")
}

func TestGameProgress_DecodesStageInBody(t *testing.T) {
	var progress GameProgress
	err := json.Unmarshal([]byte(`{"currentScore":12,"currentStage":"STAGE_03","wordsLearned":5}`), &progress)

	require.NoError(t, err)
	assert.Equal(t, Stage03, progress.CurrentStage)
	assert.Equal(t, 12, progress.CurrentScore)
}

func TestBeforeCreate_AssignsUUID(t *testing.T) {
	level := &Level{}
	require.NoError(t, level.BeforeCreate(nil))
	_, err := uuid.Parse(level.ID)
	assert.NoError(t, err)

	progress := &GameProgress{ID: "keep-me"}
	require.NoError(t, progress.BeforeCreate(nil))
	assert.Equal(t, "keep-me", progress.ID)
}

func TestRecordIDs(t *testing.T) {
	records := []interface {
		GetID() string
		SetID(string)
	}{
		&Category{}, &Level{}, &Word{}, &StageWord{}, &GameProgress{}, &User{}, &Pronunciation{},
	}

	for _, r := range records {
		r.SetID("abc")
		assert.Equal(t, "abc", r.GetID())
	}
}

func TestUser_Redacted(t *testing.T) {
	user := User{ID: "u1", UserName: "ana", Password: "hash"}

	redacted := user.Redacted()

	assert.Empty(t, redacted.Password)
	assert.Equal(t, "hash", user.Password)

	data, err := json.Marshal(redacted)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}

func TestCategory_WordsNotSerialized(t *testing.T) {
	category := Category{ID: "c1", CategoryName: "Animals", Words: []Word{{ID: "w1"}}}

	data, err := json.Marshal(category)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","categoryName":"Animals","subCategoryName":""}`, string(data))
}
