package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactExaminationDropsAnswerKey(t *testing.T) {
	exam := &Examination{
		UUIDBase:        UUIDBase{ID: "exam1"},
		Name:            "Midterm",
		CourseID:        "course1",
		Course:          &Course{UUIDBase: UUIDBase{ID: "course1"}, Name: "Algorithms"},
		TotalMarks:      10,
		PassMarks:       5,
		DurationMinutes: 30,
		Questions: []Question{
			{
				UUIDBase: UUIDBase{ID: "q1"},
				Text:     "pick one",
				Marks:    10,
				Position: 0,
				Options: []Option{
					{UUIDBase: UUIDBase{ID: "o1"}, Text: "a", IsCorrect: true, Position: 0},
					{UUIDBase: UUIDBase{ID: "o2"}, Text: "b", Position: 1},
				},
			},
		},
	}

	view := RedactExamination(exam)

	assert.Equal(t, "exam1", view.ID)
	assert.Equal(t, "Algorithms", view.CourseName)
	require.Len(t, view.Questions, 1)
	require.Len(t, view.Questions[0].Options, 2)
	assert.Equal(t, "o1", view.Questions[0].Options[0].ID)

	// The serialized view must carry no trace of the answer key, whatever
	// the correct option was.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.False(t, strings.Contains(strings.ToLower(string(payload)), "iscorrect"))
}

func TestRedactExaminationKeepsOrder(t *testing.T) {
	exam := &Examination{
		Questions: []Question{
			{UUIDBase: UUIDBase{ID: "q1"}, Position: 0},
			{UUIDBase: UUIDBase{ID: "q2"}, Position: 1},
		},
	}

	view := RedactExamination(exam)

	require.Len(t, view.Questions, 2)
	assert.Equal(t, "q1", view.Questions[0].ID)
	assert.Equal(t, "q2", view.Questions[1].ID)
}

func TestExamResultStatusTerminal(t *testing.T) {
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusAutoSubmitted.Terminal())
}
