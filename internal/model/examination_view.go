package model

import "time"

// Redacted projections of an examination for member-facing reads. The types
// simply have no place to put the answer key, so a new endpoint reusing them
// cannot leak it.

// swagger:model RedactedOption
type RedactedOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// swagger:model RedactedQuestion
type RedactedQuestion struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Marks    int              `json:"marks"`
	Position int              `json:"position"`
	Options  []RedactedOption `json:"options"`
}

// swagger:model RedactedExamination
type RedactedExamination struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	CourseID        string             `json:"course"`
	CourseName      string             `json:"courseName,omitempty"`
	TotalMarks      int                `json:"totalMarks"`
	PassMarks       int                `json:"passMarks"`
	DurationMinutes int                `json:"durationMinutes"`
	Questions       []RedactedQuestion `json:"questions"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// RedactExamination is the single view projection applied at every
// member-facing read boundary.
func RedactExamination(e *Examination) *RedactedExamination {
	view := &RedactedExamination{
		ID:              e.ID,
		Name:            e.Name,
		CourseID:        e.CourseID,
		TotalMarks:      e.TotalMarks,
		PassMarks:       e.PassMarks,
		DurationMinutes: e.DurationMinutes,
		Questions:       make([]RedactedQuestion, len(e.Questions)),
		CreatedAt:       e.CreatedAt,
	}
	if e.Course != nil {
		view.CourseName = e.Course.Name
	}

	for i, q := range e.Questions {
		rq := RedactedQuestion{
			ID:       q.ID,
			Text:     q.Text,
			Marks:    q.Marks,
			Position: q.Position,
			Options:  make([]RedactedOption, len(q.Options)),
		}
		for j, o := range q.Options {
			rq.Options[j] = RedactedOption{
				ID:       o.ID,
				Text:     o.Text,
				Position: o.Position,
			}
		}
		view.Questions[i] = rq
	}

	return view
}
