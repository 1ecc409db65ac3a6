package service

import "github.com/Ss09shubh/mock-test/internal/model"

// AnswerSubmission is one submitted answer: the member's option pick for a
// question.
type AnswerSubmission struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

// GradeSubmission scores a submission against an examination's answer key.
// It is a pure function of its inputs: re-running it on the same examination
// and answers always yields the same records and total.
//
// Scoring rules:
//   - an answer whose question id is not in the examination is dropped
//     silently, contributing no record and no marks;
//   - only the first answer for a given question counts, repeats are dropped;
//   - an unknown option id is recorded as incorrect with 0 marks, keeping the
//     submitted id;
//   - a question with no submitted answer gets no record and 0 marks.
func GradeSubmission(exam *model.Examination, submitted []AnswerSubmission) ([]model.ExamAnswer, int) {
	answers := make([]model.ExamAnswer, 0, len(submitted))
	answered := make(map[string]bool, len(submitted))
	total := 0

	for _, sub := range submitted {
		question := exam.FindQuestion(sub.QuestionID)
		if question == nil {
			continue
		}
		if answered[question.ID] {
			continue
		}
		answered[question.ID] = true

		option := question.FindOption(sub.OptionID)
		isCorrect := option != nil && option.IsCorrect

		marks := 0
		if isCorrect {
			marks = question.Marks
		}
		total += marks

		answers = append(answers, model.ExamAnswer{
			QuestionID:       question.ID,
			SelectedOptionID: sub.OptionID,
			IsCorrect:        isCorrect,
			MarksObtained:    marks,
		})
	}

	return answers, total
}
