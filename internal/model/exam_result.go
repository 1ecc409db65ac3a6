package model

import "time"

type ExamResultStatus string

const (
	StatusInProgress ExamResultStatus = "in-progress"
	StatusCompleted  ExamResultStatus = "completed"
	// StatusAutoSubmitted is set by administrative timeout handling. There is
	// no automatic trigger; durationMinutes is advisory metadata only.
	StatusAutoSubmitted ExamResultStatus = "auto-submitted"
)

// Terminal reports whether the attempt can no longer be mutated.
func (s ExamResultStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAutoSubmitted
}

// ExamResult is a member's attempt at an examination. The unique index on
// (examination_id, member_id) enforces the single-attempt policy at the
// storage layer: a concurrent duplicate start loses with a key conflict.
// swagger:model ExamResult
type ExamResult struct {
	UUIDBase
	ExaminationID      string           `gorm:"size:36;not null;uniqueIndex:idx_exam_member" json:"examination"`
	Examination        *Examination     `gorm:"foreignKey:ExaminationID" json:"examinationInfo,omitempty"`
	CourseID           string           `gorm:"size:36;not null;index" json:"course"`
	Course             *Course          `gorm:"foreignKey:CourseID" json:"courseInfo,omitempty"`
	MemberID           string           `gorm:"size:36;not null;uniqueIndex:idx_exam_member" json:"member"`
	Member             *User            `gorm:"foreignKey:MemberID" json:"memberInfo,omitempty"`
	StartTime          time.Time        `json:"startTime"`
	EndTime            *time.Time       `json:"endTime,omitempty"`
	TotalMarksObtained int              `gorm:"not null;default:0" json:"totalMarksObtained"`
	IsPassed           bool             `gorm:"not null;default:false" json:"isPassed"`
	Answers            []ExamAnswer     `gorm:"foreignKey:ResultID" json:"answers"`
	Status             ExamResultStatus `gorm:"type:enum('in-progress','completed','auto-submitted');default:'in-progress'" json:"status"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

// swagger:model ExamAnswer
type ExamAnswer struct {
	UUIDBase
	ResultID         string `gorm:"size:36;not null;index" json:"-"`
	QuestionID       string `gorm:"size:36;not null" json:"question"`
	SelectedOptionID string `gorm:"size:36" json:"selectedOption,omitempty"`
	IsCorrect        bool   `gorm:"not null;default:false" json:"isCorrect"`
	MarksObtained    int    `gorm:"not null;default:0" json:"marksObtained"`
}

func (ExamAnswer) TableName() string {
	return "exam_answers"
}
