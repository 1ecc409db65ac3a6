package model

// Examination is the unit of authoring and immutability: questions and
// options are owned child rows created together with the examination and
// never edited or deleted afterwards.
// swagger:model Examination
type Examination struct {
	UUIDBase
	Name            string     `gorm:"size:100;not null" json:"name"`
	CourseID        string     `gorm:"size:36;not null;index" json:"course"`
	Course          *Course    `gorm:"foreignKey:CourseID" json:"courseInfo,omitempty"`
	TotalMarks      int        `gorm:"not null" json:"totalMarks"`
	PassMarks       int        `gorm:"not null" json:"passMarks"`
	DurationMinutes int        `gorm:"not null" json:"durationMinutes"`
	Questions       []Question `gorm:"foreignKey:ExaminationID" json:"questions"`
	CreatedByID     string     `gorm:"size:36;not null" json:"createdBy"`
}

func (Examination) TableName() string {
	return "examinations"
}

// swagger:model Question
type Question struct {
	UUIDBase
	ExaminationID string   `gorm:"size:36;not null;index" json:"-"`
	Text          string   `gorm:"type:text;not null" json:"text"`
	Marks         int      `gorm:"not null" json:"marks"`
	Position      int      `gorm:"not null" json:"position"`
	Options       []Option `gorm:"foreignKey:QuestionID" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	UUIDBase
	QuestionID string `gorm:"size:36;not null;index" json:"-"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
	Position   int    `gorm:"not null" json:"position"`
}

func (Option) TableName() string {
	return "options"
}

// CorrectOption returns the single correct option of a question. Creation
// guarantees exactly one exists.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// FindQuestion looks a question up by id within the aggregate.
func (e *Examination) FindQuestion(id string) *Question {
	for i := range e.Questions {
		if e.Questions[i].ID == id {
			return &e.Questions[i]
		}
	}
	return nil
}

// FindOption looks an option up by id within a question.
func (q *Question) FindOption(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}
