package model

import "time"

// swagger:model Course
type Course struct {
	UUIDBase
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`
	CreatedByID string `gorm:"size:36;not null;index" json:"createdBy"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseAssignment grants a member access to a course's examinations.
// The unique index makes a duplicate assignment a storage-level conflict.
// swagger:model CourseAssignment
type CourseAssignment struct {
	UUIDBase
	CourseID     string    `gorm:"size:36;not null;uniqueIndex:idx_course_member" json:"course"`
	MemberID     string    `gorm:"size:36;not null;uniqueIndex:idx_course_member" json:"member"`
	AssignedByID string    `gorm:"size:36;not null" json:"assignedBy"`
	AssignedAt   time.Time `json:"assignedAt"`
}

func (CourseAssignment) TableName() string {
	return "course_assignments"
}
