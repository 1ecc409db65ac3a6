package model

type UserRole string

const (
	Admin  UserRole = "admin"
	Member UserRole = "member"
)

// swagger:model User
type User struct {
	UUIDBase
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Gender   string   `gorm:"size:10" json:"gender,omitempty"`
	Phone    string   `gorm:"size:20" json:"phone,omitempty"`
	Role     UserRole `gorm:"type:enum('admin','member');default:'member'" json:"role"`
	// Admin who created this account; empty for self-registered users.
	CreatedByID string `gorm:"size:36;index" json:"createdBy,omitempty"`
}

func (User) TableName() string {
	return "users"
}
