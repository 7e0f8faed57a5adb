package models

// User is the authenticated principal: a student or an admin.
// PasswordHash is never serialized; the role is set at registration and no
// endpoint updates it afterwards.
type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	FullName     string   `gorm:"not null" json:"fullName"`
	Email        string   `gorm:"not null" json:"email"`
	Phone        string   `gorm:"not null" json:"phone"`

	// Relations
	AcademicDetails *AcademicDetails `gorm:"foreignKey:UserID" json:"academicDetails,omitempty"`
	PersonalDetails *PersonalDetails `gorm:"foreignKey:UserID" json:"personalDetails,omitempty"`
	Applications    []Application    `gorm:"foreignKey:UserID" json:"-"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
