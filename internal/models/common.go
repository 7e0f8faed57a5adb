package models

// BaseModel carries the auto-increment primary key shared by all tables.
// The historical schema uses serial integer IDs, so we keep them.
type BaseModel struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
}
