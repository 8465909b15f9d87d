package postgres

import "github.com/google/uuid"

// UserDTO is the read model for user display names. The order flow only
// reads it when projecting review authors; account management owns writes.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100)"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}
