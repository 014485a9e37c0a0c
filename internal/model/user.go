package model

// swagger:model User
type User struct {
	ID         string `gorm:"primaryKey;type:varchar(64)" json:"id" bson:"_id"`
	Username   string `gorm:"size:64;not null" json:"username" bson:"username"`
	Email      string `gorm:"size:120;not null" json:"email" bson:"email"`
	Timestamps `bson:",inline"`
}

func (User) TableName() string {
	return "users"
}
