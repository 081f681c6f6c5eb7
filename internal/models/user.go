package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	GroupExperimental = "experimental"
	GroupControl      = "control"
)

type User struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Username  string    `bson:"username" json:"username"`
	StudentID string    `bson:"student_id" json:"studentId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	Group     string    `bson:"group" json:"group"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsExperimental() bool {
	return u.Group == GroupExperimental
}
