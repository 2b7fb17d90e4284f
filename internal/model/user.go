package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email       string   `gorm:"size:100;unique;not null" json:"email"`
	Password    string   `gorm:"size:100;not null" json:"-"`
	Role        UserRole `gorm:"size:20;default:'user'" json:"role"`
	FullName    string   `gorm:"size:100" json:"full_name"`
	Bio         string   `gorm:"type:text" json:"bio"`
	AvatarURL   string   `gorm:"size:255" json:"avatar_url"`
	PhoneNumber string   `gorm:"size:30" json:"phone_number"`
	Skills      string   `gorm:"type:text" json:"skills"`
	Location    string   `gorm:"size:100" json:"location"`
}

func (User) TableName() string {
	return "users"
}
