package models

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Role         string `gorm:"not null"                 json:"role"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`
}
