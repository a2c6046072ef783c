package models

type Account struct {
	BaseModel

	Name     string  `json:"name"`
	Email    string  `json:"email" gorm:"uniqueIndex"`
	Password string  `json:"-"`
	Avatar   *string `json:"avatar"`

	Agents   []Agent   `json:"agents" gorm:"foreignKey:AccountID"`
	Meetings []Meeting `json:"meetings" gorm:"foreignKey:AccountID"`
}
