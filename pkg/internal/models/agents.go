package models

type Agent struct {
	BaseModel

	Name         string `json:"name"`
	Instructions string `json:"instructions"`

	AccountID string  `json:"account_id"`
	Account   Account `json:"account"`

	Meetings []Meeting `json:"meetings" gorm:"foreignKey:AgentID"`
}
