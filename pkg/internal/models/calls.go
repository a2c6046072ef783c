package models

import "time"

// CallIdentity is a participant identity registered with the call provider.
// LiveKit does not keep a user directory of its own, so upserted identities
// live here and get embedded into join tokens when they are minted.
type CallIdentity struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
