package models

import "time"

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       time.Time `json:"dob"`
	AvatarKey *string   `json:"-"`
	AvatarURL string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
