package models

import "time"

type User struct {
	FullName        string    `json:"fullName" bson:"fullName"`
	Email           string    `json:"email" bson:"email"`
	Password        string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	DestinationCity string    `json:"destinationCity" bson:"destinationCity"`
	Preferences     []string  `json:"preferences" bson:"preferences"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the safe projection returned to clients.
type UserProfile struct {
	Email           string   `json:"email" bson:"email"`
	FullName        string   `json:"fullName" bson:"fullName"`
	DestinationCity string   `json:"destinationCity,omitempty" bson:"destinationCity,omitempty"`
	Preferences     []string `json:"preferences" bson:"preferences"`
}

func (u User) Profile() UserProfile {
	prefs := u.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return UserProfile{
		Email:           u.Email,
		FullName:        u.FullName,
		DestinationCity: u.DestinationCity,
		Preferences:     prefs,
	}
}
