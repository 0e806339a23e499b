package models

import "time"

type Review struct {
	EmailID   string    `json:"emailId" bson:"emailId"`
	SpotID    int       `json:"spotId" bson:"spotId"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
