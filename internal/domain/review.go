package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user_Reviews document. Reviews are append-only; nothing in
// this service updates or deletes them. Rating is stored as free text
// because the submitting form sends it that way.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name   string             `bson:"name" json:"name"`
	Review string             `bson:"review" json:"review"`
	Rating string             `bson:"rating" json:"rating"`
}
