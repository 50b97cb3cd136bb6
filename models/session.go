package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session représente une session de voyage rattachée à une destination et une période
type Session struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nom           string             `json:"nom" bson:"nom"`
	DateDebut     time.Time          `json:"date_debut" bson:"date_debut"`
	DateFin       time.Time          `json:"date_fin" bson:"date_fin"`
	DestinationID primitive.ObjectID `json:"destination_id" bson:"destination_id"`
	PeriodeID     primitive.ObjectID `json:"periode_id" bson:"periode_id"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateSessionRequest représente la requête de création de session
type CreateSessionRequest struct {
	Nom           string       `json:"nom"`
	DateDebut     FlexibleTime `json:"date_debut"`
	DateFin       FlexibleTime `json:"date_fin"`
	DestinationID string       `json:"destination_id"`
	PeriodeID     string       `json:"periode_id"`
}

// UpdateSessionRequest représente la requête de modification de session
type UpdateSessionRequest struct {
	Nom           string        `json:"nom,omitempty"`
	DateDebut     *FlexibleTime `json:"date_debut,omitempty"`
	DateFin       *FlexibleTime `json:"date_fin,omitempty"`
	DestinationID string        `json:"destination_id,omitempty"`
	PeriodeID     string        `json:"periode_id,omitempty"`
}
