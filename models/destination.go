package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypeDestination représente le type d'une destination
type TypeDestination string

const (
	DestinationExterne TypeDestination = "externe" // Hors des sites de l'entreprise
	DestinationInterne TypeDestination = "interne" // Centre de vacances de l'entreprise
)

// Destination représente une destination de voyage
type Destination struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nom         string             `json:"nom" bson:"nom"`
	Lieu        string             `json:"lieu" bson:"lieu"`
	Capacite    int                `json:"capacite" bson:"capacite"` // Nombre de places par session
	Type        TypeDestination    `json:"type" bson:"type"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateDestinationRequest représente la requête de création de destination
type CreateDestinationRequest struct {
	Nom         string `json:"nom"`
	Lieu        string `json:"lieu"`
	Capacite    int    `json:"capacite"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// UpdateDestinationRequest représente la requête de modification de destination
type UpdateDestinationRequest struct {
	Nom         string `json:"nom,omitempty"`
	Lieu        string `json:"lieu,omitempty"`
	Capacite    int    `json:"capacite,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}
