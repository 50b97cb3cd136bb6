package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatutInscription représente le statut d'une inscription.
// Les transitions (terminée, annulée) sont pilotées côté serveur,
// jamais calculées par le client.
type StatutInscription string

const (
	InscriptionActive   StatutInscription = "active"
	InscriptionTerminee StatutInscription = "completed"
	InscriptionAnnulee  StatutInscription = "cancelled"
)

// Inscription représente l'inscription d'un employé à une session de voyage
type Inscription struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID      primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	SessionID       primitive.ObjectID `json:"session_id" bson:"session_id"`
	DateInscription time.Time          `json:"date_inscription" bson:"date_inscription"`
	Statut          StatutInscription  `json:"statut" bson:"statut"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateInscriptionRequest représente la requête d'inscription à une session
type CreateInscriptionRequest struct {
	SessionID string `json:"session_id"`
}

// LigneHistorique représente une ligne dénormalisée de l'historique complet
// des inscriptions (employé + session + destination joints côté base)
type LigneHistorique struct {
	InscriptionID   string            `json:"inscription_id" bson:"inscription_id"`
	Nom             string            `json:"nom" bson:"nom"`
	Prenom          string            `json:"prenom" bson:"prenom"`
	Email           string            `json:"email" bson:"email"`
	Structure       string            `json:"structure" bson:"structure"`
	SessionNom      string            `json:"session_nom" bson:"session_nom"`
	DestinationNom  string            `json:"destination_nom" bson:"destination_nom"`
	DateInscription string            `json:"date_inscription" bson:"date_inscription"` // Format ISO YYYY-MM-DD...
	Statut          StatutInscription `json:"statut" bson:"statut"`
}
