package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatutPeriode représente le statut administratif stocké d'une période.
// Seul ouvert/fermé est persisté : les statuts temporels (expirée, à venir...)
// sont dérivés à la lecture et jamais écrits en base.
type StatutPeriode string

const (
	PeriodeOuverte StatutPeriode = "open"
	PeriodeFermee  StatutPeriode = "closed"
)

// Periode représente une fenêtre administrative d'inscription
type Periode struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nom                   string             `json:"nom" bson:"nom"`
	DateDebut             time.Time          `json:"date_debut" bson:"date_debut"`
	DateFin               time.Time          `json:"date_fin" bson:"date_fin"`
	DateLimiteInscription time.Time          `json:"date_limite_inscription" bson:"date_limite_inscription"`
	Statut                StatutPeriode      `json:"statut" bson:"statut"`
	RappelEnvoye          bool               `json:"rappel_envoye" bson:"rappel_envoye"` // Rappel de date limite déjà notifié
	CreatedAt             time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePeriodeRequest représente la requête de création de période
type CreatePeriodeRequest struct {
	Nom                   string       `json:"nom"`
	DateDebut             FlexibleTime `json:"date_debut"`
	DateFin               FlexibleTime `json:"date_fin"`
	DateLimiteInscription FlexibleTime `json:"date_limite_inscription"`
	Statut                string       `json:"statut"`
}

// UpdatePeriodeRequest représente la requête de modification de période
type UpdatePeriodeRequest struct {
	Nom                   string        `json:"nom,omitempty"`
	DateDebut             *FlexibleTime `json:"date_debut,omitempty"`
	DateFin               *FlexibleTime `json:"date_fin,omitempty"`
	DateLimiteInscription *FlexibleTime `json:"date_limite_inscription,omitempty"`
	Statut                string        `json:"statut,omitempty"`
}
