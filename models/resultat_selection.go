package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypeSelection distingue les gagnants officiels des suppléants
type TypeSelection string

const (
	SelectionOfficiel  TypeSelection = "official"
	SelectionSuppleant TypeSelection = "substitute"
)

// ResultatSelection représente une ligne du résultat d'un tirage pour une session.
// Les lignes sont produites en lot par le tirage et jamais modifiées ensuite.
type ResultatSelection struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SessionID     primitive.ObjectID `json:"session_id" bson:"session_id"`
	EmployeeID    primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	Type          TypeSelection      `json:"selection_type" bson:"selection_type"`
	Priorite      int                `json:"priority_order" bson:"priority_order"` // Rang 1 = premier choisi, par type
	DateSelection time.Time          `json:"selected_at" bson:"selected_at"`
}
