package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FCMToken représente un token FCM enregistré par un employé
type FCMToken struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeEmail string             `json:"employee_email" bson:"employee_email"`
	Token         string             `json:"token" bson:"token"`
	Device        string             `json:"device,omitempty" bson:"device,omitempty"` // Type d'appareil (iOS, Android, Web)
	UserAgent     string             `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// FCMSubscribeRequest représente la requête d'abonnement FCM
type FCMSubscribeRequest struct {
	FCMToken  string `json:"fcm_token"`
	Device    string `json:"device,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}
