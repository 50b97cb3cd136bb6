package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PushSubscription représente un abonnement web push d'un employé
type PushSubscription struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeEmail string             `json:"employee_email" bson:"employee_email"`
	Endpoint      string             `json:"endpoint" bson:"endpoint"`
	Keys          PushKeys           `json:"keys" bson:"keys"`
	Created       time.Time          `json:"created_at" bson:"created_at"`
}

// PushKeys contient les clés de chiffrement pour les notifications
type PushKeys struct {
	P256dh string `json:"p256dh" bson:"p256dh"`
	Auth   string `json:"auth" bson:"auth"`
}

// SubscribeRequest représente la requête d'abonnement aux notifications
type SubscribeRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Subscription  struct {
		Endpoint string   `json:"endpoint"`
		Keys     PushKeys `json:"keys"`
	} `json:"subscription"`
}

// NotificationPayload représente le contenu d'une notification web push
type NotificationPayload struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Icon  string      `json:"icon,omitempty"`
	Badge string      `json:"badge,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}
