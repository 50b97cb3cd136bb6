package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role représente le rôle d'un employé dans le système
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEmploye Role = "employee"
)

// Employee représente un employé dans le système
type Employee struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Firstname string             `json:"firstname" bson:"firstname"`
	Lastname  string             `json:"lastname" bson:"lastname"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Matricule string             `json:"matricule" bson:"matricule"` // Code employé interne
	Structure string             `json:"structure" bson:"structure"` // Direction / service de rattachement
	Password  string             `json:"-" bson:"password"`          // Le "-" empêche la sérialisation du mot de passe
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// IsAdmin indique si l'employé est administrateur
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// RegisterRequest représente la requête d'inscription d'un employé
type RegisterRequest struct {
	Firstname string `json:"prenom"` // Frontend envoie "prenom" (français)
	Lastname  string `json:"nom"`    // Frontend envoie "nom" (français)
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"telephone"` // Frontend envoie "telephone" (français)
	Matricule string `json:"matricule" validate:"required"`
	Structure string `json:"structure"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest représente la requête de connexion
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateEmployeeRequest représente la requête de modification d'un employé
type UpdateEmployeeRequest struct {
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Structure string `json:"structure,omitempty"`
	Role      *Role  `json:"role,omitempty"` // Pointeur pour distinguer absent de vide
}

// ErrorResponse représente une réponse d'erreur
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse représente une réponse de succès générique
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
