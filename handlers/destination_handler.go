package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/models"
	"selection-voyages-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DestinationHandler gère les requêtes sur les destinations
type DestinationHandler struct {
	destinationRepo *database.DestinationRepository
}

// NewDestinationHandler crée une nouvelle instance de DestinationHandler
func NewDestinationHandler(db *mongo.Database) *DestinationHandler {
	return &DestinationHandler{
		destinationRepo: database.NewDestinationRepository(db),
	}
}

// GetDestinations retourne la liste de toutes les destinations
func (h *DestinationHandler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	destinations, err := h.destinationRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des destinations: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": destinations,
	})
}

// GetDestination retourne une destination par son ID
func (h *DestinationHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	destinationID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidDestinationID)
	if !ok {
		return
	}

	destination, err := h.destinationRepo.FindByID(destinationID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la destination: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if destination == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrDestinationNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"destination": destination,
	})
}

// CreateDestination crée une nouvelle destination (admin)
func (h *DestinationHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Valider les données
	if req.Nom == "" || req.Lieu == "" {
		utils.RespondError(w, http.StatusBadRequest, "Nom et lieu sont requis")
		return
	}
	if req.Capacite <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "La capacité doit être strictement positive")
		return
	}
	typ := models.TypeDestination(req.Type)
	if typ != models.DestinationExterne && typ != models.DestinationInterne {
		utils.RespondError(w, http.StatusBadRequest, "Type de destination invalide (externe ou interne)")
		return
	}

	destination := &models.Destination{
		Nom:         req.Nom,
		Lieu:        req.Lieu,
		Capacite:    req.Capacite,
		Type:        typ,
		Description: req.Description,
	}

	if err := h.destinationRepo.Create(destination); err != nil {
		log.Printf("Erreur lors de la création de la destination: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de la destination")
		return
	}

	log.Printf("✓ Destination créée: %s (ID: %s)", destination.Nom, destination.ID.Hex())
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"message":     "Destination créée avec succès",
		"destination": destination,
	})
}

// UpdateDestination met à jour une destination (admin)
func (h *DestinationHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	destinationID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidDestinationID)
	if !ok {
		return
	}

	var req models.UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Construire l'update
	update := bson.M{}
	if req.Nom != "" {
		update["nom"] = req.Nom
	}
	if req.Lieu != "" {
		update["lieu"] = req.Lieu
	}
	if req.Capacite > 0 {
		update["capacite"] = req.Capacite
	}
	if req.Type != "" {
		typ := models.TypeDestination(req.Type)
		if typ != models.DestinationExterne && typ != models.DestinationInterne {
			utils.RespondError(w, http.StatusBadRequest, "Type de destination invalide (externe ou interne)")
			return
		}
		update["type"] = typ
	}
	if req.Description != "" {
		update["description"] = req.Description
	}

	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Aucune donnée à mettre à jour")
		return
	}

	if err := h.destinationRepo.Update(destinationID, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de la destination: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	updatedDestination, err := h.destinationRepo.FindByID(destinationID)
	if err != nil || updatedDestination == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrDestinationNotFound)
		return
	}

	log.Printf("✓ Destination modifiée: %s (ID: %s)", updatedDestination.Nom, destinationID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Destination modifiée",
		"destination": updatedDestination,
	})
}

// DeleteDestination supprime une destination (admin)
func (h *DestinationHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	destinationID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidDestinationID)
	if !ok {
		return
	}

	if err := h.destinationRepo.Delete(destinationID); err != nil {
		log.Printf("Erreur lors de la suppression de la destination: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Destination supprimée: ID %s", destinationID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Destination supprimée",
	})
}
