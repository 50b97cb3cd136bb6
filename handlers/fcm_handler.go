package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/middleware"
	"selection-voyages-backend/models"
	"selection-voyages-backend/services"
	"selection-voyages-backend/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// FCMHandler gère l'enregistrement des tokens Firebase Cloud Messaging
type FCMHandler struct {
	fcmService *services.FCMService
	tokenRepo  *database.FCMTokenRepository
}

// NewFCMHandler crée une nouvelle instance de FCMHandler
func NewFCMHandler(db *mongo.Database, fcmService *services.FCMService) *FCMHandler {
	return &FCMHandler{
		fcmService: fcmService,
		tokenRepo:  database.NewFCMTokenRepository(db),
	}
}

// Subscribe enregistre un token FCM pour l'employé connecté
func (h *FCMHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	claims := middleware.GetEmployeeFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	var req models.FCMSubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.FCMToken == "" {
		utils.RespondError(w, http.StatusBadRequest, "fcm_token est requis")
		return
	}

	// Créer ou mettre à jour le token, rattaché à l'email du token JWT
	token := &models.FCMToken{
		EmployeeEmail: claims.Email,
		Token:         req.FCMToken,
		Device:        req.Device,
		UserAgent:     req.UserAgent,
	}

	if err := h.tokenRepo.Upsert(token); err != nil {
		log.Printf("Erreur lors de l'enregistrement du token FCM: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Token FCM enregistré pour: %s", claims.Email)
	utils.RespondSuccess(w, "Abonnement FCM réussi", token)
}

// Unsubscribe supprime un token FCM
func (h *FCMHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		FCMToken string `json:"fcm_token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.FCMToken == "" {
		utils.RespondError(w, http.StatusBadRequest, "fcm_token est requis")
		return
	}

	if err := h.tokenRepo.Delete(req.FCMToken); err != nil {
		log.Printf("Erreur lors de la suppression du token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Println("✓ Token FCM supprimé")
	utils.RespondSuccess(w, "Désabonnement réussi", nil)
}
