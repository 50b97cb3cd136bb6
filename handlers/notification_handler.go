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

// NotificationHandler gère les requêtes de notifications push
type NotificationHandler struct {
	subscriptionRepo *database.SubscriptionRepository
	pushService      *services.PushService
	vapidPublicKey   string
}

// NewNotificationHandler crée une nouvelle instance de NotificationHandler
func NewNotificationHandler(db *mongo.Database, pushService *services.PushService, vapidPublicKey string) *NotificationHandler {
	return &NotificationHandler{
		subscriptionRepo: database.NewSubscriptionRepository(db),
		pushService:      pushService,
		vapidPublicKey:   vapidPublicKey,
	}
}

// Subscribe abonne l'employé connecté aux notifications push
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	claims := middleware.GetEmployeeFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.Subscription.Endpoint == "" {
		utils.RespondError(w, http.StatusBadRequest, "Endpoint d'abonnement manquant")
		return
	}

	// Vérifier si l'abonnement existe déjà
	existing, err := h.subscriptionRepo.FindByEndpoint(req.Subscription.Endpoint)
	if err != nil {
		log.Printf("Erreur lors de la vérification de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if existing != nil {
		utils.RespondSuccess(w, "Abonnement déjà existant", nil)
		return
	}

	// L'abonnement est rattaché à l'email du token, pas à celui du corps
	subscription := &models.PushSubscription{
		EmployeeEmail: claims.Email,
		Endpoint:      req.Subscription.Endpoint,
		Keys:          req.Subscription.Keys,
	}

	if err := h.subscriptionRepo.Create(subscription); err != nil {
		log.Printf("Erreur lors de la création de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de l'abonnement")
		return
	}

	log.Printf("✓ Nouvel abonnement créé pour: %s", claims.Email)
	utils.RespondSuccess(w, "Abonnement créé avec succès", subscription)
}

// Unsubscribe désabonne un endpoint des notifications
func (h *NotificationHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Endpoint string `json:"endpoint"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if err := h.subscriptionRepo.Delete(req.Endpoint); err != nil {
		log.Printf("Erreur lors de la suppression de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Abonnement supprimé: %s", req.Endpoint)
	utils.RespondSuccess(w, "Désabonnement réussi", nil)
}

// Broadcast envoie une notification à tous les abonnés (admin)
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Title   string      `json:"title"`
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.Title == "" {
		req.Title = "Nouvelle notification"
	}
	if req.Message == "" {
		req.Message = "Vous avez reçu une nouvelle notification"
	}

	sent, failed, err := h.pushService.SendToAll(req.Title, req.Message, req.Data)
	if err != nil {
		log.Printf("Erreur lors de l'envoi des notifications: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondSuccess(w, "Notifications envoyées", map[string]interface{}{
		"sent":   sent,
		"failed": failed,
	})
}

// GetVAPIDPublicKey retourne la clé publique VAPID
func (h *NotificationHandler) GetVAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"publicKey": h.vapidPublicKey,
	})
}
