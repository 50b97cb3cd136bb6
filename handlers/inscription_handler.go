package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/middleware"
	"selection-voyages-backend/models"
	"selection-voyages-backend/rules"
	"selection-voyages-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InscriptionHandler gère les requêtes d'inscription aux sessions
type InscriptionHandler struct {
	inscriptionRepo *database.InscriptionRepository
	sessionRepo     *database.SessionRepository
	periodeRepo     *database.PeriodeRepository
}

// NewInscriptionHandler crée une nouvelle instance de InscriptionHandler
func NewInscriptionHandler(db *mongo.Database) *InscriptionHandler {
	return &InscriptionHandler{
		inscriptionRepo: database.NewInscriptionRepository(db),
		sessionRepo:     database.NewSessionRepository(db),
		periodeRepo:     database.NewPeriodeRepository(db),
	}
}

// employeeIDFromContext extrait l'ObjectID de l'employé connecté
func employeeIDFromContext(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims := middleware.GetEmployeeFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return primitive.NilObjectID, false
	}

	employeeID, err := primitive.ObjectIDFromHex(claims.EmployeeID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrInvalidToken)
		return primitive.NilObjectID, false
	}

	return employeeID, true
}

// Create inscrit l'employé connecté à une session
func (h *InscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	employeeID, ok := employeeIDFromContext(w, r)
	if !ok {
		return
	}

	var req models.CreateInscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(req.SessionID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidSessionID)
		return
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if session == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrSessionNotFound)
		return
	}

	periode, err := h.periodeRepo.FindByID(session.PeriodeID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if periode == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrPeriodeNotFound)
		return
	}

	// Vérifier l'éligibilité : période ouverte, date limite non dépassée, session à venir
	if ok, motif := rules.VerifierInscription(time.Now(), *periode, *session); !ok {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Inscription impossible: %s", motif))
		return
	}

	// Vérifier que l'employé n'est pas déjà inscrit
	existing, err := h.inscriptionRepo.FindBySessionAndEmployee(sessionID, employeeID)
	if err != nil {
		log.Printf("Erreur lors de la vérification de l'inscription: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if existing != nil {
		utils.RespondError(w, http.StatusConflict, "Vous êtes déjà inscrit à cette session")
		return
	}

	inscription := &models.Inscription{
		EmployeeID: employeeID,
		SessionID:  sessionID,
	}

	if err := h.inscriptionRepo.Create(inscription); err != nil {
		log.Printf("Erreur lors de la création de l'inscription: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'inscription")
		return
	}

	log.Printf("✓ Inscription créée: employé %s -> session %s", employeeID.Hex(), session.Nom)
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"message":     "Inscription enregistrée avec succès",
		"inscription": inscription,
	})
}

// Cancel annule une inscription active de l'employé connecté
func (h *InscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	employeeID, ok := employeeIDFromContext(w, r)
	if !ok {
		return
	}

	inscriptionID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", "ID d'inscription invalide")
	if !ok {
		return
	}

	inscription, err := h.inscriptionRepo.FindByID(inscriptionID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'inscription: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if inscription == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrInscriptionNotFound)
		return
	}

	// Seul le titulaire peut annuler son inscription
	if inscription.EmployeeID != employeeID {
		utils.RespondError(w, http.StatusForbidden, "Vous ne pouvez annuler que vos propres inscriptions")
		return
	}

	// Seule une inscription active peut être annulée
	if inscription.Statut != models.InscriptionActive {
		utils.RespondError(w, http.StatusBadRequest, "Seule une inscription active peut être annulée")
		return
	}

	if err := h.inscriptionRepo.UpdateStatut(inscriptionID, models.InscriptionAnnulee); err != nil {
		log.Printf("Erreur lors de l'annulation de l'inscription: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Inscription annulée: %s (employé %s)", inscriptionID.Hex(), employeeID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Inscription annulée",
	})
}

// GetMine retourne les inscriptions de l'employé connecté
func (h *InscriptionHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	employeeID, ok := employeeIDFromContext(w, r)
	if !ok {
		return
	}

	inscriptions, err := h.inscriptionRepo.FindByEmployee(employeeID)
	if err != nil {
		log.Printf("Erreur lors de la récupération des inscriptions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"inscriptions": inscriptions,
	})
}

// GetByEmployee retourne les inscriptions d'un employé donné.
// Un employé ne peut consulter que les siennes, un admin celles de tout le monde.
func (h *InscriptionHandler) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	connectedID, ok := employeeIDFromContext(w, r)
	if !ok {
		return
	}

	cibleID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidEmployeeID)
	if !ok {
		return
	}

	if cibleID != connectedID {
		claims := middleware.GetEmployeeFromContext(r.Context())
		if claims == nil || models.Role(claims.Role) != models.RoleAdmin {
			utils.RespondError(w, http.StatusForbidden, constants.ErrAccessDenied)
			return
		}
	}

	inscriptions, err := h.inscriptionRepo.FindByEmployee(cibleID)
	if err != nil {
		log.Printf("Erreur lors de la récupération des inscriptions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"inscriptions": inscriptions,
	})
}

// FullHistory retourne l'historique complet filtrable des inscriptions (admin).
// Filtres en query string : ?recherche= (nom/prénom/session), ?annee=, ?statut=.
// Les facettes (années et statuts disponibles) sont calculées sur l'ensemble
// non filtré pour que l'interface puisse toujours proposer tous les choix.
func (h *InscriptionHandler) FullHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	lignes, err := h.inscriptionRepo.FullHistory()
	if err != nil {
		log.Printf("Erreur lors de la récupération de l'historique: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	query := r.URL.Query()
	filtre := rules.FiltreHistorique{
		Recherche: query.Get("recherche"),
		Annee:     query.Get("annee"),
		Statut:    query.Get("statut"),
	}

	filtrees := rules.FiltrerHistorique(lignes, filtre)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"historique": filtrees,
		"total":      len(filtrees),
		"facettes": map[string]interface{}{
			"annees":  rules.AnneesDisponibles(lignes),
			"statuts": rules.StatutsDisponibles(lignes),
		},
	})
}
