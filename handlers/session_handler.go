package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/models"
	"selection-voyages-backend/rules"
	"selection-voyages-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionHandler gère les requêtes sur les sessions de voyage
type SessionHandler struct {
	sessionRepo     *database.SessionRepository
	destinationRepo *database.DestinationRepository
	periodeRepo     *database.PeriodeRepository
}

// SessionAvecStatut enrichit une session avec son statut temporel dérivé
// et l'éligibilité d'inscription calculée à l'instant de la requête
type SessionAvecStatut struct {
	models.Session
	StatutTemporel      rules.StatutSession `json:"statut_temporel"`
	InscriptionPossible bool                `json:"inscription_possible"`
	MotifRefus          string              `json:"motif_refus,omitempty"`
	Destination         *models.Destination `json:"destination,omitempty"`
}

// NewSessionHandler crée une nouvelle instance de SessionHandler
func NewSessionHandler(db *mongo.Database) *SessionHandler {
	return &SessionHandler{
		sessionRepo:     database.NewSessionRepository(db),
		destinationRepo: database.NewDestinationRepository(db),
		periodeRepo:     database.NewPeriodeRepository(db),
	}
}

// enrichirSession calcule le statut temporel et l'éligibilité d'une session.
// La période peut être nil si elle a été supprimée : l'inscription est alors refusée.
func (h *SessionHandler) enrichirSession(now time.Time, session models.Session, periode *models.Periode, destination *models.Destination) SessionAvecStatut {
	enrichie := SessionAvecStatut{
		Session:        session,
		StatutTemporel: rules.EvaluerStatutSession(now, session),
		Destination:    destination,
	}

	if periode == nil {
		enrichie.MotifRefus = constants.ErrPeriodeNotFound
		return enrichie
	}

	ok, motif := rules.VerifierInscription(now, *periode, session)
	enrichie.InscriptionPossible = ok
	enrichie.MotifRefus = motif
	return enrichie
}

// GetSessions retourne les sessions avec statuts dérivés, filtrables par période (?periode_id=)
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var sessions []models.Session
	var err error

	if periodeIDParam := r.URL.Query().Get("periode_id"); periodeIDParam != "" {
		periodeID, parseErr := primitive.ObjectIDFromHex(periodeIDParam)
		if parseErr != nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidPeriodeID)
			return
		}
		sessions, err = h.sessionRepo.FindByPeriode(periodeID)
	} else {
		sessions, err = h.sessionRepo.FindAll()
	}

	if err != nil {
		log.Printf("Erreur lors de la récupération des sessions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Charger les périodes et destinations une seule fois
	periodes := make(map[primitive.ObjectID]*models.Periode)
	destinations := make(map[primitive.ObjectID]*models.Destination)

	now := time.Now()
	enrichies := make([]SessionAvecStatut, 0, len(sessions))
	for _, session := range sessions {
		periode, cached := periodes[session.PeriodeID]
		if !cached {
			periode, _ = h.periodeRepo.FindByID(session.PeriodeID)
			periodes[session.PeriodeID] = periode
		}

		destination, cached := destinations[session.DestinationID]
		if !cached {
			destination, _ = h.destinationRepo.FindByID(session.DestinationID)
			destinations[session.DestinationID] = destination
		}

		enrichies = append(enrichies, h.enrichirSession(now, session, periode, destination))
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": enrichies,
	})
}

// GetSession retourne une session par son ID avec ses statuts dérivés
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sessionID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidSessionID)
	if !ok {
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

	periode, _ := h.periodeRepo.FindByID(session.PeriodeID)
	destination, _ := h.destinationRepo.FindByID(session.DestinationID)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"session": h.enrichirSession(time.Now(), *session, periode, destination),
	})
}

// CreateSession crée une nouvelle session (admin)
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.Nom == "" {
		utils.RespondError(w, http.StatusBadRequest, "Le nom est requis")
		return
	}
	if req.DateDebut.Time.IsZero() || req.DateFin.Time.IsZero() {
		utils.RespondError(w, http.StatusBadRequest, "Les dates de début et de fin sont requises")
		return
	}
	if !req.DateDebut.Time.Before(req.DateFin.Time) {
		utils.RespondError(w, http.StatusBadRequest, "La date de début doit précéder la date de fin")
		return
	}

	destinationID, err := primitive.ObjectIDFromHex(req.DestinationID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidDestinationID)
		return
	}
	periodeID, err := primitive.ObjectIDFromHex(req.PeriodeID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidPeriodeID)
		return
	}

	// Vérifier que la destination et la période existent
	destination, err := h.destinationRepo.FindByID(destinationID)
	if err != nil || destination == nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrDestinationNotFound)
		return
	}
	periode, err := h.periodeRepo.FindByID(periodeID)
	if err != nil || periode == nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrPeriodeNotFound)
		return
	}

	session := &models.Session{
		Nom:           req.Nom,
		DateDebut:     req.DateDebut.Time,
		DateFin:       req.DateFin.Time,
		DestinationID: destinationID,
		PeriodeID:     periodeID,
	}

	if err := h.sessionRepo.Create(session); err != nil {
		log.Printf("Erreur lors de la création de la session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de la session")
		return
	}

	log.Printf("✓ Session créée: %s (ID: %s)", session.Nom, session.ID.Hex())
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Session créée avec succès",
		"session": session,
	})
}

// UpdateSession met à jour une session (admin)
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	sessionID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidSessionID)
	if !ok {
		return
	}

	var req models.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
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

	dateDebut := session.DateDebut
	dateFin := session.DateFin

	update := bson.M{}
	if req.Nom != "" {
		update["nom"] = req.Nom
	}
	if req.DateDebut != nil && !req.DateDebut.Time.IsZero() {
		dateDebut = req.DateDebut.Time
		update["date_debut"] = dateDebut
	}
	if req.DateFin != nil && !req.DateFin.Time.IsZero() {
		dateFin = req.DateFin.Time
		update["date_fin"] = dateFin
	}
	if req.DestinationID != "" {
		destinationID, err := primitive.ObjectIDFromHex(req.DestinationID)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidDestinationID)
			return
		}
		destination, err := h.destinationRepo.FindByID(destinationID)
		if err != nil || destination == nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrDestinationNotFound)
			return
		}
		update["destination_id"] = destinationID
	}
	if req.PeriodeID != "" {
		periodeID, err := primitive.ObjectIDFromHex(req.PeriodeID)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidPeriodeID)
			return
		}
		periode, err := h.periodeRepo.FindByID(periodeID)
		if err != nil || periode == nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrPeriodeNotFound)
			return
		}
		update["periode_id"] = periodeID
	}

	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Aucune donnée à mettre à jour")
		return
	}

	if !dateDebut.Before(dateFin) {
		utils.RespondError(w, http.StatusBadRequest, "La date de début doit précéder la date de fin")
		return
	}

	if err := h.sessionRepo.Update(sessionID, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de la session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	updatedSession, err := h.sessionRepo.FindByID(sessionID)
	if err != nil || updatedSession == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrSessionNotFound)
		return
	}

	log.Printf("✓ Session modifiée: %s (ID: %s)", updatedSession.Nom, sessionID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Session modifiée",
		"session": updatedSession,
	})
}

// DeleteSession supprime une session (admin)
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	sessionID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidSessionID)
	if !ok {
		return
	}

	if err := h.sessionRepo.Delete(sessionID); err != nil {
		log.Printf("Erreur lors de la suppression de la session: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Session supprimée: ID %s", sessionID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Session supprimée",
	})
}
