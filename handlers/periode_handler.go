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
	"go.mongodb.org/mongo-driver/mongo"
)

// PeriodeHandler gère les requêtes sur les périodes d'inscription
type PeriodeHandler struct {
	periodeRepo *database.PeriodeRepository
}

// PeriodeAvecStatut enrichit une période avec son statut temporel dérivé.
// Le statut dérivé n'est jamais persisté, il est recalculé à chaque lecture.
type PeriodeAvecStatut struct {
	models.Periode
	StatutDerive         rules.StatutPeriodeDerive `json:"statut_derive"`
	InscriptionsOuvertes bool                      `json:"inscriptions_ouvertes"`
}

// NewPeriodeHandler crée une nouvelle instance de PeriodeHandler
func NewPeriodeHandler(db *mongo.Database) *PeriodeHandler {
	return &PeriodeHandler{
		periodeRepo: database.NewPeriodeRepository(db),
	}
}

// enrichirPeriode calcule les champs dérivés d'une période à l'instant donné
func enrichirPeriode(now time.Time, periode models.Periode) PeriodeAvecStatut {
	return PeriodeAvecStatut{
		Periode:              periode,
		StatutDerive:         rules.EvaluerStatutPeriode(now, periode),
		InscriptionsOuvertes: rules.PeutSInscrire(now, periode),
	}
}

// GetPeriodes retourne la liste des périodes avec leur statut dérivé
func (h *PeriodeHandler) GetPeriodes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	periodes, err := h.periodeRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des périodes: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	now := time.Now()
	enrichies := make([]PeriodeAvecStatut, 0, len(periodes))
	for _, periode := range periodes {
		enrichies = append(enrichies, enrichirPeriode(now, periode))
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"periodes": enrichies,
	})
}

// GetPeriode retourne une période par son ID avec son statut dérivé
func (h *PeriodeHandler) GetPeriode(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	periodeID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidPeriodeID)
	if !ok {
		return
	}

	periode, err := h.periodeRepo.FindByID(periodeID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if periode == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrPeriodeNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"periode": enrichirPeriode(time.Now(), *periode),
	})
}

// validerDatesPeriode vérifie l'ordre date limite <= début < fin
func validerDatesPeriode(dateDebut, dateFin, dateLimite time.Time) string {
	if !dateDebut.Before(dateFin) {
		return "La date de début doit précéder la date de fin"
	}
	if dateLimite.After(dateDebut) {
		return "La date limite d'inscription doit précéder le début de la période"
	}
	return ""
}

// CreatePeriode crée une nouvelle période (admin)
func (h *PeriodeHandler) CreatePeriode(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.CreatePeriodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if req.Nom == "" {
		utils.RespondError(w, http.StatusBadRequest, "Le nom est requis")
		return
	}
	if req.DateDebut.Time.IsZero() || req.DateFin.Time.IsZero() || req.DateLimiteInscription.Time.IsZero() {
		utils.RespondError(w, http.StatusBadRequest, "Les dates de début, fin et limite d'inscription sont requises")
		return
	}
	if msg := validerDatesPeriode(req.DateDebut.Time, req.DateFin.Time, req.DateLimiteInscription.Time); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	statut := models.StatutPeriode(req.Statut)
	if req.Statut != "" && statut != models.PeriodeOuverte && statut != models.PeriodeFermee {
		utils.RespondError(w, http.StatusBadRequest, "Statut de période invalide (open ou closed)")
		return
	}

	periode := &models.Periode{
		Nom:                   req.Nom,
		DateDebut:             req.DateDebut.Time,
		DateFin:               req.DateFin.Time,
		DateLimiteInscription: req.DateLimiteInscription.Time,
		Statut:                statut,
	}

	if err := h.periodeRepo.Create(periode); err != nil {
		log.Printf("Erreur lors de la création de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de la période")
		return
	}

	log.Printf("✓ Période créée: %s (ID: %s)", periode.Nom, periode.ID.Hex())
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Période créée avec succès",
		"periode": periode,
	})
}

// UpdatePeriode met à jour une période (admin)
func (h *PeriodeHandler) UpdatePeriode(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	periodeID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidPeriodeID)
	if !ok {
		return
	}

	var req models.UpdatePeriodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Récupérer la période existante pour valider l'ordre des dates
	periode, err := h.periodeRepo.FindByID(periodeID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if periode == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrPeriodeNotFound)
		return
	}

	dateDebut := periode.DateDebut
	dateFin := periode.DateFin
	dateLimite := periode.DateLimiteInscription

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
	if req.DateLimiteInscription != nil && !req.DateLimiteInscription.Time.IsZero() {
		dateLimite = req.DateLimiteInscription.Time
		update["date_limite_inscription"] = dateLimite
	}
	if req.Statut != "" {
		statut := models.StatutPeriode(req.Statut)
		if statut != models.PeriodeOuverte && statut != models.PeriodeFermee {
			utils.RespondError(w, http.StatusBadRequest, "Statut de période invalide (open ou closed)")
			return
		}
		update["statut"] = statut
	}

	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Aucune donnée à mettre à jour")
		return
	}

	if msg := validerDatesPeriode(dateDebut, dateFin, dateLimite); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.periodeRepo.Update(periodeID, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	updatedPeriode, err := h.periodeRepo.FindByID(periodeID)
	if err != nil || updatedPeriode == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrPeriodeNotFound)
		return
	}

	log.Printf("✓ Période modifiée: %s (ID: %s)", updatedPeriode.Nom, periodeID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Période modifiée",
		"periode": enrichirPeriode(time.Now(), *updatedPeriode),
	})
}

// DeletePeriode supprime une période (admin)
func (h *PeriodeHandler) DeletePeriode(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	periodeID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidPeriodeID)
	if !ok {
		return
	}

	if err := h.periodeRepo.Delete(periodeID); err != nil {
		log.Printf("Erreur lors de la suppression de la période: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Période supprimée: ID %s", periodeID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Période supprimée",
	})
}
