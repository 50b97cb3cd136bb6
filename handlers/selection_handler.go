package handlers

import (
	"errors"
	"log"
	"net/http"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/models"
	"selection-voyages-backend/rules"
	"selection-voyages-backend/services"
	"selection-voyages-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SelectionHandler gère les requêtes sur les résultats de tirage
type SelectionHandler struct {
	resultatRepo  *database.ResultatSelectionRepository
	employeeRepo  *database.EmployeeRepository
	tirageService *services.TirageService
}

// ResultatAvecEmploye enrichit une ligne de résultat avec l'employé sélectionné
type ResultatAvecEmploye struct {
	models.ResultatSelection
	Employe *models.Employee `json:"employe,omitempty"`
}

// NewSelectionHandler crée une nouvelle instance de SelectionHandler
func NewSelectionHandler(db *mongo.Database, tirageService *services.TirageService) *SelectionHandler {
	return &SelectionHandler{
		resultatRepo:  database.NewResultatSelectionRepository(db),
		employeeRepo:  database.NewEmployeeRepository(db),
		tirageService: tirageService,
	}
}

// enrichirResultats joint les employés aux lignes de résultat
func (h *SelectionHandler) enrichirResultats(resultats []models.ResultatSelection) []ResultatAvecEmploye {
	employes := make(map[primitive.ObjectID]*models.Employee)

	enrichis := make([]ResultatAvecEmploye, 0, len(resultats))
	for _, resultat := range resultats {
		employe, cached := employes[resultat.EmployeeID]
		if !cached {
			employe, _ = h.employeeRepo.FindByID(resultat.EmployeeID)
			employes[resultat.EmployeeID] = employe
		}
		enrichis = append(enrichis, ResultatAvecEmploye{
			ResultatSelection: resultat,
			Employe:           employe,
		})
	}

	return enrichis
}

// GetBySession retourne le résultat du tirage d'une session, partitionné en
// gagnants officiels et suppléants triés par rang. 404 si aucun tirage.
func (h *SelectionHandler) GetBySession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sessionID, ok := ParseSessionID(w, r)
	if !ok {
		return
	}

	resultats, err := h.resultatRepo.FindBySession(sessionID)
	if err != nil {
		log.Printf("Erreur lors de la récupération des résultats: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if len(resultats) == 0 {
		utils.RespondError(w, http.StatusNotFound, constants.ErrNoSelectionResults)
		return
	}

	partition := rules.Partitionner(resultats)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":        sessionID.Hex(),
		"officiels":         h.enrichirResultats(partition.Officiels),
		"suppleants":        h.enrichirResultats(partition.Suppleants),
		"nombre_officiels":  partition.NombreOfficiels(),
		"nombre_suppleants": partition.NombreSuppleants(),
		"total":             partition.Total(),
	})
}

// Generate lance le tirage au sort pour une session (admin)
func (h *SelectionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	sessionID, ok := ParseSessionID(w, r)
	if !ok {
		return
	}

	resultats, err := h.tirageService.Generer(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelectionDejaGeneree):
			utils.RespondError(w, http.StatusConflict, constants.ErrSelectionExists)
		case errors.Is(err, services.ErrAucuneInscriptionActive):
			utils.RespondError(w, http.StatusBadRequest, constants.ErrNoActiveInscriptions)
		case errors.Is(err, services.ErrSessionIntrouvable):
			utils.RespondError(w, http.StatusNotFound, constants.ErrSessionNotFound)
		case errors.Is(err, services.ErrDestinationIntrouvable):
			utils.RespondError(w, http.StatusNotFound, constants.ErrDestinationNotFound)
		default:
			log.Printf("Erreur lors du tirage: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		}
		return
	}

	partition := rules.Partitionner(resultats)

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":           true,
		"message":           "Tirage effectué avec succès",
		"session_id":        sessionID.Hex(),
		"officiels":         h.enrichirResultats(partition.Officiels),
		"suppleants":        h.enrichirResultats(partition.Suppleants),
		"nombre_officiels":  partition.NombreOfficiels(),
		"nombre_suppleants": partition.NombreSuppleants(),
		"total":             partition.Total(),
	})
}

// DeleteBySession supprime le résultat du tirage d'une session (admin).
// Permet de relancer un tirage après une erreur de manipulation.
func (h *SelectionHandler) DeleteBySession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	sessionID, ok := ParseSessionID(w, r)
	if !ok {
		return
	}

	deleted, err := h.resultatRepo.DeleteBySession(sessionID)
	if err != nil {
		log.Printf("Erreur lors de la suppression des résultats: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if deleted == 0 {
		utils.RespondError(w, http.StatusNotFound, constants.ErrNoSelectionResults)
		return
	}

	log.Printf("✓ Tirage supprimé pour la session %s (%d lignes)", sessionID.Hex(), deleted)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Résultats du tirage supprimés",
		"deleted": deleted,
	})
}
