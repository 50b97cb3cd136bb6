package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/models"
	"selection-voyages-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminHandler gère les requêtes d'administration
type AdminHandler struct {
	employeeRepo    *database.EmployeeRepository
	sessionRepo     *database.SessionRepository
	inscriptionRepo *database.InscriptionRepository
	resultatRepo    *database.ResultatSelectionRepository
}

// NewAdminHandler crée une nouvelle instance de AdminHandler
func NewAdminHandler(db *mongo.Database) *AdminHandler {
	return &AdminHandler{
		employeeRepo:    database.NewEmployeeRepository(db),
		sessionRepo:     database.NewSessionRepository(db),
		inscriptionRepo: database.NewInscriptionRepository(db),
		resultatRepo:    database.NewResultatSelectionRepository(db),
	}
}

// GetEmployes retourne la liste de tous les employés
func (h *AdminHandler) GetEmployes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	employes, err := h.employeeRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des employés: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"employes": employes,
	})
}

// UpdateEmploye met à jour un employé (y compris son rôle)
func (h *AdminHandler) UpdateEmploye(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	employeeID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidEmployeeID)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Construire l'update
	update := bson.M{}
	if req.Firstname != "" {
		update["firstname"] = req.Firstname
	}
	if req.Lastname != "" {
		update["lastname"] = req.Lastname
	}
	if req.Email != "" {
		update["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Structure != "" {
		update["structure"] = req.Structure
	}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleEmploye {
			utils.RespondError(w, http.StatusBadRequest, "Rôle invalide (admin ou employee)")
			return
		}
		update["role"] = *req.Role
	}

	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Aucune donnée à mettre à jour")
		return
	}

	if err := h.employeeRepo.Update(employeeID, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de l'employé: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	updatedEmploye, err := h.employeeRepo.FindByID(employeeID)
	if err != nil || updatedEmploye == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrEmployeeNotFound)
		return
	}

	log.Printf("✓ Employé modifié: %s (ID: %s)", updatedEmploye.Email, employeeID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employé modifié avec succès",
		"employe": updatedEmploye,
	})
}

// DeleteEmploye supprime un employé
func (h *AdminHandler) DeleteEmploye(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	employeeID, ok := ParseObjectIDVar(w, mux.Vars(r), "id", constants.ErrInvalidEmployeeID)
	if !ok {
		return
	}

	if err := h.employeeRepo.Delete(employeeID); err != nil {
		log.Printf("Erreur lors de la suppression de l'employé: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Employé supprimé: ID %s", employeeID.Hex())
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employé supprimé",
	})
}

// GetStats retourne les compteurs globaux du système
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	nbEmployes, err := h.employeeRepo.Count()
	if err != nil {
		log.Printf("Erreur lors du comptage des employés: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	nbSessions, err := h.sessionRepo.Count()
	if err != nil {
		log.Printf("Erreur lors du comptage des sessions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	nbInscriptions, err := h.inscriptionRepo.Count()
	if err != nil {
		log.Printf("Erreur lors du comptage des inscriptions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	nbTirages, err := h.resultatRepo.CountSessionsWithResults()
	if err != nil {
		log.Printf("Erreur lors du comptage des tirages: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"employes":             nbEmployes,
		"sessions":             nbSessions,
		"inscriptions":         nbInscriptions,
		"sessions_avec_tirage": nbTirages,
	})
}
