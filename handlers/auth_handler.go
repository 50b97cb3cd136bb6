package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"selection-voyages-backend/constants"
	"selection-voyages-backend/database"
	"selection-voyages-backend/middleware"
	"selection-voyages-backend/models"
	"selection-voyages-backend/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuthHandler gère les requêtes d'authentification
type AuthHandler struct {
	employeeRepo *database.EmployeeRepository
	jwtSecret    string
}

// NewAuthHandler crée une nouvelle instance de AuthHandler
func NewAuthHandler(db *mongo.Database, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		employeeRepo: database.NewEmployeeRepository(db),
		jwtSecret:    jwtSecret,
	}
}

// Register gère l'inscription d'un nouvel employé
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	// Décoder la requête
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Valider les données
	if err := h.validateRegisterRequest(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Vérifier si l'email existe déjà
	exists, err := h.employeeRepo.EmailExists(req.Email)
	if err != nil {
		log.Printf("Erreur lors de la vérification de l'email: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if exists {
		utils.RespondError(w, http.StatusConflict, "Cet email est déjà utilisé")
		return
	}

	// Hacher le mot de passe avec bcrypt
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Erreur lors du hachage du mot de passe: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Créer l'employé
	employee := &models.Employee{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Matricule: strings.TrimSpace(req.Matricule),
		Structure: req.Structure,
		Password:  hashedPassword,
		Role:      models.RoleEmploye, // Par défaut, les nouveaux comptes ne sont pas admin
	}

	if err := h.employeeRepo.Create(employee); err != nil {
		log.Printf("Erreur lors de la création de l'employé: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création du compte")
		return
	}

	// Générer le token JWT
	token, err := utils.GenerateToken(employee.ID.Hex(), employee.Email, string(employee.Role), h.jwtSecret)
	if err != nil {
		log.Printf("Erreur lors de la génération du token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Répondre avec le token et les informations de l'employé
	response := map[string]interface{}{
		"success": true,
		"token":   token,
		"employe": *employee,
	}

	log.Printf("✓ Nouvel employé inscrit: %s (ID: %s)", employee.Email, employee.ID.Hex())

	utils.RespondJSON(w, http.StatusCreated, response)
}

// Login gère la connexion d'un employé
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	// Décoder la requête
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	// Valider les données
	if err := h.validateLoginRequest(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Rechercher l'employé par email
	email := strings.ToLower(strings.TrimSpace(req.Email))
	employee, err := h.employeeRepo.FindByEmail(email)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'employé: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if employee == nil {
		utils.RespondError(w, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		return
	}

	// Vérifier le mot de passe
	if !utils.CheckPassword(employee.Password, req.Password) {
		utils.RespondError(w, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		return
	}

	// Générer le token JWT
	token, err := utils.GenerateToken(employee.ID.Hex(), employee.Email, string(employee.Role), h.jwtSecret)
	if err != nil {
		log.Printf("Erreur lors de la génération du token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Répondre avec le token et les informations de l'employé
	response := map[string]interface{}{
		"success": true,
		"token":   token,
		"employe": *employee,
	}

	log.Printf("✓ Employé connecté: %s (ID: %s)", employee.Email, employee.ID.Hex())
	utils.RespondJSON(w, http.StatusOK, response)
}

// Me retourne le profil de l'employé connecté
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	claims := middleware.GetEmployeeFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	employee, err := h.employeeRepo.FindByEmail(claims.Email)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'employé: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if employee == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrEmployeeNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"employe": employee,
	})
}

// validateRegisterRequest valide les données d'inscription
func (h *AuthHandler) validateRegisterRequest(req *models.RegisterRequest) error {
	if err := utils.ValidateRequired("prenom", req.Firstname); err != nil {
		return err
	}
	if err := utils.ValidateRequired("nom", req.Lastname); err != nil {
		return err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.Phone != "" {
		if err := utils.ValidatePhone(req.Phone); err != nil {
			return err
		}
	}
	if err := utils.ValidateMatricule(req.Matricule); err != nil {
		return err
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return err
	}
	return nil
}

// validateLoginRequest valide les données de connexion
func (h *AuthHandler) validateLoginRequest(req *models.LoginRequest) error {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return err
	}
	return nil
}
