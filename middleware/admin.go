package middleware

import (
	"log"
	"net/http"
	"selection-voyages-backend/database"
	"selection-voyages-backend/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// RequireAdmin vérifie que l'employé est un administrateur
func RequireAdmin(db *mongo.Database) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Récupérer les claims depuis le contexte (mis par le middleware Auth)
			claims := GetEmployeeFromContext(r.Context())
			if claims == nil {
				utils.RespondError(w, http.StatusUnauthorized, "Non authentifié")
				return
			}

			// Récupérer l'employé complet depuis la DB, le rôle du token
			// peut être périmé si un admin l'a modifié entre temps
			employeeRepo := database.NewEmployeeRepository(db)
			employee, err := employeeRepo.FindByEmail(claims.Email)
			if err != nil || employee == nil {
				log.Printf("Employé non trouvé: %v", err)
				utils.RespondError(w, http.StatusUnauthorized, "Employé non trouvé")
				return
			}

			// Vérifier si l'employé est admin
			if !employee.IsAdmin() {
				log.Printf("⚠️  Accès admin refusé pour: %s (role=%s)", employee.Email, employee.Role)
				utils.RespondError(w, http.StatusForbidden, "Accès refusé - Admin uniquement")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
