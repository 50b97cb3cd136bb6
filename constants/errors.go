package constants

// Messages d'erreur HTTP courants
const (
	ErrMethodNotAllowed     = "Méthode non autorisée"
	ErrServerError          = "Erreur serveur"
	ErrInvalidData          = "Données invalides"
	ErrNotAuthenticated     = "Non authentifié"
	ErrInvalidToken         = "Token invalide"
	ErrAdminOnly            = "Accès refusé - Admin uniquement"
	ErrAccessDenied         = "Accès refusé"
	ErrInvalidSessionID     = "ID de session invalide"
	ErrSessionNotFound      = "Session non trouvée"
	ErrInvalidPeriodeID     = "ID de période invalide"
	ErrPeriodeNotFound      = "Période non trouvée"
	ErrInvalidDestinationID = "ID de destination invalide"
	ErrDestinationNotFound  = "Destination non trouvée"
	ErrInvalidEmployeeID    = "ID d'employé invalide"
	ErrEmployeeNotFound     = "Employé introuvable"
	ErrInscriptionNotFound  = "Aucune inscription trouvée"
	ErrNoSelectionResults   = "Aucun résultat de sélection pour cette session"
	ErrSelectionExists      = "Une sélection a déjà été générée pour cette session"
	ErrNoActiveInscriptions = "Aucune inscription active pour cette session"
)
