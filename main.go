package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"selection-voyages-backend/config"
	"selection-voyages-backend/database"
	"selection-voyages-backend/handlers"
	"selection-voyages-backend/middleware"
	"selection-voyages-backend/services"
	"syscall"

	"github.com/gorilla/mux"
)

func main() {
	// Charger la configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement de la configuration: %v", err)
	}

	// Connexion à MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("❌ Erreur de connexion à MongoDB: %v", err)
	}
	defer database.Close()

	// Initialiser Firebase Cloud Messaging (optionnel)
	fcmService, err := services.NewFCMService(cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Printf("⚠️  Erreur d'initialisation Firebase: %v", err)
		log.Println("⚠️  Le serveur démarre SANS notifications FCM")
		fcmService = services.NewDisabledFCMService()
	}

	// Services de notification
	slackService := services.NewSlackService(cfg.SlackWebhookURL)
	pushService := services.NewPushService(database.DB, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject)
	tirageService := services.NewTirageService(database.DB, pushService, fcmService)

	// Cron de rappel des dates limites d'inscription
	notificationCron := services.NewNotificationCron(database.DB, pushService)
	notificationCron.Start()
	defer notificationCron.Stop()

	// Créer le routeur
	router := mux.NewRouter()

	// Appliquer les middlewares globaux
	router.Use(middleware.Logging(slackService))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Créer les handlers
	authHandler := handlers.NewAuthHandler(database.DB, cfg.JWTSecret)
	healthHandler := handlers.NewHealthHandler(cfg.Environment)
	destinationHandler := handlers.NewDestinationHandler(database.DB)
	periodeHandler := handlers.NewPeriodeHandler(database.DB)
	sessionHandler := handlers.NewSessionHandler(database.DB)
	inscriptionHandler := handlers.NewInscriptionHandler(database.DB)
	selectionHandler := handlers.NewSelectionHandler(database.DB, tirageService)
	notificationHandler := handlers.NewNotificationHandler(database.DB, pushService, cfg.VAPIDPublicKey)
	fcmHandler := handlers.NewFCMHandler(database.DB, fcmService)
	adminHandler := handlers.NewAdminHandler(database.DB)

	// Middleware Guest pour empêcher l'accès si déjà connecté
	guestMiddleware := middleware.Guest(cfg.JWTSecret)

	// Routes publiques d'authentification
	router.Handle("/api/auth/register", guestMiddleware(http.HandlerFunc(authHandler.Register))).Methods("POST", "OPTIONS")
	router.Handle("/api/auth/login", guestMiddleware(http.HandlerFunc(authHandler.Login))).Methods("POST", "OPTIONS")

	// Route de santé (health check)
	router.HandleFunc("/api/health", healthHandler.Health).Methods("GET")

	// Clé publique VAPID (publique, nécessaire avant connexion)
	router.HandleFunc("/api/notifications/vapid-public-key", notificationHandler.GetVAPIDPublicKey).Methods("GET", "OPTIONS")

	// Routes protégées (authentification requise)
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.Auth(cfg.JWTSecret))

	// Les écritures sur les référentiels sont réservées aux admins
	adminOnly := middleware.RequireAdmin(database.DB)

	// Profil
	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")

	// Destinations (lecture pour tous, écriture admin)
	protected.HandleFunc("/destinations", destinationHandler.GetDestinations).Methods("GET", "OPTIONS")
	protected.HandleFunc("/destinations/{id}", destinationHandler.GetDestination).Methods("GET", "OPTIONS")
	protected.Handle("/destinations", adminOnly(http.HandlerFunc(destinationHandler.CreateDestination))).Methods("POST", "OPTIONS")
	protected.Handle("/destinations/{id}", adminOnly(http.HandlerFunc(destinationHandler.UpdateDestination))).Methods("PUT", "OPTIONS")
	protected.Handle("/destinations/{id}", adminOnly(http.HandlerFunc(destinationHandler.DeleteDestination))).Methods("DELETE", "OPTIONS")

	// Périodes (avec statut temporel dérivé)
	protected.HandleFunc("/periodes", periodeHandler.GetPeriodes).Methods("GET", "OPTIONS")
	protected.HandleFunc("/periodes/{id}", periodeHandler.GetPeriode).Methods("GET", "OPTIONS")
	protected.Handle("/periodes", adminOnly(http.HandlerFunc(periodeHandler.CreatePeriode))).Methods("POST", "OPTIONS")
	protected.Handle("/periodes/{id}", adminOnly(http.HandlerFunc(periodeHandler.UpdatePeriode))).Methods("PUT", "OPTIONS")
	protected.Handle("/periodes/{id}", adminOnly(http.HandlerFunc(periodeHandler.DeletePeriode))).Methods("DELETE", "OPTIONS")

	// Sessions (avec statut temporel et éligibilité d'inscription)
	protected.HandleFunc("/sessions", sessionHandler.GetSessions).Methods("GET", "OPTIONS")
	protected.HandleFunc("/sessions/{id}", sessionHandler.GetSession).Methods("GET", "OPTIONS")
	protected.Handle("/sessions", adminOnly(http.HandlerFunc(sessionHandler.CreateSession))).Methods("POST", "OPTIONS")
	protected.Handle("/sessions/{id}", adminOnly(http.HandlerFunc(sessionHandler.UpdateSession))).Methods("PUT", "OPTIONS")
	protected.Handle("/sessions/{id}", adminOnly(http.HandlerFunc(sessionHandler.DeleteSession))).Methods("DELETE", "OPTIONS")

	// Inscriptions
	protected.HandleFunc("/inscriptions", inscriptionHandler.Create).Methods("POST", "OPTIONS")
	protected.HandleFunc("/inscriptions", inscriptionHandler.GetMine).Methods("GET", "OPTIONS")
	protected.Handle("/inscriptions/full-history", adminOnly(http.HandlerFunc(inscriptionHandler.FullHistory))).Methods("GET", "OPTIONS")
	protected.HandleFunc("/inscriptions/employee/{id}", inscriptionHandler.GetByEmployee).Methods("GET", "OPTIONS")
	protected.HandleFunc("/inscriptions/{id}/annuler", inscriptionHandler.Cancel).Methods("PUT", "OPTIONS")

	// Résultats de tirage (consultables par tous les employés connectés,
	// génération et suppression réservées aux admins)
	protected.HandleFunc("/resultat-selections/session/{session_id}", selectionHandler.GetBySession).Methods("GET", "OPTIONS")
	protected.Handle("/resultat-selections/generate/{session_id}", adminOnly(http.HandlerFunc(selectionHandler.Generate))).Methods("POST", "OPTIONS")
	protected.Handle("/resultat-selections/session/{session_id}", adminOnly(http.HandlerFunc(selectionHandler.DeleteBySession))).Methods("DELETE", "OPTIONS")

	// Notifications push
	protected.HandleFunc("/notifications/subscribe", notificationHandler.Subscribe).Methods("POST", "OPTIONS")
	protected.HandleFunc("/notifications/unsubscribe", notificationHandler.Unsubscribe).Methods("POST", "OPTIONS")

	// Tokens FCM (Firebase Cloud Messaging)
	protected.HandleFunc("/fcm/subscribe", fcmHandler.Subscribe).Methods("POST", "OPTIONS")
	protected.HandleFunc("/fcm/unsubscribe", fcmHandler.Unsubscribe).Methods("POST", "OPTIONS")

	// Routes Admin (protégées par Auth + RequireAdmin)
	adminRouter := protected.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.RequireAdmin(database.DB))

	// Gestion des employés
	adminRouter.HandleFunc("/employes", adminHandler.GetEmployes).Methods("GET", "OPTIONS")
	adminRouter.HandleFunc("/employes/{id}", adminHandler.UpdateEmploye).Methods("PUT", "OPTIONS")
	adminRouter.HandleFunc("/employes/{id}", adminHandler.DeleteEmploye).Methods("DELETE", "OPTIONS")

	// Statistiques et diffusion
	adminRouter.HandleFunc("/stats", adminHandler.GetStats).Methods("GET", "OPTIONS")
	adminRouter.HandleFunc("/notifications/broadcast", notificationHandler.Broadcast).Methods("POST", "OPTIONS")

	// Démarrer le serveur
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Gérer l'arrêt gracieux du serveur
	go func() {
		log.Printf("🚀 Serveur démarré sur http://%s", addr)
		log.Printf("📝 Environnement: %s", cfg.Environment)
		log.Printf("🗄️  Base de données: MongoDB")
		log.Println("📋 Routes disponibles:")
		log.Println("   POST   /api/auth/register                  - Inscription employé")
		log.Println("   POST   /api/auth/login                     - Connexion")
		log.Println("   GET    /api/health                         - Health check")
		log.Println("   GET    /api/notifications/vapid-public-key - Clé publique VAPID")
		log.Println("")
		log.Println("   🔒 Routes protégées:")
		log.Println("   GET    /api/auth/me                              - Profil employé")
		log.Println("   GET    /api/destinations                         - Liste destinations")
		log.Println("   GET    /api/periodes                             - Périodes avec statut dérivé")
		log.Println("   GET    /api/sessions                             - Sessions avec éligibilité")
		log.Println("   POST   /api/inscriptions                         - S'inscrire à une session")
		log.Println("   GET    /api/inscriptions                         - Mes inscriptions")
		log.Println("   GET    /api/inscriptions/employee/{id}           - Inscriptions d'un employé")
		log.Println("   PUT    /api/inscriptions/{id}/annuler            - Annuler mon inscription")
		log.Println("   GET    /api/resultat-selections/session/{id}     - Résultats du tirage")
		log.Println("   POST   /api/notifications/subscribe              - S'abonner aux notifications")
		log.Println("")
		log.Println("   👑 Routes Admin:")
		log.Println("   POST   /api/destinations                         - Créer destination")
		log.Println("   POST   /api/periodes                             - Créer période")
		log.Println("   POST   /api/sessions                             - Créer session")
		log.Println("   POST   /api/resultat-selections/generate/{id}    - Lancer le tirage")
		log.Println("   DELETE /api/resultat-selections/session/{id}     - Supprimer le tirage")
		log.Println("   GET    /api/inscriptions/full-history            - Historique complet filtrable")
		log.Println("   GET    /api/admin/employes                       - Liste employés")
		log.Println("   PUT    /api/admin/employes/{id}                  - Modifier employé")
		log.Println("   DELETE /api/admin/employes/{id}                  - Supprimer employé")
		log.Println("   GET    /api/admin/stats                          - Statistiques globales")
		log.Println("\n✨ Le serveur est prêt à recevoir des requêtes!")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erreur du serveur: %v", err)
		}
	}()

	// Attendre le signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Arrêt du serveur...")
	if err := server.Close(); err != nil {
		log.Printf("❌ Erreur lors de l'arrêt du serveur: %v", err)
	}
	log.Println("✓ Serveur arrêté proprement")
}
