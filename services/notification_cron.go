package services

import (
	"fmt"
	"log"
	"time"

	"selection-voyages-backend/database"
	"selection-voyages-backend/models"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationCron gère les rappels automatiques de fin d'inscription
type NotificationCron struct {
	periodeRepo *database.PeriodeRepository
	pushService *PushService
	cron        *cron.Cron
}

// NewNotificationCron crée une nouvelle instance
func NewNotificationCron(db *mongo.Database, pushService *PushService) *NotificationCron {
	return &NotificationCron{
		periodeRepo: database.NewPeriodeRepository(db),
		pushService: pushService,
		cron:        cron.New(),
	}
}

// Start démarre le cron job
func (nc *NotificationCron) Start() {
	// Vérifier toutes les heures si des dates limites d'inscription approchent
	nc.cron.AddFunc("@every 1h", nc.checkDeadlines)
	nc.cron.Start()
	log.Println("✓ Cron job rappels démarré (vérification toutes les heures)")
}

// Stop arrête le cron job
func (nc *NotificationCron) Stop() {
	nc.cron.Stop()
}

// checkDeadlines cherche les périodes dont la date limite tombe dans moins
// de 48 heures et envoie un rappel aux abonnés (une seule fois par période)
func (nc *NotificationCron) checkDeadlines() {
	limite := time.Now().Add(48 * time.Hour)

	periodes, err := nc.periodeRepo.FindDeadlineApproaching(limite)
	if err != nil {
		log.Printf("Erreur recherche périodes à rappeler: %v", err)
		return
	}

	if len(periodes) == 0 {
		return // Rien à faire
	}

	log.Printf("🔔 %d période(s) avec date limite d'inscription proche", len(periodes))

	for _, periode := range periodes {
		nc.sendDeadlineReminder(periode)

		// Marquer le rappel comme envoyé
		if err := nc.periodeRepo.Update(periode.ID, map[string]interface{}{
			"rappel_envoye": true,
		}); err != nil {
			log.Printf("Erreur marquage rappel période '%s': %v", periode.Nom, err)
		}
	}
}

// sendDeadlineReminder envoie le rappel de fin d'inscription à tous les abonnés
func (nc *NotificationCron) sendDeadlineReminder(periode models.Periode) {
	title := "⏰ Derniers jours pour s'inscrire !"
	message := fmt.Sprintf(
		"Les inscriptions pour '%s' ferment le %s",
		periode.Nom,
		periode.DateLimiteInscription.Format("02/01/2006 à 15h04"),
	)
	data := map[string]string{
		"action":     "deadline_reminder",
		"url":        "/#sessions",
		"periode_id": periode.ID.Hex(),
	}

	sent, failed, err := nc.pushService.SendToAll(title, message, data)
	if err != nil {
		log.Printf("Erreur envoi rappel '%s': %v", periode.Nom, err)
		return
	}

	log.Printf("📧 Rappel '%s' envoyé: %d succès, %d échecs", periode.Nom, sent, failed)
}
