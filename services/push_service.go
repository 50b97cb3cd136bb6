package services

import (
	"encoding/json"
	"fmt"
	"log"

	"selection-voyages-backend/database"
	"selection-voyages-backend/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// PushService gère l'envoi des notifications web push (VAPID)
type PushService struct {
	subscriptionRepo *database.SubscriptionRepository
	vapidPublicKey   string
	vapidPrivateKey  string
	vapidSubject     string
}

// NewPushService crée une nouvelle instance de PushService
func NewPushService(db *mongo.Database, vapidPublicKey, vapidPrivateKey, vapidSubject string) *PushService {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		log.Println("⚠️  Clés VAPID non configurées - notifications web push désactivées")
	}

	return &PushService{
		subscriptionRepo: database.NewSubscriptionRepository(db),
		vapidPublicKey:   vapidPublicKey,
		vapidPrivateKey:  vapidPrivateKey,
		vapidSubject:     vapidSubject,
	}
}

// Enabled indique si les clés VAPID sont configurées
func (s *PushService) Enabled() bool {
	return s.vapidPublicKey != "" && s.vapidPrivateKey != ""
}

// sendToSubscription envoie une notification à un abonnement.
// Supprime l'abonnement si l'endpoint n'est plus valide (410 Gone).
func (s *PushService) sendToSubscription(sub models.PushSubscription, payloadBytes []byte) error {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotification(payloadBytes, target, &webpush.Options{
		Subscriber:      s.vapidSubject,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             86400, // 24 heures en secondes
		Urgency:         webpush.UrgencyHigh,
	})

	if err != nil {
		// Si l'endpoint n'est plus valide (410 Gone), supprimer l'abonnement
		if resp != nil && resp.StatusCode == 410 {
			log.Printf("🗑️  Suppression de l'abonnement invalide: %s", sub.Endpoint)
			_ = s.subscriptionRepo.Delete(sub.Endpoint)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 && resp.StatusCode != 200 {
		if resp.StatusCode == 410 {
			log.Printf("🗑️  Suppression de l'abonnement invalide: %s", sub.Endpoint)
			_ = s.subscriptionRepo.Delete(sub.Endpoint)
		}
		return fmt.Errorf("réponse inattendue du service push: %d", resp.StatusCode)
	}

	return nil
}

// sendToSubscriptions envoie une notification à une liste d'abonnements
func (s *PushService) sendToSubscriptions(subscriptions []models.PushSubscription, title, body string, data interface{}) (sent int, failed int) {
	if !s.Enabled() || len(subscriptions) == 0 {
		return 0, 0
	}

	payload := models.NotificationPayload{
		Title: title,
		Body:  body,
		Icon:  "/icon-192x192.png",
		Badge: "/badge-72x72.png",
		Data:  data,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Erreur lors de la création du payload: %v", err)
		return 0, len(subscriptions)
	}

	for _, sub := range subscriptions {
		if err := s.sendToSubscription(sub, payloadBytes); err != nil {
			log.Printf("❌ Erreur lors de l'envoi de la notification à %s: %v", sub.EmployeeEmail, err)
			failed++
			continue
		}
		sent++
	}

	log.Printf("📊 Notifications push: %d/%d envoyées (échecs: %d)", sent, len(subscriptions), failed)
	return sent, failed
}

// SendToAll envoie une notification à tous les abonnés
func (s *PushService) SendToAll(title, body string, data interface{}) (sent int, failed int, err error) {
	if !s.Enabled() {
		return 0, 0, nil
	}

	subscriptions, err := s.subscriptionRepo.FindAll()
	if err != nil {
		return 0, 0, fmt.Errorf("erreur lors de la récupération des abonnements: %w", err)
	}

	sent, failed = s.sendToSubscriptions(subscriptions, title, body, data)
	return sent, failed, nil
}

// SendToEmployee envoie une notification à tous les abonnements d'un employé
func (s *PushService) SendToEmployee(email, title, body string, data interface{}) (sent int, failed int, err error) {
	if !s.Enabled() {
		return 0, 0, nil
	}

	subscriptions, err := s.subscriptionRepo.FindByEmployeeEmail(email)
	if err != nil {
		return 0, 0, fmt.Errorf("erreur lors de la récupération des abonnements: %w", err)
	}

	sent, failed = s.sendToSubscriptions(subscriptions, title, body, data)
	return sent, failed, nil
}
