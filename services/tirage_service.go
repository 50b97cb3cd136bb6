package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"selection-voyages-backend/database"
	"selection-voyages-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Erreurs métier du tirage au sort
var (
	ErrSelectionDejaGeneree    = errors.New("une sélection a déjà été générée pour cette session")
	ErrAucuneInscriptionActive = errors.New("aucune inscription active pour cette session")
	ErrSessionIntrouvable      = errors.New("session introuvable")
	ErrDestinationIntrouvable  = errors.New("destination introuvable")
)

// TirageService gère le tirage au sort des participants d'une session
type TirageService struct {
	sessionRepo     *database.SessionRepository
	destinationRepo *database.DestinationRepository
	inscriptionRepo *database.InscriptionRepository
	resultatRepo    *database.ResultatSelectionRepository
	employeeRepo    *database.EmployeeRepository
	fcmTokenRepo    *database.FCMTokenRepository
	pushService     *PushService
	fcmService      *FCMService
	rng             *rand.Rand
}

// NewTirageService crée une nouvelle instance de TirageService
func NewTirageService(db *mongo.Database, pushService *PushService, fcmService *FCMService) *TirageService {
	return &TirageService{
		sessionRepo:     database.NewSessionRepository(db),
		destinationRepo: database.NewDestinationRepository(db),
		inscriptionRepo: database.NewInscriptionRepository(db),
		resultatRepo:    database.NewResultatSelectionRepository(db),
		employeeRepo:    database.NewEmployeeRepository(db),
		fcmTokenRepo:    database.NewFCMTokenRepository(db),
		pushService:     pushService,
		fcmService:      fcmService,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generer effectue le tirage au sort pour une session : mélange uniforme des
// inscriptions actives, les `capacite` premières deviennent gagnants officiels
// (rang 1..k), les suivantes suppléants (rang 1..m). Refuse si un tirage
// existe déjà pour la session.
func (s *TirageService) Generer(sessionID primitive.ObjectID) ([]models.ResultatSelection, error) {
	// Un seul tirage par session
	exists, err := s.resultatRepo.ExistsForSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la vérification du tirage existant: %w", err)
	}
	if exists {
		return nil, ErrSelectionDejaGeneree
	}

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionIntrouvable
	}

	destination, err := s.destinationRepo.FindByID(session.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la destination: %w", err)
	}
	if destination == nil {
		return nil, ErrDestinationIntrouvable
	}

	inscriptions, err := s.inscriptionRepo.FindActiveBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des inscriptions: %w", err)
	}
	if len(inscriptions) == 0 {
		return nil, ErrAucuneInscriptionActive
	}

	resultats := repartir(inscriptions, destination.Capacite, time.Now(), func(candidats []models.Inscription) {
		s.rng.Shuffle(len(candidats), func(i, j int) {
			candidats[i], candidats[j] = candidats[j], candidats[i]
		})
	})

	if err := s.resultatRepo.CreateMany(resultats); err != nil {
		return nil, fmt.Errorf("erreur lors de l'enregistrement du tirage: %w", err)
	}

	// Les inscriptions tirées passent au statut terminé
	for _, inscription := range inscriptions {
		if err := s.inscriptionRepo.UpdateStatut(inscription.ID, models.InscriptionTerminee); err != nil {
			log.Printf("Erreur mise à jour statut inscription %s: %v", inscription.ID.Hex(), err)
		}
	}

	log.Printf("🎲 Tirage effectué pour '%s': %d inscrits, %d places", session.Nom, len(inscriptions), destination.Capacite)

	// Notifier les gagnants en arrière-plan
	go s.notifierGagnants(session, resultats)

	return resultats, nil
}

// repartir mélange les inscriptions avec la fonction fournie puis les répartit
// en officiels et suppléants. Chaque inscription d'entrée produit exactement
// une ligne de résultat.
func repartir(inscriptions []models.Inscription, capacite int, now time.Time, melanger func([]models.Inscription)) []models.ResultatSelection {
	candidats := make([]models.Inscription, len(inscriptions))
	copy(candidats, inscriptions)
	melanger(candidats)

	resultats := make([]models.ResultatSelection, 0, len(candidats))
	for i, candidat := range candidats {
		resultat := models.ResultatSelection{
			SessionID:     candidat.SessionID,
			EmployeeID:    candidat.EmployeeID,
			DateSelection: now,
		}
		if i < capacite {
			resultat.Type = models.SelectionOfficiel
			resultat.Priorite = i + 1
		} else {
			resultat.Type = models.SelectionSuppleant
			resultat.Priorite = i - capacite + 1
		}
		resultats = append(resultats, resultat)
	}

	return resultats
}

// notifierGagnants envoie une notification aux gagnants officiels, via web
// push et via FCM selon les abonnements de chacun
func (s *TirageService) notifierGagnants(session *models.Session, resultats []models.ResultatSelection) {
	for _, resultat := range resultats {
		if resultat.Type != models.SelectionOfficiel {
			continue
		}

		employee, err := s.employeeRepo.FindByID(resultat.EmployeeID)
		if err != nil || employee == nil {
			continue
		}

		title := "🎉 Vous êtes sélectionné !"
		message := fmt.Sprintf("Vous faites partie des gagnants pour la session '%s'", session.Nom)
		data := map[string]string{
			"action":     "selection_result",
			"url":        "/#resultats",
			"session_id": session.ID.Hex(),
		}

		if s.pushService != nil && s.pushService.Enabled() {
			if _, _, err := s.pushService.SendToEmployee(employee.Email, title, message, data); err != nil {
				log.Printf("Erreur notification push gagnant %s: %v", employee.Email, err)
			}
		}

		if s.fcmService != nil {
			tokens, err := s.fcmTokenRepo.FindByEmployeeEmail(employee.Email)
			if err != nil {
				log.Printf("Erreur récupération tokens FCM de %s: %v", employee.Email, err)
				continue
			}
			for _, t := range tokens {
				if err := s.fcmService.SendToToken(t.Token, title, message, data); err != nil {
					log.Printf("Erreur notification FCM gagnant %s: %v", employee.Email, err)
				}
			}
		}
	}
}
