package services

import (
	"testing"
	"time"

	"selection-voyages-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// melangeIdentite laisse l'ordre d'entrée inchangé, pour des tests déterministes
func melangeIdentite(candidats []models.Inscription) {}

func inscriptionsTest(n int) []models.Inscription {
	sessionID := primitive.NewObjectID()
	inscriptions := make([]models.Inscription, 0, n)
	for i := 0; i < n; i++ {
		inscriptions = append(inscriptions, models.Inscription{
			ID:         primitive.NewObjectID(),
			EmployeeID: primitive.NewObjectID(),
			SessionID:  sessionID,
			Statut:     models.InscriptionActive,
		})
	}
	return inscriptions
}

func TestRepartirOfficielsEtSuppleants(t *testing.T) {
	inscriptions := inscriptionsTest(5)
	resultats := repartir(inscriptions, 3, time.Now(), melangeIdentite)

	if len(resultats) != 5 {
		t.Fatalf("len(resultats) = %d, attendu 5", len(resultats))
	}

	// Les 3 premiers sont officiels avec rang 1..3
	for i := 0; i < 3; i++ {
		if resultats[i].Type != models.SelectionOfficiel {
			t.Errorf("resultats[%d].Type = %v, attendu officiel", i, resultats[i].Type)
		}
		if resultats[i].Priorite != i+1 {
			t.Errorf("resultats[%d].Priorite = %d, attendu %d", i, resultats[i].Priorite, i+1)
		}
	}

	// Les 2 suivants sont suppléants avec rang 1..2
	for i := 3; i < 5; i++ {
		if resultats[i].Type != models.SelectionSuppleant {
			t.Errorf("resultats[%d].Type = %v, attendu suppléant", i, resultats[i].Type)
		}
		if resultats[i].Priorite != i-3+1 {
			t.Errorf("resultats[%d].Priorite = %d, attendu %d", i, resultats[i].Priorite, i-3+1)
		}
	}
}

func TestRepartirMoinsDInscritsQueDePlaces(t *testing.T) {
	inscriptions := inscriptionsTest(2)
	resultats := repartir(inscriptions, 10, time.Now(), melangeIdentite)

	if len(resultats) != 2 {
		t.Fatalf("len(resultats) = %d, attendu 2", len(resultats))
	}
	for i, r := range resultats {
		if r.Type != models.SelectionOfficiel {
			t.Errorf("resultats[%d].Type = %v, attendu officiel (pas assez d'inscrits pour des suppléants)", i, r.Type)
		}
	}
}

func TestRepartirChaqueInscritProduitUnResultat(t *testing.T) {
	inscriptions := inscriptionsTest(8)
	resultats := repartir(inscriptions, 4, time.Now(), melangeIdentite)

	vus := make(map[primitive.ObjectID]bool)
	for _, r := range resultats {
		vus[r.EmployeeID] = true
	}
	for _, inscription := range inscriptions {
		if !vus[inscription.EmployeeID] {
			t.Errorf("l'employé %s n'apparaît pas dans les résultats", inscription.EmployeeID.Hex())
		}
	}
}

func TestRepartirNeModifiePasLEntree(t *testing.T) {
	inscriptions := inscriptionsTest(4)
	premier := inscriptions[0].EmployeeID

	// Mélange qui inverse l'ordre
	repartir(inscriptions, 2, time.Now(), func(candidats []models.Inscription) {
		for i, j := 0, len(candidats)-1; i < j; i, j = i+1, j-1 {
			candidats[i], candidats[j] = candidats[j], candidats[i]
		}
	})

	if inscriptions[0].EmployeeID != premier {
		t.Error("repartir ne doit pas modifier la liste d'entrée")
	}
}

func TestRepartirCapaciteZero(t *testing.T) {
	inscriptions := inscriptionsTest(3)
	resultats := repartir(inscriptions, 0, time.Now(), melangeIdentite)

	for i, r := range resultats {
		if r.Type != models.SelectionSuppleant {
			t.Errorf("resultats[%d].Type = %v, attendu suppléant avec capacité 0", i, r.Type)
		}
		if r.Priorite != i+1 {
			t.Errorf("resultats[%d].Priorite = %d, attendu %d", i, r.Priorite, i+1)
		}
	}
}
