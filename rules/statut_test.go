package rules

import (
	"testing"
	"time"

	"selection-voyages-backend/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sessionTest() models.Session {
	return models.Session{
		Nom:       "Séjour Antalya",
		DateDebut: date("2025-02-01"),
		DateFin:   date("2025-02-05"),
	}
}

func periodeTest(statut models.StatutPeriode) models.Periode {
	return models.Periode{
		Nom:                   "Été 2025",
		DateDebut:             date("2025-01-15"),
		DateFin:               date("2025-01-20"),
		DateLimiteInscription: date("2025-01-10"),
		Statut:                statut,
	}
}

func TestEvaluerStatutSession(t *testing.T) {
	session := sessionTest()

	tests := []struct {
		name string
		now  time.Time
		want StatutSession
	}{
		{"avant le début", date("2025-01-15"), SessionAVenir},
		{"jour du début (borne incluse)", date("2025-02-01"), SessionEnCours},
		{"en cours", date("2025-02-03"), SessionEnCours},
		{"jour de fin (borne incluse)", date("2025-02-05"), SessionEnCours},
		{"après la fin", date("2025-02-06"), SessionTerminee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluerStatutSession(tt.now, session)
			if got != tt.want {
				t.Errorf("EvaluerStatutSession(%v) = %v, attendu %v", tt.now, got, tt.want)
			}
		})
	}
}

// Le statut d'une session ne doit avancer que dans un sens quand le temps avance
func TestEvaluerStatutSessionMonotone(t *testing.T) {
	session := sessionTest()
	ordre := map[StatutSession]int{SessionAVenir: 0, SessionEnCours: 1, SessionTerminee: 2}

	precedent := -1
	for now := date("2025-01-01"); now.Before(date("2025-03-01")); now = now.Add(12 * time.Hour) {
		courant := ordre[EvaluerStatutSession(now, session)]
		if courant < precedent {
			t.Fatalf("statut revenu en arrière à %v", now)
		}
		precedent = courant
	}
}

func TestEvaluerStatutPeriode(t *testing.T) {
	tests := []struct {
		name    string
		periode models.Periode
		now     time.Time
		want    StatutPeriodeDerive
	}{
		{"avant la date limite", periodeTest(models.PeriodeOuverte), date("2025-01-05"), PeriodeAVenir},
		{"date limite exacte, encore dans la fenêtre", periodeTest(models.PeriodeOuverte), date("2025-01-10"), PeriodeAVenir},
		{"après la date limite, avant le début", periodeTest(models.PeriodeOuverte), date("2025-01-12"), PeriodeExpiree},
		{"pendant la période mais limite dépassée", periodeTest(models.PeriodeOuverte), date("2025-01-17"), PeriodeExpiree},
		{"après la fin", periodeTest(models.PeriodeOuverte), date("2025-02-01"), PeriodeExpiree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluerStatutPeriode(tt.now, tt.periode)
			if got != tt.want {
				t.Errorf("EvaluerStatutPeriode(%v) = %v, attendu %v", tt.now, got, tt.want)
			}
		})
	}
}

// La fermeture administrative l'emporte sur toutes les dates
func TestEvaluerStatutPeriodeFermeturePrioritaire(t *testing.T) {
	periode := periodeTest(models.PeriodeFermee)

	dates := []time.Time{
		date("2025-01-05"), // avant la limite
		date("2025-01-12"), // limite dépassée
		date("2025-01-17"), // pendant
		date("2025-02-01"), // après
	}
	for _, now := range dates {
		if got := EvaluerStatutPeriode(now, periode); got != PeriodeFermee {
			t.Errorf("EvaluerStatutPeriode(%v) = %v, attendu %v (override admin)", now, got, PeriodeFermee)
		}
	}
}

// Cas d'une période dont la date limite serait postérieure au début :
// les statuts à venir/en cours/écoulée restent atteignables
func TestEvaluerStatutPeriodeLimiteTardive(t *testing.T) {
	periode := models.Periode{
		DateDebut:             date("2025-01-15"),
		DateFin:               date("2025-01-20"),
		DateLimiteInscription: date("2025-01-25"),
		Statut:                models.PeriodeOuverte,
	}

	tests := []struct {
		now  time.Time
		want StatutPeriodeDerive
	}{
		{date("2025-01-10"), PeriodeAVenir},
		{date("2025-01-15"), PeriodeEnCours},
		{date("2025-01-20"), PeriodeEnCours},
		{date("2025-01-22"), PeriodeEcoulee},
		{date("2025-01-26"), PeriodeExpiree},
	}
	for _, tt := range tests {
		if got := EvaluerStatutPeriode(tt.now, periode); got != tt.want {
			t.Errorf("EvaluerStatutPeriode(%v) = %v, attendu %v", tt.now, got, tt.want)
		}
	}
}
