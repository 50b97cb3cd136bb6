package rules

import (
	"testing"
	"time"

	"selection-voyages-backend/models"
)

func TestPeutSInscrire(t *testing.T) {
	tests := []struct {
		name    string
		periode models.Periode
		now     time.Time
		want    bool
	}{
		{"période ouverte, avant la limite", periodeTest(models.PeriodeOuverte), date("2025-01-05"), true},
		{"date limite exacte", periodeTest(models.PeriodeOuverte), date("2025-01-10"), true},
		{"limite dépassée", periodeTest(models.PeriodeOuverte), date("2025-01-12"), false},
		{"période fermée, avant la limite", periodeTest(models.PeriodeFermee), date("2025-01-05"), false},
		{"période fermée et limite dépassée", periodeTest(models.PeriodeFermee), date("2025-01-12"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeutSInscrire(tt.now, tt.periode)
			if got != tt.want {
				t.Errorf("PeutSInscrire(%v) = %v, attendu %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestSessionProposable(t *testing.T) {
	session := sessionTest()

	if !SessionProposable(date("2025-01-20"), session) {
		t.Error("une session à venir doit être proposable")
	}
	if SessionProposable(date("2025-02-01"), session) {
		t.Error("une session déjà commencée ne doit jamais être proposée")
	}
	if SessionProposable(date("2025-02-10"), session) {
		t.Error("une session terminée ne doit jamais être proposée")
	}
}

func TestVerifierInscription(t *testing.T) {
	session := sessionTest()

	tests := []struct {
		name      string
		periode   models.Periode
		now       time.Time
		wantOK    bool
		wantMotif string
	}{
		{"autorisée", periodeTest(models.PeriodeOuverte), date("2025-01-05"), true, ""},
		{"période fermée", periodeTest(models.PeriodeFermee), date("2025-01-05"), false, MotifPeriodeFermee},
		{"limite dépassée", periodeTest(models.PeriodeOuverte), date("2025-01-12"), false, MotifDateDepassee},
		{"session déjà commencée", periodeTest(models.PeriodeOuverte), date("2025-02-02"), false, MotifSessionPassee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, motif := VerifierInscription(tt.now, tt.periode, session)
			if ok != tt.wantOK || motif != tt.wantMotif {
				t.Errorf("VerifierInscription() = (%v, %q), attendu (%v, %q)", ok, motif, tt.wantOK, tt.wantMotif)
			}
		})
	}
}

// Scénarios de référence : période ouverte, limite au 10 janvier,
// du 15 au 20 janvier
func TestScenarioPeriodeComplete(t *testing.T) {
	periode := periodeTest(models.PeriodeOuverte)

	// Le 5 janvier : période à venir, inscription possible
	if got := EvaluerStatutPeriode(date("2025-01-05"), periode); got != PeriodeAVenir {
		t.Errorf("statut = %v, attendu %v", got, PeriodeAVenir)
	}
	if !PeutSInscrire(date("2025-01-05"), periode) {
		t.Error("inscription attendue possible le 5 janvier")
	}

	// Le 12 janvier : limite dépassée, inscription refusée
	if got := EvaluerStatutPeriode(date("2025-01-12"), periode); got != PeriodeExpiree {
		t.Errorf("statut = %v, attendu %v", got, PeriodeExpiree)
	}
	if PeutSInscrire(date("2025-01-12"), periode) {
		t.Error("inscription attendue refusée le 12 janvier")
	}
}
