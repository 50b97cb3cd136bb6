package rules

import (
	"time"

	"selection-voyages-backend/models"
)

// Motifs de refus d'inscription, affichés tels quels au demandeur
const (
	MotifPeriodeFermee  = "Les inscriptions sont fermées pour cette période"
	MotifDateDepassee   = "La date limite d'inscription est dépassée"
	MotifSessionPassee  = "Cette session a déjà commencé ou est terminée"
)

// PeutSInscrire indique si la période autorise une inscription à l'heure
// donnée : statut stocké ouvert ET date limite non dépassée. L'égalité
// exacte avec la date limite compte comme encore dans la fenêtre.
func PeutSInscrire(now time.Time, periode models.Periode) bool {
	return periode.Statut == models.PeriodeOuverte && !now.After(periode.DateLimiteInscription)
}

// SessionProposable indique si la session peut encore être proposée à
// l'inscription : seules les sessions à venir le sont, jamais les sessions
// en cours ou terminées. Ce filtre s'ajoute à PeutSInscrire, il ne le
// remplace pas.
func SessionProposable(now time.Time, session models.Session) bool {
	return session.DateDebut.After(now)
}

// VerifierInscription combine les deux filtres et retourne le premier motif
// de refus rencontré. Le motif est vide quand l'inscription est autorisée.
func VerifierInscription(now time.Time, periode models.Periode, session models.Session) (bool, string) {
	if periode.Statut != models.PeriodeOuverte {
		return false, MotifPeriodeFermee
	}
	if now.After(periode.DateLimiteInscription) {
		return false, MotifDateDepassee
	}
	if !SessionProposable(now, session) {
		return false, MotifSessionPassee
	}
	return true, ""
}
