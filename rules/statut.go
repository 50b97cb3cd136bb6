// Package rules contient les règles métier pures du système de sélection
// voyages : statuts temporels, éligibilité à l'inscription, partition des
// résultats de tirage et filtrage de l'historique. Aucune fonction de ce
// package ne fait d'entrée/sortie ; l'heure courante est toujours passée
// en paramètre pour rester déterministe et testable.
package rules

import (
	"time"

	"selection-voyages-backend/models"
)

// StatutSession représente le statut temporel dérivé d'une session
type StatutSession string

const (
	SessionAVenir   StatutSession = "upcoming"
	SessionEnCours  StatutSession = "active"
	SessionTerminee StatutSession = "completed"
)

// StatutPeriodeDerive représente le statut temporel dérivé d'une période.
// Distinct du statut stocké (open/closed) : celui-ci est calculé à la
// lecture et n'est jamais persisté.
type StatutPeriodeDerive string

const (
	PeriodeFermee  StatutPeriodeDerive = "closed"   // Fermeture administrative
	PeriodeExpiree StatutPeriodeDerive = "expired"  // Date limite d'inscription dépassée
	PeriodeAVenir  StatutPeriodeDerive = "upcoming" // Avant la date de début
	PeriodeEnCours StatutPeriodeDerive = "active"   // Entre début et fin (bornes incluses)
	PeriodeEcoulee StatutPeriodeDerive = "ended"    // Après la date de fin
)

// EvaluerStatutSession dérive le statut d'une session à partir de l'heure
// courante. Les bornes de début et de fin sont incluses dans "active".
func EvaluerStatutSession(now time.Time, session models.Session) StatutSession {
	switch {
	case now.Before(session.DateDebut):
		return SessionAVenir
	case !now.After(session.DateFin):
		return SessionEnCours
	default:
		return SessionTerminee
	}
}

// EvaluerStatutPeriode dérive le statut d'une période. Les règles sont
// évaluées dans l'ordre, la première qui correspond l'emporte :
//  1. fermeture administrative (prioritaire sur toutes les dates)
//  2. date limite d'inscription strictement dépassée
//  3. avant la date de début
//  4. entre début et fin, bornes incluses
//  5. après la date de fin
func EvaluerStatutPeriode(now time.Time, periode models.Periode) StatutPeriodeDerive {
	switch {
	case periode.Statut == models.PeriodeFermee:
		return PeriodeFermee
	case now.After(periode.DateLimiteInscription):
		return PeriodeExpiree
	case now.Before(periode.DateDebut):
		return PeriodeAVenir
	case !now.After(periode.DateFin):
		return PeriodeEnCours
	default:
		return PeriodeEcoulee
	}
}
