package rules

import (
	"sort"
	"strings"

	"selection-voyages-backend/models"
)

// FiltreHistorique représente les critères de filtrage de l'historique
// complet des inscriptions. Un champ vide ne filtre pas.
type FiltreHistorique struct {
	Recherche string // Sous-chaîne insensible à la casse sur "nom prénom session"
	Annee     string // Année à 4 chiffres de la date d'inscription
	Statut    string // Statut exact
}

// FiltrerHistorique applique les trois critères combinés en ET sur les
// lignes fournies. Le filtre vide est l'identité et l'opération est
// idempotente : filtrer deux fois donne le même résultat qu'une fois.
func FiltrerHistorique(lignes []models.LigneHistorique, filtre FiltreHistorique) []models.LigneHistorique {
	recherche := strings.ToLower(strings.TrimSpace(filtre.Recherche))

	resultat := make([]models.LigneHistorique, 0, len(lignes))
	for _, ligne := range lignes {
		if recherche != "" {
			cible := strings.ToLower(ligne.Nom + " " + ligne.Prenom + " " + ligne.SessionNom)
			if !strings.Contains(cible, recherche) {
				continue
			}
		}
		if filtre.Annee != "" && anneeDe(ligne.DateInscription) != filtre.Annee {
			continue
		}
		if filtre.Statut != "" && string(ligne.Statut) != filtre.Statut {
			continue
		}
		resultat = append(resultat, ligne)
	}

	return resultat
}

// AnneesDisponibles retourne les années distinctes présentes dans les lignes,
// triées par ordre décroissant. À calculer sur les lignes NON filtrées pour
// que les options du filtre restent stables pendant que l'utilisateur affine.
func AnneesDisponibles(lignes []models.LigneHistorique) []string {
	vues := make(map[string]bool)
	annees := []string{}
	for _, ligne := range lignes {
		annee := anneeDe(ligne.DateInscription)
		if annee != "" && !vues[annee] {
			vues[annee] = true
			annees = append(annees, annee)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(annees)))
	return annees
}

// StatutsDisponibles retourne les statuts distincts présents dans les lignes,
// triés par ordre alphabétique. Même règle : à calculer sur les lignes non
// filtrées.
func StatutsDisponibles(lignes []models.LigneHistorique) []string {
	vus := make(map[string]bool)
	statuts := []string{}
	for _, ligne := range lignes {
		statut := string(ligne.Statut)
		if statut != "" && !vus[statut] {
			vus[statut] = true
			statuts = append(statuts, statut)
		}
	}
	sort.Strings(statuts)
	return statuts
}

// anneeDe extrait le préfixe année d'une date ISO : les caractères avant le
// premier tiret, soit les 4 premiers en l'absence de tiret.
func anneeDe(date string) string {
	if idx := strings.Index(date, "-"); idx >= 0 {
		return date[:idx]
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
