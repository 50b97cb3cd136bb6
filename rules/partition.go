package rules

import (
	"sort"

	"selection-voyages-backend/models"
)

// Partition contient les résultats d'un tirage séparés en deux groupes
// ordonnés : gagnants officiels et suppléants
type Partition struct {
	Officiels  []models.ResultatSelection `json:"official"`
	Suppleants []models.ResultatSelection `json:"substitute"`
}

// Partitionner sépare une liste plate de résultats par type de sélection
// puis trie chaque groupe par priorité croissante (rang 1 = premier choisi).
// Le tri est stable : des priorités égales — non attendues du tirage mais
// tolérées — conservent leur ordre relatif d'origine au lieu de provoquer
// une erreur.
//
// Attention : la position d'affichage (index + 1 après tri) n'est pas la
// même chose que Priorite, qui est le rang faisant foi attribué par le
// tirage. Les deux valeurs sont exposées au client.
func Partitionner(resultats []models.ResultatSelection) Partition {
	p := Partition{
		Officiels:  []models.ResultatSelection{},
		Suppleants: []models.ResultatSelection{},
	}

	for _, r := range resultats {
		if r.Type == models.SelectionOfficiel {
			p.Officiels = append(p.Officiels, r)
		} else {
			p.Suppleants = append(p.Suppleants, r)
		}
	}

	sort.SliceStable(p.Officiels, func(i, j int) bool {
		return p.Officiels[i].Priorite < p.Officiels[j].Priorite
	})
	sort.SliceStable(p.Suppleants, func(i, j int) bool {
		return p.Suppleants[i].Priorite < p.Suppleants[j].Priorite
	})

	return p
}

// NombreOfficiels retourne le nombre de gagnants officiels
func (p Partition) NombreOfficiels() int {
	return len(p.Officiels)
}

// NombreSuppleants retourne le nombre de suppléants
func (p Partition) NombreSuppleants() int {
	return len(p.Suppleants)
}

// Total retourne le nombre total de résultats partitionnés
func (p Partition) Total() int {
	return len(p.Officiels) + len(p.Suppleants)
}
