package rules

import (
	"reflect"
	"testing"

	"selection-voyages-backend/models"
)

func lignesTest() []models.LigneHistorique {
	return []models.LigneHistorique{
		{Nom: "Durand", Prenom: "Marie", SessionNom: "Séjour Antalya", DateInscription: "2023-06-12T10:00:00", Statut: models.InscriptionTerminee},
		{Nom: "Martin", Prenom: "Paul", SessionNom: "Séjour Hammamet", DateInscription: "2024-03-01T09:30:00", Statut: models.InscriptionActive},
		{Nom: "Durand", Prenom: "Luc", SessionNom: "Centre Ain Draham", DateInscription: "2024-05-20T14:00:00", Statut: models.InscriptionAnnulee},
	}
}

// Le filtre vide est l'identité
func TestFiltrerHistoriqueIdentite(t *testing.T) {
	lignes := lignesTest()
	resultat := FiltrerHistorique(lignes, FiltreHistorique{})

	if !reflect.DeepEqual(resultat, lignes) {
		t.Errorf("le filtre vide doit retourner toutes les lignes, obtenu %d/%d", len(resultat), len(lignes))
	}
}

// Appliquer deux fois le même filtre donne le même résultat qu'une fois
func TestFiltrerHistoriqueIdempotent(t *testing.T) {
	filtre := FiltreHistorique{Recherche: "durand", Annee: "2024"}

	unefois := FiltrerHistorique(lignesTest(), filtre)
	deuxfois := FiltrerHistorique(unefois, filtre)

	if !reflect.DeepEqual(unefois, deuxfois) {
		t.Error("FiltrerHistorique doit être idempotent")
	}
}

func TestFiltrerHistorique(t *testing.T) {
	tests := []struct {
		name   string
		filtre FiltreHistorique
		want   int
	}{
		{"recherche sur le nom", FiltreHistorique{Recherche: "durand"}, 2},
		{"recherche insensible à la casse", FiltreHistorique{Recherche: "DURAND"}, 2},
		{"recherche sur le nom de session", FiltreHistorique{Recherche: "antalya"}, 1},
		{"recherche sans correspondance", FiltreHistorique{Recherche: "introuvable"}, 0},
		{"filtre par année", FiltreHistorique{Annee: "2024"}, 2},
		{"filtre par statut", FiltreHistorique{Statut: "active"}, 1},
		{"critères combinés en ET", FiltreHistorique{Recherche: "durand", Annee: "2024"}, 1},
		{"critères incompatibles", FiltreHistorique{Recherche: "martin", Annee: "2023"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultat := FiltrerHistorique(lignesTest(), tt.filtre)
			if len(resultat) != tt.want {
				t.Errorf("FiltrerHistorique(%+v) = %d lignes, attendu %d", tt.filtre, len(resultat), tt.want)
			}
		})
	}
}

// Les facettes se calculent sur les lignes non filtrées : filtrer sur 2024
// ne doit pas faire disparaître 2023 des options
func TestFacettesSurLignesNonFiltrees(t *testing.T) {
	lignes := lignesTest()

	annees := AnneesDisponibles(lignes)
	if !reflect.DeepEqual(annees, []string{"2024", "2023"}) {
		t.Errorf("AnneesDisponibles() = %v, attendu [2024 2023]", annees)
	}

	statuts := StatutsDisponibles(lignes)
	if !reflect.DeepEqual(statuts, []string{"active", "cancelled", "completed"}) {
		t.Errorf("StatutsDisponibles() = %v", statuts)
	}

	// Après filtrage, les facettes recalculées sur la source restent identiques
	_ = FiltrerHistorique(lignes, FiltreHistorique{Annee: "2024"})
	if !reflect.DeepEqual(AnneesDisponibles(lignes), []string{"2024", "2023"}) {
		t.Error("les facettes doivent rester stables après filtrage")
	}
}

func TestAnneeDe(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-01T09:30:00", "2024"},
		{"2023-06-12", "2023"},
		{"20240301", "2024"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := anneeDe(tt.date); got != tt.want {
			t.Errorf("anneeDe(%q) = %q, attendu %q", tt.date, got, tt.want)
		}
	}
}
