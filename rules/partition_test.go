package rules

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"selection-voyages-backend/models"
)

func resultat(typ models.TypeSelection, priorite int) models.ResultatSelection {
	return models.ResultatSelection{
		ID:       primitive.NewObjectID(),
		Type:     typ,
		Priorite: priorite,
	}
}

func TestPartitionner(t *testing.T) {
	// Liste volontairement désordonnée
	resultats := []models.ResultatSelection{
		resultat(models.SelectionOfficiel, 2),
		resultat(models.SelectionSuppleant, 1),
		resultat(models.SelectionOfficiel, 1),
	}

	p := Partitionner(resultats)

	if p.NombreOfficiels() != 2 {
		t.Errorf("NombreOfficiels() = %d, attendu 2", p.NombreOfficiels())
	}
	if p.NombreSuppleants() != 1 {
		t.Errorf("NombreSuppleants() = %d, attendu 1", p.NombreSuppleants())
	}
	if p.Officiels[0].Priorite != 1 || p.Officiels[1].Priorite != 2 {
		t.Errorf("officiels mal triés: %d, %d", p.Officiels[0].Priorite, p.Officiels[1].Priorite)
	}
	if p.Suppleants[0].Priorite != 1 {
		t.Errorf("suppléants mal triés: %d", p.Suppleants[0].Priorite)
	}
}

// La partition ne doit ni perdre ni dupliquer de ligne
func TestPartitionnerSansPerte(t *testing.T) {
	resultats := []models.ResultatSelection{
		resultat(models.SelectionSuppleant, 3),
		resultat(models.SelectionOfficiel, 1),
		resultat(models.SelectionSuppleant, 1),
		resultat(models.SelectionOfficiel, 4),
		resultat(models.SelectionSuppleant, 2),
	}

	p := Partitionner(resultats)

	if p.Total() != len(resultats) {
		t.Fatalf("Total() = %d, attendu %d", p.Total(), len(resultats))
	}

	vus := make(map[primitive.ObjectID]int)
	for _, r := range p.Officiels {
		vus[r.ID]++
	}
	for _, r := range p.Suppleants {
		vus[r.ID]++
	}
	for _, r := range resultats {
		if vus[r.ID] != 1 {
			t.Errorf("la ligne %s apparaît %d fois, attendu 1", r.ID.Hex(), vus[r.ID])
		}
	}
}

func TestPartitionnerTriCroissant(t *testing.T) {
	resultats := []models.ResultatSelection{
		resultat(models.SelectionOfficiel, 5),
		resultat(models.SelectionOfficiel, 3),
		resultat(models.SelectionOfficiel, 4),
		resultat(models.SelectionOfficiel, 1),
		resultat(models.SelectionOfficiel, 2),
	}

	p := Partitionner(resultats)

	for i := 1; i < len(p.Officiels); i++ {
		if p.Officiels[i-1].Priorite > p.Officiels[i].Priorite {
			t.Fatalf("tri non croissant à l'index %d", i)
		}
	}
}

// Des priorités égales ne sont pas attendues du tirage, mais si elles
// arrivent le tri stable conserve l'ordre relatif d'origine
func TestPartitionnerStabiliteSurEgalite(t *testing.T) {
	premier := resultat(models.SelectionOfficiel, 1)
	second := resultat(models.SelectionOfficiel, 1)

	p := Partitionner([]models.ResultatSelection{premier, second})

	if p.Officiels[0].ID != premier.ID || p.Officiels[1].ID != second.ID {
		t.Error("l'ordre relatif d'origine doit être conservé sur égalité de priorité")
	}
}

// Une liste vide donne deux partitions vides, pas une erreur :
// c'est l'état "pas encore de résultats"
func TestPartitionnerVide(t *testing.T) {
	p := Partitionner(nil)

	if p.NombreOfficiels() != 0 || p.NombreSuppleants() != 0 || p.Total() != 0 {
		t.Errorf("partition vide attendue, obtenu %d/%d", p.NombreOfficiels(), p.NombreSuppleants())
	}
	if p.Officiels == nil || p.Suppleants == nil {
		t.Error("les listes doivent être vides mais non nil pour la sérialisation JSON")
	}
}
