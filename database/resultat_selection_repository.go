package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"selection-voyages-backend/models"
)

// ResultatSelectionRepository gère les opérations sur les résultats de tirage
type ResultatSelectionRepository struct {
	collection *mongo.Collection
}

// NewResultatSelectionRepository crée une nouvelle instance de ResultatSelectionRepository
func NewResultatSelectionRepository(db *mongo.Database) *ResultatSelectionRepository {
	return &ResultatSelectionRepository{
		collection: db.Collection("resultat_selections"),
	}
}

// CreateMany insère en lot les résultats d'un tirage
func (r *ResultatSelectionRepository) CreateMany(resultats []models.ResultatSelection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(resultats))
	for i := range resultats {
		resultats[i].ID = primitive.NewObjectID()
		docs = append(docs, resultats[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("erreur lors de l'enregistrement des résultats: %w", err)
	}

	return nil
}

// FindBySession retourne les résultats d'une session, triés par type puis priorité
func (r *ResultatSelectionRepository) FindBySession(sessionID primitive.ObjectID) ([]models.ResultatSelection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "selection_type", Value: -1}, // "substitute" après "official"
		{Key: "priority_order", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des résultats: %w", err)
	}
	defer cursor.Close(ctx)

	var resultats []models.ResultatSelection
	if err = cursor.All(ctx, &resultats); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des résultats: %w", err)
	}

	return resultats, nil
}

// ExistsForSession vérifie si un tirage a déjà été généré pour une session
func (r *ResultatSelectionRepository) ExistsForSession(sessionID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return false, fmt.Errorf("erreur lors de la vérification du tirage: %w", err)
	}

	return count > 0, nil
}

// DeleteBySession supprime tous les résultats d'une session (re-tirage admin)
func (r *ResultatSelectionRepository) DeleteBySession(sessionID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.DeleteMany(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return 0, fmt.Errorf("erreur lors de la suppression des résultats: %w", err)
	}

	return res.DeletedCount, nil
}

// CountSessionsWithResults retourne le nombre de sessions ayant un tirage
func (r *ResultatSelectionRepository) CountSessionsWithResults() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ids, err := r.collection.Distinct(ctx, "session_id", bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des tirages: %w", err)
	}

	return len(ids), nil
}
