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

// PeriodeRepository gère les opérations sur les périodes
type PeriodeRepository struct {
	collection *mongo.Collection
}

// NewPeriodeRepository crée une nouvelle instance de PeriodeRepository
func NewPeriodeRepository(db *mongo.Database) *PeriodeRepository {
	return &PeriodeRepository{
		collection: db.Collection("periodes"),
	}
}

// Create crée une nouvelle période
func (r *PeriodeRepository) Create(periode *models.Periode) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	periode.ID = primitive.NewObjectID()
	periode.CreatedAt = time.Now()
	periode.UpdatedAt = time.Now()

	if periode.Statut == "" {
		periode.Statut = models.PeriodeOuverte
	}

	_, err := r.collection.InsertOne(ctx, periode)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la période: %w", err)
	}

	return nil
}

// FindAll retourne toutes les périodes triées par date de début décroissante
func (r *PeriodeRepository) FindAll() ([]models.Periode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_debut", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des périodes: %w", err)
	}
	defer cursor.Close(ctx)

	var periodes []models.Periode
	if err = cursor.All(ctx, &periodes); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des périodes: %w", err)
	}

	return periodes, nil
}

// FindByID recherche une période par ID
func (r *PeriodeRepository) FindByID(id primitive.ObjectID) (*models.Periode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var periode models.Periode
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&periode)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la période: %w", err)
	}

	return &periode, nil
}

// FindDeadlineApproaching retourne les périodes ouvertes dont la date limite
// d'inscription tombe dans la fenêtre donnée et dont le rappel n'a pas
// encore été envoyé
func (r *PeriodeRepository) FindDeadlineApproaching(limite time.Time) ([]models.Periode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"statut":        models.PeriodeOuverte,
		"rappel_envoye": false,
		"date_limite_inscription": bson.M{
			"$gte": time.Now(),
			"$lte": limite,
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des périodes à rappeler: %w", err)
	}
	defer cursor.Close(ctx)

	var periodes []models.Periode
	if err = cursor.All(ctx, &periodes); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des périodes: %w", err)
	}

	return periodes, nil
}

// Update met à jour une période
func (r *PeriodeRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la période: %w", err)
	}

	return nil
}

// Delete supprime une période
func (r *PeriodeRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la période: %w", err)
	}

	return nil
}
