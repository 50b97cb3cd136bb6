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

// DestinationRepository gère les opérations sur les destinations
type DestinationRepository struct {
	collection *mongo.Collection
}

// NewDestinationRepository crée une nouvelle instance de DestinationRepository
func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{
		collection: db.Collection("destinations"),
	}
}

// Create crée une nouvelle destination
func (r *DestinationRepository) Create(destination *models.Destination) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	destination.ID = primitive.NewObjectID()
	destination.CreatedAt = time.Now()
	destination.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, destination)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la destination: %w", err)
	}

	return nil
}

// FindAll retourne toutes les destinations triées par nom
func (r *DestinationRepository) FindAll() ([]models.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "nom", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var destinations []models.Destination
	if err = cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des destinations: %w", err)
	}

	return destinations, nil
}

// FindByID recherche une destination par ID
func (r *DestinationRepository) FindByID(id primitive.ObjectID) (*models.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var destination models.Destination
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&destination)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la destination: %w", err)
	}

	return &destination, nil
}

// Update met à jour une destination
func (r *DestinationRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la destination: %w", err)
	}

	return nil
}

// Delete supprime une destination
func (r *DestinationRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la destination: %w", err)
	}

	return nil
}
