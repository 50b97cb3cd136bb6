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

// SessionRepository gère les opérations sur les sessions de voyage
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository crée une nouvelle instance de SessionRepository
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{
		collection: db.Collection("sessions"),
	}
}

// Create crée une nouvelle session
func (r *SessionRepository) Create(session *models.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la session: %w", err)
	}

	return nil
}

// FindAll retourne toutes les sessions triées par date de début
func (r *SessionRepository) FindAll() ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_debut", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des sessions: %w", err)
	}

	return sessions, nil
}

// FindByID recherche une session par ID
func (r *SessionRepository) FindByID(id primitive.ObjectID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var session models.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la session: %w", err)
	}

	return &session, nil
}

// FindByPeriode retourne les sessions rattachées à une période
func (r *SessionRepository) FindByPeriode(periodeID primitive.ObjectID) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_debut", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"periode_id": periodeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des sessions: %w", err)
	}

	return sessions, nil
}

// Update met à jour une session
func (r *SessionRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la session: %w", err)
	}

	return nil
}

// Delete supprime une session
func (r *SessionRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la session: %w", err)
	}

	return nil
}

// Count retourne le nombre total de sessions
func (r *SessionRepository) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des sessions: %w", err)
	}

	return count, nil
}
