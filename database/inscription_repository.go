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

// InscriptionRepository gère les opérations sur les inscriptions
type InscriptionRepository struct {
	collection *mongo.Collection
}

// NewInscriptionRepository crée une nouvelle instance de InscriptionRepository
func NewInscriptionRepository(db *mongo.Database) *InscriptionRepository {
	return &InscriptionRepository{
		collection: db.Collection("inscriptions"),
	}
}

// Create crée une nouvelle inscription
func (r *InscriptionRepository) Create(inscription *models.Inscription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inscription.ID = primitive.NewObjectID()
	inscription.DateInscription = time.Now()
	inscription.CreatedAt = time.Now()
	inscription.UpdatedAt = time.Now()

	if inscription.Statut == "" {
		inscription.Statut = models.InscriptionActive
	}

	_, err := r.collection.InsertOne(ctx, inscription)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("vous êtes déjà inscrit à cette session")
		}
		return fmt.Errorf("erreur lors de la création de l'inscription: %w", err)
	}

	return nil
}

// FindByID recherche une inscription par ID
func (r *InscriptionRepository) FindByID(id primitive.ObjectID) (*models.Inscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var inscription models.Inscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inscription)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de l'inscription: %w", err)
	}

	return &inscription, nil
}

// FindBySessionAndEmployee recherche l'inscription d'un employé à une session
func (r *InscriptionRepository) FindBySessionAndEmployee(sessionID, employeeID primitive.ObjectID) (*models.Inscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Les inscriptions annulées ne comptent pas, l'employé peut se réinscrire
	var inscription models.Inscription
	err := r.collection.FindOne(ctx, bson.M{
		"session_id":  sessionID,
		"employee_id": employeeID,
		"statut":      bson.M{"$ne": models.InscriptionAnnulee},
	}).Decode(&inscription)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de l'inscription: %w", err)
	}

	return &inscription, nil
}

// FindByEmployee retourne toutes les inscriptions d'un employé,
// les plus récentes en premier
func (r *InscriptionRepository) FindByEmployee(employeeID primitive.ObjectID) ([]models.Inscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_inscription", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des inscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var inscriptions []models.Inscription
	if err = cursor.All(ctx, &inscriptions); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des inscriptions: %w", err)
	}

	return inscriptions, nil
}

// FindActiveBySession retourne les inscriptions actives d'une session,
// dans l'ordre d'arrivée
func (r *InscriptionRepository) FindActiveBySession(sessionID primitive.ObjectID) ([]models.Inscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"session_id": sessionID,
		"statut":     models.InscriptionActive,
	}
	opts := options.Find().SetSort(bson.D{{Key: "date_inscription", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des inscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var inscriptions []models.Inscription
	if err = cursor.All(ctx, &inscriptions); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des inscriptions: %w", err)
	}

	return inscriptions, nil
}

// UpdateStatut change le statut d'une inscription
func (r *InscriptionRepository) UpdateStatut(id primitive.ObjectID, statut models.StatutInscription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"statut":     statut,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de l'inscription: %w", err)
	}

	return nil
}

// FullHistory retourne l'historique complet dénormalisé des inscriptions :
// chaque ligne joint l'employé, la session et la destination
func (r *InscriptionRepository) FullHistory() ([]models.LigneHistorique, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Pipeline d'agrégation pour dénormaliser les inscriptions
	pipeline := []bson.M{
		{
			"$lookup": bson.M{
				"from":         "employees",
				"localField":   "employee_id",
				"foreignField": "_id",
				"as":           "employee",
			},
		},
		{"$unwind": "$employee"},
		{
			"$lookup": bson.M{
				"from":         "sessions",
				"localField":   "session_id",
				"foreignField": "_id",
				"as":           "session",
			},
		},
		{"$unwind": "$session"},
		{
			"$lookup": bson.M{
				"from":         "destinations",
				"localField":   "session.destination_id",
				"foreignField": "_id",
				"as":           "destination",
			},
		},
		{"$unwind": "$destination"},
		{"$sort": bson.M{"date_inscription": -1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'agrégation de l'historique: %w", err)
	}
	defer cursor.Close(ctx)

	var lignes []models.LigneHistorique
	for cursor.Next(ctx) {
		var doc struct {
			ID              primitive.ObjectID       `bson:"_id"`
			DateInscription time.Time                `bson:"date_inscription"`
			Statut          models.StatutInscription `bson:"statut"`
			Employee        models.Employee          `bson:"employee"`
			Session         models.Session           `bson:"session"`
			Destination     models.Destination       `bson:"destination"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("erreur lors du décodage de l'historique: %w", err)
		}

		lignes = append(lignes, models.LigneHistorique{
			InscriptionID:   doc.ID.Hex(),
			Nom:             doc.Employee.Lastname,
			Prenom:          doc.Employee.Firstname,
			Email:           doc.Employee.Email,
			Structure:       doc.Employee.Structure,
			SessionNom:      doc.Session.Nom,
			DestinationNom:  doc.Destination.Nom,
			DateInscription: doc.DateInscription.Format("2006-01-02T15:04:05"),
			Statut:          doc.Statut,
		})
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("erreur lors du parcours de l'historique: %w", err)
	}

	return lignes, nil
}

// Count retourne le nombre total d'inscriptions
func (r *InscriptionRepository) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des inscriptions: %w", err)
	}

	return count, nil
}
