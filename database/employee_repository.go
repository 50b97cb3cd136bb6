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

// EmployeeRepository gère les opérations sur les employés
type EmployeeRepository struct {
	collection *mongo.Collection
}

// NewEmployeeRepository crée une nouvelle instance de EmployeeRepository
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{
		collection: db.Collection("employees"),
	}
}

// Create crée un nouvel employé
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = time.Now()

	if employee.Role == "" {
		employee.Role = models.RoleEmploye
	}

	_, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("cet email est déjà utilisé")
		}
		return fmt.Errorf("erreur lors de la création de l'employé: %w", err)
	}

	return nil
}

// FindByEmail recherche un employé par email
func (r *EmployeeRepository) FindByEmail(email string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&employee)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de l'employé: %w", err)
	}

	return &employee, nil
}

// FindByID recherche un employé par ID
func (r *EmployeeRepository) FindByID(id primitive.ObjectID) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de l'employé: %w", err)
	}

	return &employee, nil
}

// EmailExists vérifie si un email existe déjà
func (r *EmployeeRepository) EmailExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("erreur lors de la vérification de l'email: %w", err)
	}

	return count > 0, nil
}

// FindAll retourne tous les employés triés par nom
func (r *EmployeeRepository) FindAll() ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastname", Value: 1}, {Key: "firstname", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des employés: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des employés: %w", err)
	}

	return employees, nil
}

// Update met à jour un employé
func (r *EmployeeRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de l'employé: %w", err)
	}

	return nil
}

// Delete supprime un employé
func (r *EmployeeRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de l'employé: %w", err)
	}

	return nil
}

// Count retourne le nombre total d'employés
func (r *EmployeeRepository) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des employés: %w", err)
	}

	return count, nil
}
