package utils

import (
	"testing"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret-key"
	employeeID := "emp123"
	email := "test@example.com"

	token, err := GenerateToken(employeeID, email, "employee", secret)
	if err != nil {
		t.Fatalf("GenerateToken() erreur = %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() ne doit pas retourner une chaîne vide")
	}
}

func TestValidateToken(t *testing.T) {
	secret := "test-secret-key"
	employeeID := "emp456"
	email := "valid@example.com"

	token, err := GenerateToken(employeeID, email, "admin", secret)
	if err != nil {
		t.Fatalf("GenerateToken() erreur = %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() erreur = %v", err)
	}
	if claims.EmployeeID != employeeID {
		t.Errorf("EmployeeID = %v, attendu %v", claims.EmployeeID, employeeID)
	}
	if claims.Email != email {
		t.Errorf("Email = %v, attendu %v", claims.Email, email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %v, attendu admin", claims.Role)
	}
}

func TestValidateTokenMauvaisSecret(t *testing.T) {
	token, _ := GenerateToken("u", "e@e.com", "employee", "secret1")
	_, err := ValidateToken(token, "secret2")
	if err == nil {
		t.Error("ValidateToken() devrait échouer avec un mauvais secret")
	}
}

func TestValidateTokenInvalide(t *testing.T) {
	_, err := ValidateToken("invalid-token", "secret")
	if err == nil {
		t.Error("ValidateToken() devrait échouer avec un token invalide")
	}
}
