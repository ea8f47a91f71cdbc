package services

import (
	"main/utils"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func setupTokenTest(t *testing.T) {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("Expected valid token with map claims")
	}
	return claims
}

func TestGenerateToken(t *testing.T) {
	setupTokenTest(t)

	tokenString, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["user_id"] != "user-123" {
		t.Errorf("user_id claim = %v, want user-123", claims["user_id"])
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("iss claim = %v, want %v", claims["iss"], TokenIssuer)
	}
	if _, ok := claims["type"]; ok {
		t.Error("Access token should not carry a type claim")
	}
	if claims["exp"] == nil {
		t.Error("Expected an exp claim")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	setupTokenTest(t)

	tokenString, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("Failed to generate refresh token: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["type"] != "refresh" {
		t.Errorf("type claim = %v, want refresh", claims["type"])
	}
	if claims["user_id"] != "user-123" {
		t.Errorf("user_id claim = %v, want user-123", claims["user_id"])
	}
}
