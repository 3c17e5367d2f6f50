package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PurposePasswordReset marca los tokens de recuperación de contraseña.
const PurposePasswordReset = "password_reset"

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// UserID identifica al tenant; Purpose vacío => token de sesión.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose,omitempty"`
}

// Generate genera un token de sesión firmado con userID y email.
func Generate(secret, userID, email, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, email, "", issuer, expMinutes)
}

// GenerateReset genera un token de corta duración para restablecer la contraseña.
func GenerateReset(secret, userID, email, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, email, PurposePasswordReset, issuer, expMinutes)
}

func sign(secret, userID, email, purpose, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de sesión y devuelve userID y email.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o es de otro propósito.
func Parse(secret, tokenString string) (userID, email string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != "" {
		return "", "", fmt.Errorf("jwt: token no válido para sesión")
	}
	return claims.UserID, claims.Email, nil
}

// ParseReset valida un token de recuperación y devuelve el userID.
func ParseReset(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposePasswordReset {
		return "", fmt.Errorf("jwt: token no válido para recuperación")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
