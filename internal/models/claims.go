package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims binds a signed token to a server side session.
type AdminClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	Email     string `json:"email"`
}
