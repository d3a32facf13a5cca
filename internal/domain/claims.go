package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o serviço que chama a API (hoje apenas o bot)
type Claims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}
