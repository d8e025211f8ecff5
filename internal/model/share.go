package model

import "github.com/golang-jwt/jwt/v5"

// ShareClaims are JWT claims carrying a finished answer set
type ShareClaims struct {
	Answers Answers `json:"answers"`
	jwt.RegisteredClaims
}

// ShareLink is returned when a result is shared
type ShareLink struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}
