package utils

import (
	"fmt"
	"time"

	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
)

type AuthToken struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	PlantID   string `json:"plant_id"`
	Secret    string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func IssueAuthToken(userID, companyID, plantID string, ttl time.Duration) (string, error) {
	claims := &AuthToken{
		UserID:    userID,
		CompanyID: companyID,
		PlantID:   plantID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthToken, error) {
	claims := &AuthToken{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return claims, nil
}
