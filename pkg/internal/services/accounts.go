package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Deepak1230987/meetAI/pkg/internal/database"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type accountClaims struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

func NewAccount(name, email, password string) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}

	if err := database.C.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, fmt.Errorf("email already in use")
		}
		return account, fmt.Errorf("unable to create account: %v", err)
	}

	return account, nil
}

func AuthenticateAccount(email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err != nil {
		return account, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}

func GetAccount(id string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func EncodeAccessToken(account models.Account) (string, error) {
	lifetime := time.Second * time.Duration(viper.GetInt("security.token_lifetime"))

	claims := accountClaims{
		Name:   account.Name,
		Avatar: account.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    "meetai",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

// DecodeAccessToken rebuilds the requester's account from token claims.
// The claims carry everything downstream operations need, so no database
// roundtrip happens per request.
func DecodeAccessToken(token string) (models.Account, error) {
	var account models.Account

	parsed, err := jwt.ParseWithClaims(token, &accountClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return account, err
	}

	claims, ok := parsed.Claims.(*accountClaims)
	if !ok || !parsed.Valid || len(claims.Subject) == 0 {
		return account, jwt.ErrTokenInvalidClaims
	}

	account.ID = claims.Subject
	account.Name = claims.Name
	account.Avatar = claims.Avatar

	return account, nil
}
