package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/RutikKulkarni/Football-Manager/internals/models"
	"github.com/RutikKulkarni/Football-Manager/pkg/kvstore"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	KV     kvstore.KVStore
	DB     *gorm.DB
	Secret string
}

func New(kv kvstore.KVStore, db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		KV:     kv,
		DB:     db,
		Secret: secret,
	}
}

// Authenticate logs an existing user in or registers a new one in the same
// call. The IsNewUser flag tells the caller to enqueue team creation for the
// fresh account.
func (a *AuthService) Authenticate(body AuthRequestBody) (*AuthResult, error) {
	var user models.User
	var isNew bool

	err := a.DB.Table("users").Where("email = ?", body.Email).First(&user).Error
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user = models.User{
			Email:    body.Email,
			Password: string(hash),
		}
		if err := a.DB.Table("users").Create(&user).Error; err != nil {
			return nil, err
		}
		isNew = true
	default:
		return nil, err
	}

	token, err := a.GenerateToken(user.UserID)
	if err != nil {
		return nil, err
	}

	// Insert the token into the KV store {List of tokens for a user: Multiple devices}
	err = a.KV.RPush("session_token_"+fmt.Sprintf("%d", user.UserID), token)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:     token,
		UserID:    user.UserID,
		TeamID:    user.TeamID,
		IsNewUser: isNew,
	}, nil
}

func (a *AuthService) GenerateToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})

	tokenString, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (a *AuthService) ValidateToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.Secret), nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID := int(claims["user_id"].(float64))
		return userID, nil
	}

	return 0, errors.New("invalid token")
}

// RevokeToken drops one of the user's session tokens. Even if someone still
// holds the token string, it no longer passes the whitelist check.
func (a *AuthService) RevokeToken(userID int, tokenString string) error {
	tokens, err := a.KV.LRange("session_token_"+fmt.Sprintf("%d", userID), 0, -1)
	if err != nil {
		return err
	}

	for _, t := range tokens {
		if t == tokenString {
			err = a.KV.LRem("session_token_"+fmt.Sprintf("%d", userID), 1, t)
			if err != nil {
				return err
			}
			break
		}
	}

	return nil
}

func (a *AuthService) CheckIfTokenIsWhiteListed(userID int, tokenString string) bool {
	tokens, err := a.KV.LRange("session_token_"+fmt.Sprintf("%d", userID), 0, -1)
	if err != nil {
		return false
	}

	for _, t := range tokens {
		if t == tokenString {
			return true
		}
	}

	return false
}
