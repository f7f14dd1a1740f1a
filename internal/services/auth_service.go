package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "invalid username or password"

type AuthService struct {
	UserRepo     repositories.UserRepository
	ActivityRepo repositories.ActivityRepository
	Secret       []byte
	TTL          time.Duration
	RequestID    string
}

// Login verifies credentials, issues an HS256 token and records a login activity.
func (s AuthService) Login(ctx context.Context, p models.LoginPayload) (string, models.User, error) {
	user, err := s.UserRepo.GetCredentials(ctx, p.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, domain.UnauthorizedError{Msg: invalidCredentials}
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(p.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d rejected", user.ID))
		return "", models.User{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}

	token, err := IssueToken(s.Secret, user.ID, user.Role, s.TTL)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	if _, err := s.ActivityRepo.Create(ctx, models.ActivityPayload{
		UserID:      user.ID,
		Action:      "login",
		Description: "User " + user.Username + " logged in",
	}); err != nil {
		utils.LogError(s.RequestID, "auth", "record_login", err)
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	user.PasswordHash = ""
	return token, user, nil
}

// IssueToken signs sub/role/exp/iat claims with HS256.
func IssueToken(secret []byte, userID int64, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates an HS256 token and returns its principal.
func ParseToken(secret []byte, raw string) (domain.Principal, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return domain.Principal{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, domain.UnauthorizedError{Msg: "invalid claims"}
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return domain.Principal{}, domain.UnauthorizedError{Msg: "invalid claims"}
	}
	role, _ := claims["role"].(string)
	return domain.Principal{UserID: int64(sub), Role: role}, nil
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password is empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
