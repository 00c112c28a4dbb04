package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lifehub/internal/models"
	"lifehub/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const pkg = "authService/"

type AuthService struct {
	log           *slog.Logger
	userAdder     UserAdder
	userProvider  UserProvider
	sessionStorer SessionStorer
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider,
	sessionStorer SessionStorer,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		log:           log,
		userAdder:     userAdder,
		userProvider:  userProvider,
		sessionStorer: sessionStorer,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}
}

func (a *AuthService) Register(ctx context.Context, login string, name string, password string) (*models.User, error) {
	op := pkg + "Register"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to register user")

	if !validator.IsValidLogin(login) || !validator.IsValidName(name) || !validator.IsValidPassword(password) {
		log.Warn("invalid login, name or password format")
		return nil, models.ErrValidation
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	user := models.User{
		ID:       uuid.NewV4().String(),
		Login:    login,
		Name:     name,
		PassHash: passHash,
	}

	err = a.userAdder.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			log.Warn("user already exists", slog.String("login", user.Login))
			return nil, models.ErrUserExists
		}

		log.Error("failed to add user", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user registered successfully")

	return &user, nil
}

// Login verifies the credentials and issues a signed token that references
// a redis-backed session, so logout revokes it before its expiry.
func (a *AuthService) Login(ctx context.Context, login string, password string) (string, *models.User, error) {
	op := pkg + "Login"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to login user")

	user, err := a.userProvider.UserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("user not found", slog.String("error", models.ErrUserNotFound.Error()))
			return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}

		log.Error("failed to get user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	sessionID := uuid.NewV4().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"sid": sessionID,
		"exp": time.Now().Add(a.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		log.Error("failed to sign token", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		log.Error("failed to marshal user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	err = a.sessionStorer.SaveSession(ctx, sessionID, string(userJSON))
	if err != nil {
		log.Error("failed to store session", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("user logged in successfully")

	return signed, user, nil
}

func (a *AuthService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	op := pkg + "UserByToken"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to resolve user by token")

	sessionID, err := a.sessionID(token)
	if err != nil {
		log.Warn("failed to parse token", slog.String("error", err.Error()))
		return nil, models.ErrInvalidCredentials
	}

	userJSON, err := a.sessionStorer.UserBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session revoked or expired")
			return nil, models.ErrInvalidCredentials
		}
		log.Error("failed to get session", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	var user models.User

	err = json.Unmarshal([]byte(userJSON), &user)
	if err != nil {
		log.Error("failed to unmarshal user from json", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user resolved successfully")

	return &user, nil
}

func (a *AuthService) Logout(ctx context.Context, token string) error {
	op := pkg + "Logout"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to logout user")

	sessionID, err := a.sessionID(token)
	if err != nil {
		log.Warn("failed to parse token", slog.String("error", err.Error()))
		return models.ErrInvalidCredentials
	}

	err = a.sessionStorer.DeleteSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session not found")
			return models.ErrSessionNotFound
		}
		log.Error("failed to delete session", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("user logged out successfully")

	return nil
}

// sessionID verifies the token signature and extracts the session claim.
// Expiry is enforced by the parser via the exp claim.
func (a *AuthService) sessionID(token string) (string, error) {
	op := pkg + "sessionID"

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return a.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	return sessionID, nil
}
