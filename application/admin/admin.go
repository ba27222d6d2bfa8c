package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	redisrepo "github.com/muhammadheryan/warung-order/repository/redis"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type AdminApp interface {
	Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.AdminSession, error)
	Logout(ctx context.Context, sessionID string) error
}

type AdminAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAdminApp(config *config.Config, redisRepo redisrepo.Repository) AdminApp {
	return &AdminAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *AdminAppImpl) Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	if req.Password == "" {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "password", "is required")
	}

	ok, err := s.checkPassword(req.Password)
	if err != nil {
		logger.Error("[Login] admin password not configured", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !ok {
		logger.Warn("[Login] invalid admin password")
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	// Generate JWT token
	token, claims, err := s.generateJWT()
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, claims.ID, adminSubject, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Login] admin session started", zap.String("session_id", claims.ID))
	return &model.AdminLoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *AdminAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.AdminSession, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	subject, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if subject != claims.Subject {
		return nil, fmt.Errorf("token does not match session")
	}

	session := &model.AdminSession{ID: jti, Subject: subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *AdminAppImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[Logout] admin session ended", zap.String("session_id", sessionID))
	return nil
}

// checkPassword prefers the bcrypt hash and falls back to the plain password.
func (s *AdminAppImpl) checkPassword(password string) (bool, error) {
	auth := s.config.Auth
	switch {
	case auth.AdminPasswordHash != "":
		err := bcrypt.CompareHashAndPassword([]byte(auth.AdminPasswordHash), []byte(password))
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	case auth.AdminPassword != "":
		return subtle.ConstantTimeCompare([]byte(auth.AdminPassword), []byte(password)) == 1, nil
	default:
		return false, fmt.Errorf("neither ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD is set")
	}
}

// generateJWT creates a JWT token for the admin session
func (s *AdminAppImpl) generateJWT() (string, *jwt.RegisteredClaims, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   adminSubject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}
