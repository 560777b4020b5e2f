package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rizkyfachril/backoffice/cmd/config"
	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	redisrepo "github.com/rizkyfachril/backoffice/repository/redis"
	userrepo "github.com/rizkyfachril/backoffice/repository/user"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// Logout drops the Redis session behind the token's jti. An already-invalid
// token is treated as logged out.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil
	}
	if claims.ID == "" {
		return nil
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	// Extract userID from Subject
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// Extract JTI (Token ID)
	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
