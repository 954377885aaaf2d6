package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*TokenPair, *UserResponse, error)
	GoogleLogin(ctx context.Context, code string) (*TokenPair, *UserResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo   UserRepository
	google GoogleVerifier
}

func NewService(repo UserRepository, google GoogleVerifier) Service {
	return &service{repo: repo, google: google}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if dto.Name == "" || dto.Email == "" || len(dto.Password) < 8 {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:       uuid.New(),
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hashed),
		Role:     RoleStudent,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.Infof("Registered user %s", u.ID)
	return toResponse(&u), nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*TokenPair, *UserResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(dto.Email)))
	if err != nil {
		return nil, nil, err
	}
	if u == nil || u.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokenPair(u)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, nil, err
	}
	return pair, toResponse(u), nil
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*TokenPair, *UserResponse, error) {
	log := config.WithContext(ctx)

	profile, refreshToken, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Google code exchange failed")
		return nil, nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(strings.ToLower(profile.Email))
	if err != nil {
		return nil, nil, err
	}

	if u == nil {
		u = &User{
			ID:    uuid.New(),
			Name:  profile.Name,
			Email: strings.ToLower(profile.Email),
			Role:  RoleStudent,
		}
		if err := s.repo.Create(u); err != nil {
			return nil, nil, err
		}
		log.Infof("Created user %s from Google sign-in", u.ID)
	}

	if refreshToken != "" {
		encrypted, err := config.Encrypt(refreshToken)
		if err != nil {
			log.WithError(err).Warn("Failed to encrypt Google refresh token")
		} else {
			u.GoogleRefreshToken = &encrypted
			if err := s.repo.Update(u); err != nil {
				log.WithError(err).Warn("Failed to store Google refresh token")
			}
		}
	}

	pair, err := s.tokenPair(u)
	if err != nil {
		return nil, nil, err
	}
	return pair, toResponse(u), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return s.tokenPair(u)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *service) tokenPair(u *User) (*TokenPair, error) {
	access, err := auth.GenerateJWT(u.ID.String(), string(u.Role), auth.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), string(u.Role), auth.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
