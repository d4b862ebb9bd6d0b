package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/pkg/auth"
	"github.com/bdspro/platform/pkg/referral"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var ErrEmailTaken = errors.New("email already registered")

// Register creates an account with a fresh unique referral code. When a
// referral code is supplied the referrer is resolved before the new row
// exists, so a self-referral cannot be constructed.
func (s *Service) Register(ctx context.Context, name, email, password, referrerCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var referrerID *int
	if referrerCode != "" {
		referrer, err := s.userRepo.FindByReferralCode(ctx, referrerCode)
		if err != nil {
			zap.L().Error("can't look up referrer code: ", zap.Error(err))
			return nil, err
		}
		if referrer == nil {
			zap.L().Warn("unknown referral code at registration", zap.String("code", referrerCode))
		} else {
			referrerID = &referrer.ID
		}
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		ReferralCode: referral.NewCode(),
		ReferrerID:   referrerID,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	return s.jwtService.GenerateJWT(userID, time.Now().Add(24*time.Hour))
}
