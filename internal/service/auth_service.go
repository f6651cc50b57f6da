package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/raflyryhnsyh/sea-catering/internal/config"
	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtConfig  config.JWTConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtConfig config.JWTConfig) IAuthService {
	return &authService{uowFactory: uowFactory, jwtConfig: jwtConfig}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid register request: %v", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, dto.NewUpstreamError("find user", err)
	}
	if existing != nil {
		return nil, &dto.ConflictError{Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dto.NewUpstreamError("hash password", err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         entity.UserRoleUser,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, dto.NewUpstreamError("create user", err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid login request: %v", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, dto.NewUpstreamError("find user", err)
	}
	if user == nil {
		return nil, &dto.UnauthenticatedError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &dto.UnauthenticatedError{}
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, dto.NewUpstreamError("sign token", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, dto.NewUpstreamError("find user", err)
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.jwtConfig.TTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}
