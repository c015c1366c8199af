package service

import (
	"context"
	log "log/slog"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/security"
	"yatube/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	// Login verifies credentials and issues a signed token.
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Username: req.Username, Password: hash}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}
