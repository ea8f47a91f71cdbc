package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
	"strings"
	"time"
)

var (
	ErrDuplicateUser      = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UsersService struct {
	UsersRepo *repository.UsersRepo
}

func NewUsersService(repo *repository.UsersRepo) *UsersService {
	return &UsersService{UsersRepo: repo}
}

// Register validates the fields, rejects duplicates and stores the user with
// a hashed password
func (svc *UsersService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	user := &model.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
	if err := utils.Validate.Struct(user); err != nil {
		return nil, err
	}

	existing, err := svc.UsersRepo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	existing, err = svc.UsersRepo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the username/password pair and returns the user
func (svc *UsersService) Authenticate(username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
