package service

import (
	"time"

	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/password"
	"go-pos-ledger/pkg/validator"

	"github.com/sirupsen/logrus"
)

type UserService interface {
	GetAllUsers() []model.UserResponse
	GetUserByID(id int) (model.UserResponse, error)
	CreateUser(req *CreateUserRequest) (model.UserResponse, error)
	UpdateUser(id int, patch *model.UserPatch) (model.UserResponse, error)
	DeleteUser(id int) error
	UpdateUserStatus(id int, status model.UserStatus) (model.UserResponse, error)
	ResetPassword(id int, newPassword string) error
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userService struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	events   events
	log      *logrus.Logger
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, hasher password.Hasher, publisher Publisher, log *logrus.Logger) UserService {
	if hasher == nil {
		hasher = password.Placeholder{}
	}
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		events:   events{publisher},
		log:      log,
		now:      func() time.Time { return time.Now() },
	}
}

func (s *userService) GetAllUsers() []model.UserResponse {
	return model.ToResponses(s.userRepo.FindAll())
}

func (s *userService) GetUserByID(id int) (model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return model.UserResponse{}, translate(err, ErrUserNotFound, nil)
	}
	return user.ToResponse(), nil
}

func (s *userService) CreateUser(req *CreateUserRequest) (model.UserResponse, error) {
	if err := validator.Check(req); err != nil {
		return model.UserResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.userRepo.Create(model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Status:   model.UserActive,
		Password: hashed,
	}.Touch(s.now()))
	if err != nil {
		return model.UserResponse{}, translate(err, ErrUserNotFound, ErrEmailExists)
	}

	resp := user.ToResponse()
	s.log.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role}).Info("user created")
	s.events.emit("user", "created", resp)
	return resp, nil
}

func (s *userService) UpdateUser(id int, patch *model.UserPatch) (model.UserResponse, error) {
	if patch == nil {
		patch = &model.UserPatch{}
	}
	now := s.now()
	user, err := s.userRepo.Mutate(id, func(existing model.User) (model.User, error) {
		return patch.Apply(existing).Touch(now), nil
	})
	if err != nil {
		return model.UserResponse{}, translate(err, ErrUserNotFound, ErrEmailExists)
	}

	resp := user.ToResponse()
	s.log.WithField("userId", id).Info("user updated")
	s.events.emit("user", "updated", resp)
	return resp, nil
}

func (s *userService) DeleteUser(id int) error {
	if err := s.userRepo.Delete(id); err != nil {
		return translate(err, ErrUserNotFound, nil)
	}
	s.log.WithField("userId", id).Info("user deleted")
	s.events.emit("user", "deleted", map[string]int{"id": id})
	return nil
}

func (s *userService) UpdateUserStatus(id int, status model.UserStatus) (model.UserResponse, error) {
	if !status.Valid() {
		return model.UserResponse{}, ErrInvalidStatus
	}

	user, err := s.userRepo.Mutate(id, func(existing model.User) (model.User, error) {
		existing.Status = status
		return existing, nil
	})
	if err != nil {
		return model.UserResponse{}, translate(err, ErrUserNotFound, nil)
	}

	resp := user.ToResponse()
	s.log.WithFields(logrus.Fields{"userId": id, "status": status}).Info("user status changed")
	s.events.emit("user", "status_changed", resp)
	return resp, nil
}

func (s *userService) ResetPassword(id int, newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordRequired
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(id, hashed); err != nil {
		return translate(err, ErrUserNotFound, nil)
	}

	s.log.WithField("userId", id).Info("user password reset")
	return nil
}
