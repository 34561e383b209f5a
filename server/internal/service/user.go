package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user, err := s.repo.CreateUser(ctx, req)
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int64("id", user.ID))
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error) {
	return s.repo.UpdateUser(ctx, id, upd)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int64("id", id))
	return nil
}
