package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		// token outlived the account
		us.log.Warn("Profile requested for missing user", zap.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
