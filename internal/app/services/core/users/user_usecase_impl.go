package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

// CreateUser is idempotent on email: the portal posts the profile on every
// sign-in, so an existing user is returned as-is instead of rejected.
func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	userModel := &models.User{
		Name:  request.Name,
		Email: request.Email,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	insertedID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}
	if objectID, convErr := primitive.ObjectIDFromHex(insertedID); convErr == nil {
		userModel.ID = objectID
	}

	uc.Log.Info("user created", zap.String(constvars.LoggingEmailKey, request.Email))
	return userModel, nil
}

func (uc *userUsecase) GetUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

// IsAdmin reports false for unknown emails rather than failing; the frontend
// treats the check as a plain capability probe.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	userModel, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if userModel == nil {
		return false, nil
	}
	return userModel.IsAdmin(), nil
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) error {
	return uc.UserRepository.SetRole(ctx, userID, constvars.RoleAdmin)
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	userModel, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if userModel == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	return uc.UserRepository.DeleteByID(ctx, userID)
}
