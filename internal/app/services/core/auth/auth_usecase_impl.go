package auth

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

// GetAccessToken signs a token only for registered emails; identity proofing
// happened upstream at sign-in, this endpoint just mints the API credential.
func (uc *authUsecase) GetAccessToken(ctx context.Context, email string) (string, error) {
	userModel, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if userModel == nil {
		return "", exceptions.ErrUserNotRegistered(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}
