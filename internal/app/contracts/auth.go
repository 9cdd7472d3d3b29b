package contracts

import "context"

type AuthUsecase interface {
	// GetAccessToken signs a token for the email when a matching user exists.
	GetAccessToken(ctx context.Context, email string) (string, error)
}
