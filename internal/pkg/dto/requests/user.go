package requests

type CreateUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}
