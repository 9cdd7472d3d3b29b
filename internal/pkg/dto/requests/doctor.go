package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	// Image is an optional data-URI encoded picture uploaded to object storage.
	Image string `json:"image"`
}
