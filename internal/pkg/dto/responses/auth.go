package responses

// AccessToken is the bare token issuance body; an empty token accompanies a
// 403 for unregistered emails.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

type AdminCheck struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
