package responses

type Health struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}
