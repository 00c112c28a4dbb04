package dto

type CountResponse struct {
	Count int `json:"count"`
}
