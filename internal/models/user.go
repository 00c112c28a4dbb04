package models

type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	PassHash []byte `json:"pass_hash"`
}

type contextKey string

const UserContextKey contextKey = "requester"
