package entities

type User struct {
	ID       string `db:"id"`
	Login    string `db:"login"`
	Name     string `db:"name"`
	PassHash []byte `db:"pass_hash"`
}
