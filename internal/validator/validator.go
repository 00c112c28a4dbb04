package validator

import "unicode"

const (
	minLoginLen    = 3
	maxLoginLen    = 64
	minPasswordLen = 8
	maxNameLen     = 128
)

func IsValidLogin(login string) bool {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return false
	}

	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}

	return true
}

func IsValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}

func IsValidName(name string) bool {
	return name != "" && len(name) <= maxNameLen
}
