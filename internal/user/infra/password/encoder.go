package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/media-service/internal/user/app/encoding"
)

const DefaultCost = 10

type encoder struct {
	cost int
}

func NewEncoder(cost int) encoding.PasswordEncoder {
	if cost == 0 {
		cost = DefaultCost
	}

	return encoder{cost: cost}
}

func (e encoder) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (e encoder) CompareHash(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
