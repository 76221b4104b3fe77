package portal

import (
	"golang.org/x/crypto/bcrypt"
)

// Password wraps a bcrypt hash. Comparisons run through bcrypt and are
// therefore constant-time.
type Password struct {
	hash string
}

func NewPassword(plain string) (*Password, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Password{hash: string(hash)}, nil
}

func NewPasswordFromHash(hash string) *Password {
	return &Password{hash: hash}
}

func (p Password) Is(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

func (p Password) GetHash() string {
	return p.hash
}
