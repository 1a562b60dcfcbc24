package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlaceholder = "placeholder"
	SchemeBcrypt      = "bcrypt"
)

var ErrUnknownScheme = errors.New("unknown password hasher")

// Hasher turns a plain password into its stored form
type Hasher interface {
	Hash(plain string) (string, error)
}

// New returns the hasher registered under scheme
func New(scheme string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemePlaceholder:
		return Placeholder{}, nil
	case SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Placeholder stores "hashed_<password>". It is not a real hash and exists
// to keep the demo data format.
type Placeholder struct{}

func (Placeholder) Hash(plain string) (string, error) {
	return "hashed_" + plain, nil
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
