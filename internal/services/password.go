package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost keeps verification well under a second on a laptop.
	DefaultBcryptCost = 12
	// MaxBcryptCost bounds login latency.
	MaxBcryptCost = 14
)

// PasswordHasher hashes passwords and checks them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash. A mismatch is not an
	// error; an error means the hash itself could not be used.
	Compare(hash, password string) (bool, error)
}

// BcryptHasher is a PasswordHasher using bcrypt with a fixed cost.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost. Zero selects
// DefaultBcryptCost; values outside [bcrypt.MinCost, MaxBcryptCost] are
// rejected.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost || cost > MaxBcryptCost {
		return nil, fmt.Errorf("%w: bcrypt cost must be between %d and %d, got %d",
			common.ErrValidation, bcrypt.MinCost, MaxBcryptCost, cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash returns a freshly salted bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stored hash unusable: %w", common.ErrInternal, err)
	}
}
