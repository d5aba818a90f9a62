package credentials

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements ports.PasswordHasher with salted bcrypt digests.
// Cost 0 falls back to bcrypt.DefaultCost; tests lower it to bcrypt.MinCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
