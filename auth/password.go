package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash stored in place of the plaintext.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a candidate password against a stored hash. bcrypt's
// comparison is constant-time over the hash.
func CheckPassword(password string, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
