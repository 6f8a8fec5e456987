package auth

import (
	"errors"
	"fmt"

	"github.com/jaipongz/site-backend/database"
	"github.com/jaipongz/site-backend/models"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so login responses cannot be used to enumerate admins.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the bcrypt comparison on the unknown-username path so both
// failure paths take comparable time. Hash of an unguessable random string.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Verifier validates admin credentials and issues session tokens.
type Verifier struct {
	admins    *database.AdminRepo
	secretKey []byte
}

func NewVerifier(admins *database.AdminRepo, secretKey []byte) Verifier {
	return Verifier{admins: admins, secretKey: secretKey}
}

// Authenticate checks the username/password pair and, on success, returns a
// signed session token together with the matched admin record.
func (v Verifier) Authenticate(username, password string) (string, *models.Admin, error) {
	admin, err := v.admins.FindByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("admin lookup: %w", err)
	}

	if admin == nil {
		CheckPassword(password, dummyHash)
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPassword(password, admin.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(admin.ID, admin.Username, v.secretKey, TokenValidity)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, admin, nil
}
