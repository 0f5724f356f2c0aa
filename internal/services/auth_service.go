package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"llantera/internal/domain"
	"llantera/internal/repos"
)

var ErrBadCreds = errors.New("invalid email or password")

// dummy hash compared when the email is unknown, so a failed login costs
// one bcrypt round whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("llantera-no-such-account"), bcrypt.DefaultCost)

type AuthService struct {
	Users *repos.UserRepo
}

// Login checks the credentials and binds the session cookie's sid to the
// account. Every credential failure answers ErrBadCreds; the caller never
// learns which part was wrong.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, fmt.Errorf("binding session: %w", err)
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
