package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/tesso57/sanita/internal/domain/account"
)

var (
	ErrEmptyEmail    = errors.New("email is empty")
	ErrEmptyPassword = errors.New("password is empty")
)

// AccountService performs the login call.
type AccountService struct {
	API AccountAPI
}

// NewAccountService constructs an AccountService.
func NewAccountService(api AccountAPI) *AccountService {
	return new(AccountService{API: api})
}

// Login validates credentials locally and sends them to the server.
// A rejected login is returned as an error carrying the server message.
func (s *AccountService) Login(ctx context.Context, email, password string) (account.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return account.Session{}, ErrEmptyEmail
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return account.Session{}, errors.New("email contains whitespace")
	}
	if password == "" {
		return account.Session{}, ErrEmptyPassword
	}
	session, err := s.API.Login(ctx, email, password)
	if err != nil {
		return account.Session{}, err
	}
	if !session.Authenticated() {
		msg := strings.TrimSpace(session.Message)
		if msg == "" {
			msg = "login rejected"
		}
		return session, errors.New(msg)
	}
	return session, nil
}
