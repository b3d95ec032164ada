package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Uday-Kumarr/clickncut-main/model"
	"github.com/Uday-Kumarr/clickncut-main/repository/localstore"
	jwtutil "github.com/Uday-Kumarr/clickncut-main/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken   ErrCode = "EMAIL_ALREADY_REGISTERED"
	ErrNoSession    ErrCode = "NO_SESSION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// The demo credential pair that works without any prior registration.
const (
	demoEmail    = "user@example.com"
	demoPassword = "password"
	demoUserID   = "demo1"
	demoUserName = "Demo User"
)

const tokenTTLHours = 24

type Repo interface {
	All(ctx context.Context) ([]model.User, error)
	Append(ctx context.Context, u model.User) error
	SaveSession(ctx context.Context, s model.Session) error
	Session(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type Service interface {
	// Login checks the registration list first, then the demo pair.
	Login(ctx context.Context, email, password string) (*model.Session, string, error)

	// Signup appends a registration record and logs the user in.
	Signup(ctx context.Context, name, email, password string) (*model.Session, string, error)

	// Logout drops the persisted session mirror.
	Logout(ctx context.Context, userID string) error

	Session(ctx context.Context, userID string) (*model.Session, error)

	// GuestSession issues an anonymous token so the cart works before
	// any login.
	GuestSession(ctx context.Context) (string, error)
}

type service struct {
	ur      Repo
	secret  string
	latency time.Duration
}

// New builds the mock auth service. latency emulates the network delay
// of a real auth backend; every credential operation waits it out.
func New(ur Repo, secret string, latency time.Duration) Service {
	return &service{ur: ur, secret: secret, latency: latency}
}

func (s *service) Login(ctx context.Context, email, password string) (*model.Session, string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	users, err := s.ur.All(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return s.establish(ctx, model.Session{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}

	if email == demoEmail && password == demoPassword {
		return s.establish(ctx, model.Session{ID: demoUserID, Name: demoUserName, Email: email})
	}

	return nil, "", makeErr(ErrInvalidCreds)
}

func (s *service) Signup(ctx context.Context, name, email, password string) (*model.Session, string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	users, err := s.ur.All(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, "", makeErr(ErrEmailTaken)
		}
	}

	nu := model.User{
		ID:       fmt.Sprintf("user%d", time.Now().UnixMilli()),
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.ur.Append(ctx, nu); err != nil {
		return nil, "", err
	}

	return s.establish(ctx, model.Session{ID: nu.ID, Name: nu.Name, Email: nu.Email})
}

func (s *service) Logout(ctx context.Context, userID string) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	return s.ur.DeleteSession(ctx, userID)
}

func (s *service) Session(ctx context.Context, userID string) (*model.Session, error) {
	sess, err := s.ur.Session(ctx, userID)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, makeErr(ErrNoSession)
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) GuestSession(ctx context.Context) (string, error) {
	id := "guest-" + uuid.NewString()
	return jwtutil.Issue(s.secret, id, "Guest", tokenTTLHours)
}

// establish persists the session mirror and signs a token for it.
func (s *service) establish(ctx context.Context, sess model.Session) (*model.Session, string, error) {
	if err := s.ur.SaveSession(ctx, sess); err != nil {
		return nil, "", err
	}
	tok, err := jwtutil.Issue(s.secret, sess.ID, sess.Name, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return &sess, tok, nil
}

func (s *service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
