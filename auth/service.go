package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type service struct {
	accounts Repository
	events   Events
}

func NewService(accounts Repository, events Events) Service {
	return &service{accounts: accounts, events: events}
}

func (svc *service) Register(ctx context.Context, req registerRequest) (ID, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", ErrMissingRegisterFields
	}

	existing, err := svc.accounts.FindByNameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("checking existing account: %w", err)
	}
	if existing != nil {
		return "", ErrDuplicateAccount
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	acc := NewAccount(req.Username, req.Email, req.FullName, req.UserType)
	acc.ID = NewID()
	acc.Password = hash
	acc.CreatedAt = time.Now().UTC()

	// Two racing registrations can both pass the check above; the
	// store's unique indexes break the tie and the loser surfaces as
	// the same duplicate error.
	if err := svc.accounts.Store(ctx, acc); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return "", ErrDuplicateAccount
		}
		return "", fmt.Errorf("saving account: %w", err)
	}

	svc.events.AccountCreated(acc.ID, acc.UserType)
	return acc.ID, nil
}

func (svc *service) Login(ctx context.Context, req loginRequest) (*Profile, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingLoginFields
	}

	acc, err := svc.accounts.FindByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same error as a wrong password so callers can't probe
			// for existing usernames.
			svc.events.LoginAttempted(false)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if !hashMatchesPassword(acc.Password, req.Password) {
		svc.events.LoginAttempted(false)
		return nil, ErrInvalidCredentials
	}

	svc.events.LoginAttempted(true)
	return &Profile{
		ID:       acc.ID,
		Username: acc.Username,
		Email:    acc.Email,
		FullName: acc.FullName,
		UserType: acc.UserType,
	}, nil
}
