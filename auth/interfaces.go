package auth

import "context"

type Service interface {
	Register(ctx context.Context, req registerRequest) (ID, error)
	Login(ctx context.Context, req loginRequest) (*Profile, error)
}

// Events is notified of account activity. The prometheus
// implementation lives in metrics.go; tests use a spy.
type Events interface {
	AccountCreated(id ID, userType string)
	LoginAttempted(ok bool)
}

// Repository is the account store. Store must reject an account whose
// username or email is already present with ErrDuplicateAccount.
type Repository interface {
	FindByID(ctx context.Context, id ID) (*Account, error)
	FindByName(ctx context.Context, username string) (*Account, error)
	FindByNameOrEmail(ctx context.Context, username, email string) (*Account, error)
	Store(ctx context.Context, acc *Account) error
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	UserType string `json:"userType"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Profile is the public view of an account returned on login.
type Profile struct {
	ID       ID     `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	UserType string `json:"userType"`
}
