package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/xid"
)

// ID is the opaque account identifier, stored as the document _id.
type ID string

// Account types.
const (
	TypeJobSeeker = "job_seeker"
	TypeRecruiter = "recruiter"
)

// Account represents one registered person, laid out exactly as the
// users collection stores it. Password holds the bcrypt hash, never
// the raw password.
type Account struct {
	ID        ID        `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	FullName  string    `bson:"fullName"`
	UserType  string    `bson:"userType"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Expected failures. The strings double as the wire messages.
var (
	ErrMissingRegisterFields = errors.New("Username, email, and password are required") // 400
	ErrMissingLoginFields    = errors.New("Username and password are required")         // 400
	ErrDuplicateAccount      = errors.New("Username or email already exists")           // 400
	ErrInvalidCredentials    = errors.New("Invalid username or password")               // 401
	ErrNotFound              = errors.New("account not found")
)

// NewAccount builds an unsaved account with the userType defaulted.
func NewAccount(username, email, fullName, userType string) *Account {
	if userType == "" {
		userType = TypeJobSeeker
	}
	return &Account{Username: username, Email: email, FullName: fullName, UserType: userType}
}

func NewID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	_, err := xid.FromString(id)
	return err == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
