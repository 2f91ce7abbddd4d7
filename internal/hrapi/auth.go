package hrapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aerohr/console/pkg/utils"
)

// UserSession is the user data carried in a token.
type UserSession struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims represents JWT claims
type Claims struct {
	User UserSession `json:"user"`
	jwt.RegisteredClaims
}

// Authenticator issues and validates HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator creates an Authenticator. Tokens live for 24 hours.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: 24 * time.Hour, now: time.Now}
}

// GenerateToken creates a JWT token for a user session
func (a *Authenticator) GenerateToken(session UserSession) (string, error) {
	now := a.now()
	claims := &Claims{
		User: session,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        utils.GenerateID(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken validates and parses a JWT token
func (a *Authenticator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type userEntry struct {
	session UserSession
	hash    string
}

// UserDirectory maps login emails to credentials.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]userEntry
}

// NewUserDirectory creates an empty directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{users: make(map[string]userEntry)}
}

// Add registers a user with a plain password, hashing it.
func (d *UserDirectory) Add(session UserSession, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = utils.GenerateID()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[strings.ToLower(session.Email)] = userEntry{session: session, hash: hash}
	return nil
}

// Authenticate returns the session for valid credentials.
func (d *UserDirectory) Authenticate(email, password string) (UserSession, bool) {
	d.mu.RLock()
	entry, ok := d.users[strings.ToLower(strings.TrimSpace(email))]
	d.mu.RUnlock()
	if !ok || !VerifyPassword(password, entry.hash) {
		return UserSession{}, false
	}
	return entry.session, true
}
