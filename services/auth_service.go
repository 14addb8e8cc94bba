package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"worker-management/constants"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenAuthDisabled = errors.New("token authentication is disabled")

// Identity リクエストの呼び出し元。トークンがない場合は匿名ロールになる
type Identity struct {
	UserID        int
	Email         string
	Role          string
	Authenticated bool
}

func (i *Identity) HasRole(roles ...string) bool {
	role := strings.TrimSpace(strings.ToUpper(i.Role))
	for _, allowed := range roles {
		if role == strings.TrimSpace(strings.ToUpper(allowed)) {
			return true
		}
	}
	return false
}

func (i *Identity) IsAdmin() bool {
	return i.HasRole(constants.RoleAdmin)
}

type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type IAuthService interface {
	Authenticate(tokenString string) (*Identity, error)
	Anonymous() *Identity
}

type AuthService struct {
	secretKey     []byte
	anonymousRole string
}

func NewAuthService(secretKey string, anonymousRole string) IAuthService {
	return &AuthService{
		secretKey:     []byte(secretKey),
		anonymousRole: anonymousRole,
	}
}

func (s *AuthService) Anonymous() *Identity {
	return &Identity{Role: s.anonymousRole}
}

func (s *AuthService) Authenticate(tokenString string) (*Identity, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrTokenAuthDisabled
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Role == "" {
		return nil, errors.New("token has no role claim")
	}

	identity := &Identity{
		Email:         claims.Email,
		Role:          strings.ToUpper(claims.Role),
		Authenticated: true,
	}
	if claims.Subject != "" {
		if id, err := strconv.Atoi(claims.Subject); err == nil {
			identity.UserID = id
		}
	}
	return identity, nil
}

// CreateToken 開発・運用向けにロール付きのトークンを発行する
func CreateToken(secretKey string, userID int, email string, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  strings.ToUpper(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
