package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

// TableTokenService signs short-lived access tokens for a table: a
// spectate token grants read-only access to a running match's public
// state, a rejoin token lets a disconnected player reclaim their seat.
// Verification happens wherever the token is presented; the claims carry
// everything needed to scope the grant.
type TableTokenService struct {
	secret string
	issuer string
}

const (
	TableTokenActionSpectate = "spectate"
	TableTokenActionRejoin   = "rejoin"

	tableTokenTTL = time.Hour
)

func NewTableTokenService(secret, issuer string) *TableTokenService {
	return &TableTokenService{secret: secret, issuer: issuer}
}

// GenerateToken signs a token for the given user, action and match. A
// rejoin token additionally pins the seat being reclaimed.
func (s *TableTokenService) GenerateToken(user, action, matchID string, seat int) (string, error) {
	if s == nil {
		return "", fmt.Errorf("table token service is nil")
	}
	if user == "" {
		return "", fmt.Errorf("user is required")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("table token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": user,
		"exp": time.Now().Add(tableTokenTTL).Unix(),
		"jti": uuid.NewString(),
		"act": action,
		"mid": matchID,
	}

	switch action {
	case TableTokenActionSpectate:
		// Spectators have no seat.
	case TableTokenActionRejoin:
		if seat < 0 || seat >= PlayersPerTable {
			return "", fmt.Errorf("rejoin token needs a valid seat, got %d", seat)
		}
		claims["seat"] = seat
	default:
		return "", fmt.Errorf("unsupported table token action: %s", action)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken parses and validates a token, returning its claims.
func (s *TableTokenService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid table token")
	}
	return claims, nil
}
