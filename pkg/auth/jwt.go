package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const inviteIssuer = "paytrace"

var (
	ErrNoSecret     = errors.New("invite secret is not configured")
	ErrInvalidToken = errors.New("invalid token")
)

// InviteClaims authorize one reviewer to review the counterparty of one schedule.
type InviteClaims struct {
	ScheduleID string `json:"schedule_id"`
	ReviewerID string `json:"reviewer_id"`
	jwt.StandardClaims
}

type InviteService struct {
	secret []byte
	ttl    time.Duration
}

func NewInviteService(secret string, ttl time.Duration) *InviteService {
	return &InviteService{secret: []byte(secret), ttl: ttl}
}

func (s *InviteService) Issue(scheduleID, reviewerID string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrNoSecret
	}
	expiresAt := time.Now().Add(s.ttl)
	claims := InviteClaims{
		ScheduleID: scheduleID,
		ReviewerID: reviewerID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    inviteIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *InviteService) Parse(tokenString string) (*InviteClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*InviteClaims)
	if !ok || claims.ScheduleID == "" || claims.ReviewerID == "" || claims.Issuer != inviteIssuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
