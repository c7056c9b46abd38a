package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidQuoteToken marks a bad signature, expired token or missing
// claims; handlers answer 401.
var ErrInvalidQuoteToken = errors.New("invalid or expired quote token")

// QuoteInviteClaims is the payload of a signed quote invite. The BRFQ and
// supplier references travel inside the token so the submitting party cannot
// pick its own targets.
type QuoteInviteClaims struct {
	RFQID      string `json:"rfq_id"`
	SupplierID string `json:"supplier_id"`
	jwt.RegisteredClaims
}

// SignQuoteInvite issues an HS256 invite token for one supplier on one BRFQ.
func SignQuoteInvite(rfqID, supplierID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	claims := QuoteInviteClaims{
		RFQID:      rfqID,
		SupplierID: supplierID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseQuoteInvite verifies an invite token and returns its claims.
func ParseQuoteInvite(tokenString string) (*QuoteInviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &QuoteInviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidQuoteToken
	}

	claims, ok := token.Claims.(*QuoteInviteClaims)
	if !ok || claims.RFQID == "" || claims.SupplierID == "" {
		return nil, ErrInvalidQuoteToken
	}
	return claims, nil
}
