package services

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/server/models"
)

// Token is the document handed to clients after login. It carries no
// secret beyond the random session id; the session store is authoritative.
type Token struct {
	SessionID string `json:"sid"`
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

// EncodeToken renders s as a compact JSON token.
func EncodeToken(s models.Session) string {
	b, _ := json.Marshal(Token{SessionID: s.ID, Subject: s.UserID, ExpiresAt: s.ExpiresAt.Unix()})
	return string(b)
}

// ParseToken decodes a token produced by EncodeToken.
func ParseToken(raw string) (Token, error) {
	var t Token
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Token{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if t.SessionID == "" {
		return Token{}, fmt.Errorf("%w: missing session id", common.ErrInvalidToken)
	}
	return t, nil
}
