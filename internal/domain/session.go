package domain

import "net/http"

// SessionCredential is the service session cookie produced by one handshake.
type SessionCredential struct {
	Name  string
	Value string
}

func (c SessionCredential) Cookie() *http.Cookie {
	return &http.Cookie{Name: c.Name, Value: c.Value}
}
