package db

import (
	"crypto/rand"
	"database/sql"
)

// Session wraps a database handle; every operation runs in its own
// transaction.
type Session struct {
	db *sql.DB
}

func NewSession(db *sql.DB) *Session {
	return &Session{db: db}
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// randId makes a short random identifier for a new game.
func randId(n int) string {
	rbytes := make([]byte, n)
	if _, err := rand.Read(rbytes); err != nil {
		panic("rand")
	}

	b := make([]rune, n)
	for i := range b {
		b[i] = letters[int(rbytes[i])%len(letters)]
	}
	return string(b)
}
