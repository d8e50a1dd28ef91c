package opensearch

import (
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/pkg/logger"
)

// Credential is a basic-auth username and password pair.
// It is immutable and applies to every request, regardless of host or realm.
type Credential struct {
	username string
	password string
}

// NewCredential returns a credential only when both values are non-blank.
// Setting just one of them is logged as a warning and yields nil, so the
// client runs without authentication. A nil log uses slog.Default.
func NewCredential(username, password string, log *slog.Logger) *Credential {
	if log == nil {
		log = slog.Default()
	}

	userSet, passSet := !isBlank(username), !isBlank(password)
	switch {
	case userSet && passSet:
		return &Credential{username: username, password: password}
	case userSet:
		log.Warn("OpenSearch username set without password, authentication disabled",
			logger.Username(username))
	case passSet:
		log.Warn("OpenSearch password set without username, authentication disabled")
	}
	return nil
}

func (c *Credential) Username() string { return c.username }

func (c *Credential) Password() string { return c.password }

// String never includes the password.
func (c *Credential) String() string {
	if c == nil {
		return "<none>"
	}
	return c.username + ":********"
}

// apply sets the credential as the transport default. Safe on nil.
func (c *Credential) apply(cfg *opensearch.Config) {
	if c == nil {
		return
	}
	cfg.Username = c.username
	cfg.Password = c.password
}
