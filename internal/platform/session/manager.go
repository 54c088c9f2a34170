package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

const userIDKey = "user_id"

type Config struct {
	Name   string
	Secret string
	MaxAge int
	Secure bool
}

// NewStore returns a Redis-backed store when a client is given and a signed
// cookie store otherwise.
func NewStore(cfg Config, rdb goredis.UniversalClient) sessions.Store {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if rdb != nil {
		return NewRedisStore(rdb, "careerhub:session:", opts, []byte(cfg.Secret))
	}
	cs := sessions.NewCookieStore([]byte(cfg.Secret))
	cs.Options = &opts
	cs.MaxAge(cfg.MaxAge)
	return cs
}

// Manager reads and writes the authenticated user id on the session cookie.
type Manager struct {
	store sessions.Store
	name  string
	log   *logger.Logger
}

func NewManager(log *logger.Logger, store sessions.Store, name string) *Manager {
	if strings.TrimSpace(name) == "" {
		name = "careerhub.sid"
	}
	return &Manager{store: store, name: name, log: log.With("component", "SessionManager")}
}

// UserID returns the user stored on the session, or uuid.Nil when there is none.
func (m *Manager) UserID(r *http.Request) (uuid.UUID, string, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if sess == nil {
			return uuid.Nil, "", err
		}
		// undecodable cookie (tampered, foreign, or signed with a rotated secret)
		m.log.Debug("Treating unreadable session as anonymous", "error", err)
		return uuid.Nil, "", nil
	}
	raw, ok := sess.Values[userIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, sess.ID, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		m.log.Warn("Discarding malformed session user id", "session_id", sess.ID)
		return uuid.Nil, sess.ID, nil
	}
	return id, sess.ID, nil
}

// Login binds userID to a fresh session.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// unreadable server-side state; issue a new session anyway
		sess, err = m.store.New(r, m.name)
		if sess == nil {
			return fmt.Errorf("new session: %w", err)
		}
	}
	if !sess.IsNew && sess.ID != "" {
		old := *sess.Options
		sess.Options.MaxAge = -1
		if err := sess.Save(r, w); err != nil {
			m.log.Warn("Failed to drop previous session", "error", err)
		}
		sess.Options = &old
		sess.ID = ""
	}
	sess.Values = map[interface{}]interface{}{userIDKey: userID.String()}
	return sess.Save(r, w)
}

// Destroy removes the session from the store and expires the cookie. An
// unreadable cookie is still expired; there is no server-side state to drop.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if sess == nil {
			return err
		}
		m.log.Debug("Expiring unreadable session cookie", "error", err)
		sess.ID = ""
	}
	if sess.Options == nil {
		sess.Options = &sessions.Options{Path: "/"}
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
