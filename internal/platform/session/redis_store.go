package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisTTL = 24 * time.Hour

// RedisStore keeps session values server-side in Redis. The cookie only
// carries the signed session id.
type RedisStore struct {
	client     goredis.UniversalClient
	codecs     []securecookie.Codec
	options    *sessions.Options
	prefix     string
	serializer securecookie.GobEncoder
}

var _ sessions.Store = (*RedisStore)(nil)

func NewRedisStore(client goredis.UniversalClient, prefix string, opts sessions.Options, keyPairs ...[]byte) *RedisStore {
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok && opts.MaxAge > 0 {
			sc.MaxAge(opts.MaxAge)
		}
	}
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisStore{
		client:  client,
		codecs:  codecs,
		options: &opts,
		prefix:  prefix,
	}
}

func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := *s.options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &sess.ID, s.codecs...); err != nil {
		// tampered or expired cookie: start over
		sess.ID = ""
		return sess, nil
	}
	found, err := s.load(r.Context(), sess)
	if err != nil {
		return sess, err
	}
	if !found {
		sess.ID = ""
		return sess, nil
	}
	sess.IsNew = false
	return sess, nil
}

func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	ctx := r.Context()
	if sess.Options != nil && sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.client.Del(ctx, s.key(sess.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	raw, err := s.serializer.Serialize(sess.Values)
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, s.ttl(sess)).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

func (s *RedisStore) load(ctx context.Context, sess *sessions.Session) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(sess.ID)).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if err := s.serializer.Deserialize(raw, &sess.Values); err != nil {
		return false, fmt.Errorf("decode session: %w", err)
	}
	return true, nil
}

func (s *RedisStore) ttl(sess *sessions.Session) time.Duration {
	if sess.Options != nil && sess.Options.MaxAge > 0 {
		return time.Duration(sess.Options.MaxAge) * time.Second
	}
	return defaultRedisTTL
}

func (s *RedisStore) key(id string) string { return s.prefix + id }
