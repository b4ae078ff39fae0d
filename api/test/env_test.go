package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/irsalhamdi/video-catalog/api"
	"github.com/irsalhamdi/video-catalog/config"
	"github.com/irsalhamdi/video-catalog/core/video"
	"github.com/irsalhamdi/video-catalog/database"
	"github.com/irsalhamdi/video-catalog/rate"
	"github.com/sirupsen/logrus"
)

type TestEnv struct {
	*httptest.Server
	Store video.Storer
}

type envOpt func(*api.APIConfig)

func withLimiter(l *rate.Limiter) envOpt {
	return func(c *api.APIConfig) { c.Limiter = l }
}

func withCors(origin string) envOpt {
	return func(c *api.APIConfig) { c.CorsOrigin = origin }
}

// NewTestEnv serves the api over a fresh sqlite file named after the test.
func NewTestEnv(t *testing.T, name string, opts ...envOpt) (*TestEnv, error) {
	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("%s-%s.db", name, uuid.NewString()))

	db, err := database.Open(config.DB{
		Driver:       database.DriverSQLite,
		DSN:          dsn,
		MaxIdleConns: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating db: %w", err)
	}

	return newEnv(t, video.NewSQLStore(db), opts...), nil
}

func NewMemoryTestEnv(t *testing.T, opts ...envOpt) *TestEnv {
	return newEnv(t, video.NewMemoryStore(), opts...)
}

func newEnv(t *testing.T, store video.Storer, opts ...envOpt) *TestEnv {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := api.APIConfig{
		Log:   log,
		Store: store,
	}
	for _, o := range opts {
		o(&cfg)
	}

	srv := httptest.NewServer(api.APIMux(cfg))
	t.Cleanup(srv.Close)

	return &TestEnv{Server: srv, Store: store}
}

// do sends body as JSON when it is not nil and decodes the answer into out
// when out is not nil.
func (env *TestEnv) do(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, env.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}

	w, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s %s: %v", method, path, err)
		}
	}

	return w
}
