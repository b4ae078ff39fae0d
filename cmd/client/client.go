// Client walks a running server through the catalog life cycle and logs
// every answer.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/irsalhamdi/video-catalog/config"
	"github.com/sirupsen/logrus"
)

type client struct {
	base string
	http *http.Client
	log  logrus.FieldLogger
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger) error {
	cfg := struct {
		conf.Version
		Base    string        `conf:"default:http://127.0.0.1:5000/"`
		Timeout time.Duration `conf:"default:5s"`
		ID      int64         `conf:"default:1"`
	}{
		Version: conf.Version{
			Desc: "video catalog client",
		},
	}

	help, err := conf.Parse(config.Prefix+"_CLIENT", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	c := client{
		base: strings.TrimSuffix(cfg.Base, "/"),
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}

	ctx := context.Background()
	path := fmt.Sprintf("/video/%d", cfg.ID)
	clip := map[string]any{"name": "clip", "views": 10, "likes": 2}

	steps := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/helloworld/bob", nil},
		{http.MethodGet, "/helloworld/bob/7", nil},
		{http.MethodPut, path, clip},
		{http.MethodGet, path, nil},
		{http.MethodPut, path, clip},
		{http.MethodDelete, path, nil},
		{http.MethodGet, path, nil},
	}

	for _, s := range steps {
		if err := c.do(ctx, s.method, s.path, s.body); err != nil {
			return err
		}
	}

	return nil
}

func (c client) do(ctx context.Context, method, path string, body any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response of %s %s: %w", method, path, err)
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
		"req_id": resp.Header.Get("X-Request-Id"),
	}).Info(strings.TrimSpace(string(b)))

	return nil
}
