// Package config holds the settings shared by the server and admin binaries.
// Values are read by ardanlabs/conf from flags and VIDEOS_* environment
// variables.
package config

import "time"

const Prefix = "VIDEOS"

type Config struct {
	Web  Web
	DB   DB
	Rate Rate
	Cors Cors
}

type Web struct {
	Address         string        `conf:"default:127.0.0.1:5000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
	// Debug turns on verbose text logging. Do not run with it in production.
	Debug bool `conf:"default:true"`
}

type DB struct {
	// Driver is one of memory, sqlite3 or postgres.
	Driver       string `conf:"default:sqlite3"`
	DSN          string `conf:"default:database.db,mask"`
	MaxIdleConns int    `conf:"default:2"`
	MaxOpenConns int    `conf:"default:0"`
	AutoMigrate  bool   `conf:"default:false"`
}

type Rate struct {
	Burst    int           `conf:"default:20"`
	Interval time.Duration `conf:"default:100ms"`
	Expiry   time.Duration `conf:"default:10m"`
}

type Cors struct {
	Origin string
}
