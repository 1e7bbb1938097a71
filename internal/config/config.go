package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr           string
	Store          string
	DBPath         string
	MongoURI       string
	MongoDatabase  string
	AdminEmail     string
	JWTSecret      string
	CORSOrigins    []string
	CookieSecure   bool
	LogPath        string
	UploadMaxBytes int64
}

// Load reads .env (if present), then the environment, then command-line
// flags. Later sources win.
func Load(args []string, stdout io.Writer) (*Config, error) {
	_ = godotenv.Load()

	maxBytes, err := getEnvInt("UPLOAD_MAX_BYTES", 5<<20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:           getEnv("ADDR", ":8080"),
		Store:          getEnv("STORE", StoreSQLite),
		DBPath:         getEnv("DB_PATH", "lostfound.sqlite3"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "lostfound"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		LogPath:        getEnv("LOG_PATH", ""),
		UploadMaxBytes: maxBytes,
	}
	cors := getEnv("CORS_ORIGIN", "")

	fs := flag.NewFlagSet("lostfound", flag.ContinueOnError)
	fs.SetOutput(stdout)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "")
	fs.StringVar(&cfg.AdminEmail, "admin", cfg.AdminEmail, "")
	fs.StringVar(&cors, "cors", cors, "")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")

	fs.Usage = func() {
		fmt.Fprint(stdout, `Usage: lostfound [flags]

Flags:
  -a, -addr <host:port>   listen address (env ADDR, default :8080)
      -store <name>       sqlite or mongo (env STORE, default sqlite)
  -d, -db <path>          SQLite database path (env DB_PATH, default lostfound.sqlite3)
      -mongo-uri <uri>    MongoDB connection string (env MONGODB_URI)
      -admin <email>      administrator email (env ADMIN_EMAIL)
      -cors <origins>     comma-separated allowed origins (env CORS_ORIGIN)
  -l, -log <path>         log file path (env LOG_PATH, default stdout/stderr only)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg.CORSOrigins = splitOrigins(cors)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite store requires a database path")
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return errors.New("mongo store requires MONGODB_URI")
		}
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreMongo)
	}
	if c.UploadMaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v == "true" || v == "1" || v == "yes"
}

func getEnvInt(key string, defaultValue int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
