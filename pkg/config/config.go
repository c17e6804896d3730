package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fuentes del snapshot inicial.
const (
	SeedSourceFixture  = "fixture"
	SeedSourcePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
	Seed      SeedConfig
	DB        DBConfig
	Auth      AuthConfig
	Docs      DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig parámetros de las vistas y de la regla de alertas.
type InventoryConfig struct {
	SubmitDelay     time.Duration // espera simulada antes de aplicar altas
	AlertExpiryDays int           // ventana de "próximo al vencimiento"
}

// SeedConfig origen del snapshot inicial.
type SeedConfig struct {
	Source string // fixture | postgres
	File   string // opcional: reemplaza el fixture embebido
}

// DBConfig configuración de PostgreSQL (solo para SEED_SOURCE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AuthConfig token de operador. Secret vacío = rutas abiertas.
type AuthConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// Enabled indica si las mutaciones requieren Bearer token.
func (c AuthConfig) Enabled() bool { return c.Secret != "" }

// DocsConfig Swagger UI.
type DocsConfig struct {
	Enabled bool
	Path    string // ruta al swagger.json
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	delay, err := getDuration(v, "SUBMIT_DELAY", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "estoque-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Inventory: InventoryConfig{
			SubmitDelay:     delay,
			AlertExpiryDays: getInt(v, "ALERT_EXPIRY_DAYS", 30),
		},
		Seed: SeedConfig{
			Source: strings.ToLower(getString(v, "SEED_SOURCE", SeedSourceFixture)),
			File:   getString(v, "SEED_FILE", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "estoque"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Secret:     getString(v, "AUTH_SECRET", ""),
			Issuer:     getString(v, "AUTH_ISSUER", "estoque-api"),
			Expiration: getInt(v, "AUTH_EXPIRATION_MINUTES", 480),
		},
		Docs: DocsConfig{
			Enabled: getBool(v, "DOCS_ENABLED", false),
			Path:    getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	switch cfg.Seed.Source {
	case SeedSourceFixture, SeedSourcePostgres:
	default:
		return nil, fmt.Errorf("SEED_SOURCE inválido %q (fixture|postgres)", cfg.Seed.Source)
	}
	if cfg.Inventory.SubmitDelay < 0 {
		return nil, fmt.Errorf("SUBMIT_DELAY no puede ser negativo")
	}
	if cfg.Inventory.AlertExpiryDays < 0 {
		return nil, fmt.Errorf("ALERT_EXPIRY_DAYS no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// getDuration acepta "750ms", "1s" o un entero en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s inválido %q: %w", key, raw, err)
	}
	return d, nil
}
