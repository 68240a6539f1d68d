package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendScylla   = "scylla"
	BackendMemory   = "memory"
)

type Config struct {
	HTTPAddr         string
	DatabaseURL      string
	MigrationsPath   string
	EntitiesFile     string
	DefaultLocale    string
	SupportedLocales []string
	AutoTranslate    bool
	StoreBackend     string
	ScyllaHosts      []string
	ScyllaKeyspace   string
	RedisAddr        string
	RedisPrefix      string
	RedisTTL         time.Duration
	KafkaBrokers     string
	KafkaTopic       string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   getenv("MIGRATIONS_PATH", "migrations"),
		EntitiesFile:     getenv("ENTITIES_FILE", "entities.toml"),
		DefaultLocale:    getenv("DEFAULT_LOCALE", "fr"),
		SupportedLocales: splitList(getenv("SUPPORTED_LOCALES", "fr,en")),
		AutoTranslate:    getenvBool("AUTO_TRANSLATE", true),
		StoreBackend:     getenv("STORE_BACKEND", BackendPostgres),
		ScyllaHosts:      splitList(os.Getenv("SCYLLA_HOSTS")),
		ScyllaKeyspace:   getenv("SCYLLA_KEYSPACE", "translations"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPrefix:      getenv("REDIS_PREFIX", "trans:"),
		RedisTTL:         time.Duration(getenvInt("REDIS_TTL_SECONDS", 300)) * time.Second,
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:       getenv("KAFKA_TOPIC", "translation_updates"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.EntitiesFile) == "" {
		return fmt.Errorf("config: ENTITIES_FILE est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		return fmt.Errorf("config: DEFAULT_LOCALE est requis et ne peut pas être vide")
	}

	if len(c.SupportedLocales) == 0 {
		return fmt.Errorf("config: SUPPORTED_LOCALES doit déclarer au moins une locale")
	}
	if c.SupportedLocales[0] != c.DefaultLocale {
		// La première locale supportée sert de repli : elle doit être la locale par défaut.
		return fmt.Errorf("config: SUPPORTED_LOCALES doit commencer par DEFAULT_LOCALE (%q)", c.DefaultLocale)
	}

	switch c.StoreBackend {
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/translatable?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	case BackendScylla:
		if len(c.ScyllaHosts) == 0 {
			return fmt.Errorf("config: SCYLLA_HOSTS est requis avec STORE_BACKEND=scylla")
		}
	case BackendMemory:
		// Aucune dépendance externe.
	default:
		return fmt.Errorf("config: STORE_BACKEND inconnu (%q)", c.StoreBackend)
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
