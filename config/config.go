package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultEnvFile            = ".env.local"
	defaultMaxRequestBodySize = "100KB"
	defaultDatabasePath       = "site.db"
	defaultSessionCookieName  = "meuapp_session"
	defaultFlashCookieName    = "meuapp_flash"
	defaultSessionTTL         = 24 * time.Hour
	defaultRememberTTL        = 30 * 24 * time.Hour

	// EnvProduction is the env.env value that turns on strict validation.
	EnvProduction = "production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// SecureCookies marks session, flash and CSRF cookies as HTTPS-only.
		SecureCookies bool `json:"secureCookies" yaml:"secureCookies"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
		Flash   string `json:"flash" yaml:"flash"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Session *SessionConfig `json:"session" yaml:"session"`
}

// DatabaseConfig points at the single SQLite file holding all persisted state.
type DatabaseConfig struct {
	Path         string `json:"path" yaml:"path"`
	MaxOpenConns int    `json:"maxOpenConns" yaml:"maxOpenConns"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// SessionConfig controls the session cookie and token lifetimes.
type SessionConfig struct {
	CookieName      string        `json:"cookieName" yaml:"cookieName"`
	FlashCookieName string        `json:"flashCookieName" yaml:"flashCookieName"`
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	RememberTTL     time.Duration `json:"rememberTtl" yaml:"rememberTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the YAML values.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SECRETKEY_SESSION -> secretKey.session (aligned with the YAML casing)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	loadEnvFile(defaultEnvFile)

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile reads name from the working directory, falling back to its parent.
// A missing file is not an error; variables already set in the process win.
func loadEnvFile(name string) {
	if err := godotenv.Load(name); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, name))
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = defaultDatabasePath
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookieName
	}
	if c.Session.FlashCookieName == "" {
		c.Session.FlashCookieName = defaultFlashCookieName
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.Session.RememberTTL <= 0 {
		c.Session.RememberTTL = defaultRememberTTL
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Session != nil && c.Session.RememberTTL < c.Session.TTL {
		return errors.New("session.rememberTtl must not be shorter than session.ttl")
	}

	if c.Env.Env != EnvProduction {
		return nil
	}

	if c.SecretKey.Session == "" {
		return errors.New("SECRETKEY_SESSION is required in production")
	}
	if c.SecretKey.Flash == "" {
		return errors.New("SECRETKEY_FLASH is required in production")
	}
	if !c.HTTP.SecureCookies {
		return errors.New("http.secureCookies must be enabled in production")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
