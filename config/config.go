package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gadgetshop/internal/domain/constants"

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
	defaultMaxRequestBodySize = "100KB"
	defaultDotEnvFile         = ".env"
	defaultPageSize           = 9
	defaultMaxPageSize        = 60
	defaultTokenTTL           = 10 * 24 * time.Hour
	defaultMongoTimeout       = 10 * time.Second
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// CORSOrigins lists the browser origins allowed to call the API. Empty allows any origin.
		CORSOrigins []string `json:"corsOrigins" yaml:"corsOrigins"`
	} `json:"http" yaml:"http"`

	// Worker configuration for the order worker push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Store StoreConfig `json:"store" yaml:"store"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// WorkerConfig defines the order worker HTTP server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// PushAudience is the expected audience of Google push OIDC tokens. Empty disables verification.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// StoreConfig selects the document store backend
type StoreConfig struct {
	// Driver is "mongo" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// MongoConfig defines the MongoDB connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	Username       string        `json:"username" yaml:"username"`
	Password       string        `json:"password" yaml:"password"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// AuthConfig controls issued access tokens
type AuthConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// DisableTokenIssue turns POST /jsonwebtoken off. Set it when the endpoint is
	// not behind an identity provider that has already verified the email.
	DisableTokenIssue bool `json:"disableTokenIssue" yaml:"disableTokenIssue"`
}

// CatalogConfig defines product listing defaults
type CatalogConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig selects where order.placed events go. An empty Provider
// disables publishing.
type PubSubConfig struct {
	Provider string `json:"provider" yaml:"provider"` // "local" or "google"

	// google
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// local: the worker's /push URL
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv reads <currEnv>.yaml, then layers .env and process environment
// variables on top. The working directory is always searched first.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	paths, err := searchPaths(configPath)
	if err != nil {
		return nil, err
	}

	configFile, ok := firstExisting(paths, currEnv+".yaml")
	if !ok {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Variables from a .env file never override the real environment
	if dotEnv, ok := firstExisting(paths, defaultDotEnvFile); ok {
		if err := godotenv.Load(dotEnv); err != nil {
			return nil, errors.Wrapf(err, "load %s failed", dotEnv)
		}
	}

	// MONGO_CONNECTTIMEOUT must land on mongo.connectTimeout, so env keys
	// are matched against what the YAML file already declared.
	declared := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, declared), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func searchPaths(extra []string) ([]string, error) {
	paths := []string{defaultPath}
	if len(extra) == 0 {
		return paths, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "os.Getwd")
	}
	for _, p := range extra {
		paths = append(paths, filepath.Join(pwd, p))
	}

	return paths, nil
}

func firstExisting(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// decoderConfig matches keys case-insensitively so env overrides bind
// regardless of how they were canonicalized.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.StoreDriverMongo
	}

	if cfg.Mongo != nil && cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = defaultMongoTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.DefaultPageSize <= 0 {
		cfg.Catalog.DefaultPageSize = defaultPageSize
	}
	if cfg.Catalog.MaxPageSize < cfg.Catalog.DefaultPageSize {
		cfg.Catalog.MaxPageSize = max(defaultMaxPageSize, cfg.Catalog.DefaultPageSize)
	}
}

// canonicalizeEnvKey turns MONGO_CONNECTTIMEOUT into mongo.connectTimeout by
// walking the keys already loaded from YAML. Unknown segments stay lowercase.
func canonicalizeEnvKey(rawKey string, declared map[string]any) string {
	var path []string
	level := declared

	for _, part := range strings.Split(strings.ToLower(rawKey), "_") {
		if part == "" {
			continue
		}

		key, child := lookupKey(level, part)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// lookupKey finds part among the keys of level, ignoring case and punctuation.
// It returns part itself and a nil level when nothing matches.
func lookupKey(level map[string]any, part string) (string, map[string]any) {
	want := foldKey(part)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return part, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
