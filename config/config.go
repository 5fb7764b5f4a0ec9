package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "5MB"
	defaultAvatarBatchSize    = 100
	defaultAvatarMaxEdge      = 512
	defaultFallbackPrice      = 60
	defaultSearchLimit        = 10
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
		FunctionsPort      int    `json:"functionsPort" yaml:"functionsPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	Spotify *SpotifyConfig `json:"spotify" yaml:"spotify"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Sentry is optional; an empty DSN disables error reporting.
	Sentry *SentryConfig `json:"sentry" yaml:"sentry"`

	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SupabaseConfig points at the hosted auth service and carries the secret its access tokens are signed with.
type SupabaseConfig struct {
	URL               string `json:"url" yaml:"url"`
	AnonKey           string `json:"anonKey" yaml:"anonKey"`
	ServiceRoleKey    string `json:"serviceRoleKey" yaml:"serviceRoleKey"`
	JWTSecret         string `json:"jwtSecret" yaml:"jwtSecret"`
	AccessCookieName  string `json:"accessCookieName" yaml:"accessCookieName"`
	RefreshCookieName string `json:"refreshCookieName" yaml:"refreshCookieName"`
	SiteURL           string `json:"siteUrl" yaml:"siteUrl"`
}

// StorageConfig configures the avatars bucket.
type StorageConfig struct {
	// AvatarBucketURL is a gocloud.dev blob URL, e.g. s3://avatars?endpoint=... or file:///tmp/avatars.
	AvatarBucketURL string `json:"avatarBucketUrl" yaml:"avatarBucketUrl"`
	// PublicBaseURL is the project URL public object links are built from.
	PublicBaseURL   string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	AvatarBatchSize int    `json:"avatarBatchSize" yaml:"avatarBatchSize"`
	AvatarMaxEdge   int    `json:"avatarMaxEdge" yaml:"avatarMaxEdge"`
}

// WebhookConfig configures HMAC verification of database webhooks.
type WebhookConfig struct {
	Secret                string `json:"secret" yaml:"secret"`
	HMACMessageHeaderName string `json:"hmacMessageHeaderName" yaml:"hmacMessageHeaderName"`
	SignatureHeaderName   string `json:"signatureHeaderName" yaml:"signatureHeaderName"`
}

type SpotifyConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	APIURL       string `json:"apiUrl" yaml:"apiUrl"`
	DefaultLimit int    `json:"defaultLimit" yaml:"defaultLimit"`
}

// MailConfig configures the transactional email API.
type MailConfig struct {
	APIURL  string `json:"apiUrl" yaml:"apiUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	From    string `json:"from" yaml:"from"`
	ReplyTo string `json:"replyTo" yaml:"replyTo"`
}

// PaymentConfig holds the bank account attendees transfer the fee to.
type PaymentConfig struct {
	FallbackPrice        float64 `json:"fallbackPrice" yaml:"fallbackPrice"`
	AccountHolder        string  `json:"accountHolder" yaml:"accountHolder"`
	IBAN                 string  `json:"iban" yaml:"iban"`
	BIC                  string  `json:"bic" yaml:"bic"`
	QRSize               int     `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string  `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type SentryConfig struct {
	DSN         string  `json:"dsn" yaml:"dsn"`
	Environment string  `json:"environment" yaml:"environment"`
	SampleRate  float64 `json:"sampleRate" yaml:"sampleRate"`
}

type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv reads <currEnv>.yaml from the first matching search path and applies env overrides.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SUPABASE_JWTSECRET -> supabase.jwtSecret, matched against the keys already loaded from yaml.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	if cfg.Supabase.AccessCookieName == "" {
		cfg.Supabase.AccessCookieName = "sb-access-token"
	}
	if cfg.Supabase.RefreshCookieName == "" {
		cfg.Supabase.RefreshCookieName = "sb-refresh-token"
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.AvatarBatchSize <= 0 {
		cfg.Storage.AvatarBatchSize = defaultAvatarBatchSize
	}
	if cfg.Storage.AvatarMaxEdge <= 0 {
		cfg.Storage.AvatarMaxEdge = defaultAvatarMaxEdge
	}
	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if cfg.Webhook.HMACMessageHeaderName == "" {
		cfg.Webhook.HMACMessageHeaderName = "x-supabase-hmac-message"
	}
	if cfg.Webhook.SignatureHeaderName == "" {
		cfg.Webhook.SignatureHeaderName = "x-supabase-signature"
	}
	if cfg.Spotify == nil {
		cfg.Spotify = &SpotifyConfig{}
	}
	if cfg.Spotify.DefaultLimit <= 0 {
		cfg.Spotify.DefaultLimit = defaultSearchLimit
	}
	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.FallbackPrice <= 0 {
		cfg.Payment.FallbackPrice = defaultFallbackPrice
	}
	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
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
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			normalized.WriteRune(unicode.ToLower(r))
		}
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{i}_{HOST,PORT,USERNAME,PASSWORD} until the first gap.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
