package config

import (
	"encoding/json"
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
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 10 * time.Second
	defaultLeaseTTL           = 30 * time.Second
	defaultAssetMaxBytes      = 5 << 20
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Wallet configuration for Google and Apple passes
	Wallet WalletConfig `json:"wallet" yaml:"wallet"`

	// Storage configuration for hosted strip images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Assets configuration for image downloads and fallbacks
	Assets AssetsConfig `json:"assets" yaml:"assets"`

	// Redis configuration for the first-link lease
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for save-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for sync trigger publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// File enables a rotated log file next to stdout
	File *LogFileConfig `json:"file" yaml:"file"`
}

// LogFileConfig defines rotation for the optional log file
type LogFileConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// WalletConfig groups the wallet providers
type WalletConfig struct {
	Google GoogleWalletConfig `json:"google" yaml:"google"`
	Apple  AppleWalletConfig  `json:"apple" yaml:"apple"`
}

// GoogleWalletConfig defines the Google Wallet issuer account
type GoogleWalletConfig struct {
	Enabled             bool     `json:"enabled" yaml:"enabled"`
	IssuerID            string   `json:"issuerId" yaml:"issuerId"`
	ServiceAccountEmail string   `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
	PrivateKey          string   `json:"privateKey" yaml:"privateKey"`
	CredentialsPath     string   `json:"credentialsPath" yaml:"credentialsPath"`
	Origins             []string `json:"origins" yaml:"origins"`

	// APIBaseURL and TokenURL are overridden in tests
	APIBaseURL     string        `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	TokenURL       string        `json:"tokenUrl" yaml:"tokenUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// AppleWalletConfig defines the Apple pass identity
type AppleWalletConfig struct {
	PassTypeIdentifier string `json:"passTypeIdentifier" yaml:"passTypeIdentifier"`
	TeamIdentifier     string `json:"teamIdentifier" yaml:"teamIdentifier"`
	OrganizationName   string `json:"organizationName" yaml:"organizationName"`
}

// StorageConfig defines the blob bucket hosting rendered strips
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. gs://bucket, file:///tmp/strips, mem://
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	Prefix        string `json:"prefix" yaml:"prefix"`
}

// AssetsConfig defines how pass images are downloaded
type AssetsConfig struct {
	FetchTimeout          time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
	MaxBytes              int64         `json:"maxBytes" yaml:"maxBytes"`
	FallbackAvatarBaseURL string        `json:"fallbackAvatarBaseUrl" yaml:"fallbackAvatarBaseUrl"`
}

// RedisConfig defines the lease store
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LeaseTTL time.Duration `json:"leaseTtl" yaml:"leaseTtl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// ErrGoogleWalletConfig is returned when Google Wallet is enabled without credentials.
var ErrGoogleWalletConfig = errors.New("google wallet is enabled but not configured")

// Validate checks the Google issuer account when it is enabled. A disabled
// account is valid; syncs then fail with a configuration error instead.
func (c *GoogleWalletConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	var missing []string
	if strings.TrimSpace(c.IssuerID) == "" {
		missing = append(missing, "issuerId")
	}
	if strings.TrimSpace(c.ServiceAccountEmail) == "" {
		missing = append(missing, "serviceAccountEmail")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "privateKey")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrGoogleWalletConfig, "missing %s", strings.Join(missing, ", "))
	}

	return nil
}

// applyDefaults fills in values that have a sensible fixed default.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	google := &c.Wallet.Google
	if google.RequestTimeout <= 0 {
		google.RequestTimeout = defaultRequestTimeout
	}
	if google.TokenURL == "" {
		google.TokenURL = "https://oauth2.googleapis.com/token"
	}
	if google.APIBaseURL == "" {
		google.APIBaseURL = "https://walletobjects.googleapis.com/"
	}

	if c.Assets.FetchTimeout <= 0 {
		c.Assets.FetchTimeout = defaultRequestTimeout
	}
	if c.Assets.MaxBytes <= 0 {
		c.Assets.MaxBytes = defaultAssetMaxBytes
	}

	if c.Redis != nil && c.Redis.LeaseTTL <= 0 {
		c.Redis.LeaseTTL = defaultLeaseTTL
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Wallet.Google.loadCredentials(); err != nil {
		return nil, err
	}
	if err := cfg.Wallet.Google.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadCredentials fills the service account from a Google credentials JSON
// file when the key is not set inline.
func (c *GoogleWalletConfig) loadCredentials() error {
	if c.CredentialsPath == "" || c.PrivateKey != "" {
		return nil
	}

	raw, err := os.ReadFile(c.CredentialsPath)
	if err != nil {
		return errors.Wrap(err, "read google wallet credentials")
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
	}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return errors.Wrap(err, "parse google wallet credentials")
	}

	c.PrivateKey = creds.PrivateKey
	if c.ServiceAccountEmail == "" {
		c.ServiceAccountEmail = creds.ClientEmail
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
