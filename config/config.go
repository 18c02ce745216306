package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultLeaderboardLimit   = 10
	defaultTextTransformModel = "gemini-2.0-flash"
	defaultTextTransformTime  = 30 * time.Second
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Entries may carry an inline image reference; the limit leaves room for the advisory 5MB.
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Seed configuration for the startup data generator
	Seed *SeedConfig `json:"seed" yaml:"seed"`

	// Leaderboard configuration
	Leaderboard *LeaderboardConfig `json:"leaderboard" yaml:"leaderboard"`

	// Feed configuration
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// TextTransform configuration for the topic suggestion provider
	TextTransform *TextTransformConfig `json:"textTransform" yaml:"textTransform"`

	// QRCode configuration for icebreaker invite codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SeedConfig defines how much random data is generated at startup.
type SeedConfig struct {
	Users       int `json:"users" yaml:"users"`
	Icebreakers int `json:"icebreakers" yaml:"icebreakers"`
	EntriesMin  int `json:"entriesMin" yaml:"entriesMin"`
	EntriesMax  int `json:"entriesMax" yaml:"entriesMax"`
	CommentsMin int `json:"commentsMin" yaml:"commentsMin"`
	CommentsMax int `json:"commentsMax" yaml:"commentsMax"`

	// RandomSeed makes generation reproducible. Zero picks a time based seed.
	RandomSeed int64 `json:"randomSeed" yaml:"randomSeed"`

	// Start is the earliest creation date, formatted as YYYY-MM-DD in local time.
	Start string `json:"start" yaml:"start"`
}

// LeaderboardConfig defines leaderboard sizing
type LeaderboardConfig struct {
	Limit int `json:"limit" yaml:"limit"`
}

// FeedConfig defines feed grouping defaults
type FeedConfig struct {
	// DefaultTimezone is used when the viewer sends no timezone. Empty means server local time.
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`
}

// TextTransformConfig defines the generative text provider used for topic suggestions
type TextTransformConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Model   string        `json:"model" yaml:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`                                 // PNG edge length in pixels
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"` // L, M, Q, H
	// BaseURL, when set, makes invite codes carry a link to the icebreaker page.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// TEXTTRANSFORM_APIKEY -> textTransform.apiKey
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Seed == nil {
		c.Seed = &SeedConfig{}
	}

	if c.Leaderboard == nil {
		c.Leaderboard = &LeaderboardConfig{}
	}
	if c.Leaderboard.Limit <= 0 {
		c.Leaderboard.Limit = defaultLeaderboardLimit
	}

	if c.Feed == nil {
		c.Feed = &FeedConfig{}
	}

	if c.TextTransform == nil {
		c.TextTransform = &TextTransformConfig{}
	}
	if c.TextTransform.Model == "" {
		c.TextTransform.Model = defaultTextTransformModel
	}
	if c.TextTransform.Timeout <= 0 {
		c.TextTransform.Timeout = defaultTextTransformTime
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
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
