package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"receita-api/internal/domain/prescriptions"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	AppName string       `mapstructure:"app_name"`
	Server  ServerConfig `mapstructure:"server"`
	Static  StaticConfig `mapstructure:"static"`
	Log     LogConfig    `mapstructure:"log"`
	PDF     PDFConfig    `mapstructure:"pdf"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"` // vacío = todas las interfaces
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type StaticConfig struct {
	Dir   string `mapstructure:"dir"`
	Index string `mapstructure:"index"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PDFConfig agrupa lo que antes estaba hardcodeado en el layout.
type PDFConfig struct {
	Filename            string  `mapstructure:"filename"`
	TimezoneOffsetHours int     `mapstructure:"timezone_offset_hours"`
	BottomMarginMM      float64 `mapstructure:"bottom_margin_mm"`
	LineHeightMM        float64 `mapstructure:"line_height_mm"`
}

// New arma un viper con defaults + env. No lee archivos.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

// Load decodifica y valida la configuración de v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile lee un archivo (toml/yaml/json según extensión) encima de defaults + env.
func LoadFile(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	return Load(v)
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "server.port out of range: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Static.Dir) == "" {
		return errors.Wrap(ErrInvalidConfig, "static.dir required")
	}
	if strings.TrimSpace(c.Static.Index) == "" {
		return errors.Wrap(ErrInvalidConfig, "static.index required")
	}
	if c.PDF.TimezoneOffsetHours < -14 || c.PDF.TimezoneOffsetHours > 14 {
		return errors.Wrapf(ErrInvalidConfig, "pdf.timezone_offset_hours out of range: %d", c.PDF.TimezoneOffsetHours)
	}
	if c.PDF.BottomMarginMM <= 0 || c.PDF.LineHeightMM <= 0 {
		return errors.Wrap(ErrInvalidConfig, "pdf layout values must be positive")
	}
	if c.PDF.LineHeightMM > c.PDF.BottomMarginMM {
		return errors.Wrap(ErrInvalidConfig, "pdf.line_height_mm cannot exceed pdf.bottom_margin_mm")
	}
	// el resto (pie de página dentro del margen, espacio útil) lo decide el layout
	if err := c.Layout().Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, "pdf"), ErrInvalidConfig)
	}
	return nil
}

// Layout es el A4 por defecto con margen inferior y alto de línea de pdf.*.
func (c Config) Layout() prescriptions.Layout {
	l := prescriptions.DefaultLayout()
	l.MarginBottom = c.PDF.BottomMarginMM
	l.LineHeight = c.PDF.LineHeightMM
	return l
}

// Addr devuelve host:port para http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Location es la zona fija usada en el timestamp del PDF (p.ej. UTC-3).
func (c Config) Location() *time.Location {
	off := c.PDF.TimezoneOffsetHours
	name := fmt.Sprintf("UTC%+03d:00", off)
	return time.FixedZone(name, off*3600)
}
