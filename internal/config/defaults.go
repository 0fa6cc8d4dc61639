package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort     = 8000
	DefaultAppName  = "receita-api"
	DefaultFilename = "receita.pdf"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_name", DefaultAppName)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)

	// Build del SPA (vite) copiado junto al binario
	v.SetDefault("static.dir", "dist")
	v.SetDefault("static.index", "index.html")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("pdf.filename", DefaultFilename)
	v.SetDefault("pdf.timezone_offset_hours", -3) // horario de Brasília
	v.SetDefault("pdf.bottom_margin_mm", 25.0)
	v.SetDefault("pdf.line_height_mm", 7.0)
}

// BindEnv conecta las variables "históricas" (PORT, STATIC_DIR, LOG_*, APP_NAME)
// y deja el resto disponible como RECEITA_<SECCION>_<CLAVE>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("RECEITA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", "PORT", "RECEITA_SERVER_PORT")
	_ = v.BindEnv("static.dir", "STATIC_DIR", "RECEITA_STATIC_DIR")
	_ = v.BindEnv("log.level", "LOG_LEVEL", "RECEITA_LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT", "RECEITA_LOG_FORMAT")
	_ = v.BindEnv("app_name", "APP_NAME", "RECEITA_APP_NAME")
}
