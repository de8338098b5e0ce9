package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	AI       AIConfig
	Store    StoreConfig
	Commerce CommerceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// AIConfig configuración del asistente conversacional (OpenRouter).
// APIKey se lee EXCLUSIVAMENTE de OPENROUTER_API_KEY (env o archivo .env).
// Si está vacío, el nivel remoto queda deshabilitado y la aplicación sigue
// funcionando con respuestas locales.
type AIConfig struct {
	APIKey         string
	Model          string   // modelo preferido (primero en la lista de candidatos)
	FallbackModels []string // candidatos alternativos, en orden
	TimeoutSeconds int      // timeout por intento (un solo intento por candidato)
	Referer        string   // header HTTP-Referer que exige OpenRouter
	Title          string   // header X-Title
}

// Timeout devuelve el timeout por intento como duración.
func (c AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Models devuelve la lista ordenada de candidatos: el preferido primero y
// luego los de respaldo, sin duplicar el preferido.
func (c AIConfig) Models() []string {
	models := []string{c.Model}
	for _, m := range c.FallbackModels {
		if m != "" && m != c.Model {
			models = append(models, m)
		}
	}
	return models
}

// StoreConfig rutas de los archivos CSV de contactos y negocios.
type StoreConfig struct {
	ContactsPath string
	DealsPath    string
}

// CommerceConfig datos del comercio para los enlaces de pedido y pago.
type CommerceConfig struct {
	WhatsAppNumber string // número destino de wa.me, con indicativo (57...)
	WompiPublicKey string // llave pública del checkout de Wompi
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, OPENROUTER_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "balcon-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			APIKey:         getString(v, "OPENROUTER_API_KEY", ""),
			Model:          getString(v, "OPENROUTER_MODEL", "google/gemini-2.0-flash-exp:free"),
			FallbackModels: getStringSlice(v, "OPENROUTER_FALLBACK_MODELS", []string{"meta-llama/llama-3.2-3b-instruct", "mistralai/mistral-7b-instruct-v0.1"}),
			TimeoutSeconds: getInt(v, "OPENROUTER_TIMEOUT_SECONDS", 15),
			Referer:        getString(v, "OPENROUTER_REFERER", "https://kumis-del-balcon.streamlit.app"),
			Title:          getString(v, "OPENROUTER_TITLE", "Kumis del Balcon"),
		},
		Store: StoreConfig{
			ContactsPath: getString(v, "STORE_CONTACTS_PATH", "contacts.csv"),
			DealsPath:    getString(v, "STORE_DEALS_PATH", "deals.csv"),
		},
		Commerce: CommerceConfig{
			WhatsAppNumber: getString(v, "COMMERCE_WHATSAPP_NUMBER", "573127321920"),
			WompiPublicKey: getString(v, "COMMERCE_WOMPI_PUBLIC_KEY", ""),
		},
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getStringSlice(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	raw := v.GetString(key)
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
