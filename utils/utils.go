package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kotseai-backend/models"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, continue with defaults and env vars
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	if v.IsSet("app") {
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Parse JWT expiration if it's a string
	if v.IsSet("jwt.expires_in") {
		expiresStr := v.GetString("jwt.expires_in")
		if expiresStr != "" {
			expires, err := time.ParseDuration(expiresStr)
			if err != nil {
				return nil, fmt.Errorf("invalid JWT expires_in format: %w", err)
			}
			config.JWTExpiresIn = expires
		}
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "KotseAI Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	// JWT defaults
	v.SetDefault("jwt_secret", "your-super-secret-jwt-key-change-this-in-production")
	v.SetDefault("jwt_expires_in", 24*time.Hour)

	// Gemini defaults: low temperature, bounded output. Domain answers
	// should be reproducible rather than creative.
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.0-flash")
	v.SetDefault("gemini_temperature", 0.2)
	v.SetDefault("gemini_max_output_tokens", 1000)

	// YouTube defaults
	v.SetDefault("youtube_api_key", "")
	v.SetDefault("youtube_max_results", 3)

	// Cost estimation defaults
	v.SetDefault("labor_rate_php_per_hour", 600)

	// AWS defaults
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")

	// Redis cache defaults
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("cost_cache_ttl", 24*time.Hour)
	v.SetDefault("cost_cache_enable", true)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Rate limiting defaults
	v.SetDefault("rate_limit_requests_per_minute", 30)

	// Base Path default
	v.SetDefault("basePath", "/api/v1")

	// setup tables to create
	v.SetDefault("tables", []string{"users", "checklists"})
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.JWTSecret == "your-super-secret-jwt-key-change-this-in-production" && c.AppEnv == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	if c.AppEnv == "production" && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set in production environment")
	}

	if c.AppEnv == "production" && c.AWSAccessKeyID == "" {
		fmt.Println("No AWS credentials provided, assuming IAM role is used")
	}

	return nil
}

// flattenNestedConfig flattens the nested JSON structure to flat keys for easier mapping
func flattenNestedConfig(v *viper.Viper) {
	nested := map[string]string{
		"app.name":                "app_name",
		"app.version":             "app_version",
		"app.env":                 "app_env",
		"app.host":                "app_host",
		"app.port":                "app_port",
		"jwt.secret":              "jwt_secret",
		"gemini.api_key":          "gemini_api_key",
		"gemini.model":            "gemini_model",
		"youtube.api_key":         "youtube_api_key",
		"aws.region":              "aws_region",
		"aws.access_key_id":       "aws_access_key_id",
		"aws.secret_access_key":   "aws_secret_access_key",
		"aws.dynamodb_endpoint":   "dynamodb_endpoint",
		"aws.dynamodb_table_prefix": "dynamodb_table_prefix",
		"redis.addr":              "redis_addr",
		"logging.level":           "log_level",
		"logging.format":          "log_format",
	}
	for from, to := range nested {
		if v.IsSet(from) {
			v.Set(to, v.GetString(from))
		}
	}

	if v.IsSet("gemini.temperature") {
		v.Set("gemini_temperature", v.GetFloat64("gemini.temperature"))
	}
	if v.IsSet("gemini.max_output_tokens") {
		v.Set("gemini_max_output_tokens", v.GetInt("gemini.max_output_tokens"))
	}
	if v.IsSet("cors.origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}
	if v.IsSet("rate_limit.requests_per_minute") {
		v.Set("rate_limit_requests_per_minute", v.GetInt("rate_limit.requests_per_minute"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// HashPassword hashes a plain text password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a hashed password with a plain text password.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
