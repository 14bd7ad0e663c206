package models

import "time"

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// Gemini generation service
	GeminiAPIKey       string  `mapstructure:"gemini_api_key"`
	GeminiModel        string  `mapstructure:"gemini_model"`
	GeminiTemperature  float32 `mapstructure:"gemini_temperature"`
	GeminiMaxOutTokens int32   `mapstructure:"gemini_max_output_tokens"`

	// YouTube video suggestions
	YouTubeAPIKey     string `mapstructure:"youtube_api_key"`
	YouTubeMaxResults int    `mapstructure:"youtube_max_results"`

	// Cost estimation
	LaborRatePhpPerHour int `mapstructure:"labor_rate_php_per_hour"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`

	// Redis cost-report cache
	RedisAddr       string        `mapstructure:"redis_addr"`
	CostCacheTTL    time.Duration `mapstructure:"cost_cache_ttl"`
	CostCacheEnable bool          `mapstructure:"cost_cache_enable"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Rate Limiting
	RateLimitRequestsPerMinute int `mapstructure:"rate_limit_requests_per_minute"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	Tables []string `mapstructure:"tables"`
}
