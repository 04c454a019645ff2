package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                string
	LogLevel           string
	HTTPAddr           string
	CorsAllowedOrigins []string

	POSAPIBaseURL string
	POSAPITimeout time.Duration

	ReportTimezone          string
	PDFBillSummaryRowLimit  int
	DefaultOutletID         string
	ExportHistoryLimit      int64
	ReportSessionIdleTTL    time.Duration
	ReportSessionMaxViews   int
	OperatorTokenTTL        time.Duration
	JWTSecret               string
	DatabaseURL             string
	RabbitMQURL             string
	ReportEventsExchange    string
	ReportExportedRouteKey  string
	ObjectStoreEndpoint     string
	ObjectStoreRegion       string
	ObjectStoreAccessKeyID  string
	ObjectStoreSecretKey    string
	ObjectStoreBucket       string
	ObjectStorePublicBase   string
	ObjectStoreStorageClass string
	ObjectStoreKeyPrefix    string
}

func Load() Config {
	cfg := Config{
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", ""),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8090"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),

		POSAPIBaseURL: getEnvFirst([]string{"POS_API_BASE_URL", "REACT_APP_API_URL"}, "http://localhost:3001"),
		POSAPITimeout: getEnvDuration("POS_API_TIMEOUT", 15*time.Second),

		ReportTimezone:         getEnv("REPORT_TIMEZONE", "Asia/Kolkata"),
		PDFBillSummaryRowLimit: int(getEnvInt64("REPORT_PDF_BILL_SUMMARY_ROW_LIMIT", 10)),
		DefaultOutletID:        getEnv("DEFAULT_OUTLET_ID", ""),
		ExportHistoryLimit:     getEnvInt64("REPORT_EXPORT_HISTORY_LIMIT", 50),
		ReportSessionIdleTTL:   getEnvDuration("REPORT_SESSION_IDLE_TTL", 2*time.Hour),
		ReportSessionMaxViews:  int(getEnvInt64("REPORT_SESSION_MAX_VIEWS", 500)),
		OperatorTokenTTL:       getEnvDuration("OPERATOR_TOKEN_TTL", 12*time.Hour),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		RabbitMQURL:            getEnv("RABBITMQ_URL", ""),
		ReportEventsExchange:   getEnv("REPORT_EVENTS_EXCHANGE", "backoffice.events"),
		ReportExportedRouteKey: getEnv("REPORT_EXPORTED_ROUTING_KEY", "report.exported"),

		// Object store (Cloudflare R2 / S3-compatible)
		ObjectStoreEndpoint:     getEnvFirst([]string{"OBJECT_STORE_ENDPOINT", "R2_S3_ENDPOINT"}, ""),
		ObjectStoreRegion:       getEnvFirst([]string{"OBJECT_STORE_REGION", "R2_REGION"}, "auto"),
		ObjectStoreAccessKeyID:  getEnvFirst([]string{"OBJECT_STORE_ACCESS_KEY_ID", "R2_ACCESS_KEY_ID"}, ""),
		ObjectStoreSecretKey:    getEnvFirst([]string{"OBJECT_STORE_SECRET_ACCESS_KEY", "R2_SECRET_ACCESS_KEY"}, ""),
		ObjectStoreBucket:       getEnvFirst([]string{"OBJECT_STORE_BUCKET", "R2_BUCKET"}, ""),
		ObjectStorePublicBase:   getEnvFirst([]string{"OBJECT_STORE_PUBLIC_BASE_URL", "R2_PUBLIC_BASE_URL"}, ""),
		ObjectStoreStorageClass: getEnvFirst([]string{"OBJECT_STORE_STORAGE_CLASS", "R2_STORAGE_CLASS"}, "STANDARD"),
		ObjectStoreKeyPrefix:    getEnv("OBJECT_STORE_KEY_PREFIX", "report-exports"),
	}

	if cfg.PDFBillSummaryRowLimit < 0 {
		cfg.PDFBillSummaryRowLimit = 0
	}
	if cfg.ReportSessionMaxViews < 0 {
		cfg.ReportSessionMaxViews = 0
	}
	if cfg.ExportHistoryLimit <= 0 {
		cfg.ExportHistoryLimit = 50
	}

	// Back-compat: allow R2_ACCOUNT_ID -> endpoint
	if strings.TrimSpace(cfg.ObjectStoreEndpoint) == "" {
		accountID := strings.TrimSpace(os.Getenv("R2_ACCOUNT_ID"))
		if accountID != "" {
			cfg.ObjectStoreEndpoint = "https://" + accountID + ".r2.cloudflarestorage.com"
		}
	}

	return cfg
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ObjectStoreEnabled reports whether exports should be archived.
func (c Config) ObjectStoreEnabled() bool {
	return c.ObjectStoreEndpoint != "" && c.ObjectStoreBucket != "" && c.ObjectStorePublicBase != ""
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvFirst(keys []string, fallback string) string {
	for _, k := range keys {
		value := strings.TrimSpace(os.Getenv(k))
		if value != "" {
			return value
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
