package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultBucket = "documents"

// Storage providers.
const (
	StorageProviderGCS   = "gcs"
	StorageProviderLocal = "local"
)

// PDF renderers.
const (
	PDFRendererFPDF      = "fpdf"
	PDFRendererGotenberg = "gotenberg"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string
	JWTExpiry      time.Duration
	JWTIssuer      string
	AllowedOrigins []string

	OrganizationName string

	// Document storage
	InvoiceBucket           string
	ContractBucket          string
	CertificateTemplatePath string
	StorageProvider         string
	StorageLocalRoot        string
	StoragePublicBaseURL    string
	GCSCredentialsJSON      string

	// Outbound email
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	PDFRenderer  string
	GotenbergURL string

	RedisAddress  string
	RedisPassword string

	PosthogAPIKey      string
	EmailDocumentsRate string
	LoginRate          string

	LockTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "mpa-backend")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("ORGANIZATION_NAME", "Memorial Park")
	viper.SetDefault("NEXT_PUBLIC_INVOICE_BUCKET", "")
	viper.SetDefault("NEXT_PUBLIC_CONTRACT_BUCKET", "")
	viper.SetDefault("CERTIFICATE_TEMPLATE_PATH", "assets/certificate-template.pdf")
	viper.SetDefault("STORAGE_PROVIDER", StorageProviderLocal)
	viper.SetDefault("STORAGE_LOCAL_ROOT", "./storage")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "")
	viper.SetDefault("GCS_CREDENTIALS_JSON", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@memorialpark.local")
	viper.SetDefault("PDF_RENDERER", PDFRendererFPDF)
	viper.SetDefault("GOTENBERG_URL", "http://gotenberg:3000")
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("EMAIL_DOCUMENTS_RATE", "10-M")
	viper.SetDefault("LOGIN_RATE", "5-M")
	viper.SetDefault("WALK_IN_LOCK_TTL", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiry = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.OrganizationName = viper.GetString("ORGANIZATION_NAME")

	cfg.InvoiceBucket, cfg.ContractBucket = ResolveBuckets(
		viper.GetString("NEXT_PUBLIC_INVOICE_BUCKET"),
		viper.GetString("NEXT_PUBLIC_CONTRACT_BUCKET"),
	)
	cfg.CertificateTemplatePath = viper.GetString("CERTIFICATE_TEMPLATE_PATH")

	cfg.StorageProvider = strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_PROVIDER")))
	if cfg.StorageProvider != StorageProviderGCS && cfg.StorageProvider != StorageProviderLocal {
		log.Printf("Warning: Invalid value for STORAGE_PROVIDER ('%s'). Defaulting to %s.\n", cfg.StorageProvider, StorageProviderLocal)
		cfg.StorageProvider = StorageProviderLocal
	}
	cfg.StorageLocalRoot = viper.GetString("STORAGE_LOCAL_ROOT")
	cfg.StoragePublicBaseURL = strings.TrimRight(viper.GetString("STORAGE_PUBLIC_BASE_URL"), "/")
	if cfg.StoragePublicBaseURL == "" && cfg.StorageProvider == StorageProviderLocal {
		cfg.StoragePublicBaseURL = "http://localhost:" + cfg.Port + "/files"
	}
	cfg.GCSCredentialsJSON = viper.GetString("GCS_CREDENTIALS_JSON")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Outgoing email will only be logged.")
	}

	cfg.PDFRenderer = strings.ToLower(strings.TrimSpace(viper.GetString("PDF_RENDERER")))
	if cfg.PDFRenderer != PDFRendererFPDF && cfg.PDFRenderer != PDFRendererGotenberg {
		log.Printf("Warning: Invalid value for PDF_RENDERER ('%s'). Defaulting to %s.\n", cfg.PDFRenderer, PDFRendererFPDF)
		cfg.PDFRenderer = PDFRendererFPDF
	}
	cfg.GotenbergURL = strings.TrimRight(viper.GetString("GOTENBERG_URL"), "/")

	cfg.RedisAddress = viper.GetString("REDIS_ADDRESS")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	if cfg.RedisAddress == "" {
		log.Println("Warning: REDIS_ADDRESS not set. Walk-in payments will not take a distributed lock.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.EmailDocumentsRate = viper.GetString("EMAIL_DOCUMENTS_RATE")
	cfg.LoginRate = viper.GetString("LOGIN_RATE")

	lockTTLStr := viper.GetString("WALK_IN_LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for WALK_IN_LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL)
	}
	cfg.LockTTL = lockTTL

	return cfg, nil
}

// ResolveBuckets applies the bucket fallbacks: the invoice bucket defaults to "documents",
// the contract bucket falls back to the invoice bucket.
func ResolveBuckets(invoiceBucket, contractBucket string) (string, string) {
	invoiceBucket = strings.TrimSpace(invoiceBucket)
	contractBucket = strings.TrimSpace(contractBucket)
	if invoiceBucket == "" {
		invoiceBucket = defaultBucket
	}
	if contractBucket == "" {
		contractBucket = invoiceBucket
	}
	return invoiceBucket, contractBucket
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
