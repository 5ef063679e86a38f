// Package config provides portal configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all portal configuration.
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Identity IdentityConfig
	Dynamo   DynamoConfig
	Payments PaymentsConfig
	Events   EventsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int
	GinMode        string
	AllowedOrigins []string
}

// BackendConfig holds freight backend client settings. The base URL itself is
// resolved from the API_BASE_URL family by the backend package.
type BackendConfig struct {
	Timeout time.Duration
}

// IdentityConfig holds identity provider and sandbox admin settings.
type IdentityConfig struct {
	APIURL       string
	SecretKey    string
	JWTPublicKey string
	// Templates are the env-supplied JWT template names, in priority order.
	Templates       []string
	DevAdminEnabled bool
	DevAdminToken   string
}

// DynamoConfig holds table names for the portal's own state.
type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	DraftsTable     string
	ReceiptsTable   string
}

// PaymentsConfig holds Mercado Pago settings.
type PaymentsConfig struct {
	AccessToken string
	MockMode    bool
	// Sandbox payer substituted for a matching payer.id on TEST- tokens.
	TestPayerEmail  string
	TestPayerUserID string
}

// Sandbox reports whether the access token is a Mercado Pago test token.
func (c PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

// EventsConfig holds Kafka settings; an empty broker disables publishing.
type EventsConfig struct {
	Broker string
	Topic  string
}

const DefaultDevAdminToken = "dev-admin-sandbox-token"

// Load reads configuration from environment variables with local defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", 8080),
			GinMode:        getEnv("GIN_MODE", ""),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		},
		Backend: BackendConfig{
			Timeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Identity: IdentityConfig{
			APIURL:          strings.TrimRight(getEnv("CLERK_API_URL", "https://api.clerk.com"), "/"),
			SecretKey:       os.Getenv("CLERK_SECRET_KEY"),
			JWTPublicKey:    os.Getenv("CLERK_JWT_KEY"),
			Templates:       templateNames(),
			DevAdminEnabled: getEnvBool("NEXT_PUBLIC_DEV_ADMIN_BYPASS", false) || getEnvBool("DEV_ADMIN_BYPASS", false),
			DevAdminToken:   firstNonEmpty(os.Getenv("DEV_ADMIN_TOKEN"), os.Getenv("NEXT_PUBLIC_DEV_ADMIN_TOKEN"), DefaultDevAdminToken),
		},
		Dynamo: DynamoConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			DraftsTable:     getEnv("WIZARD_DRAFTS_TABLE", "wizard_drafts"),
			ReceiptsTable:   getEnv("PAYMENT_RECEIPTS_TABLE", "payment_receipts"),
		},
		Payments: PaymentsConfig{
			AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:        IsMockEnabled("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
		Events: EventsConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
			Topic:  getEnv("PORTAL_EVENTS_TOPIC", "portal-events"),
		},
	}
}

// templateNames collects the JWT template env family, de-duplicated, in priority order.
func templateNames() []string {
	keys := []string{"CLERK_JWT_TEMPLATE", "NEXT_PUBLIC_CLERK_JWT_TEMPLATE", "CLERK_TEMPLATE", "NEXT_PUBLIC_CLERK_TEMPLATE"}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsMockEnabled reports whether any of the given env toggles is switched on.
func IsMockEnabled(keys ...string) bool {
	for _, key := range keys {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool accepts "1", "true", "yes", "on" as true.
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
