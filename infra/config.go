package infra

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// WebhookRoute is the path the payment processor is configured to call.
const WebhookRoute = "/webhook/pagbank"

type Config struct {
	ServerName      string
	ServerPort      string
	Environment     string
	PublicBaseURL   string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBDatabase      string
	DBSSLMode       string
	DBDriver        string
	SignatureToken  string
	RedisUrl        string
	KafkaBrokers    string
	KafkaTopic      string
	AuditBucketName string
	AwsAccessKeyID  string
	AwsSecretKey    string
	AwsRegion       string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:      os.Getenv("SERVER_NAME"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		Environment:     os.Getenv("ENVIRONMENT"),
		PublicBaseURL:   os.Getenv("PUBLIC_BASE_URL"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBDatabase:      os.Getenv("DB_DATABASE"),
		DBSSLMode:       os.Getenv("DB_SSL_MODE"),
		DBDriver:        os.Getenv("DB_DRIVER"),
		SignatureToken:  os.Getenv("SIGNATURE_STRING"),
		RedisUrl:        os.Getenv("REDIS_URL"),
		KafkaBrokers:    os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:      os.Getenv("KAFKA_TOPIC"),
		AuditBucketName: os.Getenv("AUDIT_BUCKET_NAME"),
		AwsAccessKeyID:  os.Getenv("AWS_ACCESS_KEY_ID"),
		AwsSecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AwsRegion:       os.Getenv("AWS_REGION"),
	}
}

// WebhookCallbackURL is the externally reachable URL registered with the
// payment processor at charge creation.
func (c Config) WebhookCallbackURL() string {
	return strings.TrimSuffix(c.PublicBaseURL, "/") + WebhookRoute
}
