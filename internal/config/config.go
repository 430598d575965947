package config

import (
	"github.com/spf13/viper"
)

// The service is configured through environment variables (pod env in
// deployment, .env-style exports locally). Viper supplies the defaults for
// a docker-compose setup with LocalStack standing in for AWS.

type Config struct {
	DBHost             string `mapstructure:"DB_HOST"`
	DBPort             string `mapstructure:"DB_PORT"`
	DBUser             string `mapstructure:"DB_USER"`
	DBPassword         string `mapstructure:"DB_PASSWORD"`
	DBName             string `mapstructure:"DB_NAME"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	PayrollSQSQueueURL string `mapstructure:"PAYROLL_SQS_QUEUE_URL"`
	EmailSQSQueueURL   string `mapstructure:"EMAIL_SQS_QUEUE_URL"`
	AWSEndpoint        string `mapstructure:"AWS_ENDPOINT"`
	PayrollAPIURL      string `mapstructure:"PAYROLL_API_URL"`
	AdminPassword      string `mapstructure:"ADMIN_PASSWORD"`
	EmailSender        string `mapstructure:"EMAIL_SENDER"`
	EmailDomain        string `mapstructure:"EMAIL_DOMAIN"`
	IsLocalDev         bool   `mapstructure:"IS_LOCAL_DEV"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("DB_HOST", "db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "nat_db")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AWS_REGION", "ap-south-1")
	viper.SetDefault("PAYROLL_SQS_QUEUE_URL", "http://localstack:4566/000000000000/payroll-queue")
	viper.SetDefault("EMAIL_SQS_QUEUE_URL", "http://localstack:4566/000000000000/email-queue")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("PAYROLL_API_URL", "http://localhost:8081/")
	viper.SetDefault("ADMIN_PASSWORD", "4004")
	viper.SetDefault("EMAIL_SENDER", "noreply@nihaara.com")
	viper.SetDefault("EMAIL_DOMAIN", "nihaara.com")
	viper.SetDefault("IS_LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
