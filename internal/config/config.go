package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/poofware/revenue-service/internal/utils"
)

const AppName = "revenue-service"

type Config struct {
	AppName      string
	AppPort      string
	AppUrl       string
	DBUrl        string
	RSAPublicKey *rsa.PublicKey
	SeedTestData bool
}

func LoadConfig() *Config {
	// .env is optional; deployments inject env vars directly.
	_ = godotenv.Load()

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	appUrl := os.Getenv("APP_URL_FROM_ANYWHERE")

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	return &Config{
		AppName:      AppName,
		AppPort:      appPort,
		AppUrl:       appUrl,
		DBUrl:        dbURL,
		RSAPublicKey: pubKey,
		SeedTestData: os.Getenv("SEED_TEST_DATA") == "true",
	}
}
