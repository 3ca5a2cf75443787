package config

import (
	"os"
)

type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "finance_tracker",
		Port:          "8000",
	}

	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDatabase := os.Getenv("MONGO_DB")
	envPort := os.Getenv("PORT")

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDatabase) != 0 {
		env.MongoDatabase = envMongoDatabase
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	return &env, nil
}
