package app

import (
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/utils"
)

type Config struct {
	Port             string
	CORSAllowOrigins string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:             utils.GetEnv("PORT", "8080", log),
		CORSAllowOrigins: utils.GetEnv("CORS_ALLOW_ORIGINS", "", log),
	}
}
