package main

import (
	"os"

	"github.com/DRSN-tech/micrositio-backend/internal/app"
	config "github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			Micrositio API
//	@version		1.0
//	@description	REST API микросайта: каталог продуктов, форма обратной связи и значение имени через LLM.
//	@host			localhost:8000
//	@BasePath		/
func main() {
	envErr := godotenv.Load()

	log := logger.NewZapLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer log.Sync()

	if envErr != nil {
		log.Infof(".env not loaded, using process environment: %v", envErr)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Sync()
		os.Exit(1)
	}
}
