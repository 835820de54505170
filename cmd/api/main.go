package main

import (
	"log"

	"github.com/designforge/design-forge-backend/config"
	"github.com/designforge/design-forge-backend/internal/bootstrap"
	deployservice "github.com/designforge/design-forge-backend/internal/deployment/service"
	genservice "github.com/designforge/design-forge-backend/internal/generation/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	generator := genservice.NewClient(
		cfg.Generation.BaseURL,
		cfg.Generation.APIKey,
		cfg.Generation.Model,
		cfg.Generation.Timeout,
	)
	deployer := deployservice.NewClient(
		cfg.Deployment.BaseURL,
		cfg.Deployment.Token,
		cfg.Deployment.Timeout,
	)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "design-forge-backend",
		Config:      cfg,
		Generator:   generator,
		Deployer:    deployer,
		RateStore:   bootstrap.NewRateStore(cfg.RateLimit),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
