package main

import (
	"log"
	"time"

	"FormLab/config"
	"FormLab/core"
	"FormLab/global"
	"FormLab/repositories"
	"FormLab/routes"
	"FormLab/services"
	"FormLab/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and/or env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s (store=%s)", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort, cfg.StoreDriver)

	// 2) Reference data + validation engine
	countries, err := repositories.LoadCountries(cfg.CountriesFile)
	if err != nil {
		log.Fatalf("[boot] %v", err)
	}
	validator := core.NewValidator(cfg.Policy(), countries)

	// 3) Infrastructure: Redis is optional unless it is the store
	rdb := config.InitRedis(cfg)
	var rlog *redislog.Logger // nil = no audit trail
	if rdb != nil {
		rlog = redislog.New(rdb, global.RedisLogKey, 1000, 7*24*time.Hour)
		if cfg.Env == "dev" {
			rlog = rlog.WithEcho() // audit entries on stdout too while developing
		}
		rlog.Infof("%s %s boot", map[string]string{"env": cfg.Env, "port": cfg.HTTPPort, "store": cfg.StoreDriver}, cfg.AppName, global.AppVersion)
	}

	repo, err := config.NewRepository(cfg, rdb)
	if err != nil {
		log.Fatalf("[store] %v", err)
	}

	// 4) Services (dependency injection)
	svc := services.NewSubmissionService(repo, validator, rlog, services.Options{
		NewFlagWindow: cfg.FlagWindow,
		BcryptCost:    cfg.BcryptCost,
		Countries:     countries,
	})
	defer svc.Close()

	// 5) Gin engine + routes
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, svc, rlog)

	// 6) Serve; a bind failure ends the process
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
