package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/ddegtyarev/linkpulse/internal/app/server"
	"github.com/ddegtyarev/linkpulse/internal/app/service"
	"github.com/ddegtyarev/linkpulse/internal/cache"
	"github.com/ddegtyarev/linkpulse/internal/config"
	"github.com/ddegtyarev/linkpulse/internal/logger"
	"github.com/ddegtyarev/linkpulse/internal/repository"
	"github.com/ddegtyarev/linkpulse/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var store storage.Store

	if options.DatabaseDSN != "" {
		zapLogger.Info("using postgres", zap.String("dsn", options.DatabaseDSN))
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		defer db.Close()
		store = repository.CreateLinkRepository(db, zapLogger)
		zapLogger.Info("Database connected and tables ready.")
	} else {
		zapLogger.Info("using in memory storage")

		var err error
		store, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}

	var linkCache service.LinkCache
	if options.RedisAddr != "" {
		c, err := cache.ConnectRedis(options.RedisAddr, options.RedisPassword)
		if err != nil {
			panic(err)
		}
		defer c.Close()
		linkCache = c
		zapLogger.Info("resolver cache connected", zap.String("addr", options.RedisAddr))
	}

	gen := service.NewCodeGenerator(store)
	resolver := service.NewLinkResolver(store, linkCache, zapLogger)
	linkService := service.NewLink(store, gen, resolver, zapLogger, options.ResultHostname)
	auth := service.NewAuth(options.JWTSecret)

	r := server.Init(linkService, auth, options.TrustedSubnet, zapLogger)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("linkpulse.dev", "www.linkpulse.dev"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", options.Port))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", options.Port))
		if err := http.ListenAndServe(options.Port, r); err != nil {
			panic(err)
		}
	}
}
