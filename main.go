// Package main Click N Cut API.
//
// @title           Click N Cut Rental API
// @version         1.0
// @description     Camera and video equipment rental storefront (catalog, cart, mock auth).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/Uday-Kumarr/clickncut-main/app/echoServer"
	authctrl "github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/auth"
	cartctrl "github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/cart"
	catalogctrl "github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/catalog"
	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/validation"
	"github.com/Uday-Kumarr/clickncut-main/config"
	cartrepo "github.com/Uday-Kumarr/clickncut-main/repository/cart"
	catalogrepo "github.com/Uday-Kumarr/clickncut-main/repository/catalog"
	"github.com/Uday-Kumarr/clickncut-main/repository/localstore"
	userrepo "github.com/Uday-Kumarr/clickncut-main/repository/user"
	authsvc "github.com/Uday-Kumarr/clickncut-main/service/auth"
	cartsvc "github.com/Uday-Kumarr/clickncut-main/service/cart"
	catalogsvc "github.com/Uday-Kumarr/clickncut-main/service/catalog"
	"github.com/Uday-Kumarr/clickncut-main/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// local store (the serialized mirror of all storefront state)
	db, err := database.Open(cfg.DataDir)
	if err != nil {
		log.Error("local store open failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	store := localstore.New(db)

	latency := time.Duration(cfg.MockLatencyMS) * time.Millisecond

	// repos
	catR := catalogrepo.New()
	cartR := cartrepo.New(store, log)
	userR := userrepo.New(store, log)

	// services
	cats := catalogsvc.New(catR)
	carts := cartsvc.New(cartR, latency)
	auths := authsvc.New(userR, cfg.JWTSecret, latency)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: auths, V: v, Log: log}
	catalogC := &catalogctrl.Controller{Svc: cats, Log: log}
	cartC := &cartctrl.Controller{Svc: carts, Catalog: cats, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Catalog: catalogC,
		Cart:    cartC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env, "data_dir", cfg.DataDir)

	e.Logger.Fatal(e.Start(":" + port))
}
