package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/talkincode/clothesstore/config"
	"github.com/talkincode/clothesstore/internal/app"
	"github.com/talkincode/clothesstore/internal/cart"
	"github.com/talkincode/clothesstore/internal/catalog"
	"github.com/talkincode/clothesstore/internal/shopapi"
	"github.com/talkincode/clothesstore/internal/webserver"
)

var (
	h        bool
	x        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&x, "x", false, "enable debug")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate the database schema")
	flag.StringVar(&conffile, "c", "", "config file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(conffile)
	if x {
		cfg.System.Debug = true
		cfg.Database.Debug = true
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		application.InitDb()
		fmt.Println("database initialized")
		return
	}

	productRepo := catalog.NewGormProductRepository(application.DB())
	productService := catalog.NewProductService(productRepo, application.Bus())
	cartRepo := cart.NewGormCartRepository(application.DB())
	cartService := cart.NewCartService(cartRepo, productRepo, cfg.Web.CartIDLength)

	ws := webserver.Init(cfg)
	shopapi.NewProductHandler(productService).RegisterRoutes()
	shopapi.NewCartHandler(cartService).RegisterRoutes()

	go func() {
		if err := ws.Listen(); err != nil {
			zap.S().Fatalf("web server error: %v", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ws.Shutdown(ctx); err != nil {
		zap.S().Errorf("web server shutdown error: %v", err)
	}
	zap.L().Info("clothesstore stopped")
}
