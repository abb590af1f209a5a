package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scentshop/catalog"
	"scentshop/config"
	"scentshop/handlers"
	"scentshop/middleware"
	"scentshop/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Open the durable settings store
	repo, err := config.InitStore(cfg)
	if err != nil {
		logger.Fatal("failed to open settings store", zap.Error(err))
	}
	defer repo.Close()

	uploadsDir, err := config.UploadsDir(cfg)
	if err != nil {
		logger.Fatal("failed to prepare uploads directory", zap.Error(err))
	}

	// One-shot catalog fetch; a failure leaves the catalog empty
	cat := catalog.NewLoader(logger).Load(context.Background(), cfg.CatalogURL)

	session, err := store.NewSession(store.Options{
		Repo:        repo,
		Logger:      logger,
		ReplyDelay:  cfg.ReplyDelay,
		GracePeriod: cfg.GracePeriod,
	})
	if err != nil {
		logger.Fatal("failed to seed session", zap.Error(err))
	}

	// Registration check at load, then re-checked on a fixed interval
	if status, err := session.CheckRegistration(); err != nil {
		logger.Error("registration check failed", zap.Error(err))
	} else if status.Redirect {
		logger.Info("registration required, visitor will be redirected")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.WatchRegistration(ctx, cfg.CheckInterval)

	app := &handlers.App{
		Session:    session,
		Catalog:    cat,
		Repo:       repo,
		Logger:     logger,
		UploadsDir: uploadsDir,
	}

	// Create a new Gin router
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health-check", app.CheckConnection)

	// Registration routes (always reachable)
	r.POST("/register", app.Register)
	r.POST("/register/skip", app.SkipRegistration)
	r.GET("/register/status", app.RegistrationStatus)

	// Attachment routes
	r.POST("/upload", app.UploadFile)
	r.GET("/files/:name", app.DownloadFile)

	// Storefront routes (gated for unregistered visitors)
	shop := r.Group("/")
	shop.Use(middleware.RegistrationGate(session))
	{
		// Catalog routes
		shop.GET("/brands", app.GetBrands)
		shop.GET("/brands/:brand", app.GetBrand)
		shop.GET("/brands/:brand/fragrances/:fragrance", app.GetFragrance)

		// Volume selection routes
		shop.POST("/volumes", app.SelectVolume)
		shop.GET("/volumes/:fragrance", app.GetSelectedVolume)

		// Cart routes
		shop.GET("/cart", app.GetCart)
		shop.POST("/cart/items", app.AddToCart)
		shop.DELETE("/cart/items/:index", app.RemoveFromCart)

		// Checkout routes
		shop.GET("/checkout", app.GetCheckout)
		shop.POST("/checkout", app.BeginCheckout)
		shop.POST("/checkout/details", app.SubmitDetails)
		shop.POST("/checkout/payment", app.CompletePayment)
		shop.POST("/checkout/close", app.CloseCheckout)

		// Order routes
		shop.GET("/orders", app.GetOrders)
		shop.GET("/orders/:index", app.GetOrderDetails)

		// Comment thread routes
		shop.POST("/orders/:index/comments", app.SendComment)
		shop.POST("/orders/:index/comments/edit", app.StartEdit)
		shop.POST("/orders/:index/comments/close", app.CloseThread)
		shop.POST("/comments/cancel-edit", app.CancelEdit)

		// Profile route
		shop.GET("/profile", app.GetProfile)
	}

	// Start the server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
