package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	app "storeadmin/src/app"
	cfg "storeadmin/src/configuration"
	db "storeadmin/src/repository"
)

// RunServer wires the repository, asset store and identity provider named
// by config and serves until the listener fails.
func RunServer(config *cfg.Properties) error {
	gin.SetMode(ginMode(config))

	repo, err := db.NewDataBase(config)
	if err != nil {
		return fmt.Errorf("database not respond: %w", err)
	}
	defer repo.Close()

	assets, err := NewAssetStore(config)
	if err != nil {
		return err
	}
	services := app.NewServices(repo, app.NewAssetCleaner(assets, config.Asset.Timeout))

	var (
		auth        Authenticator
		authHandler *AuthHandler
		tokenCookie string
	)
	switch config.Auth.Mode {
	case cfg.AuthModeOIDC:
		authHandler, err = NewAuthHandler(context.Background(), config)
		if err != nil {
			return err
		}
		auth = authHandler.Authenticator()
		tokenCookie = config.Auth.IDTokenCookieName
	default:
		auth = NewJWTAuthenticator(config.Auth.SigningKey)
		tokenCookie = config.Auth.AccessTokenCookieName
	}

	router := NewRouter(config, services, auth, tokenCookie, authHandler)
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", config.Server.Port),
		Handler:     router,
		ReadTimeout: config.Server.ReadTimeout,
	}
	log.Printf("[server] listening on %s", srv.Addr)
	return srv.ListenAndServe()
}

// ginMode keeps gin's debug output only at LOG_LEVEL=DEBUG outside
// release builds.
func ginMode(config *cfg.Properties) string {
	if config.Server.Release || !strings.EqualFold(config.LogLevel, "DEBUG") {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

// NewAssetStore builds the asset store selected by ASSET_PROVIDER. The
// "none" provider yields a nil store, which disables asset deletion.
func NewAssetStore(config *cfg.Properties) (app.AssetStore, error) {
	switch config.Asset.Provider {
	case cfg.AssetProviderCloudinary:
		client, err := app.NewCloudinaryClient(config.Cloudinary.URL,
			config.Cloudinary.CloudName, config.Cloudinary.APIKey, config.Cloudinary.APISecret)
		if err != nil {
			return nil, fmt.Errorf("could not configure cloudinary: %w", err)
		}
		return client, nil
	case cfg.AssetProviderMinio:
		client, err := app.NewMinioS3Client(
			config.S3.Host,
			config.S3.AccessKey,
			config.S3.SecretKey,
			config.S3.Bucket,
			config.S3.Folder,
			config.S3.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("could not connect to minio: %w", err)
		}
		return client, nil
	}
	log.Printf("[server] asset provider %q, image deletion disabled", config.Asset.Provider)
	return nil, nil
}

// NewRouter registers every route. authHandler may be nil, in which case
// the OIDC login routes are not mounted.
func NewRouter(config *cfg.Properties, services *app.Services, auth Authenticator, tokenCookie string, authHandler *AuthHandler) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "User-Agent", "Referrer", "Host"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if config.Server.Pprof {
		pprof.Register(router)
	}

	handler := NewHandler(services)
	router.GET("/health", handler.GetHealth)

	if authHandler != nil {
		router.GET("/login", authHandler.Login)
		router.GET("/signin", authHandler.Signin)
		router.GET("/logout", authHandler.Logout)
		router.GET("/callback", authHandler.Callback)
		router.GET("/account", authHandler.Account)
	}

	api := router.Group("/api", identify(auth, tokenCookie))

	api.GET("/stores", handler.GetStores)
	api.POST("/stores", handler.PostStore)
	api.GET("/stores/:storeId", handler.GetStore)
	api.PATCH("/stores/:storeId", handler.PatchStore)
	api.DELETE("/stores/:storeId", handler.DeleteStore)

	api.GET("/:storeId/billboards", handler.GetBillboards)
	api.POST("/:storeId/billboards", handler.PostBillboard)
	api.GET("/:storeId/billboards/:billboardId", handler.GetBillboard)
	api.PATCH("/:storeId/billboards/:billboardId", handler.PatchBillboard)
	api.DELETE("/:storeId/billboards/:billboardId", handler.DeleteBillboard)

	api.GET("/:storeId/categories", handler.GetCategories)
	api.POST("/:storeId/categories", handler.PostCategory)
	api.GET("/:storeId/categories/:categoryId", handler.GetCategory)
	api.PATCH("/:storeId/categories/:categoryId", handler.PatchCategory)
	api.DELETE("/:storeId/categories/:categoryId", handler.DeleteCategory)

	handler.attributeRoutes(api, "colors", services.Colors)
	handler.attributeRoutes(api, "sizes", services.Sizes)

	api.GET("/:storeId/products", handler.GetProducts)
	api.POST("/:storeId/products", handler.PostProduct)
	api.GET("/:storeId/products/:productId", handler.GetProduct)
	api.PATCH("/:storeId/products/:productId", handler.PatchProduct)
	api.DELETE("/:storeId/products/:productId", handler.DeleteProduct)

	router.NoRoute(func(ctx *gin.Context) { ctx.String(http.StatusNotFound, "Not found") })
	return router
}
