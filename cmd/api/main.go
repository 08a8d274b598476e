package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/config"
	appdb "github.com/deepaksinghh13/PIMS-Inventory-Management/internal/database"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/handler"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/logger"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/middleware"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/notify"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/service"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/ws"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := appdb.Migrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	appdb.Seed(db, zlog)

	hub := ws.NewHub(zlog)
	go hub.Run()

	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	notifier := notify.Multi{
		notify.NewLogNotifier(zlog),
		notify.NewHubNotifier(hub),
	}

	catalogService := service.NewCatalogService(productRepo, categoryRepo, db, zlog)
	inventoryService := service.NewInventoryService(inventoryRepo, transactionRepo, productRepo, db, notifier, hub, zlog)
	authService := service.NewAuthService(userRepo, cfg.JWT)

	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, cfg.Inventory.LowStockThreshold)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName: "PIMS Inventory Management v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	protected := api.Group("", middleware.RequireAuth(authService))
	admin := middleware.RequireRole(model.RoleAdmin)

	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", admin, productHandler.CreateProduct)
	protected.Put("/products/:id", admin, productHandler.UpdateProduct)
	protected.Delete("/products/:id", admin, productHandler.DeleteProduct)
	protected.Patch("/products/:id/price", admin, productHandler.AdjustPrice)
	protected.Post("/products/bulk-price-adjustment", admin, productHandler.AdjustBulkPrices)

	protected.Get("/categories", categoryHandler.GetCategories)
	protected.Get("/categories/:id", categoryHandler.GetCategory)
	protected.Post("/categories", admin, categoryHandler.CreateCategory)
	protected.Put("/categories/:id", admin, categoryHandler.UpdateCategory)
	protected.Delete("/categories/:id", admin, categoryHandler.DeleteCategory)

	protected.Post("/inventory", admin, inventoryHandler.CreateInventory)
	protected.Post("/inventory/:id/adjust", inventoryHandler.AdjustInventory)
	protected.Post("/inventory/audit-adjustment", admin, inventoryHandler.AuditAdjustment)
	protected.Get("/inventory/low-inventory-alert", inventoryHandler.LowInventoryAlert)
	protected.Get("/inventory/product/:productId", inventoryHandler.GetInventoryByProduct)
	protected.Get("/inventory/:id/transactions", inventoryHandler.GetTransactions)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}
