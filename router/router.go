package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danuartha/warung-pos/controllers"
	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/middlewares"
	"github.com/danuartha/warung-pos/services"
)

// Deps membawa semua service yang dipakai controller.
type Deps struct {
	Store    *database.Store
	Basket   *services.BasketService
	Menu     *services.MenuService
	Orders   *services.OrderService
	Stats    *services.StatsService
	Backup   *services.BackupService
	Rollover *services.RolloverService
}

// NewDeps merangkai seluruh service di atas satu koneksi database.
func NewDeps(db *gorm.DB) Deps {
	store := database.NewStore(db)
	basket := services.NewBasketService()
	return Deps{
		Store:    store,
		Basket:   basket,
		Menu:     services.NewMenuService(store),
		Orders:   services.NewOrderService(store, basket),
		Stats:    services.NewStatsService(store),
		Backup:   services.NewBackupService(store),
		Rollover: services.NewRolloverService(store),
	}
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController()
	menuCtrl := controllers.NewMenuController(deps.Menu)
	basketCtrl := controllers.NewBasketController(deps.Basket, deps.Store)
	orderCtrl := controllers.NewOrderController(deps.Orders, deps.Stats)
	backupCtrl := controllers.NewBackupController(deps.Backup)
	settingsCtrl := controllers.NewSettingsController(deps.Store, deps.Rollover)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)

	// Stream event untuk layer presentasi
	r.GET("/ws", controllers.EventsHandler)

	// Katalog untuk permukaan pemilihan
	r.GET("/menu", menuCtrl.GetActiveMenu)
	r.GET("/menu/most-used", menuCtrl.GetMostUsed)

	// Keranjang
	basket := r.Group("/basket")
	{
		basket.GET("", basketCtrl.GetBasket)
		basket.POST("/items", basketCtrl.AddToBasket)
		basket.PATCH("/items/:item_id/quantity", basketCtrl.UpdateQuantity)
		basket.PATCH("/items/:item_id/note", basketCtrl.UpdateNote)
		basket.DELETE("/items/:item_id", basketCtrl.RemoveLine)
		basket.DELETE("", basketCtrl.ClearBasket)
	}

	// Order
	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.PATCH("/:order_id/status", orderCtrl.UpdateOrderStatus)
		orders.PATCH("/status", orderCtrl.BulkUpdateStatus)
	}

	r.GET("/stats", orderCtrl.GetStats)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin", middlewares.AdminOnly())
	{
		admin.GET("/menu", menuCtrl.GetFullMenu)
		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)
		admin.POST("/menu/:item_id/favorite", menuCtrl.ToggleFavorite)
		admin.POST("/menu/restore-defaults", menuCtrl.RestoreDefaults)

		admin.GET("/backup", backupCtrl.ExportBackup)
		admin.POST("/backup", backupCtrl.ImportBackup)
		admin.GET("/orders.csv", backupCtrl.ExportCSV)

		admin.GET("/settings", settingsCtrl.GetSettings)
		admin.PATCH("/settings", settingsCtrl.UpdateSettings)
		admin.POST("/close-shop", settingsCtrl.CloseShop)
		admin.POST("/cleanup", settingsCtrl.CleanupOrders)
	}

	return r
}
