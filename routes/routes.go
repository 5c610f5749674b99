package routes

import (
	"qrmenu/configs"
	"qrmenu/controllers"
	"qrmenu/middlewares"
	"qrmenu/repository"
	"qrmenu/services"
	"qrmenu/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	callRepo := repository.NewWaiterCallRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo)

	hub := ws.NewNotificationHub(restSvc)
	go hub.Run()

	catSvc := services.NewCategoryService(db, catRepo, restRepo)
	productSvc := services.NewProductService(db, productRepo, catRepo, restRepo)
	tableSvc := services.NewTableService(tableRepo, restRepo, cfg.PublicBaseURL)
	menuSvc := services.NewMenuService(tableRepo, restRepo, catRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, tableRepo, restRepo, hub)
	callSvc := services.NewWaiterCallService(db, callRepo, tableRepo, restRepo, hub)
	exportSvc := services.NewExportService(orderRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	productCtrl := controllers.NewProductController(productSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, exportSvc)
	callCtrl := controllers.NewWaiterCallController(callSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir)

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)

	// Public customer surface, rate limited per IP
	public := api.Group("", middlewares.RateLimit("30-M"))
	{
		public.GET("/menu/:qrCode", menuCtrl.ByQRCode)
		public.POST("/orders", orderCtrl.Create)
		public.POST("/waiter-calls", callCtrl.Create)
	}

	// Owner dashboard
	auth := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/auth/user", authCtrl.Me)

		auth.GET("/restaurant", restCtrl.Get)
		auth.POST("/restaurant", restCtrl.Create)
		auth.PUT("/restaurant/:id", restCtrl.Update)
		auth.DELETE("/restaurant/:id", restCtrl.Delete)

		auth.GET("/dashboard/stats", restCtrl.DashboardStats)

		auth.GET("/categories", catCtrl.List)
		auth.POST("/categories", catCtrl.Create)
		auth.PUT("/categories/:id", catCtrl.Update)
		auth.DELETE("/categories/:id", catCtrl.Delete)

		auth.GET("/products", productCtrl.List)
		auth.POST("/products", productCtrl.Create)
		auth.PUT("/products/:id", productCtrl.Update)
		auth.DELETE("/products/:id", productCtrl.Delete)

		auth.GET("/tables", tableCtrl.List)
		auth.POST("/tables", tableCtrl.Create)
		auth.PUT("/tables/:id", tableCtrl.Update)
		auth.DELETE("/tables/:id", tableCtrl.Delete)
		auth.GET("/tables/:id/qrcode.png", tableCtrl.QRCodePNG)

		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/export", orderCtrl.ExportXLSX)
		auth.GET("/orders/:id", orderCtrl.Detail)
		auth.PUT("/orders/:id", orderCtrl.Update)

		auth.GET("/waiter-calls", callCtrl.List)
		auth.PUT("/waiter-calls/:id", callCtrl.Update)

		auth.POST("/upload", uploadCtrl.Image)
	}

	// Live dashboard events
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
