package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/configs"
	"github.com/devnaspi/ThelittlelemonApi/controllers"
	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/middlewares"
	"github.com/devnaspi/ThelittlelemonApi/repository"
	"github.com/devnaspi/ThelittlelemonApi/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	staffSvc := services.NewStaffService(userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authed := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	managerOnly := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager)
	customerOnly := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleCustomer)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Categories
	r.GET("/categories", authed, menuCtrl.ListCategories)
	r.POST("/categories", managerOnly, menuCtrl.CreateCategory)

	// Menu items
	r.GET("/menu-items", authed, menuCtrl.List)
	r.POST("/menu-items", managerOnly, menuCtrl.Create)
	r.GET("/menu-items/:id", authed, menuCtrl.Detail)
	r.PUT("/menu-items/:id", managerOnly, menuCtrl.Replace)
	r.DELETE("/menu-items/:id", managerOnly, menuCtrl.Delete)
	// item-scoped create, kept from the original API surface
	r.POST("/menu-items/:id", managerOnly, menuCtrl.Create)

	// Staff rosters (manager only); both rosters share the parameterized
	// controller so the role check cannot drift between copies.
	groups := r.Group("/groups", managerOnly)
	{
		groups.GET("/manager/users", staffCtrl.List(entity.RoleManager))
		groups.POST("/manager/users", staffCtrl.Add(entity.RoleManager))
		groups.GET("/manager/users/:id", staffCtrl.Detail(entity.RoleManager))
		groups.DELETE("/manager/users/:id", staffCtrl.Remove(entity.RoleManager))

		groups.GET("/delivery-crew/users", staffCtrl.List(entity.RoleDeliveryCrew))
		groups.POST("/delivery-crew/users", staffCtrl.Add(entity.RoleDeliveryCrew))
		groups.GET("/delivery-crew/users/:id", staffCtrl.Detail(entity.RoleDeliveryCrew))
		groups.DELETE("/delivery-crew/users/:id", staffCtrl.Remove(entity.RoleDeliveryCrew))
	}

	// Cart — customers only; staff roles are rejected outright
	cart := r.Group("/cart", customerOnly)
	{
		cart.GET("/menu-items", cartCtrl.Get)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleCustomer), orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager), orderCtrl.Delete)
	}
}
