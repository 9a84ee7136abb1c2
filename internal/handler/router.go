package handler

import (
	"net/http"

	"mealdash-be/internal/cart"
	"mealdash-be/internal/category"
	"mealdash-be/internal/courier"
	"mealdash-be/internal/metrics"
	"mealdash-be/internal/middleware"
	"mealdash-be/internal/order"
	"mealdash-be/internal/product"
	"mealdash-be/internal/review"
	"mealdash-be/internal/store"
	"mealdash-be/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	User     user.Service
	Category category.Service
	Store    store.Service
	Product  product.Service
	Courier  courier.Service
	Cart     cart.Service
	Order    order.Service
	Review   review.Service
}

// NewRouter builds the HTTP surface. Auth runs on every request so that
// rate limiting can key on the user; RequireAuth guards the routes that
// need an identity.
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Auth())
	r.Use(middleware.RateLimit())

	authH := NewAuthHandler(s.User)
	categoryH := NewCategoryHandler(s.Category)
	storeH := NewStoreHandler(s.Store)
	productH := NewProductHandler(s.Product)
	courierH := NewCourierHandler(s.Courier)
	cartH := NewCartHandler(s.Cart)
	orderH := NewOrderHandler(s.Order)
	reviewH := NewReviewHandler(s.Review)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/logout", authH.Logout)
	}

	users := r.Group("/users", middleware.RequireAuth())
	{
		users.GET("/me", authH.Me)
		users.PUT("/me", authH.UpdateProfile)
		users.DELETE("/me", authH.DeleteAccount)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryH.List)
		categories.GET("/:id", categoryH.Get)

		admin := categories.Group("", middleware.RequireAuth(),
			middleware.RequireRole(string(user.RoleAdmin)))
		admin.POST("", categoryH.Create)
		admin.PUT("/:id", categoryH.Update)
		admin.DELETE("/:id", categoryH.Delete)
	}

	stores := r.Group("/stores")
	{
		stores.GET("", storeH.Search)
		stores.GET("/:id", storeH.Get)
		stores.GET("/:id/contacts", storeH.ListContactInfos)
		stores.GET("/:id/reviews", reviewH.ListStoreReviews)

		authed := stores.Group("", middleware.RequireAuth())
		authed.POST("", storeH.Create)
		authed.PUT("/:id", storeH.Update)
		authed.DELETE("/:id", storeH.Delete)
		authed.POST("/:id/contacts", storeH.AddContactInfo)
		authed.PUT("/:id/contacts/:info_id", storeH.UpdateContactInfo)
		authed.DELETE("/:id/contacts/:info_id", storeH.DeleteContactInfo)
		authed.POST("/:id/reviews", reviewH.SubmitStoreReview)
	}

	products := r.Group("/products")
	{
		products.GET("", productH.Search)
		products.GET("/:id", productH.Get)

		authed := products.Group("", middleware.RequireAuth())
		authed.POST("", productH.Create)
		authed.PUT("/:id", productH.Update)
		authed.DELETE("/:id", productH.Delete)
	}

	combos := r.Group("/combos")
	{
		combos.GET("", productH.ListCombos)
		combos.GET("/:id", productH.GetCombo)

		authed := combos.Group("", middleware.RequireAuth())
		authed.POST("", productH.CreateCombo)
		authed.DELETE("/:id", productH.DeleteCombo)
	}

	couriers := r.Group("/couriers")
	{
		couriers.GET("", courierH.List)
		couriers.GET("/:id", courierH.Get)
		couriers.GET("/:id/reviews", reviewH.ListCourierReviews)

		authed := couriers.Group("", middleware.RequireAuth())
		authed.POST("", courierH.Register)
		authed.PATCH("/:id/type", courierH.SetType)
		authed.POST("/:id/reviews", reviewH.SubmitCourierReview)

		admin := couriers.Group("", middleware.RequireAuth(),
			middleware.RequireRole(string(user.RoleAdmin)))
		admin.DELETE("/:id", courierH.Delete)
	}

	cartGroup := r.Group("/cart", middleware.RequireAuth())
	{
		cartGroup.GET("", cartH.Get)
		cartGroup.POST("/items", cartH.AddItem)
		cartGroup.DELETE("/items/:product_id", cartH.RemoveItem)
		cartGroup.DELETE("", cartH.Clear)
	}

	orders := r.Group("/orders", middleware.RequireAuth())
	{
		orders.GET("", orderH.List)
		orders.GET("/:id", orderH.Get)
		orders.POST("", orderH.Create)
		orders.POST("/:id/courier", orderH.AssignCourier)
		orders.PATCH("/:id/status", orderH.AdvanceStatus)
	}

	return r
}
