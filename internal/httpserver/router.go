package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/avoronkov/catalog-api/internal/middleware/auth"
	"github.com/avoronkov/catalog-api/internal/models"
	"github.com/avoronkov/catalog-api/internal/tokens"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *CatalogHTTP
	SearchHandler  *SearchHTTP // nil when Elasticsearch is not configured
	Tokens         *tokens.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/login", d.AuthHandler.Login)

	products := v1.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts, authmw.RequireRole(d.Tokens, models.RoleAdmin))
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
}
