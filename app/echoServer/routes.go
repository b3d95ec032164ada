package echoServer

import (
	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/auth"
	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/cart"
	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/controller/catalog"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth    *auth.Controller
	Catalog *catalog.Controller
	Cart    *cart.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/login", c.Auth.Login)
	pub.POST("/users/signup", c.Auth.Signup)
	pub.POST("/session/guest", c.Auth.GuestSession)

	pub.GET("/products", c.Catalog.List)
	pub.GET("/products/:id", c.Catalog.Detail)
	pub.GET("/products/:id/quote", c.Catalog.Quote)

	// Session-scoped (registered user or guest token)
	priv := e.Group("/v1")
	priv.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	priv.GET("/users/me", c.Auth.Me)
	priv.POST("/users/logout", c.Auth.Logout)

	priv.GET("/cart", c.Cart.Get)
	priv.POST("/cart/items", c.Cart.AddItem)
	priv.PUT("/cart/items/:id", c.Cart.UpdateItem)
	priv.DELETE("/cart/items/:id", c.Cart.RemoveItem)
	priv.DELETE("/cart", c.Cart.Clear)
	priv.POST("/cart/checkout", c.Cart.Checkout)
}
