// Package router contains routing setup for the stub backend.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cinvoluntario/internal/delivery/http/middleware"
	"cinvoluntario/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	EstudanteHandler *handler.EstudanteHandler
	ProjetoHandler   *handler.ProjetoHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth       *handler.AuthHandler
	users      *handler.UserHandler
	estudantes *handler.EstudanteHandler
	projetos   *handler.ProjetoHandler
	authMw     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router. Fx injects the handlers.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		users:      params.UserHandler,
		estudantes: params.EstudanteHandler,
		projetos:   params.ProjetoHandler,
		authMw:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the API routes the production backend exposes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.auth.Token)
		authGroup.POST("/logout", r.auth.Logout, r.authMw.Authenticate)
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("/", r.users.Create)
		userGroup.GET("/", r.users.List, r.authMw.Authenticate)
		userGroup.GET("/me", r.users.Me, r.authMw.Authenticate)
	}

	estudanteGroup := e.Group("/estudantes", r.authMw.Authenticate)
	{
		estudanteGroup.GET("/", r.estudantes.List)
		estudanteGroup.POST("/", r.estudantes.Create)
		estudanteGroup.GET("/:id", r.estudantes.Get)
		estudanteGroup.PUT("/:id", r.estudantes.Update)
		estudanteGroup.DELETE("/:id", r.estudantes.Delete)
	}

	projetoGroup := e.Group("/projetos", r.authMw.Authenticate)
	{
		projetoGroup.GET("/", r.projetos.List)
		projetoGroup.POST("/", r.projetos.Create)
		projetoGroup.GET("/:id", r.projetos.Get)
		projetoGroup.PUT("/:id", r.projetos.Update)
		projetoGroup.DELETE("/:id", r.projetos.Delete, r.authMw.RequireRole("professor"))
	}

	matriculaGroup := e.Group("/matriculas", r.authMw.Authenticate)
	{
		matriculaGroup.GET("/project/:id", r.projetos.Matriculas)
		matriculaGroup.POST("/", r.projetos.Enroll)
	}
}
