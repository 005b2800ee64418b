package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cinvoluntario/internal/delivery/http/response"
	"cinvoluntario/internal/domain/entity"
)

// EstudanteHandler serves the student profile endpoints.
type EstudanteHandler struct {
	registry *Registry
}

// NewEstudanteHandler is the constructor for EstudanteHandler, injected by Fx.
func NewEstudanteHandler(registry *Registry) *EstudanteHandler {
	return &EstudanteHandler{registry: registry}
}

// List returns student profiles, honoring curso/vinculo/full_name filters.
func (h *EstudanteHandler) List(c echo.Context) error {
	estudantes := h.registry.Estudantes(
		c.QueryParam("curso"),
		c.QueryParam("vinculo"),
		c.QueryParam("full_name"),
	)

	return response.JSON(c, http.StatusOK, estudantes)
}

// Get returns one student profile by ID.
func (h *EstudanteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	estudante, found := h.registry.EstudanteByID(id)
	if !found {
		return response.NotFound(c, "Estudante não encontrado")
	}

	return response.JSON(c, http.StatusOK, estudante)
}

// Create inserts a new student profile.
func (h *EstudanteHandler) Create(c echo.Context) error {
	var input entity.EstudanteCreate
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}
	if input.FullName == "" {
		return response.UnprocessableEntity(c, "Campo full_name é obrigatório")
	}

	return response.JSON(c, http.StatusCreated, h.registry.CreateEstudante(input))
}

// Update replaces a student profile.
func (h *EstudanteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	var input entity.EstudanteCreate
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}

	estudante, found := h.registry.UpdateEstudante(id, input)
	if !found {
		return response.NotFound(c, "Estudante não encontrado")
	}

	return response.JSON(c, http.StatusOK, estudante)
}

// Delete removes a student profile.
func (h *EstudanteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	if !h.registry.DeleteEstudante(id) {
		return response.NotFound(c, "Estudante não encontrado")
	}

	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
