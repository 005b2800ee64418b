package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cinvoluntario/internal/delivery/http/response"
	"cinvoluntario/internal/domain/entity"
)

// ProjetoHandler serves the project and enrollment endpoints.
type ProjetoHandler struct {
	registry *Registry
}

// NewProjetoHandler is the constructor for ProjetoHandler, injected by Fx.
func NewProjetoHandler(registry *Registry) *ProjetoHandler {
	return &ProjetoHandler{registry: registry}
}

// List returns projects, honoring the disciplina_id query filter.
func (h *ProjetoHandler) List(c echo.Context) error {
	var disciplinaID *int64
	if raw := c.QueryParam("disciplina_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.UnprocessableEntity(c, "Parâmetro disciplina_id inválido")
		}
		disciplinaID = &id
	}

	return response.JSON(c, http.StatusOK, h.registry.Projetos(disciplinaID))
}

// Get returns one project by ID.
func (h *ProjetoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	projeto, found := h.registry.ProjetoByID(id)
	if !found {
		return response.NotFound(c, "Projeto não encontrado")
	}

	return response.JSON(c, http.StatusOK, projeto)
}

// Create inserts a new project.
func (h *ProjetoHandler) Create(c echo.Context) error {
	var input entity.ProjetoCreate
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}
	if input.Name == "" {
		return response.UnprocessableEntity(c, "Campo name é obrigatório")
	}

	return response.JSON(c, http.StatusCreated, h.registry.CreateProjeto(input))
}

// Update replaces a project.
func (h *ProjetoHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	var input entity.ProjetoCreate
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}

	projeto, found := h.registry.UpdateProjeto(id, input)
	if !found {
		return response.NotFound(c, "Projeto não encontrado")
	}

	return response.JSON(c, http.StatusOK, projeto)
}

// Delete removes a project and its enrollments.
func (h *ProjetoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	if !h.registry.DeleteProjeto(id) {
		return response.NotFound(c, "Projeto não encontrado")
	}

	return c.NoContent(http.StatusNoContent)
}

// Matriculas lists enrollments for a project.
func (h *ProjetoHandler) Matriculas(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "Identificador inválido")
	}

	return response.JSON(c, http.StatusOK, h.registry.MatriculasByProjeto(id))
}

// Enroll creates an enrollment.
func (h *ProjetoHandler) Enroll(c echo.Context) error {
	var input entity.MatriculaCreate
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}

	matricula, err := h.registry.CreateMatricula(input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.JSON(c, http.StatusCreated, matricula)
}
