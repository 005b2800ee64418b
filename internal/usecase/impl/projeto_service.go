package impl

import (
	"context"
	"fmt"

	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/infra/rest"
	"cinvoluntario/internal/usecase"
)

// projetoService implements ProjetoUsecase over the typed REST client.
type projetoService struct {
	client *rest.Client
}

// NewProjetoService is the constructor for projetoService.
func NewProjetoService(client *rest.Client) usecase.ProjetoUsecase {
	return &projetoService{client: client}
}

func (srv *projetoService) List(ctx context.Context) entity.Envelope[[]entity.Projeto] {
	return rest.Get[[]entity.Projeto](ctx, srv.client, "/projetos/")
}

func (srv *projetoService) Get(ctx context.Context, projetoID int64) entity.Envelope[entity.Projeto] {
	return rest.Get[entity.Projeto](ctx, srv.client, fmt.Sprintf("/projetos/%d", projetoID))
}

func (srv *projetoService) Create(ctx context.Context, input entity.ProjetoCreate) entity.Envelope[entity.Projeto] {
	return rest.Post[entity.Projeto](ctx, srv.client, "/projetos/", input)
}

func (srv *projetoService) Update(ctx context.Context, projetoID int64, input entity.ProjetoCreate) entity.Envelope[entity.Projeto] {
	return rest.Put[entity.Projeto](ctx, srv.client, fmt.Sprintf("/projetos/%d", projetoID), input)
}

func (srv *projetoService) Delete(ctx context.Context, projetoID int64) entity.Envelope[struct{}] {
	return rest.Delete[struct{}](ctx, srv.client, fmt.Sprintf("/projetos/%d", projetoID))
}

func (srv *projetoService) ListByDisciplina(ctx context.Context, disciplinaID int64) entity.Envelope[[]entity.Projeto] {
	return rest.Get[[]entity.Projeto](ctx, srv.client, fmt.Sprintf("/projetos/?disciplina_id=%d", disciplinaID))
}

// matriculaService implements MatriculaUsecase over the typed REST client.
type matriculaService struct {
	client *rest.Client
}

// NewMatriculaService is the constructor for matriculaService.
func NewMatriculaService(client *rest.Client) usecase.MatriculaUsecase {
	return &matriculaService{client: client}
}

func (srv *matriculaService) ListByProjeto(ctx context.Context, projetoID int64) entity.Envelope[[]entity.Matricula] {
	return rest.Get[[]entity.Matricula](ctx, srv.client, fmt.Sprintf("/matriculas/project/%d", projetoID))
}

func (srv *matriculaService) Enroll(ctx context.Context, input entity.MatriculaCreate) entity.Envelope[entity.Matricula] {
	return rest.Post[entity.Matricula](ctx, srv.client, "/matriculas/", input)
}
