package impl

import (
	"context"
	"fmt"
	"net/url"

	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/infra/rest"
	"cinvoluntario/internal/usecase"
)

// estudanteService implements EstudanteUsecase over the typed REST client.
type estudanteService struct {
	client *rest.Client
}

// NewEstudanteService is the constructor for estudanteService.
func NewEstudanteService(client *rest.Client) usecase.EstudanteUsecase {
	return &estudanteService{client: client}
}

func (srv *estudanteService) List(ctx context.Context) entity.Envelope[[]entity.Estudante] {
	return rest.Get[[]entity.Estudante](ctx, srv.client, "/estudantes/")
}

func (srv *estudanteService) Get(ctx context.Context, studentID int64) entity.Envelope[entity.Estudante] {
	return rest.Get[entity.Estudante](ctx, srv.client, fmt.Sprintf("/estudantes/%d", studentID))
}

func (srv *estudanteService) Create(ctx context.Context, input entity.EstudanteCreate) entity.Envelope[entity.Estudante] {
	return rest.Post[entity.Estudante](ctx, srv.client, "/estudantes/", input)
}

func (srv *estudanteService) Update(ctx context.Context, studentID int64, input entity.EstudanteCreate) entity.Envelope[entity.Estudante] {
	return rest.Put[entity.Estudante](ctx, srv.client, fmt.Sprintf("/estudantes/%d", studentID), input)
}

func (srv *estudanteService) Delete(ctx context.Context, studentID int64) entity.Envelope[struct{}] {
	return rest.Delete[struct{}](ctx, srv.client, fmt.Sprintf("/estudantes/%d", studentID))
}

func (srv *estudanteService) ListByCurso(ctx context.Context, curso string) entity.Envelope[[]entity.Estudante] {
	return rest.Get[[]entity.Estudante](ctx, srv.client, "/estudantes/?curso="+url.QueryEscape(curso))
}

func (srv *estudanteService) ListByVinculo(ctx context.Context, vinculo string) entity.Envelope[[]entity.Estudante] {
	return rest.Get[[]entity.Estudante](ctx, srv.client, "/estudantes/?vinculo="+url.QueryEscape(vinculo))
}

func (srv *estudanteService) SearchByName(ctx context.Context, nome string) entity.Envelope[[]entity.Estudante] {
	return rest.Get[[]entity.Estudante](ctx, srv.client, "/estudantes/?full_name="+url.QueryEscape(nome))
}
