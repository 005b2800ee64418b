package usecase

import (
	"context"

	"cinvoluntario/internal/domain/entity"
)

// ProjetoUsecase exposes the volunteer project collection of the backend API.
type ProjetoUsecase interface {
	List(ctx context.Context) entity.Envelope[[]entity.Projeto]
	Get(ctx context.Context, projetoID int64) entity.Envelope[entity.Projeto]
	Create(ctx context.Context, input entity.ProjetoCreate) entity.Envelope[entity.Projeto]
	Update(ctx context.Context, projetoID int64, input entity.ProjetoCreate) entity.Envelope[entity.Projeto]
	Delete(ctx context.Context, projetoID int64) entity.Envelope[struct{}]
	ListByDisciplina(ctx context.Context, disciplinaID int64) entity.Envelope[[]entity.Projeto]
}

// MatriculaUsecase exposes project enrollments.
type MatriculaUsecase interface {
	ListByProjeto(ctx context.Context, projetoID int64) entity.Envelope[[]entity.Matricula]
	Enroll(ctx context.Context, input entity.MatriculaCreate) entity.Envelope[entity.Matricula]
}
