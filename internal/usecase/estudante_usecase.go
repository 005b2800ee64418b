package usecase

import (
	"context"

	"cinvoluntario/internal/domain/entity"
)

// EstudanteUsecase exposes the student collection of the backend API.
type EstudanteUsecase interface {
	List(ctx context.Context) entity.Envelope[[]entity.Estudante]
	Get(ctx context.Context, studentID int64) entity.Envelope[entity.Estudante]
	Create(ctx context.Context, input entity.EstudanteCreate) entity.Envelope[entity.Estudante]
	Update(ctx context.Context, studentID int64, input entity.EstudanteCreate) entity.Envelope[entity.Estudante]
	Delete(ctx context.Context, studentID int64) entity.Envelope[struct{}]

	// Server-side filters over the same collection.
	ListByCurso(ctx context.Context, curso string) entity.Envelope[[]entity.Estudante]
	ListByVinculo(ctx context.Context, vinculo string) entity.Envelope[[]entity.Estudante]
	SearchByName(ctx context.Context, nome string) entity.Envelope[[]entity.Estudante]
}
