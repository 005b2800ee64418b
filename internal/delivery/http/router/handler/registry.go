// Package handler contains the HTTP handlers for the stub backend.
package handler

import (
	"strings"
	"sync"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
)

// registryAccount pairs a user row with its password hash.
type registryAccount struct {
	user entity.User
	hash string
}

// Registry holds the stub backend's in-memory tables. It is seeded from the
// same identity table the local auth mode uses, so switching a client
// between local mode and the stub changes nothing observable.
type Registry struct {
	mu sync.RWMutex

	accounts map[int64]*registryAccount
	index    map[string]int64 // lowercased username and email -> user ID

	estudantes map[int64]*entity.Estudante
	projetos   map[int64]*entity.Projeto
	matriculas map[int64]*entity.Matricula

	nextUserID      int64
	nextEstudanteID int64
	nextProjetoID   int64
	nextMatriculaID int64
}

// NewRegistry builds the tables and seeds the identity rows from config.
func NewRegistry(cfg *config.Config, hasher service.PasswordHasher) (*Registry, error) {
	r := &Registry{
		accounts:   make(map[int64]*registryAccount),
		index:      make(map[string]int64),
		estudantes: make(map[int64]*entity.Estudante),
		projetos:   make(map[int64]*entity.Projeto),
		matriculas: make(map[int64]*entity.Matricula),
	}

	for _, seed := range cfg.Auth.Seeds {
		role := entity.NormalizeRole(seed.Role)
		if !role.IsValid() {
			return nil, errors.Errorf("seed user %q has unknown role %q", seed.Username, seed.Role)
		}

		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash seed password")
		}

		user := entity.User{
			Username: seed.Username,
			Email:    seed.Email,
			Role:     role,
			Name:     seed.Name,
		}
		if user.Name == "" {
			user.Name = user.Username
		}
		created, err := r.insertAccount(user, hash)
		if err != nil {
			return nil, err
		}

		// Student accounts get a matching profile row.
		if role == entity.RoleAluno {
			r.nextEstudanteID++
			r.estudantes[r.nextEstudanteID] = &entity.Estudante{
				StudentID: r.nextEstudanteID,
				UserID:    created.ID,
				FullName:  user.Name,
				Vinculo:   "graduacao",
			}
		}
	}

	return r, nil
}

// insertAccount registers the user under its username and email. Caller must
// hold the write lock except during construction.
func (r *Registry) insertAccount(user entity.User, hash string) (*entity.User, error) {
	usernameKey := strings.ToLower(user.Username)
	emailKey := strings.ToLower(user.Email)
	if _, taken := r.index[usernameKey]; taken {
		return nil, errors.Errorf("username %q already registered", user.Username)
	}
	if _, taken := r.index[emailKey]; taken {
		return nil, errors.Errorf("email %q already registered", user.Email)
	}

	r.nextUserID++
	user.ID = r.nextUserID
	r.accounts[user.ID] = &registryAccount{user: user, hash: hash}
	r.index[usernameKey] = user.ID
	r.index[emailKey] = user.ID

	return &r.accounts[user.ID].user, nil
}

// LookupCredential resolves an identifier (username or email) to the user
// and its password hash.
func (r *Registry) LookupCredential(identifier string) (*entity.User, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.index[strings.ToLower(identifier)]
	if !ok {
		return nil, "", false
	}
	acc := r.accounts[id]
	user := acc.user

	return &user, acc.hash, true
}

// UserByID returns the user row for an ID.
func (r *Registry) UserByID(id int64) (*entity.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, false
	}
	user := acc.user

	return &user, true
}

// Users lists all user rows.
func (r *Registry) Users() []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc.user)
	}

	return out
}

// CreateUser inserts a new account. Returns false when the username or email
// is already taken.
func (r *Registry) CreateUser(user entity.User, hash string) (*entity.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created, err := r.insertAccount(user, hash)
	if err != nil {
		return nil, false
	}

	return created, true
}

// Estudantes lists student profiles, optionally filtered.
func (r *Registry) Estudantes(curso, vinculo, nome string) []entity.Estudante {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Estudante, 0, len(r.estudantes))
	for _, e := range r.estudantes {
		if curso != "" && !strings.EqualFold(e.Curso, curso) {
			continue
		}
		if vinculo != "" && !strings.EqualFold(e.Vinculo, vinculo) {
			continue
		}
		if nome != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(nome)) {
			continue
		}
		out = append(out, *e)
	}

	return out
}

// EstudanteByID returns one student profile.
func (r *Registry) EstudanteByID(id int64) (*entity.Estudante, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.estudantes[id]
	if !ok {
		return nil, false
	}
	out := *e

	return &out, true
}

// CreateEstudante inserts a student profile.
func (r *Registry) CreateEstudante(input entity.EstudanteCreate) entity.Estudante {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextEstudanteID++
	e := entity.Estudante{
		StudentID: r.nextEstudanteID,
		UserID:    input.UserID,
		FullName:  input.FullName,
		Vinculo:   input.Vinculo,
		Curso:     input.Curso,
	}
	r.estudantes[e.StudentID] = &e

	return e
}

// UpdateEstudante replaces a student profile's mutable fields.
func (r *Registry) UpdateEstudante(id int64, input entity.EstudanteCreate) (*entity.Estudante, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.estudantes[id]
	if !ok {
		return nil, false
	}
	e.UserID = input.UserID
	e.FullName = input.FullName
	e.Vinculo = input.Vinculo
	e.Curso = input.Curso
	out := *e

	return &out, true
}

// DeleteEstudante removes a student profile.
func (r *Registry) DeleteEstudante(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.estudantes[id]; !ok {
		return false
	}
	delete(r.estudantes, id)

	return true
}

// Projetos lists projects, optionally filtered by discipline.
func (r *Registry) Projetos(disciplinaID *int64) []entity.Projeto {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Projeto, 0, len(r.projetos))
	for _, p := range r.projetos {
		if disciplinaID != nil && (p.DisciplinaID == nil || *p.DisciplinaID != *disciplinaID) {
			continue
		}
		out = append(out, *p)
	}

	return out
}

// ProjetoByID returns one project.
func (r *Registry) ProjetoByID(id int64) (*entity.Projeto, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projetos[id]
	if !ok {
		return nil, false
	}
	out := *p

	return &out, true
}

// CreateProjeto inserts a project.
func (r *Registry) CreateProjeto(input entity.ProjetoCreate) entity.Projeto {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextProjetoID++
	p := entity.Projeto{
		ProjetoID:    r.nextProjetoID,
		DisciplinaID: input.DisciplinaID,
		NGOID:        input.NGOID,
		Name:         input.Name,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       input.Status,
	}
	r.projetos[p.ProjetoID] = &p

	return p
}

// UpdateProjeto replaces a project's mutable fields.
func (r *Registry) UpdateProjeto(id int64, input entity.ProjetoCreate) (*entity.Projeto, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projetos[id]
	if !ok {
		return nil, false
	}
	p.DisciplinaID = input.DisciplinaID
	p.NGOID = input.NGOID
	p.Name = input.Name
	p.Description = input.Description
	p.StartDate = input.StartDate
	p.EndDate = input.EndDate
	p.Status = input.Status
	out := *p

	return &out, true
}

// DeleteProjeto removes a project and its enrollments.
func (r *Registry) DeleteProjeto(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projetos[id]; !ok {
		return false
	}
	delete(r.projetos, id)
	for mid, m := range r.matriculas {
		if m.ProjetoID == id {
			delete(r.matriculas, mid)
		}
	}

	return true
}

// MatriculasByProjeto lists enrollments for a project.
func (r *Registry) MatriculasByProjeto(projetoID int64) []entity.Matricula {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Matricula, 0)
	for _, m := range r.matriculas {
		if m.ProjetoID == projetoID {
			out = append(out, *m)
		}
	}

	return out
}

// CreateMatricula enrolls a student in a project. Returns false when the
// student or project does not exist, or the pair is already enrolled.
func (r *Registry) CreateMatricula(input entity.MatriculaCreate) (*entity.Matricula, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.estudantes[input.StudentID]; !ok {
		return nil, errors.New("estudante não encontrado")
	}
	if _, ok := r.projetos[input.ProjetoID]; !ok {
		return nil, errors.New("projeto não encontrado")
	}
	for _, m := range r.matriculas {
		if m.StudentID == input.StudentID && m.ProjetoID == input.ProjetoID {
			return nil, errors.New("estudante já matriculado neste projeto")
		}
	}

	r.nextMatriculaID++
	m := entity.Matricula{
		MatriculaID:   r.nextMatriculaID,
		StudentID:     input.StudentID,
		ProjetoID:     input.ProjetoID,
		MatriculaDate: input.MatriculaDate,
		Status:        input.Status,
	}
	if m.Status == "" {
		m.Status = "ativa"
	}
	r.matriculas[m.MatriculaID] = &m

	return &m, nil
}
