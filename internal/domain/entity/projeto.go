package entity

// Projeto is a volunteer project offered by a partner organization and run
// under a course discipline.
type Projeto struct {
	ProjetoID    int64  `json:"projeto_id"`
	DisciplinaID *int64 `json:"disciplina_id,omitempty"`
	NGOID        *int64 `json:"ngo_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ProjetoCreate is the payload for creating or updating a project.
type ProjetoCreate struct {
	DisciplinaID *int64 `json:"disciplina_id,omitempty"`
	NGOID        *int64 `json:"ngo_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Matricula is a student's enrollment in a project.
type Matricula struct {
	MatriculaID   int64  `json:"matricula_id"`
	StudentID     int64  `json:"student_id"`
	ProjetoID     int64  `json:"projeto_id"`
	MatriculaDate string `json:"matricula_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

// MatriculaCreate is the payload for enrolling a student in a project.
type MatriculaCreate struct {
	StudentID     int64  `json:"student_id"`
	ProjetoID     int64  `json:"projeto_id"`
	MatriculaDate string `json:"matricula_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ONG is a partner non-profit organization.
type ONG struct {
	NGOID       int64  `json:"ngo_id"`
	Name        string `json:"ngo_name"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Disciplina is a course discipline that projects belong to.
type Disciplina struct {
	DisciplinaID int64  `json:"disciplina_id"`
	ProfessorID  *int64 `json:"professor_id,omitempty"`
	Nome         string `json:"nome_disciplina"`
	Description  string `json:"description,omitempty"`
}
