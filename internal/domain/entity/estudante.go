package entity

// Estudante is a student volunteer profile linked to a User account.
type Estudante struct {
	StudentID int64  `json:"student_id"`
	UserID    int64  `json:"user_id"`
	FullName  string `json:"full_name"`
	Vinculo   string `json:"vinculo,omitempty"`
	Curso     string `json:"curso,omitempty"`
}

// EstudanteCreate is the payload for creating or updating a student profile.
type EstudanteCreate struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Vinculo  string `json:"vinculo,omitempty"`
	Curso    string `json:"curso,omitempty"`
}
