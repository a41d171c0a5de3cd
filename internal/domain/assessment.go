package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"

	"hepi-staff/internal/belbin"
)

// BelbinAssessment es una corrida completa del test de roles de Belbin para un empleado.
type BelbinAssessment struct {
	ID         string              `json:"id"`
	EmployeeID string              `json:"employee_id"`
	Result     string              `json:"result"`
	TopTrait   string              `json:"top_trait"`
	Scores     []belbin.TraitScore `json:"scores"`
	Levels     []belbin.TraitLevel `json:"levels"`
	Profile    pgvector.Vector     `json:"-"` // puntajes por rol, en el orden de definicion
	CreatedAt  time.Time           `json:"created_at"`
}

// SimilarEmployee es un vecino cercano en el espacio de puntajes por rol.
type SimilarEmployee struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Result     string    `json:"result"`
	TopTrait   string    `json:"top_trait"`
	Distance   float64   `json:"distance"`
	AssessedAt time.Time `json:"assessed_at"`
}

// TraitProfile convierte los puntajes en el vector que se guarda en pgvector.
func TraitProfile(scores []belbin.TraitScore) pgvector.Vector {
	values := make([]float32, len(scores))
	for i, s := range scores {
		values[i] = float32(s.Value)
	}
	return pgvector.NewVector(values)
}
