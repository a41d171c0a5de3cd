package domain

import "time"

// BelbinResultPending es el valor guardado mientras el empleado no completo el test.
const BelbinResultPending = "N/A"

type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsEmployee   bool      `json:"is_employee"`
	IsEmployer   bool      `json:"is_employer"`
	CreatedAt    time.Time `json:"created_at"`
}

type Employee struct {
	ID               string    `json:"id"`
	AccountID        string    `json:"account_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	City             string    `json:"city,omitempty"`
	IsActive         bool      `json:"is_active"`
	BelbinTestResult string    `json:"belbin_test_result"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FullName replica el formato "nombre apellido" que muestran los listados.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}
