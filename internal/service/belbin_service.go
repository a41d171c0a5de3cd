package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/domain"
	"hepi-staff/internal/repository"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
)

var (
	ErrAssessmentNotConfigured = errors.New("assessment service not configured")
	ErrAssessmentInvalidInput  = errors.New("assessment invalid input")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrNotEmployee             = errors.New("account is not an employee")
	ErrRateLimited             = errors.New("rate limited")
)

// BelbinService orquesta el test de roles de Belbin: puntua envios, los guarda y los consulta.
type BelbinService struct {
	engine      *belbin.Engine
	accounts    repository.AccountRepository
	employees   repository.EmployeeRepository
	assessments repository.AssessmentRepository
	limiter     SubmissionRateLimiter
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string
}

func NewBelbinService(
	engine *belbin.Engine,
	accounts repository.AccountRepository,
	employees repository.EmployeeRepository,
	assessments repository.AssessmentRepository,
	limiter SubmissionRateLimiter,
	logger *zap.Logger,
) *BelbinService {
	if engine == nil {
		engine = belbin.DefaultEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BelbinService{
		engine:      engine,
		accounts:    accounts,
		employees:   employees,
		assessments: assessments,
		limiter:     limiter,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// Questionnaire devuelve las secciones para armar el formulario.
func (s *BelbinService) Questionnaire() belbin.Questionnaire {
	if s == nil || s.engine == nil {
		return belbin.DefaultQuestionnaire()
	}
	return s.engine.Questionnaire()
}

// SubmitAnswers puntua el formulario y guarda el resultado del empleado. Los errores de
// validacion del motor se devuelven sin envolver para poder inspeccionarlos con errors.As.
func (s *BelbinService) SubmitAnswers(ctx context.Context, accountID string, form map[string]string) (domain.BelbinAssessment, error) {
	if err := s.ready(); err != nil {
		return domain.BelbinAssessment{}, err
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || form == nil {
		return domain.BelbinAssessment{}, ErrAssessmentInvalidInput
	}

	employee, err := s.resolveEmployee(ctx, accountID)
	if err != nil {
		return domain.BelbinAssessment{}, err
	}

	result, err := s.engine.ScoreForm(form)
	if err != nil {
		s.logger.Info("belbin submission rejected", zap.String("employee_id", employee.ID), zap.Error(err))
		return domain.BelbinAssessment{}, err
	}

	// Solo las evaluaciones que se van a guardar consumen cupo.
	if s.limiter != nil && !s.limiter.Allow(accountID) {
		return domain.BelbinAssessment{}, ErrRateLimited
	}

	assessment := domain.BelbinAssessment{
		ID:         s.newID(),
		EmployeeID: employee.ID,
		Result:     result.Encoded,
		TopTrait:   result.TopTrait,
		Scores:     result.Scores,
		Levels:     result.Levels,
		Profile:    domain.TraitProfile(result.Scores),
		CreatedAt:  s.now(),
	}
	if err := s.assessments.Record(ctx, assessment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BelbinAssessment{}, ErrEmployeeNotFound
		}
		return domain.BelbinAssessment{}, fmt.Errorf("record assessment: %w", err)
	}

	s.logger.Info("belbin assessment recorded",
		zap.String("employee_id", employee.ID),
		zap.String("assessment_id", assessment.ID),
		zap.String("result", assessment.Result),
		zap.String("top_trait", assessment.TopTrait),
	)
	return assessment, nil
}

// LatestResult devuelve la ultima evaluacion del empleado de la cuenta.
func (s *BelbinService) LatestResult(ctx context.Context, accountID string) (domain.BelbinAssessment, error) {
	if err := s.ready(); err != nil {
		return domain.BelbinAssessment{}, err
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.BelbinAssessment{}, ErrAssessmentInvalidInput
	}
	employee, err := s.resolveEmployee(ctx, accountID)
	if err != nil {
		return domain.BelbinAssessment{}, err
	}
	return s.latest(ctx, employee.ID)
}

// SimilarEmployees busca los empleados cuyo ultimo perfil de roles esta mas cerca del propio.
func (s *BelbinService) SimilarEmployees(ctx context.Context, accountID string, limit int) ([]domain.SimilarEmployee, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrAssessmentInvalidInput
	}
	switch {
	case limit <= 0:
		limit = defaultSimilarLimit
	case limit > maxSimilarLimit:
		limit = maxSimilarLimit
	}

	employee, err := s.resolveEmployee(ctx, accountID)
	if err != nil {
		return nil, err
	}
	own, err := s.latest(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	similar, err := s.assessments.FindSimilar(ctx, employee.ID, own.Profile, limit)
	if err != nil {
		return nil, fmt.Errorf("find similar: %w", err)
	}
	return similar, nil
}

func (s *BelbinService) ready() error {
	if s == nil || s.engine == nil || s.accounts == nil || s.employees == nil || s.assessments == nil {
		return ErrAssessmentNotConfigured
	}
	return nil
}

func (s *BelbinService) latest(ctx context.Context, employeeID string) (domain.BelbinAssessment, error) {
	a, err := s.assessments.LatestByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BelbinAssessment{}, ErrAssessmentNotFound
		}
		return domain.BelbinAssessment{}, fmt.Errorf("latest assessment: %w", err)
	}
	return a, nil
}

func (s *BelbinService) resolveEmployee(ctx context.Context, accountID string) (domain.Employee, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("get account: %w", err)
	}
	if !account.IsEmployee {
		return domain.Employee{}, ErrNotEmployee
	}
	employee, err := s.employees.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return employee, nil
}
