package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/service"
)

// BelbinHandler expone el test de roles de Belbin.
type BelbinHandler struct {
	logger *zap.Logger
	svc    *service.BelbinService
}

func NewBelbinHandler(logger *zap.Logger, svc *service.BelbinService) *BelbinHandler {
	return &BelbinHandler{logger: logger, svc: svc}
}

type questionnaireItem struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

type questionnaireGroup struct {
	Group int                 `json:"group"`
	Name  string              `json:"name"`
	Field string              `json:"field"`
	Items []questionnaireItem `json:"items"`
}

// GetQuestionnaire maneja GET /belbin/questionnaire.
func (h *BelbinHandler) GetQuestionnaire(c *gin.Context) {
	q := h.svc.Questionnaire()
	groups := make([]questionnaireGroup, 0, q.Len())
	for i, s := range q.Sections() {
		g := questionnaireGroup{
			Group: i + 1,
			Name:  s.Name,
			Field: belbin.GroupFieldName(i + 1),
		}
		for j, text := range s.Items {
			g.Items = append(g.Items, questionnaireItem{
				Field: belbin.FieldName(belbin.Coordinate{Section: i + 1, Item: j + 1}),
				Text:  text,
			})
		}
		groups = append(groups, g)
	}
	c.JSON(http.StatusOK, gin.H{"group_total": belbin.SectionTotal, "groups": groups})
}

// SubmitAnswers maneja POST /belbin/answers.
func (h *BelbinHandler) SubmitAnswers(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Answers map[string]json.RawMessage `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid belbin answers request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assessment, err := h.svc.SubmitAnswers(c.Request.Context(), claims.AccountID, formValues(req.Answers))
	if err != nil {
		h.writeError(c, err, "could not score answers")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assessment": assessment})
}

// GetResult maneja GET /belbin/result.
func (h *BelbinHandler) GetResult(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	assessment, err := h.svc.LatestResult(c.Request.Context(), claims.AccountID)
	if err != nil {
		h.writeError(c, err, "could not load result")
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// GetSimilar maneja GET /belbin/similar?limit=N.
func (h *BelbinHandler) GetSimilar(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}
	similar, err := h.svc.SimilarEmployees(c.Request.Context(), claims.AccountID, limit)
	if err != nil {
		h.writeError(c, err, "could not find similar employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": similar})
}

func (h *BelbinHandler) writeError(c *gin.Context, err error, fallback string) {
	var (
		structural *belbin.StructuralError
		mismatch   *belbin.ValidationError
	)
	switch {
	case errors.As(err, &structural):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      belbin.ErrIncompleteSubmission.Error(),
			"missing":    fieldNames(structural.Missing),
			"unexpected": nonNil(structural.Extra),
			"invalid":    nonNil(structural.Invalid),
		})
	case errors.As(err, &mismatch):
		groups := make([]gin.H, 0, len(mismatch.Mismatches))
		for _, m := range mismatch.Mismatches {
			groups = append(groups, gin.H{
				"group":    m.Section,
				"name":     m.Name,
				"sum":      m.Sum,
				"expected": m.Expected,
				"message":  m.Message(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": belbin.ErrGroupSumMismatch.Error(), "groups": groups})
	case errors.Is(err, belbin.ErrScoreOverflow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAssessmentInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case errors.Is(err, service.ErrNotEmployee):
		c.JSON(http.StatusForbidden, gin.H{"error": "only employees can take the test"})
	case errors.Is(err, service.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
	case errors.Is(err, service.ErrAssessmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no assessment yet"})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// formValues acepta numeros o strings numericos y deja el resto como texto para que el
// validador lo reporte como valor invalido.
func formValues(raw map[string]json.RawMessage) map[string]string {
	form := make(map[string]string, len(raw))
	for key, val := range raw {
		val = bytes.TrimSpace(val)
		var s string
		if len(val) > 0 && val[0] == '"' && json.Unmarshal(val, &s) == nil {
			form[key] = s
			continue
		}
		form[key] = string(val)
	}
	return form
}

func fieldNames(coords []belbin.Coordinate) []string {
	out := make([]string, 0, len(coords))
	for _, c := range coords {
		out = append(out, belbin.FieldName(c))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
