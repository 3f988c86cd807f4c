package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-engine/internal/domain"
	"persona-engine/internal/service"
)

// AssessmentHandler expone el engine detras del contrato HTTP:
// un mapa questionId -> (array de opciones | texto libre).
type AssessmentHandler struct {
	logger    *zap.Logger
	svc       *service.AssessmentService
	questions *domain.QuestionCatalog
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService, questions *domain.QuestionCatalog) *AssessmentHandler {
	return &AssessmentHandler{
		logger:    logger,
		svc:       svc,
		questions: questions,
	}
}

// ListQuestions maneja GET /questions.
func (h *AssessmentHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.questions.All()})
}

// CreateAssessment maneja POST /assessment. Un valor string es texto
// libre; un array son ids de opciones. La fase de cada respuesta sale
// del registro de preguntas, nunca del formato del id.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req struct {
		Responses map[string]json.RawMessage `json:"responses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Responses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "responses must not be empty"})
		return
	}

	responses := h.resolveResponses(req.Responses)
	if len(responses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid responses"})
		return
	}

	result, err := h.svc.Assess(c.Request.Context(), responses)
	if err != nil {
		if errors.Is(err, service.ErrEmptyResponses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "responses must not be empty"})
			return
		}
		h.logger.Error("assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not run assessment"})
		return
	}

	// El id de correlacion se asigna en el borde; el engine en si es
	// deterministico para el mismo input.
	result.AssessmentID = uuid.NewString()

	c.JSON(http.StatusOK, result)
}

// resolveResponses decodifica cada valor del mapa y lo cruza con el
// registro de preguntas. Ids desconocidos o valores invalidos se
// descartan con log; no tumban el request.
func (h *AssessmentHandler) resolveResponses(raw map[string]json.RawMessage) []domain.QuestionResponse {
	out := make([]domain.QuestionResponse, 0, len(raw))

	for _, q := range h.questions.All() {
		value, ok := raw[q.ID]
		if !ok {
			continue
		}

		var freeText string
		if err := json.Unmarshal(value, &freeText); err == nil {
			out = append(out, domain.QuestionResponse{
				QuestionID: q.ID,
				Phase:      q.Phase,
				FreeText:   freeText,
			})
			continue
		}

		var answerIDs []string
		if err := json.Unmarshal(value, &answerIDs); err == nil && len(answerIDs) > 0 {
			out = append(out, domain.QuestionResponse{
				QuestionID: q.ID,
				Phase:      q.Phase,
				AnswerIDs:  answerIDs,
			})
			continue
		}

		h.logger.Warn("unparseable response value dropped", zap.String("question_id", q.ID))
	}

	for id := range raw {
		if _, ok := h.questions.Get(id); !ok {
			h.logger.Debug("unknown question id ignored", zap.String("question_id", id))
		}
	}

	return out
}
