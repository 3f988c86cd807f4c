package service

import (
	"go.uber.org/zap"

	"persona-engine/internal/domain"
)

// baseIncrement es el aporte base de una seleccion antes de pesos.
const baseIncrement = 10.0

// QuestionnaireScorer convierte respuestas estructuradas en un vector de
// puntajes por arquetipo, aplicando peso de fase, multiplicador de la
// persona y la cuota de seleccion para multi-select.
type QuestionnaireScorer struct {
	catalog      *domain.Catalog
	answerMap    domain.AnswerPersonaMap
	phaseWeights map[domain.Phase]domain.PhaseWeight
	logger       *zap.Logger
}

func NewQuestionnaireScorer(
	catalog *domain.Catalog,
	answerMap domain.AnswerPersonaMap,
	phaseWeights map[domain.Phase]domain.PhaseWeight,
	logger *zap.Logger,
) *QuestionnaireScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionnaireScorer{
		catalog:      catalog,
		answerMap:    answerMap,
		phaseWeights: phaseWeights,
		logger:       logger,
	}
}

// Score recorre las respuestas y acumula puntajes. Nunca devuelve error:
// input vacio o malformado produce el vector cero, y las opciones sin
// mapeo se ignoran (se loguean, no aportan).
//
// Invariante de cuota: una pregunta multi-select con k opciones elegidas
// aporta en total lo mismo que una single-select, porque cada opcion
// pesa 1/k.
func (s *QuestionnaireScorer) Score(responses []domain.QuestionResponse) domain.ScoreVector {
	scores := domain.NewScoreVector()

	for _, resp := range responses {
		if len(resp.AnswerIDs) == 0 {
			// Respuestas de texto libre las maneja el extractor de texto.
			continue
		}

		pw, ok := s.phaseWeights[resp.Phase]
		if !ok {
			s.logger.Warn("unknown phase, response skipped",
				zap.String("question_id", resp.QuestionID),
				zap.String("phase", string(resp.Phase)),
			)
			continue
		}

		selectionShare := 1.0 / float64(len(resp.AnswerIDs))

		for _, answerID := range resp.AnswerIDs {
			personaID, ok := s.answerMap.Resolve(resp.Phase, answerID)
			if !ok {
				s.logger.Debug("unmapped answer ignored",
					zap.String("question_id", resp.QuestionID),
					zap.String("answer_id", answerID),
				)
				continue
			}
			persona, ok := s.catalog.Get(personaID)
			if !ok {
				s.logger.Warn("answer mapped to unknown persona",
					zap.String("answer_id", answerID),
					zap.String("persona_id", string(personaID)),
				)
				continue
			}
			scores[personaID] += baseIncrement * pw.Weight * persona.ScoringWeight * selectionShare
		}
	}

	return scores.Sanitized()
}
