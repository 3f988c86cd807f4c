package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"persona-engine/internal/domain"
)

// ErrEmptyResponses es el unico error visible para el caller: el mapa de
// respuestas llego vacio. Todo lo demas se recupera localmente.
var ErrEmptyResponses = errors.New("assessment requires at least one response")

// AssessmentService orquesta el pipeline completo de un assessment:
// validacion, scoring de cuestionario y extraccion de texto en paralelo,
// fusion, ranking, confianza y sintesis narrativa. Sin estado entre
// requests; todos los componentes son funciones puras de su input.
type AssessmentService struct {
	scorer      *QuestionnaireScorer
	extractor   *TextSignalExtractor
	fusion      ScoreFusion
	ranker      ResultRanker
	synthesizer LifeDomainSynthesizer
	confidence  ConfidenceCalculator
	questions   *domain.QuestionCatalog
	catalog     *domain.Catalog
	logger      *zap.Logger
}

func NewAssessmentService(
	scorer *QuestionnaireScorer,
	extractor *TextSignalExtractor,
	fusion ScoreFusion,
	ranker ResultRanker,
	synthesizer LifeDomainSynthesizer,
	questions *domain.QuestionCatalog,
	catalog *domain.Catalog,
	logger *zap.Logger,
) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		scorer:      scorer,
		extractor:   extractor,
		fusion:      fusion,
		ranker:      ranker,
		synthesizer: synthesizer,
		confidence:  DefaultConfidenceCalculator,
		questions:   questions,
		catalog:     catalog,
		logger:      logger,
	}
}

// Assess corre el pipeline para un request. Deterministico: con el mismo
// input y un colaborador que responde lo mismo, el resultado es identico.
func (s *AssessmentService) Assess(ctx context.Context, responses []domain.QuestionResponse) (domain.AssessmentResult, error) {
	if len(responses) == 0 {
		return domain.AssessmentResult{}, ErrEmptyResponses
	}

	freeText, questionContext := s.collectFreeText(responses)

	var (
		mcVector domain.ScoreVector
		analysis *domain.TextAnalysis
	)

	// Cuestionario (CPU) y colaborador de texto (red) corren en paralelo;
	// el join ocurre antes de la fusion. Sin texto libre, el join degenera
	// en un pass-through.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mcVector = s.scorer.Score(responses)
		return nil
	})
	if freeText != "" {
		g.Go(func() error {
			a := s.extractor.Extract(gctx, freeText, questionContext)
			analysis = &a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Solo la cancelacion del request puede llegar hasta aca.
		return domain.AssessmentResult{}, fmt.Errorf("assessment interrupted: %w", err)
	}

	var textVector domain.ScoreVector
	if analysis != nil {
		textVector = analysis.Scores
	}
	combined := s.fusion.Fuse(mcVector, textVector)

	ranked := s.ranker.Rank(combined)

	result := domain.AssessmentResult{
		LifeDomains: s.synthesizer.Synthesize(ranked),
		AllScores:   combined.Rounded(),
		Confidence:  s.calculateConfidence(responses, analysis),
	}

	primary, ok := s.catalog.Get(ranked.Primary)
	if !ok {
		return domain.AssessmentResult{}, fmt.Errorf("primary persona %q not in catalog", ranked.Primary)
	}
	result.PrimaryPersona = domain.PersonaSummary{
		Name:        primary.DisplayName,
		Type:        primary.TypeLabel,
		Score:       int(math.Round(ranked.PrimaryScore)),
		Description: primary.Description,
	}

	result.SecondaryPersonas = make([]domain.PersonaSummary, 0, len(ranked.Secondaries))
	for _, sp := range ranked.Secondaries {
		p, ok := s.catalog.Get(sp.ID)
		if !ok {
			continue
		}
		result.SecondaryPersonas = append(result.SecondaryPersonas, domain.PersonaSummary{
			Name:  p.DisplayName,
			Type:  p.TypeLabel,
			Score: int(math.Round(sp.Score)),
		})
	}

	result.CoreValues = append([]string(nil), primary.CoreValues...)
	result.CoreNeeds = append([]string(nil), primary.CoreNeeds...)
	if analysis != nil {
		result.CoreValues = mergeUnique(result.CoreValues, analysis.CoreValues)
		result.Insights = append([]string(nil), analysis.Insights...)
	}

	s.logger.Info("assessment completed",
		zap.String("primary", string(ranked.Primary)),
		zap.Int("secondaries", len(result.SecondaryPersonas)),
		zap.Bool("used_text", analysis != nil),
		zap.Bool("text_fallback", analysis != nil && analysis.FromFallback),
	)

	return result, nil
}

// collectFreeText junta las respuestas de texto libre en un solo bloque
// con el formato P/R del analizador y arma el contexto de preguntas.
func (s *AssessmentService) collectFreeText(responses []domain.QuestionResponse) (text, questionContext string) {
	var sb strings.Builder
	var prompts []string

	for _, resp := range responses {
		ft := strings.TrimSpace(resp.FreeText)
		if ft == "" {
			continue
		}
		prompt := resp.QuestionID
		if q, ok := s.questions.Get(resp.QuestionID); ok {
			prompt = q.Prompt
		}
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n---\n", prompt, ft)
		prompts = append(prompts, prompt)
	}

	return strings.TrimSpace(sb.String()), strings.Join(prompts, " ")
}

// calculateConfidence pliega los factores del analisis de texto, o un
// set parcial basado en cobertura del cuestionario cuando no hay texto.
func (s *AssessmentService) calculateConfidence(responses []domain.QuestionResponse, analysis *domain.TextAnalysis) float64 {
	isPersonal := false
	requiresDetail := false
	for _, resp := range responses {
		if strings.TrimSpace(resp.FreeText) == "" {
			continue
		}
		if q, ok := s.questions.Get(resp.QuestionID); ok {
			isPersonal = isPersonal || q.IsPersonal
			requiresDetail = requiresDetail || q.RequiresDetail
		}
	}

	if analysis != nil {
		return s.confidence.Calculate(analysis.Factors, isPersonal, requiresDetail)
	}

	// Sin texto libre solo hay senal de cobertura: la renormalizacion por
	// pesos usados mantiene el resultado bien definido.
	total := len(s.questions.All())
	coverage := 1.0
	if total > 0 {
		coverage = float64(len(responses)) / float64(total)
		if coverage > 1 {
			coverage = 1
		}
	}
	return s.confidence.Calculate(domain.ConfidenceFactors{
		AnswerQuality: domain.Factor(coverage),
	}, isPersonal, requiresDetail)
}

func mergeUnique(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, lists := range [][]string{base, extra} {
		for _, v := range lists {
			key := strings.ToLower(strings.TrimSpace(v))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
