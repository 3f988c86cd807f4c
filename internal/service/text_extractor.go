package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"persona-engine/internal/domain"
	"persona-engine/internal/llm"
)

// fallbackCoreValues es la lista fija documentada que se devuelve cuando
// el colaborador no esta disponible.
var fallbackCoreValues = []string{"growth", "connection", "stability", "curiosity", "kindness"}

// fallbackInsights acompana a la heuristica degradada.
var fallbackInsights = []string{
	"Your reflection shows several recurring themes worth exploring further.",
	"The language you use suggests you weigh relationships and goals carefully.",
	"A longer reflection would allow a more precise reading of your profile.",
}

// TextSignalExtractor es el adaptador de frontera hacia el colaborador
// de analisis de texto. Resuelve siempre: ante timeout, error HTTP o
// respuesta imparseable devuelve el vector heuristico deterministico en
// lugar de propagar el fallo.
type TextSignalExtractor struct {
	client  llm.AnalyzerClient
	parser  AnalyzerParser
	cache   AnalysisCache
	catalog *domain.Catalog
	timeout time.Duration
	logger  *zap.Logger
}

func NewTextSignalExtractor(
	client llm.AnalyzerClient,
	cache AnalysisCache,
	catalog *domain.Catalog,
	timeout time.Duration,
	logger *zap.Logger,
) *TextSignalExtractor {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextSignalExtractor{
		client:  client,
		parser:  DefaultAnalyzerParser,
		cache:   cache,
		catalog: catalog,
		timeout: timeout,
		logger:  logger,
	}
}

// Extract analiza el texto libre y devuelve puntajes 0-100 por arquetipo
// mas valores, insights y factores de confianza. Nunca devuelve error.
// El deadline propio se deriva del ctx del request, asi la cancelacion
// del cliente corta la llamada en vuelo.
func (e *TextSignalExtractor) Extract(ctx context.Context, text, questionContext string) domain.TextAnalysis {
	text = strings.TrimSpace(text)
	if text == "" {
		return e.fallback(text, questionContext)
	}

	key := CacheKey(text, questionContext)
	if e.cache != nil {
		if raw, ok := e.cache.Get(key); ok {
			if analysis, err := e.parser.Parse(raw); err == nil {
				e.logger.Debug("analysis cache hit", zap.String("key", key))
				return e.withFactors(analysis, text, questionContext)
			}
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.Analyze(callCtx, buildAnalysisPrompt(text, questionContext))
	if err != nil {
		e.logger.Warn("analyzer call failed, using keyword fallback", zap.Error(err))
		return e.fallback(text, questionContext)
	}

	analysis, err := e.parser.Parse(raw)
	if err != nil {
		e.logger.Warn("analyzer reply unparseable, using keyword fallback", zap.Error(err))
		return e.fallback(text, questionContext)
	}

	// Solo se cachean cuerpos que ya pasaron la validacion de esquema.
	if e.cache != nil {
		e.cache.Set(key, raw)
	}

	return e.withFactors(analysis, text, questionContext)
}

// fallback puntua contando ocurrencias literales de las keywords de cada
// arquetipo en el texto crudo, escalado min(count*20, 100). Es
// deterministico: mismo texto, mismo vector.
func (e *TextSignalExtractor) fallback(text, questionContext string) domain.TextAnalysis {
	lower := strings.ToLower(text)
	scores := domain.NewScoreVector()

	for _, persona := range e.catalog.All() {
		count := 0
		for _, kw := range persona.Keywords {
			count += strings.Count(lower, kw)
		}
		s := float64(count) * 20
		if s > 100 {
			s = 100
		}
		scores[persona.ID] = s
	}

	analysis := domain.TextAnalysis{
		Scores:       scores.Sanitized(),
		CoreValues:   append([]string(nil), fallbackCoreValues...),
		Insights:     append([]string(nil), fallbackInsights...),
		FromFallback: true,
	}
	return e.withFactors(analysis, text, questionContext)
}

// withFactors deriva los factores de confianza de la respuesta analizada.
// contextMatch queda ausente (nil) cuando no hay texto de pregunta.
func (e *TextSignalExtractor) withFactors(analysis domain.TextAnalysis, text, questionContext string) domain.TextAnalysis {
	lower := strings.ToLower(text)

	hits := 0
	for _, persona := range e.catalog.All() {
		for _, kw := range persona.Keywords {
			hits += strings.Count(lower, kw)
		}
	}
	kwDensity := float64(hits) / 10.0
	if kwDensity > 1 {
		kwDensity = 1
	}

	semantic := 0.85
	if analysis.FromFallback {
		semantic = 0.35
	}

	words := len(strings.Fields(text))
	quality := float64(words) / 60.0
	if quality > 1 {
		quality = 1
	}

	factors := domain.ConfidenceFactors{
		KeywordMatches:    domain.Factor(kwDensity),
		SemanticRelevance: domain.Factor(semantic),
		AnswerQuality:     domain.Factor(quality),
	}

	if qc := strings.TrimSpace(questionContext); qc != "" {
		factors.ContextMatch = domain.Factor(contextOverlap(lower, strings.ToLower(qc)))
	}

	analysis.Factors = factors
	return analysis
}

// contextOverlap mide que fraccion de las palabras significativas de la
// pregunta reaparece en la respuesta.
func contextOverlap(textLower, contextLower string) float64 {
	ctxWords := strings.Fields(contextLower)
	significant := 0
	matched := 0
	for _, w := range ctxWords {
		w = strings.Trim(w, ".,;:!?¿¡\"'()")
		if len(w) <= 3 {
			continue
		}
		significant++
		if strings.Contains(textLower, w) {
			matched++
		}
	}
	if significant == 0 {
		return 0
	}
	return float64(matched) / float64(significant)
}

// buildAnalysisPrompt arma el prompt con contrato de salida estricto.
func buildAnalysisPrompt(text, questionContext string) string {
	var sb strings.Builder
	sb.WriteString("You are a personality analyst. Read the reflection below and score how strongly it signals each of these nine personas, 0-100 each: ")
	for i, id := range domain.AllPersonaIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(id))
	}
	sb.WriteString(".\n\n")
	sb.WriteString("Return ONLY a JSON object with this exact shape:\n")
	sb.WriteString(`{"persona_scores": {"builder": 0, "connector": 0, "dreamer": 0, "driver": 0, "explorer": 0, "giver": 0, "guardian": 0, "harmonizer": 0, "sage": 0}, "core_values": ["..."], "insights": ["..."]}`)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- persona_scores must contain all nine keys with integer values 0-100.\n")
	sb.WriteString("- core_values: 5 to 7 short value words grounded in the text.\n")
	sb.WriteString("- insights: 3 to 5 one-sentence observations.\n")
	sb.WriteString("- No markdown, no commentary outside the JSON.\n")

	if qc := strings.TrimSpace(questionContext); qc != "" {
		sb.WriteString(fmt.Sprintf("\nThe reflection answers the question: %q\n", qc))
	}
	sb.WriteString("\nReflection:\n")
	sb.WriteString(text)
	return sb.String()
}
