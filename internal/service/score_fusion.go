package service

import (
	"fmt"
	"math"

	"persona-engine/internal/domain"
)

// FusionConfig son los pesos de combinacion de fuentes. Se construye una
// vez, se valida al construir y se pasa por valor; no se muta en vuelo.
type FusionConfig struct {
	MCWeight   float64
	TextWeight float64
}

// NewFusionConfig valida que los pesos sean no negativos y sumen 1.0.
// Esta validacion corre al arrancar el proceso, no por request.
func NewFusionConfig(mcWeight, textWeight float64) (FusionConfig, error) {
	if mcWeight < 0 || textWeight < 0 {
		return FusionConfig{}, fmt.Errorf("fusion weights must be non-negative: mc=%v text=%v", mcWeight, textWeight)
	}
	if math.Abs(mcWeight+textWeight-1.0) > 1e-9 {
		return FusionConfig{}, fmt.Errorf("fusion weights must sum to 1.0: mc=%v text=%v", mcWeight, textWeight)
	}
	return FusionConfig{MCWeight: mcWeight, TextWeight: textWeight}, nil
}

// DefaultFusionConfig devuelve los pesos de producto: 0.6 mc, 0.4 texto.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{MCWeight: 0.6, TextWeight: 0.4}
}

// ScoreFusion combina el vector del cuestionario con el vector derivado
// de texto en un unico vector comparable entre arquetipos.
type ScoreFusion struct {
	cfg FusionConfig
}

func NewScoreFusion(cfg FusionConfig) ScoreFusion {
	return ScoreFusion{cfg: cfg}
}

// Fuse aplica la suma ponderada por arquetipo. Si no hay vector de texto
// (no se envio texto libre) el vector del cuestionario pasa sin cambios.
func (f ScoreFusion) Fuse(mc domain.ScoreVector, text domain.ScoreVector) domain.ScoreVector {
	mc = mc.Sanitized()
	if text == nil {
		return mc
	}
	text = text.Sanitized()

	combined := domain.NewScoreVector()
	for _, id := range domain.AllPersonaIDs {
		combined[id] = mc[id]*f.cfg.MCWeight + text[id]*f.cfg.TextWeight
	}
	return combined.Sanitized()
}
