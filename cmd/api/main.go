package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"persona-engine/internal/config"
	"persona-engine/internal/domain"
	apihttp "persona-engine/internal/http"
	"persona-engine/internal/llm"
	"persona-engine/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	catalog := domain.DefaultCatalog()
	questions := domain.DefaultQuestionCatalog()
	answerMap := domain.DefaultAnswerPersonaMap()
	phaseWeights := domain.DefaultPhaseWeights()

	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	var cache service.AnalysisCache = service.NewMemoryAnalysisCache(cfg.CacheSize, cacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory cache", zap.Error(err))
		} else if rc := service.NewRedisAnalysisCache(redisClient, cacheTTL); rc != nil {
			cache = rc
		}
		cancel()
	}

	fusionCfg, err := service.NewFusionConfig(cfg.MCWeight, cfg.TextWeight)
	if err != nil {
		logger.Fatal("fusion config", zap.Error(err))
	}

	analyzerClient := llm.NewHTTPClient(cfg.AnalyzerBaseURL, cfg.AnalyzerAPIKey, cfg.AnalyzerModel, zap.NewStdLog(logger))
	scorer := service.NewQuestionnaireScorer(catalog, answerMap, phaseWeights, logger)
	extractor := service.NewTextSignalExtractor(
		analyzerClient,
		cache,
		catalog,
		time.Duration(cfg.AnalyzerTimeoutSecs)*time.Second,
		logger,
	)
	fusion := service.NewScoreFusion(fusionCfg)
	ranker := service.NewResultRanker(service.RankerConfig{
		SecondaryThreshold: cfg.SecondaryThreshold,
		MaxSecondary:       cfg.MaxSecondary,
	})
	synthesizer := service.NewLifeDomainSynthesizer(catalog)
	assessmentSvc := service.NewAssessmentService(scorer, extractor, fusion, ranker, synthesizer, questions, catalog, logger)

	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc, questions)
	router := apihttp.NewRouter(logger, assessmentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
