package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// AnalysisCache guarda cuerpos crudos del colaborador ya validados,
// indexados por hash del texto analizado. Es un componente explicito con
// store acotado y expiracion propia; se inyecta en el extractor en lugar
// de vivir como estado global del modulo.
type AnalysisCache interface {
	Get(key string) (string, bool)
	Set(key string, raw string)
}

// CacheKey deriva la clave a partir del texto y su contexto de pregunta.
func CacheKey(text, questionContext string) string {
	sum := sha256.Sum256([]byte(questionContext + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

type memoryAnalysisCache struct {
	store *lru.LRU[string, string]
}

// NewMemoryAnalysisCache crea el cache en memoria por defecto: LRU
// acotado en tamano con TTL por entrada.
func NewMemoryAnalysisCache(size int, ttl time.Duration) AnalysisCache {
	if size <= 0 {
		size = 1024
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryAnalysisCache{
		store: lru.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *memoryAnalysisCache) Get(key string) (string, bool) {
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	return c.store.Get(key)
}

func (c *memoryAnalysisCache) Set(key, raw string) {
	if strings.TrimSpace(key) == "" || raw == "" {
		return
	}
	c.store.Add(key, raw)
}

type redisAnalysisCache struct {
	client redisStringCmdable
	ttl    time.Duration
	prefix string
}

type redisStringCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// NewRedisAnalysisCache crea el cache distribuido opcional. Las
// operaciones llevan timeouts cortos propios: un redis caido degrada a
// cache miss, nunca bloquea el request.
func NewRedisAnalysisCache(client *redis.Client, ttl time.Duration) AnalysisCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisAnalysisCache{
		client: client,
		ttl:    ttl,
		prefix: "persona:analysis:",
	}
}

func (c *redisAnalysisCache) Get(key string) (string, bool) {
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return raw, raw != ""
}

func (c *redisAnalysisCache) Set(key, raw string) {
	if strings.TrimSpace(key) == "" || raw == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err()
}
