package middleware

import (
	"bytes"
	log "log/slog"
	"net/http"
	"time"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"

	"github.com/gin-gonic/gin"
)

type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// PageCacheMiddleware serves GET responses from a short-lived redis cache.
// The feed tolerates slightly stale pages in exchange for cheap reloads.
// Without redis the middleware is a passthrough.
func PageCacheMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || redis.GetRdbClient() == nil {
			c.Next()
			return
		}

		key := consts.PageCacheKey + c.Request.URL.RequestURI()

		cached, err := redis.GetBytes(c.Request.Context(), key)
		if err != nil {
			log.WarnContext(c.Request.Context(), "page cache read failed", "key", key, "error", err)
		}
		if cached != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}
		if err = redis.SetWithExpiration(c.Request.Context(), key, writer.body.Bytes(), ttl); err != nil {
			log.WarnContext(c.Request.Context(), "page cache write failed", "key", key, "error", err)
		}
	}
}
