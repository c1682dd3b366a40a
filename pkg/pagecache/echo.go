package pagecache

import (
	"bytes"
	"net/http"
	"strings"
	"travel/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderCache reports whether a response came from the cache.
const HeaderCache = "X-Cache"

// Middleware serves GET requests from the cache and stores successful
// responses tagged with the topics returned by topics. topics is called
// before the handler runs. A response is not stored when one of its topics
// was purged while it was being built. Responses marked
// "Cache-Control: no-store" are never stored. Cache failures are logged and
// the request is served uncached.
func (c *Cache) Middleware(topics func(ec echo.Context) []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			req := ec.Request()
			if c == nil || req.Method != http.MethodGet {
				return next(ec)
			}

			ctx := req.Context()
			key := req.URL.RequestURI()
			entry, err := c.Get(ctx, key)
			if err != nil {
				logger.Warn(ctx, "page cache lookup failed", zap.String("key", key), zap.Error(err))
			}
			if entry != nil {
				ec.Response().Header().Set(HeaderCache, "HIT")

				return ec.Blob(entry.Status, entry.ContentType, entry.Body)
			}

			tags := topics(ec)
			gen, err := c.Generation(ctx, tags...)
			if err != nil {
				logger.Warn(ctx, "page cache generation lookup failed", zap.String("key", key), zap.Error(err))

				return next(ec)
			}

			res := ec.Response()
			rec := &recorder{ResponseWriter: res.Writer}
			res.Writer = rec
			res.Header().Set(HeaderCache, "MISS")

			if err := next(ec); err != nil {
				return err
			}

			if res.Status != http.StatusOK || strings.Contains(res.Header().Get("Cache-Control"), "no-store") {
				return nil
			}
			if len(tags) == 0 {
				return nil
			}

			stored, err := c.SetIfCurrent(ctx, key, Entry{
				Status:      res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        rec.body.Bytes(),
			}, gen, tags...)
			if err != nil {
				logger.Warn(ctx, "could not cache page", zap.String("key", key), zap.Error(err))
			} else if !stored {
				logger.Debug(ctx, "page purged while rendering, not cached", zap.String("key", key))
			}

			return nil
		}
	}
}

type recorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)

	return r.ResponseWriter.Write(b)
}

func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
