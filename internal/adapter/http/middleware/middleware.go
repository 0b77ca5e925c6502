package middleware

import (
	"net/http"
	"time"

	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"
	"card-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderConfirmation carries the single-use confirmation nonce attached
	// to every state-changing request.
	HeaderConfirmation = "X-Confirmation-Nonce"

	// Nonce TTL (120 seconds)
	nonceTTL = 120 * time.Second

	// Context keys
	CtxAccount = "account"
	CtxAdmin   = "is_admin"
)

// JWTAuth creates a middleware that validates platform-issued identity tokens.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAccount, claims.Account)
		c.Set(CtxAdmin, claims.Admin)
		c.Next()
	}
}

// AdminOnly requires the admin claim on an already-authenticated request.
// Must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxAdmin) {
			response.Error(c, apperror.ErrAdminOnly())
			c.Abort()
			return
		}
		c.Next()
	}
}

// Confirmation requires a single-use nonce on state-changing requests. The
// nonce is consumed on first sight; a replay within the TTL is rejected. Must
// run after JWTAuth.
func Confirmation(nonceStore ports.NonceStore, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce := c.GetHeader(HeaderConfirmation)
		if nonce == "" {
			response.Error(c, apperror.ErrConfirmationRequired())
			c.Abort()
			return
		}

		account := c.GetString(CtxAccount)
		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), account, nonce, nonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			response.Error(c, apperror.ErrConfirmationReplayed())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
