package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/telemetry"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChurchIDKey stores the church id a gate resolved for the request.
const ChurchIDKey = "churchID"

// Gate returns a middleware that admits the request only when check passes
// for the caller's claims. It runs before any handler store I/O.
func Gate(name string, check authz.Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := gateRequest(c)
		claims := GetClaims(c)

		if err := check(claims, req); err != nil {
			telemetry.GateDecisionsTotal.WithLabelValues(name, outcome(err)).Inc()
			response.AbortWithError(c, err)
			return
		}
		telemetry.GateDecisionsTotal.WithLabelValues(name, "allow").Inc()

		if churchID, _, ok := authz.Resolve(authz.ChurchIDKey, req.ChurchIDSources()); ok {
			c.Set(ChurchIDKey, churchID)
		}
		c.Next()
	}
}

// ResolvedChurchID returns the church id the gate resolved from path, body
// or query. It is empty when none was present, which only a system admin
// can get past a church-scoped gate.
func ResolvedChurchID(c *gin.Context) string {
	return c.GetString(ChurchIDKey)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return "unauthenticated"
	case errors.Is(err, apperrors.ErrMissingResourceIdentifier):
		return "missing_id"
	}
	return "deny"
}

// gateRequest exposes path params, the JSON body and the query string as
// identifier sources.
func gateRequest(c *gin.Context) authz.Request {
	return authz.Request{
		Path: func(key string) (string, bool) {
			return c.Params.Get(key)
		},
		Body: bodyLookup(c),
		Query: func(key string) (string, bool) {
			return c.GetQuery(key)
		},
	}
}

// bodyLookup decodes the JSON body on first use and restores it so the
// handler can bind it again.
func bodyLookup(c *gin.Context) authz.Lookup {
	var (
		fields map[string]any
		loaded bool
	)
	return func(key string) (string, bool) {
		if !loaded {
			loaded = true
			fields = readBody(c)
		}
		return fieldString(fields[key])
	}
}

func readBody(c *gin.Context) map[string]any {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if c.ContentType() != gin.MIMEJSON {
		return nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func fieldString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}
