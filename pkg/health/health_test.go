package health

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func up(context.Context) ComponentHealth {
	return ComponentHealth{Status: StatusUp}
}

func down(context.Context) ComponentHealth {
	return ComponentHealth{Status: StatusDown, Message: "unreachable"}
}

func TestCheckerRun(t *testing.T) {
	t.Run("all up", func(t *testing.T) {
		c := NewChecker()
		c.Register("corpus", up)
		c.Register("index", up)

		report := c.Run(context.Background())
		assert.Equal(t, StatusUp, report.Status)
		assert.Len(t, report.Components, 2)
	})

	t.Run("one down degrades the report", func(t *testing.T) {
		c := NewChecker()
		c.Register("corpus", up)
		c.Register("index", down)

		report := c.Run(context.Background())
		assert.Equal(t, StatusDown, report.Status)
		assert.Equal(t, "unreachable", report.Components["index"].Message)
	})

	t.Run("no checks", func(t *testing.T) {
		report := NewChecker().Run(context.Background())
		assert.Equal(t, StatusUp, report.Status)
		assert.Empty(t, report.Components)
	})
}

func TestCheckerHandler(t *testing.T) {
	t.Run("healthy returns 200", func(t *testing.T) {
		c := NewChecker()
		c.Register("corpus", up)

		rec := httptest.NewRecorder()
		c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

		assert.Equal(t, 200, rec.Code)
		var report Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, StatusUp, report.Status)
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		c := NewChecker()
		c.Register("index", down)

		rec := httptest.NewRecorder()
		c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, 503, rec.Code)
	})
}
