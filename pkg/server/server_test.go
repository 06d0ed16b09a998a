package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.Nop()

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Logger:          logger,
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	t.Run("ComputeDeductions", func(t *testing.T) {
		body := `{
			"regime": "old",
			"age": 45,
			"gross_income": 1200000,
			"sections": {
				"80c": {"life_insurance_premium": 80000, "nsc": 50000, "elss": 40000}
			}
		}`
		resp, err := http.Post(
			testServer.URL+"/api/v1/deductions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var statement api.Statement
		require.NoError(t, json.Unmarshal(data, &statement))
		assert.Equal(t, "150000.00", statement.TotalDeductions)
		assert.Equal(t, "old", statement.Regime)
	})

	t.Run("ComputeDeductions_InvalidRegime", func(t *testing.T) {
		resp, err := http.Post(
			testServer.URL+"/api/v1/deductions", "application/json",
			strings.NewReader(`{"regime": "hybrid"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/unknown")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
