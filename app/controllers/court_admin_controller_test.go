package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/court-finder/app/services"
	"github.com/court-finder/internal/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAdmin struct {
	purgeErr error
	seedErr  error
	statsErr error
	calls    []string
}

func (f *fakeAdmin) Purge(ctx context.Context) (*services.PurgeResult, error) {
	f.calls = append(f.calls, "purge")
	if f.purgeErr != nil {
		return nil, f.purgeErr
	}
	return &services.PurgeResult{RunID: "purge-run", DeletedCount: 410}, nil
}

func (f *fakeAdmin) Seed(ctx context.Context) (*services.SeedResult, error) {
	f.calls = append(f.calls, "seed")
	if f.seedErr != nil {
		return nil, f.seedErr
	}
	return &services.SeedResult{RunID: "seed-run", Generated: 410, Inserted: 410, Summary: f.Preview()}, nil
}

func (f *fakeAdmin) Reset(ctx context.Context) (*services.ResetResult, error) {
	purge, err := f.Purge(ctx)
	if err != nil {
		return nil, err
	}
	seed, err := f.Seed(ctx)
	if err != nil {
		return &services.ResetResult{Purge: purge}, err
	}
	return &services.ResetResult{Purge: purge, Seed: seed}, nil
}

func (f *fakeAdmin) Preview() *catalog.Summary {
	c := catalog.MustLoad()
	return catalog.Summarize(c, catalog.Generate(c))
}

func (f *fakeAdmin) Stats(ctx context.Context) (*services.CourtStats, error) {
	f.calls = append(f.calls, "stats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &services.CourtStats{StoredCourts: 12, Catalog: f.Preview()}, nil
}

func setupRouter(admin CourtAdmin) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCourtAdminController(admin, zap.NewNop())

	router := gin.New()
	router.GET("/health", controller.HealthCheck)
	router.GET("/summary", controller.GetCatalogSummary)
	router.GET("/stats", controller.GetStats)
	router.POST("/purge", controller.PurgeCourts)
	router.POST("/seed", controller.SeedCourts)
	router.POST("/reset", controller.ResetCourts)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestPurgeCourts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		code, body := doRequest(t, setupRouter(&fakeAdmin{}), http.MethodPost, "/purge")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(410), body["deleted_count"])
		assert.Equal(t, "purge-run", body["run_id"])
		assert.Equal(t, "Deleted 410 courts from database", body["message"])
	})

	t.Run("database error", func(t *testing.T) {
		admin := &fakeAdmin{purgeErr: errors.New("connection refused")}
		code, body := doRequest(t, setupRouter(admin), http.MethodPost, "/purge")

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "PURGE_ERROR", body["error"])
		assert.Contains(t, body["message"], "connection refused")
		assert.NotEmpty(t, body["timestamp"])
	})
}

func TestSeedCourts(t *testing.T) {
	t.Run("dry run does not seed", func(t *testing.T) {
		admin := &fakeAdmin{}
		code, body := doRequest(t, setupRouter(admin), http.MethodPost, "/seed?dry_run=true")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, body["dry_run"])
		assert.Nil(t, body["result"])
		assert.Empty(t, admin.calls)

		summary, ok := body["summary"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(410), summary["total_courts"])
	})

	t.Run("success", func(t *testing.T) {
		admin := &fakeAdmin{}
		code, body := doRequest(t, setupRouter(admin), http.MethodPost, "/seed")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, false, body["dry_run"])
		assert.Equal(t, "Successfully initialized 410 basketball courts nationwide", body["message"])
		assert.Equal(t, []string{"seed"}, admin.calls)
	})

	t.Run("insert error", func(t *testing.T) {
		admin := &fakeAdmin{seedErr: errors.New("duplicate key")}
		code, body := doRequest(t, setupRouter(admin), http.MethodPost, "/seed")

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "SEED_ERROR", body["error"])
	})
}

func TestResetCourts(t *testing.T) {
	admin := &fakeAdmin{}
	code, body := doRequest(t, setupRouter(admin), http.MethodPost, "/reset")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"purge", "seed"}, admin.calls)
	assert.NotNil(t, body["purge"])
	assert.NotNil(t, body["seed"])

	admin = &fakeAdmin{seedErr: errors.New("boom")}
	code, body = doRequest(t, setupRouter(admin), http.MethodPost, "/reset")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "RESET_ERROR", body["error"])
}

func TestGetStats(t *testing.T) {
	code, body := doRequest(t, setupRouter(&fakeAdmin{}), http.MethodGet, "/stats")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(12), body["stored_courts"])

	code, body = doRequest(t, setupRouter(&fakeAdmin{statsErr: errors.New("timeout")}), http.MethodGet, "/stats")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "STATS_ERROR", body["error"])
}

func TestGetCatalogSummaryAndHealth(t *testing.T) {
	router := setupRouter(&fakeAdmin{})

	code, body := doRequest(t, router, http.MethodGet, "/summary")
	assert.Equal(t, http.StatusOK, code)
	tiers, ok := body["tiers"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tiers, 3)

	code, body = doRequest(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
