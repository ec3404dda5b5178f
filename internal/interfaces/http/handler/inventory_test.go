package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	inventoryapp "github.com/Zxyilyy/cooked/internal/application/inventory"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/dto"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/middleware"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/router"
)

func newInventoryTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ledgerCfg := &config.LedgerConfig{
		MiscExpenses: 200,
		ActiveCycle:  "2026-02-13",
		SeedOnEmpty:  false,
	}
	store := persistence.NewStore(persistence.NewDocumentStore(db, zap.NewNop()), ledgerCfg, zap.NewNop())
	require.NoError(t, store.Load(context.Background()))

	service := inventoryapp.NewService(store, ledgerCfg, zap.NewNop())

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewInventoryHandler(service))
	r.Setup()

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestInventoryAPI(t *testing.T) {
	engine := newInventoryTestServer(t)

	t.Run("receive stock then list", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/inventory/batches", map[string]any{
			"name":     "高筋面粉",
			"type":     "ingredient",
			"unit":     "1kg",
			"quantity": 1000,
			"price":    12.5,
			"count":    2,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.True(t, created.Success)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/inventory/batches", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed struct {
			Success bool `json:"success"`
			Data    []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed.Data, 1)
		assert.Equal(t, "高筋面粉", listed.Data[0].Name)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/inventory/batches", map[string]any{
			"name":     "扫把",
			"type":     "furniture",
			"unit":     "把",
			"quantity": 1,
			"count":    1,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.RequestID)
	})

	t.Run("stock update on unknown batch returns 404", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/inventory/batches/n_missing/stock", map[string]any{
			"currentStock": 5,
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})
}
