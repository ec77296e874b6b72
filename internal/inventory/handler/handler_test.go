package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	catalogRepo "github.com/fekuna/omnipos-juicebar-service/internal/catalog/repository"
	invRepo "github.com/fekuna/omnipos-juicebar-service/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-juicebar-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	items := invRepo.NewMemoryRepository()
	require.NoError(t, items.AdjustStockWithMovements(context.Background(), testutil.InventoryItems(), nil))
	uc := invUC.NewInventoryUseCase(items, catalogRepo.NewMemoryRepository(), logger.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewInventoryHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/api/v1", auth.RoleMiddleware()))
	return r
}

func serve(r *gin.Engine, method, path string, role auth.Role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(auth.RoleHeader, string(role))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Data []struct {
		Name string `json:"name"`
	} `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func TestListItems(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/v1/inventory", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Meta.Total)
	assert.Equal(t, "Mango", body.Data[0].Name)
}

func TestSaveItem_ThenLowStock(t *testing.T) {
	r := newRouter(t)
	body := `{"unit":"kg","quantity":"1","reorder_level":"2","cost_per_unit":"150"}`

	w := serve(r, http.MethodPut, "/api/v1/inventory/items/Pineapple", auth.RoleSalesperson, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodPut, "/api/v1/inventory/items/Pineapple", auth.RoleOwner, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, http.MethodGet, "/api/v1/inventory/low-stock", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var low listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &low))
	require.Equal(t, 1, low.Meta.Total)
	assert.Equal(t, "Pineapple", low.Data[0].Name)
}

func TestReplenish_Validation(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodPost, "/api/v1/inventory/items/Mango/replenish", auth.RoleOwner, `{"add_quantity":"0"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/inventory/items/Mango/replenish", auth.RoleOwner, `{"add_quantity":"2.5","new_cost_per_unit":"110"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Mango"`)
}

func TestListMovements_BadLimit(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/v1/inventory/movements?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
