package endpoints_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/http/api"
	"github.com/sakinah-app/sakinah/internal/http/api/dua/endpoints"
	"github.com/sakinah-app/sakinah/internal/model"
	"github.com/sakinah-app/sakinah/internal/viewmodel"
)

var router *gin.Engine

// TestMain runs once for the whole package. No dua provider is configured,
// so every response comes from the built-in fallback content.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	a := adapter.New()
	vm := viewmodel.NewDua(a)

	router = gin.New()
	api.MountGroup(router, api.GroupConfig{Prefix: "/api"},
		endpoints.DuaModule(a, vm),
	)

	os.Exit(m.Run())
}

func TestListCategories_NeverErrors(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dua/categories", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listing model.DuaCategoryList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, model.SourceFallback, listing.Source)
	assert.Len(t, listing.Categories, 5)
}

func TestGetCategory_FallbackPair(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dua/category/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var group model.DuaGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))
	assert.Equal(t, model.SourceFallback, group.Source)
	require.Len(t, group.Duas, 2)
	assert.Equal(t, 1001, group.Duas[0].ID)
	assert.Equal(t, 1002, group.Duas[1].ID)
}

func TestGetCategory_NonNumericID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dua/category/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectCategory_UpdatesState(t *testing.T) {
	body, _ := json.Marshal(map[string]int{"category_id": 2})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dua/category", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var state viewmodel.DuaState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 2, state.CurrentCategoryID)
	assert.NotEmpty(t, state.Duas)
}
