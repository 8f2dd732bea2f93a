package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/http/api"
	"github.com/sakinah-app/sakinah/internal/http/api/dua/packets"
	"github.com/sakinah-app/sakinah/internal/viewmodel"
)

type duaController struct {
	adapter *adapter.Adapter
	vm      *viewmodel.Dua
}

// DuaModule mounts the dua browser endpoints. None of them can fail with an
// upstream error: the adapter substitutes built-in content instead.
func DuaModule(a *adapter.Adapter, vm *viewmodel.Dua) api.Module {
	ctl := &duaController{adapter: a, vm: vm}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/dua/categories", ctl.listCategories)
		c.GET("/dua/category/:id", ctl.getCategory)
		c.GET("/dua/state", ctl.state)
		c.POST("/dua/category", ctl.selectCategory)
	})
}

// GET /api/dua/categories
func (d *duaController) listCategories(ctx *gin.Context) (any, *api.Error) {
	return d.adapter.ListDuaCategories(ctx), nil
}

// GET /api/dua/category/:id
func (d *duaController) getCategory(ctx *gin.Context) (any, *api.Error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "category id must be an integer"}
	}
	return d.adapter.GetDuasByCategory(ctx, id, ""), nil
}

// GET /api/dua/state
func (d *duaController) state(ctx *gin.Context) (any, *api.Error) {
	return d.vm.State(), nil
}

// POST /api/dua/category
func (d *duaController) selectCategory(ctx *gin.Context) (any, *api.Error) {
	var request packets.SelectCategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	d.vm.SelectCategory(ctx, request.CategoryID)
	return d.vm.State(), nil
}
