package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/http/api"
	"github.com/sakinah-app/sakinah/internal/http/api/quran/packets"
	"github.com/sakinah-app/sakinah/internal/viewmodel"
)

type quranController struct {
	adapter *adapter.Adapter
	vm      *viewmodel.Quran
}

// QuranModule mounts the Quran reader endpoints.
func QuranModule(a *adapter.Adapter, vm *viewmodel.Quran) api.Module {
	ctl := &quranController{adapter: a, vm: vm}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/quran/surahs", ctl.listSurahs)
		c.GET("/quran/surah/:number", ctl.getSurah)
		c.GET("/quran/search", ctl.search)
		c.GET("/quran/state", ctl.state)
		c.POST("/quran/surah", ctl.selectSurah)
	})
}

// GET /api/quran/surahs
func (q *quranController) listSurahs(ctx *gin.Context) (any, *api.Error) {
	surahs, err := q.adapter.ListSurahs(ctx)
	if err != nil {
		return nil, api.ErrorFrom(err)
	}
	return surahs, nil
}

// GET /api/quran/surah/:number
func (q *quranController) getSurah(ctx *gin.Context) (any, *api.Error) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "surah number must be an integer"}
	}
	detail, err := q.adapter.GetSurah(ctx, number)
	if err != nil {
		return nil, api.ErrorFrom(err)
	}
	return detail, nil
}

// GET /api/quran/search?q=&edition=
func (q *quranController) search(ctx *gin.Context) (any, *api.Error) {
	query := ctx.Query("q")
	if query == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "missing query parameter q"}
	}
	results, err := q.adapter.SearchQuran(ctx, query, ctx.Query("edition"))
	if err != nil {
		return nil, api.ErrorFrom(err)
	}
	return results, nil
}

// GET /api/quran/state
func (q *quranController) state(ctx *gin.Context) (any, *api.Error) {
	return q.vm.State(), nil
}

// POST /api/quran/surah
func (q *quranController) selectSurah(ctx *gin.Context) (any, *api.Error) {
	var request packets.SelectSurahRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	q.vm.SelectSurah(ctx, request.Number)
	return q.vm.State(), nil
}
