package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/http/api"
	"github.com/sakinah-app/sakinah/internal/http/api/prayer/packets"
	"github.com/sakinah-app/sakinah/internal/viewmodel"
)

type prayerController struct {
	adapter *adapter.Adapter
	vm      *viewmodel.Prayer
}

// PrayerModule mounts the prayer-time endpoints.
func PrayerModule(a *adapter.Adapter, vm *viewmodel.Prayer) api.Module {
	ctl := &prayerController{adapter: a, vm: vm}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer/cities", ctl.listCities)
		c.GET("/prayer/state", ctl.state)
		c.POST("/prayer/city", ctl.selectCity)
		c.GET("/prayer/times/:cityID", ctl.getTimes)
	})
}

// GET /api/prayer/cities
func (p *prayerController) listCities(ctx *gin.Context) (any, *api.Error) {
	cities, err := p.adapter.ListCities(ctx)
	if err != nil {
		return nil, api.ErrorFrom(err)
	}
	return cities, nil
}

// GET /api/prayer/state
func (p *prayerController) state(ctx *gin.Context) (any, *api.Error) {
	return p.vm.State(), nil
}

// POST /api/prayer/city
func (p *prayerController) selectCity(ctx *gin.Context) (any, *api.Error) {
	var request packets.SelectCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	p.vm.SelectCity(ctx, request.CityID)
	return p.vm.State(), nil
}

// GET /api/prayer/times/:cityID?year=&month=&day=
// Date params default to today.
func (p *prayerController) getTimes(ctx *gin.Context) (any, *api.Error) {
	cityID := ctx.Param("cityID")
	now := time.Now()
	year := queryInt(ctx, "year", now.Year())
	month := queryInt(ctx, "month", int(now.Month()))
	day := queryInt(ctx, "day", now.Day())

	times, err := p.adapter.GetPrayerTimes(ctx, cityID, year, month, day)
	if err != nil {
		return nil, api.ErrorFrom(err)
	}
	return times, nil
}

func queryInt(ctx *gin.Context, key string, fallback int) int {
	if raw := ctx.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}
