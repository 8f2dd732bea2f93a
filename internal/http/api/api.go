// Package api carries the plumbing shared by every feature module: the
// Module/Controller mounting plugin and the mapping from the provider error
// taxonomy to HTTP statuses.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-app/sakinah/internal/provider"
)

// Error is a handler-level failure with its HTTP status.
type Error struct {
	Code    int
	Message string
}

// HandlerFunc is a feature endpoint returning either a payload or an Error.
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// Controller is the surface a Module attaches its endpoints to.
type Controller struct {
	group *gin.RouterGroup
}

// GET registers a GET endpoint.
func (c *Controller) GET(path string, h HandlerFunc) {
	c.group.GET(path, resolveEndpoint(h))
}

// POST registers a POST endpoint.
func (c *Controller) POST(path string, h HandlerFunc) {
	c.group.POST(path, resolveEndpoint(h))
}

func resolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

// Module is a pluggable feature that attaches its endpoints to a Controller.
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a simple function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// GroupConfig tells the api package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Middleware []gin.HandlerFunc
}

// MountGroup mounts one or more Modules under a prefix.
func MountGroup(engine *gin.Engine, cfg GroupConfig, modules ...Module) {
	grp := engine.Group(cfg.Prefix)
	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}

	controller := &Controller{group: grp}
	for _, m := range modules {
		m.Mount(controller)
	}
}

// ErrorFrom maps an adapter/provider error to its HTTP representation.
func ErrorFrom(err error) *Error {
	var notFound *provider.NotFoundError
	if errors.As(err, &notFound) {
		return &Error{Code: http.StatusNotFound, Message: err.Error()}
	}
	return &Error{Code: http.StatusBadGateway, Message: err.Error()}
}
