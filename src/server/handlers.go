package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	app "storeadmin/src/app"
)

const invalidBodyMessage = "Invalid request body"

type AppHandler struct {
	services *app.Services
}

func NewHandler(services *app.Services) *AppHandler {
	return &AppHandler{services: services}
}

func (a *AppHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// bindJSON rejects anonymous callers with 403, then decodes the request
// body into dest and answers 400 on failure.
func bindJSON(c *gin.Context, dest any) bool {
	if currentUser(c) == "" {
		c.String(http.StatusForbidden, app.ErrUnauthenticated.Error())
		return false
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		log.Printf("[server] %s %s: bad body: %v", c.Request.Method, c.FullPath(), err)
		c.String(http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	return true
}

// writeError maps service errors onto status codes with a plain text body.
func writeError(c *gin.Context, err error) {
	var (
		validation *app.ValidationError
		missing    *app.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		c.String(http.StatusBadRequest, validation.Message)
	case errors.Is(err, app.ErrUnauthenticated):
		c.String(http.StatusForbidden, app.ErrUnauthenticated.Error())
	case errors.Is(err, app.ErrUnauthorized):
		c.String(http.StatusForbidden, app.ErrUnauthorized.Error())
	case errors.As(err, &missing):
		c.String(http.StatusNotFound, missing.Error())
	default:
		log.Printf("[server] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.String(http.StatusInternalServerError, "Internal error")
	}
}

// writeBillboardError reports ownership failures as "Unauthenticated" so
// billboard routes do not reveal whether a store exists.
func writeBillboardError(c *gin.Context, err error) {
	if errors.Is(err, app.ErrUnauthorized) {
		c.String(http.StatusForbidden, app.ErrUnauthenticated.Error())
		return
	}
	writeError(c, err)
}
