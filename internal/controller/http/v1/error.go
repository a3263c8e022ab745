// Package v1 implements the inventory HTTP API.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

var (
	errNoSnapshot   = errors.New("no discovery has completed")
	errMissingParam = errors.New("query parameter path is required")
	errNoChassis    = errors.New("chassis not in the latest snapshot")
)

// ErrorResponse aborts c with the status and message matching err.
func ErrorResponse(c *gin.Context, err error) {
	var (
		nfErr  inventoryerrors.NotFoundError
		dbErr  inventoryerrors.DatabaseError
		cfgErr *redfishv1.ConfigError
	)

	switch {
	case errors.Is(err, errNoSnapshot):
		abort(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errMissingParam), errors.Is(err, redfishv1.ErrPathTooLong):
		abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errNoChassis):
		abort(c, http.StatusNotFound, err.Error())
	case errors.As(err, &nfErr):
		abort(c, http.StatusNotFound, nfErr.Inventory.FriendlyMessage())
	case errors.As(err, &dbErr):
		abort(c, http.StatusInternalServerError, dbErr.Inventory.FriendlyMessage())
	case errors.As(err, &cfgErr):
		abort(c, http.StatusBadRequest, cfgErr.Error())
	default:
		abort(c, http.StatusInternalServerError, "general error")
	}
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg})
}
