package fixture

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	headerODataVersion = "OData-Version"
	odataVersion       = "4.0"
	contentTypeJSON    = "application/json; charset=utf-8"
)

// SetRedfishHeaders sets the headers every Redfish response carries.
func SetRedfishHeaders(c *gin.Context) {
	c.Header("Content-Type", contentTypeJSON)
	c.Header(headerODataVersion, odataVersion)
}

type message struct {
	id         string
	text       string
	resolution string
	severity   string
}

var (
	msgResourceMissing = message{
		id:         "Base.1.22.0.ResourceMissingAtURI",
		text:       "Resource not found",
		resolution: "Remove the URI from the request and resubmit the request.",
		severity:   "Warning",
	}
	msgInsufficientPrivilege = message{
		id:         "Base.1.22.0.InsufficientPrivilege",
		text:       "The request was denied due to insufficient privilege.",
		resolution: "Ensure the request includes valid authentication credentials.",
		severity:   "Critical",
	}
	msgInternalError = message{
		id:         "Base.1.22.0.InternalError",
		text:       "The request failed due to an internal service error.",
		resolution: "Resubmit the request. If the problem persists, consider resetting the service.",
		severity:   "Critical",
	}
)

func writeError(c *gin.Context, status int, m message, args ...string) {
	SetRedfishHeaders(c)

	if args == nil {
		args = []string{}
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    m.id,
			"message": m.text,
			"@Message.ExtendedInfo": []gin.H{
				{
					"@odata.type": "#Message.v1_0_0.Message",
					"MessageId":   m.id,
					"Message":     m.text,
					"MessageArgs": args,
					"Severity":    m.severity,
					"Resolution":  m.resolution,
				},
			},
		},
	})
}

// NotFoundError writes a Redfish 404 for path.
func NotFoundError(c *gin.Context, path string) {
	writeError(c, http.StatusNotFound, msgResourceMissing, path)
}

// UnauthorizedError writes a Redfish 401 with a basic auth challenge.
func UnauthorizedError(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="Redfish"`)
	writeError(c, http.StatusUnauthorized, msgInsufficientPrivilege)
}

// StatusError writes a Redfish error body with an arbitrary status.
func StatusError(c *gin.Context, status int, path string) {
	switch status {
	case http.StatusNotFound:
		NotFoundError(c, path)
	case http.StatusUnauthorized:
		UnauthorizedError(c)
	default:
		writeError(c, status, msgInternalError, path)
	}
}
