package fixture

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// Server answers GETs from a Dataset.
type Server struct {
	data     Dataset
	username string
	password string
	statuses map[string]int
	log      logger.Interface
}

// Option -.
type Option func(*Server)

// Credentials requires HTTP basic auth on every resource but the service root.
func Credentials(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

// Status makes path answer with code and a Redfish error body, whether or
// not the dataset holds it.
func Status(path string, code int) Option {
	return func(s *Server) {
		s.statuses[Key(path)] = code
	}
}

// New -.
func New(data Dataset, log logger.Interface, opts ...Option) *Server {
	s := &Server{
		data:     data,
		statuses: map[string]int{},
		log:      log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register mounts the Redfish tree on r.
func (s *Server) Register(r gin.IRouter) {
	g := r.Group("/redfish")

	if s.username != "" {
		g.Use(BasicAuth(s.username, s.password))
	}

	g.GET("/*rest", s.serve)
}

// NewRouter returns a gin engine serving data.
func NewRouter(data Dataset, log logger.Interface, opts ...Option) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	New(data, log, opts...).Register(r)

	r.NoRoute(func(c *gin.Context) {
		NotFoundError(c, c.Request.URL.Path)
	})

	return r
}

func (s *Server) serve(c *gin.Context) {
	p := c.Request.URL.Path
	key := Key(p)

	if key == "/redfish" {
		SetRedfishHeaders(c)
		c.JSON(http.StatusOK, gin.H{"v1": "/redfish/v1/"})

		return
	}

	if code, ok := s.statuses[key]; ok {
		s.log.Debug("fixture forced status", "path", p, "status", code)
		StatusError(c, code, p)

		return
	}

	body, ok := s.data[key]
	if !ok {
		s.log.Debug("fixture resource missing", "path", p)
		NotFoundError(c, p)

		return
	}

	SetRedfishHeaders(c)
	c.Data(http.StatusOK, contentTypeJSON, body)
}
