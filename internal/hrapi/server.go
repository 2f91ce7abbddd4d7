// Package hrapi is a reference implementation of the HR list API: an
// in-memory tenant store served over gin with JWT auth and xlsx export.
package hrapi

import (
	"github.com/gin-gonic/gin"

	"github.com/aerohr/console/pkg/constants"
)

// Server wires the store and authenticator to HTTP routes.
type Server struct {
	store *Store
	auth  *Authenticator
}

// NewServer creates a Server.
func NewServer(store *Store, auth *Authenticator) *Server {
	return &Server{store: store, auth: auth}
}

// Store returns the backing store.
func (s *Server) Store() *Store { return s.store }

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), RequestID())

	router.GET(constants.PathHealth, s.Health)
	router.POST(constants.PathLogin, s.Login)

	api := router.Group(constants.APIPrefix)
	api.Use(RequireAuth(s.auth))
	{
		registerResource(api, s.store.Documents, nil)
		registerResource(api, s.store.Training, nil)
		registerResource(api, s.store.Employees, nil)
		registerResource(api, s.store.Attendance, nil)
		registerResource(api, s.store.Leaves, s.ListLeaves)
	}
	router.POST(constants.PathSalary, RequireAuth(s.auth), s.ValidateSalary)
	return router
}
