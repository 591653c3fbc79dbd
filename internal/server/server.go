// Package server exposes the record store and settings over a local
// HTTP API. Endpoint names mirror the request names the desktop UI
// already uses, mounted under /api; the server binds to localhost and
// the UI process is its only intended client.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kridsada-n/acctrack/internal/settings"
	"github.com/kridsada-n/acctrack/pkg/types"
)

// Server wires one store and one settings manager into a Fiber app.
type Server struct {
	app        *fiber.App
	store      types.Store
	settings   *settings.Manager
	defaultDir string
}

// New builds the app with its middleware and routes. defaultDir is the
// platform storage folder used when no custom location is saved.
func New(store types.Store, mgr *settings.Manager, defaultDir string) *Server {
	s := &Server{
		store:      store,
		settings:   mgr,
		defaultDir: defaultDir,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "acctrack",
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())
	s.app.Use(logger.New())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Post("/saveBusinessData", s.saveBusinessData)
	api.Get("/getBusinessData", s.getBusinessData)
	api.Post("/saveContactData", s.saveContactData)
	api.Get("/getContactData", s.getContactData)

	api.Post("/saveProduct", s.saveProduct)
	api.Get("/getProducts", s.getProducts)
	api.Post("/updateProduct", s.updateProduct)
	api.Post("/deleteProduct", s.deleteProduct)

	api.Post("/saveQuotation", s.saveQuotation)
	api.Get("/getQuotations", s.getQuotations)

	api.Post("/saveStorageSettings", s.saveStorageSettings)
	api.Get("/getStorageSettings", s.getStorageSettings)
	api.Post("/checkFolderForExistingData", s.checkFolderForExistingData)
	api.Get("/getRecentFolders", s.getRecentFolders)
	api.Post("/addToRecentFolders", s.addToRecentFolders)
	api.Post("/relocateStorage", s.relocateStorage)

	api.Post("/saveFile", s.saveFile)
	api.Get("/readFile/:id", s.readFile)
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
