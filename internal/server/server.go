package server

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	goerrors "github.com/goliatone/go-errors"

	"github.com/needlesync/needlesync/internal/auth"
	"github.com/needlesync/needlesync/internal/store"
)

// ProjectStore is the slice of the project repository the handlers need.
type ProjectStore interface {
	ListByOwner(ctx context.Context, userID int64) ([]store.Project, error)
	Create(ctx context.Context, project *store.Project) (*store.Project, error)
}

// Server wires the HTTP surface: routes, auth guard, and error mapping.
type Server struct {
	app      *fiber.App
	auther   *auth.Authenticator
	guard    *auth.Guard
	projects ProjectStore
	logger   auth.Logger
}

// Options configures a Server.
type Options struct {
	Authenticator *auth.Authenticator
	Guard         *auth.Guard
	Projects      ProjectStore
	Logger        auth.Logger
}

// New builds the fiber application with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		auther:   opts.Authenticator,
		guard:    opts.Guard,
		projects: opts.Projects,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = auth.DefaultLogger()
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})

	// The original service runs wide open for its SPA; same posture here.
	s.app.Use(cors.New())

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	s.app.Post("/register", s.handleRegister)
	s.app.Post("/login", s.handleLogin)

	protected := s.guard.Protected()
	s.app.Get("/projects/:user_id", protected, s.handleListProjects)
	s.app.Post("/projects", protected, s.handleCreateProject)

	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler renders every error as {"error": message} with a stable
// status code. Rich errors carry their own HTTP code; validation errors
// map to 400; anything unclassified becomes a generic 500 so internal
// detail never leaks.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return c.Status(richErr.Code).JSON(fiber.Map{"error": richErr.Message})
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErrs.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	s.logger.Error("unhandled request error", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
