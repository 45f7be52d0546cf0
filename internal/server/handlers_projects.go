package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/needlesync/needlesync/internal/auth"
	"github.com/needlesync/needlesync/internal/store"
)

// handleListProjects returns the projects owned by :user_id. The token
// subject must equal that id; an authenticated stranger gets 403.
func (s *Server) handleListProjects(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromCtx(c)
	if !ok {
		return auth.ErrInvalidToken
	}

	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid user id").
			WithCode(errors.CodeBadRequest)
	}

	if err := s.guard.RequireOwner(claims, int64(userID)); err != nil {
		return err
	}

	projects, err := s.projects.ListByOwner(c.Context(), int64(userID))
	if err != nil {
		s.logger.Error("project listing failed", "user_id", userID, "error", err)
		return auth.ErrPersistence
	}

	return c.JSON(projects)
}

// handleCreateProject inserts a project for the owner declared in the
// body, which must match the token subject.
func (s *Server) handleCreateProject(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromCtx(c)
	if !ok {
		return auth.ErrInvalidToken
	}

	payload := new(ProjectPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "malformed request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := s.guard.RequireOwner(claims, payload.UserID); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	project, err := s.projects.Create(c.Context(), &store.Project{
		UserID:    payload.UserID,
		Name:      payload.Name,
		Completed: payload.Completed,
		Time:      payload.Time,
	})
	if err != nil {
		s.logger.Error("project insert failed", "user_id", payload.UserID, "error", err)
		return auth.ErrPersistence
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}
