package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// handleRegister creates an account: validate, hash, insert. Duplicate
// username/email surfaces as 409.
func (s *Server) handleRegister(c *fiber.Ctx) error {
	payload := new(RegisterPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "malformed request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, err := s.auther.Register(c.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID})
}

// handleLogin verifies credentials and returns a session token. All
// credential failures share one 401 message.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	payload := new(LoginPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "malformed request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, token, err := s.auther.Login(c.Context(), payload.Identifier, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"token": token,
	})
}
