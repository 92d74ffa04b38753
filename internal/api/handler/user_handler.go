package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/users-api/internal/api/metrics"
	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the /users resource.
type UserHandler struct {
	service ports.UserService
	logger  zerolog.Logger
}

func NewUserHandler(service ports.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Message: "Successfully retrieved users",
		Users:   toUserResponses(users),
		Count:   len(users),
	})
}

// GetByID handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := ParseUserID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: map[string]string{"id": err.Error()},
		})
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "Not found",
				Message: "User not found",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		Message: "Successfully retrieved user",
		User:    toUserResponse(*user),
	})
}

// UpdateByID handles PUT /users/:id. Users may update their own profile,
// admins any profile; only admins may touch the role field.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateByID(c echo.Context) error {
	id, err := ParseUserID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: map[string]string{"id": err.Error()},
		})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Message: "Invalid request payload",
		})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		var fe FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: fe,
			})
		}
		return err
	}
	if req.empty() {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Message: "At least one field must be provided for update",
		})
	}

	actor, err := ctxActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Error:   "Unauthorized",
			Message: "Authentication required",
		})
	}

	if !domain.CanActOnProfile(actor, id) {
		metrics.AuthzDeniedTotal.WithLabelValues("not_owner").Inc()
		h.logger.Warn().Str("actor", actor.Email).Int64("target_id", id).Msg("update denied: not profile owner")
		return c.JSON(http.StatusForbidden, errorResponse{
			Error:   "Forbidden",
			Message: "You can only update your own profile",
		})
	}
	if !domain.CanChangeRole(actor, req.Role != nil) {
		metrics.AuthzDeniedTotal.WithLabelValues("role_change").Inc()
		h.logger.Warn().Str("actor", actor.Email).Int64("target_id", id).Msg("update denied: role change requires admin")
		return c.JSON(http.StatusForbidden, errorResponse{
			Error:   "Forbidden",
			Message: "Only admins can change user roles",
		})
	}

	h.logger.Info().Str("actor", actor.Email).Int64("target_id", id).Msg("updating user")

	updated, err := h.service.UpdateUser(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "Not found",
				Message: "User not found",
			})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, errorResponse{
				Error:   "Conflict",
				Message: "Email already in use",
			})
		}
		return err
	}

	metrics.MutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, userEnvelope{
		Message: "User updated successfully",
		User:    toUserResponse(*updated),
	})
}

// DeleteByID handles DELETE /users/:id. An admin deleting their own account
// is refused when they are the last admin; the admin count is read live just
// before the delete.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  deletedUserEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteByID(c echo.Context) error {
	id, err := ParseUserID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: map[string]string{"id": err.Error()},
		})
	}

	actor, err := ctxActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Error:   "Unauthorized",
			Message: "Authentication required",
		})
	}

	if !domain.CanActOnProfile(actor, id) {
		metrics.AuthzDeniedTotal.WithLabelValues("not_owner").Inc()
		h.logger.Warn().Str("actor", actor.Email).Int64("target_id", id).Msg("delete denied: not profile owner")
		return c.JSON(http.StatusForbidden, errorResponse{
			Error:   "Forbidden",
			Message: "You can only delete your own profile",
		})
	}

	if actor.Role == domain.RoleAdmin && actor.ID == id {
		adminCount, err := h.service.CountAdmins(c.Request().Context())
		if err != nil {
			return err
		}
		if !domain.CanDeleteSelfAsAdmin(actor, id, adminCount) {
			metrics.AuthzDeniedTotal.WithLabelValues("last_admin").Inc()
			h.logger.Warn().Str("actor", actor.Email).Msg("delete denied: last admin account")
			return c.JSON(http.StatusConflict, errorResponse{
				Error:   "Conflict",
				Message: "Cannot delete the last admin account",
			})
		}
	}

	h.logger.Info().Str("actor", actor.Email).Int64("target_id", id).Msg("deleting user")

	deleted, err := h.service.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "Not found",
				Message: "User not found",
			})
		}
		return err
	}

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deletedUserEnvelope{
		Message: "User deleted successfully",
		User:    toDeletedUserResponse(*deleted),
	})
}
