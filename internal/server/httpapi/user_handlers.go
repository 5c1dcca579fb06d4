package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/server/users"
)

func (s *Server) getUser(c *gin.Context) {
	user, err := s.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		failInternal(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	var req users.UpdateRequest
	_ = c.ShouldBindJSON(&req)

	user, err := s.users.Update(c.Request.Context(), loggedUser(c), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			fail(c, http.StatusForbidden, "You can only update your own account")
		case errors.Is(err, common.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Username and email are required")
		case errors.Is(err, common.ErrNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrUsernameTaken):
			fail(c, http.StatusBadRequest, "Username already in use")
		case errors.Is(err, common.ErrEmailTaken):
			fail(c, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, common.ErrPasswordMismatch):
			fail(c, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, common.ErrAlreadyExists):
			fail(c, http.StatusBadRequest, "Username or email already in use")
		default:
			failInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	err := s.users.Delete(c.Request.Context(), loggedUser(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			fail(c, http.StatusForbidden, "You can only delete your own account")
		case errors.Is(err, common.ErrNotFound):
			fail(c, http.StatusNotFound, "User not found")
		default:
			failInternal(c)
		}
		return
	}

	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
