package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/server/users"
)

// setSessionCookie hands the token to the transport; the cookie expiry
// mirrors the token validity and the cookie is httpOnly.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(accessTokenCookie, token, int(s.tokenValidity.Seconds()), "/", "", false, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
}

func (s *Server) signUp(c *gin.Context) {
	var req users.SignUpRequest
	// Presence of required fields is validated by the service; an absent or
	// malformed body simply yields empty fields.
	_ = c.ShouldBindJSON(&req)

	if _, err := s.users.SignUp(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, common.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Please fill in all fields")
		case errors.Is(err, common.ErrAlreadyExists):
			fail(c, http.StatusBadRequest, "Username or email already in use")
		case errors.Is(err, common.ErrPasswordMismatch):
			fail(c, http.StatusBadRequest, "Passwords do not match")
		default:
			failInternal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (s *Server) signIn(c *gin.Context) {
	var req users.SignInRequest
	_ = c.ShouldBindJSON(&req)

	user, token, err := s.users.SignIn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Please fill in all fields")
		case errors.Is(err, common.ErrInvalidCredentials):
			fail(c, http.StatusBadRequest, "Invalid credentials")
		default:
			failInternal(c)
		}
		return
	}

	s.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

func (s *Server) google(c *gin.Context) {
	var req users.GoogleRequest
	_ = c.ShouldBindJSON(&req)

	user, token, created, err := s.users.ResolveGoogle(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "it was not possible to login with Google's account")
		case errors.Is(err, common.ErrAlreadyExists):
			fail(c, http.StatusBadRequest, "Username or email already in use")
		default:
			failInternal(c)
		}
		return
	}

	s.setSessionCookie(c, token)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

func (s *Server) signOut(c *gin.Context) {
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
