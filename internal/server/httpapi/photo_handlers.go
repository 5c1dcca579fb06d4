package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/server/photos"
)

func (s *Server) listPhotos(c *gin.Context) {
	list, err := s.photos.List(c.Request.Context())
	if err != nil {
		failInternal(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) getPhoto(c *gin.Context) {
	photo, err := s.photos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fail(c, http.StatusNotFound, "Photo not found")
			return
		}
		failInternal(c)
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (s *Server) createPhoto(c *gin.Context) {
	var req photos.CreateRequest
	_ = c.ShouldBindJSON(&req)

	photo, err := s.photos.Create(c.Request.Context(), loggedUser(c), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Image_url is required")
		case errors.Is(err, common.ErrNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrForbidden):
			fail(c, http.StatusForbidden, "You can only create photos for your own account")
		default:
			failInternal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (s *Server) updatePhoto(c *gin.Context) {
	var req photos.UpdateRequest
	_ = c.ShouldBindJSON(&req)

	photo, err := s.photos.Update(c.Request.Context(), loggedUser(c), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fail(c, http.StatusNotFound, "Photo not found")
		case errors.Is(err, common.ErrForbidden):
			fail(c, http.StatusForbidden, "You can only update your own photos")
		default:
			failInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (s *Server) deletePhoto(c *gin.Context) {
	err := s.photos.Delete(c.Request.Context(), loggedUser(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fail(c, http.StatusNotFound, "Photo not found")
		case errors.Is(err, common.ErrForbidden):
			fail(c, http.StatusForbidden, "You can only delete your own photos")
		default:
			failInternal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) newUploadURL(c *gin.Context) {
	upload, err := s.photos.NewUploadURL(c.Request.Context())
	if err != nil {
		failInternal(c)
		return
	}

	c.JSON(http.StatusCreated, upload)
}
