package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// maxAvatarBytes caps uploaded avatar size at 5 MiB.
const maxAvatarBytes = 5 << 20

// Watermarker composites the service watermark onto an uploaded image.
type Watermarker interface {
	Apply(avatar []byte) ([]byte, error)
}

// AvatarUploader stores a processed avatar and returns its public URL.
type AvatarUploader interface {
	Put(ctx context.Context, data []byte) (string, error)
}

// AvatarHandler processes avatar uploads: watermark, then object storage.
type AvatarHandler struct {
	watermarker Watermarker
	store       AvatarUploader
}

func NewAvatarHandler(watermarker Watermarker, store AvatarUploader) *AvatarHandler {
	return &AvatarHandler{watermarker: watermarker, store: store}
}

// Upload accepts a multipart avatar image, watermarks it, stores it, and
// returns the URL to pass as avatar_url at registration.
//
// @Summary      Upload an avatar image
// @Tags         storage
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Avatar image (JPEG or PNG)"
// @Success      200  {object}  avatarUploadResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/storage/upload [post]
func (h *AvatarHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar file is required")
	}
	if fileHeader.Size > maxAvatarBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar exceeds the 5 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar file")
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar file")
	}
	if len(raw) > maxAvatarBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar exceeds the 5 MiB limit")
	}

	marked, err := h.watermarker.Apply(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar is not a valid JPEG or PNG image")
	}

	url, err := h.store.Put(c.Request().Context(), marked)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, avatarUploadResponse{AvatarURL: url})
}
