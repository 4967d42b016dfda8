package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/storage"
	ucCertification "github.com/michemobile/marketplace-api/internal/usecase/certification"
)

type UploadHandler struct {
	uploadUC *ucCertification.UploadDocument
}

func NewUploadHandler(uploadUC *ucCertification.UploadDocument) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// UploadCertification accepts one multipart file and returns the stored
// object key for the application's step-3 payload.
func (h *UploadHandler) UploadCertification(c *gin.Context) {
	kind := c.DefaultPostForm("kind", models.CertificationKindLicense)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "Attach a file field.")
		return
	}
	if fileHeader.Size > storage.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Files are limited to 10MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the file.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the file.")
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), ucCertification.UploadInput{
		Kind:     kind,
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"object_key":   result.ObjectKey,
		"content_type": result.ContentType,
		"kind":         kind,
		"file_name":    fileHeader.Filename,
	})
}
