package handlers

import (
	"io"
	"net/http"

	"altitude/services/documents"
	"altitude/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler manages uploaded documents for the search tool.
type StorageHandler struct {
	store  *documents.Store
	logger *zap.Logger
}

func NewStorageHandler(store *documents.Store, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{store: store, logger: logger}
}

// UploadFile handles POST /upload-file (multipart form, field "file").
func (h *StorageHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}

	doc, err := h.store.Save(c.Request.Context(), fileHeader.Filename, content)
	if err != nil {
		h.logger.Error("document save failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"file_id":  doc.ID,
		"filename": doc.Filename,
		"message":  "File '" + doc.Filename + "' uploaded successfully",
	})
}

// ListFiles handles GET /files.
func (h *StorageHandler) ListFiles(c *gin.Context) {
	docs, err := h.store.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list files", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": docs})
}
