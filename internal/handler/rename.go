package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/suraj274001/bulk-image-renamer/internal/model"
	"github.com/suraj274001/bulk-image-renamer/internal/renamer"
)

// RenameHandler serves POST /rename: uploaded file parts are written to
// the output directory under the names of the client-supplied plan,
// matched by position.
type RenameHandler struct {
	outputDir string
	log       *zap.Logger
}

func NewRenameHandler(outputDir string, log *zap.Logger) *RenameHandler {
	return &RenameHandler{outputDir: outputDir, log: log}
}

// Rename handles one request. Missing files are a client error; every
// failure after that (bad plan JSON, plan shorter than the file set,
// invalid target name, write error) takes the uniform 500 path with the
// underlying message. Files written before a mid-loop failure stay on
// disk.
func (h *RenameHandler) Rename(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "No files provided"})
		return
	}
	headers := form.File["files"]

	plan, err := renamer.ParsePlan(previewField(form))
	if err != nil {
		h.fail(c, err)
		return
	}

	files, err := bufferUploads(headers)
	if err != nil {
		h.fail(c, err)
		return
	}

	count, err := renamer.ApplyPlan(h.outputDir, files, plan, h.log)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RenameResponse{
		Success: true,
		Count:   count,
		Message: fmt.Sprintf("Renamed %d files successfully", count),
	})
}

func (h *RenameHandler) fail(c *gin.Context, err error) {
	h.log.Error("rename request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
}

func previewField(form *multipart.Form) string {
	if vs := form.Value["preview"]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// bufferUploads reads every part fully into memory before any write
// happens, preserving the all-buffered contract of the endpoint.
func bufferUploads(headers []*multipart.FileHeader) ([]model.UploadedFile, error) {
	files := make([]model.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		files = append(files, model.UploadedFile{OriginalName: fh.Filename, Data: data})
	}
	return files, nil
}
