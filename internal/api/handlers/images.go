package handlers

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pawmatch/internal/storage"
	"github.com/your-org/pawmatch/internal/vision"
	"github.com/your-org/pawmatch/pkg/dto"
)

type ImageHandler struct {
	extractor *vision.Extractor
	uploads   *storage.UploadStore // nil when object storage is not configured
}

func NewImageHandler(extractor *vision.Extractor, uploads *storage.UploadStore) *ImageHandler {
	return &ImageHandler{extractor: extractor, uploads: uploads}
}

// Analyze extracts pet features from one uploaded image. Provider failures
// degrade to mock data and are only visible through the isMockData flag.
func (h *ImageHandler) Analyze(c *gin.Context) {
	data, header, ok := readImageFile(c, "image")
	if !ok {
		return
	}

	features, isMock := h.extractor.Extract(c.Request.Context(), data)

	imageKey := ""
	if h.uploads != nil {
		key, err := h.uploads.StoreUpload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			slog.Warn("store upload", "file", header.Filename, "error", err)
		} else {
			imageKey = key
		}
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Success: true,
		Features: dto.FeaturesResponse{
			Breed:      features.Breed,
			Color:      features.Color,
			Size:       features.Size,
			Markings:   features.Markings,
			Confidence: features.Confidence,
		},
		IsMockData: isMock,
		ImageKey:   imageKey,
	})
}

// Compare analyzes two uploaded images concurrently and scores the
// extracted features against each other.
func (h *ImageHandler) Compare(c *gin.Context) {
	data1, _, ok := readImageFile(c, "image1")
	if !ok {
		return
	}
	data2, _, ok := readImageFile(c, "image2")
	if !ok {
		return
	}

	similarity := h.extractor.Compare(c.Request.Context(), data1, data2)

	c.JSON(http.StatusOK, dto.CompareResponse{Success: true, Similarity: similarity})
}

// readImageFile pulls one multipart file field; it writes the error
// response itself and reports success through the bool.
func readImageFile(c *gin.Context, field string) ([]byte, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " file required"})
		return nil, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read image failed", "details": err.Error()})
		return nil, nil, false
	}
	return data, header, true
}
