package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxVideoSize = 500 << 20 // 500 MB

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type UpdateVideoRequest struct {
	Title    *string `json:"title"`
	FolderID *string `json:"folder_id"`
}

// CreateVideo godoc
// @Summary      Upload video
// @Description  Proxy a video file to the external host and register it
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        folder_id formData string false "Destination folder"
// @Param        video formData file true "Video file"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	var folderID *string
	if id := c.PostForm("folder_id"); id != "" {
		folderID = &id
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	if fileHeader.Size > maxVideoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read video file"})
		return
	}
	defer file.Close()

	video, err := h.videoUseCase.Create(userID, title, folderID, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
			return
		}
		h.logger.Error("Failed to create video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	video, err := h.videoUseCase.Get(videoID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	c.JSON(http.StatusOK, video)
}

// ListVideos godoc
// @Summary      List videos
// @Description  List the user's videos, optionally filtered by folder. folder_id=root selects unfoldered videos.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id query string false "Folder filter"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c, 20, 100)

	var folderID *string
	if raw := c.Query("folder_id"); raw != "" {
		if raw == "root" {
			empty := ""
			folderID = &empty
		} else {
			folderID = &raw
		}
	}

	videos, err := h.videoUseCase.List(userID, folderID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Rename a video or move it between folders. folder_id null moves it to the root.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body UpdateVideoRequest true "Fields to change"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateVideoInput{}
	if v, ok := raw["title"]; ok {
		title, ok := v.(string)
		if !ok || title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title must be a non-empty string"})
			return
		}
		input.Title = &title
	}
	if v, ok := raw["folder_id"]; ok {
		input.FolderSet = true
		if v != nil {
			id, ok := v.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "folder_id must be a string or null"})
				return
			}
			input.FolderID = &id
		}
	}

	video, err := h.videoUseCase.Update(videoID, userID, input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		h.logger.Error("Failed to update video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Remove a video along with its view log and payout detail rows
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	if err := h.videoUseCase.Delete(videoID, userID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		h.logger.Error("Failed to delete video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// UploadThumbnail godoc
// @Summary      Upload thumbnail
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/thumbnail [post]
func (h *VideoHandler) UploadThumbnail(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read thumbnail file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	ext := filepath.Ext(fileHeader.Filename)

	video, err := h.videoUseCase.UploadThumbnail(videoID, userID, file, contentType, ext)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		h.logger.Error("Failed to upload thumbnail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, video)
}

// LikeVideo godoc
// @Summary      Like video
// @Description  Increment the video's like counter, no authentication required
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/like [post]
func (h *VideoHandler) LikeVideo(c *gin.Context) {
	videoID := c.Param("id")

	if err := h.videoUseCase.Like(videoID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video liked"})
}

// DislikeVideo godoc
// @Summary      Dislike video
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/dislike [post]
func (h *VideoHandler) DislikeVideo(c *gin.Context) {
	videoID := c.Param("id")

	if err := h.videoUseCase.Dislike(videoID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video disliked"})
}

// GetVideoStats godoc
// @Summary      Video statistics
// @Description  Daily view counts and view counts by country
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        days query int false "Number of days"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/stats [get]
func (h *VideoHandler) GetVideoStats(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 && d <= 365 {
			days = d
		}
	}

	daily, byCountry, err := h.videoUseCase.Stats(videoID, userID, days)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		h.logger.Error("Failed to get video stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": daily, "countries": byCountry})
}

func pagination(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxLimit {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}
