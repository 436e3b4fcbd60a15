package http

import (
	"errors"
	"net/http"

	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	folderUseCase usecase.FolderUseCase
	logger        *logger.Logger
}

func NewFolderHandler(folderUseCase usecase.FolderUseCase, logger *logger.Logger) *FolderHandler {
	return &FolderHandler{
		folderUseCase: folderUseCase,
		logger:        logger,
	}
}

type CreateFolderRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Color    string  `json:"color"`
	ParentID *string `json:"parent_id"`
}

// CreateFolder godoc
// @Summary      Create folder
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateFolderRequest true "Folder data"
// @Success      201  {object}  entity.Folder
// @Failure      409  {object}  map[string]string
// @Router       /folders [post]
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := h.folderUseCase.Create(userID, req.Name, req.Color, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "parent folder not found"})
		case errors.Is(err, usecase.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"error": "a folder with this name already exists here"})
		default:
			h.logger.Error("Failed to create folder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, folder)
}

// GetFolder godoc
// @Summary      Get folder
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Folder ID"
// @Success      200  {object}  entity.Folder
// @Failure      404  {object}  map[string]string
// @Router       /folders/{id} [get]
func (h *FolderHandler) GetFolder(c *gin.Context) {
	userID := c.GetString("user_id")
	folderID := c.Param("id")

	folder, err := h.folderUseCase.Get(folderID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}

	c.JSON(http.StatusOK, folder)
}

// ListFolders godoc
// @Summary      List folders
// @Description  List every folder owned by the user, ordered by position
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /folders [get]
func (h *FolderHandler) ListFolders(c *gin.Context) {
	userID := c.GetString("user_id")

	folders, err := h.folderUseCase.List(userID)
	if err != nil {
		h.logger.Error("Failed to list folders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders, "count": len(folders)})
}

// UpdateFolder godoc
// @Summary      Update folder
// @Description  Rename, recolor, reorder, or move a folder. parent_id null moves it to the root. Moves that would place a folder inside its own subtree are rejected.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Folder ID"
// @Param        request body map[string]interface{} true "Fields to change"
// @Success      200  {object}  entity.Folder
// @Failure      409  {object}  map[string]string
// @Router       /folders/{id} [put]
func (h *FolderHandler) UpdateFolder(c *gin.Context) {
	userID := c.GetString("user_id")
	folderID := c.Param("id")

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateFolderInput{}
	if v, ok := raw["name"]; ok {
		name, ok := v.(string)
		if !ok || name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must be a non-empty string"})
			return
		}
		input.Name = &name
	}
	if v, ok := raw["color"]; ok {
		color, ok := v.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "color must be a string"})
			return
		}
		input.Color = &color
	}
	if v, ok := raw["position"]; ok {
		pos, ok := v.(float64)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "position must be a number"})
			return
		}
		position := int(pos)
		input.Position = &position
	}
	if v, ok := raw["parent_id"]; ok {
		input.MoveToSet = true
		if v != nil {
			id, ok := v.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "parent_id must be a string or null"})
				return
			}
			input.ParentID = &id
		}
	}

	folder, err := h.folderUseCase.Update(folderID, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		case errors.Is(err, usecase.ErrCircularStructure):
			c.JSON(http.StatusConflict, gin.H{"error": "cannot move a folder into its own subtree"})
		case errors.Is(err, usecase.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"error": "a folder with this name already exists here"})
		default:
			h.logger.Error("Failed to update folder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, folder)
}

// DeleteFolder godoc
// @Summary      Delete folder
// @Description  Delete a folder, lifting its children and videos to its parent. With force=true the whole subtree and every contained video is destroyed.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Folder ID"
// @Param        force query bool false "Destroy subtree and contents"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /folders/{id} [delete]
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	userID := c.GetString("user_id")
	folderID := c.Param("id")
	force := c.Query("force") == "true"

	var err error
	if force {
		err = h.folderUseCase.ForceDelete(folderID, userID)
	} else {
		err = h.folderUseCase.Delete(folderID, userID)
	}

	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
			return
		}
		h.logger.Error("Failed to delete folder: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted"})
}
