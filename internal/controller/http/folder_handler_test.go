package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidmint/internal/entity"
	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFolderUseCase is a mock implementation of FolderUseCase
type MockFolderUseCase struct {
	mock.Mock
}

func (m *MockFolderUseCase) Create(userID, name, color string, parentID *string) (*entity.Folder, error) {
	args := m.Called(userID, name, color, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Folder), args.Error(1)
}

func (m *MockFolderUseCase) Get(folderID, userID string) (*entity.Folder, error) {
	args := m.Called(folderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Folder), args.Error(1)
}

func (m *MockFolderUseCase) List(userID string) ([]*entity.Folder, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Folder), args.Error(1)
}

func (m *MockFolderUseCase) Update(folderID, userID string, input usecase.UpdateFolderInput) (*entity.Folder, error) {
	args := m.Called(folderID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Folder), args.Error(1)
}

func (m *MockFolderUseCase) Delete(folderID, userID string) error {
	args := m.Called(folderID, userID)
	return args.Error(0)
}

func (m *MockFolderUseCase) ForceDelete(folderID, userID string) error {
	args := m.Called(folderID, userID)
	return args.Error(0)
}

var _ usecase.FolderUseCase = (*MockFolderUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

func TestCreateFolder_Success(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/folders", asUser("user-123", handler.CreateFolder))

	mockUseCase.On("Create", "user-123", "Docs", "blue", (*string)(nil)).Return(&entity.Folder{
		ID:     "abc123def456",
		UserID: "user-123",
		Name:   "Docs",
		Color:  "blue",
	}, nil)

	body := `{"name":"Docs","color":"blue"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/folders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "abc123def456", response["id"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateFolder_DuplicateName(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/folders", asUser("user-123", handler.CreateFolder))

	mockUseCase.On("Create", "user-123", "Docs", "", (*string)(nil)).Return(nil, usecase.ErrDuplicateName)

	body := `{"name":"Docs"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/folders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateFolder_CycleConflict(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/folders/:id", asUser("user-123", handler.UpdateFolder))

	parentID := "descendant1"
	expected := usecase.UpdateFolderInput{ParentID: &parentID, MoveToSet: true}
	mockUseCase.On("Update", "root1", "user-123", expected).Return(nil, usecase.ErrCircularStructure)

	body := `{"parent_id":"descendant1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/folders/root1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateFolder_MoveToRoot(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/folders/:id", asUser("user-123", handler.UpdateFolder))

	expected := usecase.UpdateFolderInput{MoveToSet: true}
	mockUseCase.On("Update", "folder1", "user-123", expected).Return(&entity.Folder{
		ID:     "folder1",
		UserID: "user-123",
		Name:   "Docs",
	}, nil)

	body := `{"parent_id":null}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/folders/folder1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteFolder_Default(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/folders/:id", asUser("user-123", handler.DeleteFolder))

	mockUseCase.On("Delete", "folder1", "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/folders/folder1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertNotCalled(t, "ForceDelete", mock.Anything, mock.Anything)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteFolder_Force(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/folders/:id", asUser("user-123", handler.DeleteFolder))

	mockUseCase.On("ForceDelete", "folder1", "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/folders/folder1?force=true", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteFolder_NotFound(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/folders/:id", asUser("user-123", handler.DeleteFolder))

	mockUseCase.On("Delete", "missing", "user-123").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/folders/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListFolders_Success(t *testing.T) {
	mockUseCase := new(MockFolderUseCase)
	handler := NewFolderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/folders", asUser("user-123", handler.ListFolders))

	mockUseCase.On("List", "user-123").Return([]*entity.Folder{
		{ID: "folder1", Name: "Docs"},
		{ID: "folder2", Name: "Clips"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/folders", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}
