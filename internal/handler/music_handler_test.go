package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/service"
)

func newMusicRouter(mockMusics *MockMusicRepository) *gin.Engine {
	handler := NewMusicHandler(service.NewMusicService(mockMusics), testLogger())

	router := gin.New()
	router.Use(asCaller(7, "melomane"))
	router.GET("/music", handler.Get)
	router.GET("/music/liked", handler.Liked)
	router.POST("/music/like", handler.Like)
	return router
}

func TestGetMusic_ReturnsPlaybackPayload(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("FetchAndCountView", mock.Anything, int64(5)).Return(&domain.Music{
		ID:         5,
		Name:       "Come Together",
		Links:      "https://cdn.example.com/tracks/5.mp3",
		ArtistName: "The Beatles",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/music?id=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Come Together", resp["title"])
	assert.Equal(t, "The Beatles", resp["artist"])
	assert.Equal(t, "https://cdn.example.com/tracks/5.mp3", resp["mp3"])
	assert.Equal(t, float64(5), resp["id"])
	mockMusics.AssertExpectations(t)
}

func TestGetMusic_MissingID(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	req := httptest.NewRequest(http.MethodGet, "/music", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "wrong parameters are sent", resp["error"])
	mockMusics.AssertNotCalled(t, "FetchAndCountView")
}

func TestGetMusic_UnknownID(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("FetchAndCountView", mock.Anything, int64(99)).Return(nil, domain.ErrMusicNotFound)

	req := httptest.NewRequest(http.MethodGet, "/music?id=99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "wrong parameters are sent", resp["error"])
}

func TestLikeMusic_OK(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("GetByID", mock.Anything, int64(5)).Return(&domain.Music{ID: 5}, nil)
	mockMusics.On("Like", mock.Anything, int64(5), int64(7)).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"id": 5, "action": "like"})
	req := httptest.NewRequest(http.MethodPost, "/music/like", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ok", resp["status"])
	mockMusics.AssertExpectations(t)
}

func TestLikeMusic_UnknownMusic(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrMusicNotFound)

	body, _ := json.Marshal(map[string]interface{}{"id": 99, "action": "like"})
	req := httptest.NewRequest(http.MethodPost, "/music/like", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ko", resp["status"])
	mockMusics.AssertNotCalled(t, "Like")
}

func TestLikeMusic_MissingID(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	body, _ := json.Marshal(map[string]interface{}{"action": "like"})
	req := httptest.NewRequest(http.MethodPost, "/music/like", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ko", resp["status"])
	mockMusics.AssertNotCalled(t, "GetByID")
}

func TestLikeMusic_StorageFailure(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("GetByID", mock.Anything, int64(5)).Return(nil, assert.AnError)

	body, _ := json.Marshal(map[string]interface{}{"id": 5, "action": "like"})
	req := httptest.NewRequest(http.MethodPost, "/music/like", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLikedMusics(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("ListLikedBy", mock.Anything, int64(7)).Return([]*domain.Music{
		{ID: 5, Name: "Come Together"},
		{ID: 6, Name: "Something"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/music/liked", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 2)
}

func TestLikedMusics_EmptySerializesAsArray(t *testing.T) {
	mockMusics := new(MockMusicRepository)
	router := newMusicRouter(mockMusics)

	mockMusics.On("ListLikedBy", mock.Anything, int64(7)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/music/liked", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
