package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/logger"
)

// CatalogHandler serves album and genre endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	ranking *service.RankingService
	log     logger.Logger
}

func NewCatalogHandler(service *service.CatalogService, ranking *service.RankingService, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, ranking: ranking, log: log}
}

// AlbumDetail returns the tracks of one album.
func (h *CatalogHandler) AlbumDetail(c *gin.Context) {
	var req pkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PK <= 0 {
		c.JSON(http.StatusOK, gin.H{"error": "you should send pk field"})
		return
	}

	musics, err := h.service.AlbumMusics(c.Request.Context(), req.PK)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "such album does not exist!"})
			return
		}
		h.log.Error("fetching album failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("album_id", req.PK),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyAsList(musics))
}

// AlbumsTop returns the highest-valued albums, served from the ranking
// cache.
func (h *CatalogHandler) AlbumsTop(c *gin.Context) {
	albums, err := h.ranking.TopAlbums(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(albums))
}

type genreRequest struct {
	GenreName string `json:"genre_name"`
}

// GenreDetail returns the tracks of one genre, addressed by name.
func (h *CatalogHandler) GenreDetail(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GenreName == "" {
		c.JSON(http.StatusOK, gin.H{"error": "you should send genre_name field"})
		return
	}

	musics, err := h.service.GenreMusics(c.Request.Context(), req.GenreName)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "such genre does not exist!"})
			return
		}
		h.log.Error("fetching genre failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.String("genre", req.GenreName),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyAsList(musics))
}

// GenresTop returns the promoted genre shelf.
func (h *CatalogHandler) GenresTop(c *gin.Context) {
	genres, err := h.service.TopGenres(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(genres))
}
