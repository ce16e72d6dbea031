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

// PlaylistHandler serves playlist CRUD, follow and composition endpoints.
type PlaylistHandler struct {
	service *service.PlaylistService
	ranking *service.RankingService
	log     logger.Logger
}

func NewPlaylistHandler(service *service.PlaylistService, ranking *service.RankingService, log logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{service: service, ranking: ranking, log: log}
}

// Create validates the submitted form and stores a playlist owned by the
// caller.
func (h *PlaylistHandler) Create(c *gin.Context) {
	_, err := h.service.Create(
		c.Request.Context(),
		httputil.GetProfileID(c),
		httputil.GetUsername(c),
		c.PostForm("name"),
		c.PostForm("description"),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlaylistName),
			errors.Is(err, domain.ErrPlaylistNameTooLong),
			errors.Is(err, domain.ErrPlaylistDescriptionTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": err.Error()}})
		default:
			h.log.Error("playlist creation failed",
				logger.String("request_id", httputil.GetRequestID(c)),
				logger.Err(err),
			)
			handleError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

type pkRequest struct {
	PK int64 `json:"pk"`
}

// Delete removes a playlist, but only for its creator. Every outcome is
// reported as a 200 status message so the page script can render it
// directly.
func (h *PlaylistHandler) Delete(c *gin.Context) {
	var req pkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PK <= 0 {
		c.JSON(http.StatusOK, gin.H{"status": "you should send pk field"})
		return
	}

	err := h.service.Delete(c.Request.Context(), req.PK, httputil.GetUsername(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "playlist successfully removed"})
	case errors.Is(err, domain.ErrPlaylistNotFound):
		c.JSON(http.StatusOK, gin.H{"status": "such playlist does not exist!"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{"status": "you can not remove this playlist"})
	default:
		h.log.Error("playlist deletion failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("playlist_id", req.PK),
			logger.Err(err),
		)
		handleError(c, err)
	}
}

type followRequest struct {
	PlaylistPK int64  `json:"playlist_pk"`
	Action     string `json:"action"`
}

// Follow toggles the caller's follow mark on a playlist. Re-applying the
// current state is a no-op that still reports ok.
func (h *PlaylistHandler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlaylistPK <= 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ko"})
		return
	}

	err := h.service.SetFollow(c.Request.Context(), req.PlaylistPK, httputil.GetProfileID(c), domain.FollowAction(req.Action))
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) || errors.Is(err, domain.ErrInvalidAction) {
			c.JSON(http.StatusOK, gin.H{"status": "ko"})
			return
		}
		h.log.Error("follow toggle failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("playlist_id", req.PlaylistPK),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type addMusicRequest struct {
	MusicID    int64 `json:"music_id"`
	PlaylistID int64 `json:"playlist_id"`
}

// AddMusic attaches a track to a playlist. Adding a track that is already
// present leaves the playlist unchanged and reports ok.
func (h *PlaylistHandler) AddMusic(c *gin.Context) {
	var req addMusicRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MusicID <= 0 || req.PlaylistID <= 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ko", "error": "music id or playlist id is missing"})
		return
	}

	err := h.service.AddMusic(c.Request.Context(), req.MusicID, req.PlaylistID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, domain.ErrMusicNotFound):
		c.JSON(http.StatusOK, gin.H{"status": "ko", "error": "such music does not exist"})
	case errors.Is(err, domain.ErrPlaylistNotFound):
		c.JSON(http.StatusOK, gin.H{"status": "ko", "error": "such playlist does not exist"})
	default:
		h.log.Error("adding music to playlist failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("playlist_id", req.PlaylistID),
			logger.Int64("music_id", req.MusicID),
			logger.Err(err),
		)
		handleError(c, err)
	}
}

// Detail returns the tracks of one playlist.
func (h *PlaylistHandler) Detail(c *gin.Context) {
	var req pkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PK <= 0 {
		c.JSON(http.StatusOK, gin.H{"error": "you should send pk field"})
		return
	}

	musics, err := h.service.Musics(c.Request.Context(), req.PK)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "such playlist does not exist!"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyAsList(musics))
}

// Top returns the highest-valued playlists, served from the ranking cache.
func (h *PlaylistHandler) Top(c *gin.Context) {
	playlists, err := h.ranking.TopPlaylists(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(playlists))
}

// Mine lists the playlists created by the caller.
func (h *PlaylistHandler) Mine(c *gin.Context) {
	playlists, err := h.service.ListMine(c.Request.Context(), httputil.GetProfileID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(playlists))
}

// Followed lists the playlists the caller follows.
func (h *PlaylistHandler) Followed(c *gin.Context) {
	playlists, err := h.service.ListFollowed(c.Request.Context(), httputil.GetProfileID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(playlists))
}
