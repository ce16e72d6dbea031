package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/logger"
)

// MusicHandler serves track playback and like endpoints.
type MusicHandler struct {
	service *service.MusicService
	log     logger.Logger
}

func NewMusicHandler(service *service.MusicService, log logger.Logger) *MusicHandler {
	return &MusicHandler{service: service, log: log}
}

// Get returns playback details for one track and bumps its view counter.
// A missing, malformed, or unknown id all produce the same in-payload
// error so the player client keeps a single failure path.
func (h *MusicHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusOK, gin.H{"error": "wrong parameters are sent"})
		return
	}

	music, err := h.service.GetMusic(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMusicNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "wrong parameters are sent"})
			return
		}
		h.log.Error("fetching music failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("music_id", id),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     music.ID,
		"title":  music.Name,
		"artist": music.ArtistName,
		"mp3":    music.Links,
	})
}

// Liked lists the caller's liked tracks.
func (h *MusicHandler) Liked(c *gin.Context) {
	musics, err := h.service.ListLiked(c.Request.Context(), httputil.GetProfileID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyAsList(musics))
}

type likeRequest struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

// Like toggles the caller's like mark on a track. Both directions are
// idempotent; applying the current state again still reports ok.
func (h *MusicHandler) Like(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ko"})
		return
	}

	err := h.service.SetLike(c.Request.Context(), req.ID, httputil.GetProfileID(c), domain.LikeAction(req.Action))
	if err != nil {
		if errors.Is(err, domain.ErrMusicNotFound) || errors.Is(err, domain.ErrInvalidAction) {
			c.JSON(http.StatusOK, gin.H{"status": "ko"})
			return
		}
		h.log.Error("like toggle failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Int64("music_id", req.ID),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
