package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/summary-flow/internal/service"
)

type SummarizeRequest struct {
	URL string `json:"url" binding:"required"`
}

type SummarizeResponse struct {
	Success      bool    `json:"success"`
	Error        string  `json:"error"`
	VideoID      string  `json:"video_id"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnail_url"`
	AspectRatio  float64 `json:"aspect_ratio"`
	WebpageURL   string  `json:"webpage_url"`
	Summary      string  `json:"summary"`
}

type ChatRequest struct {
	VideoID  string `json:"video_id" binding:"required"`
	Question string `json:"question" binding:"required"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing 'url' in request body",
		})
		return
	}

	res, err := s.svc.Summarize(c.Request.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{
		Success:      true,
		VideoID:      res.VideoID,
		Title:        res.Title,
		ThumbnailURL: res.ThumbnailURL,
		AspectRatio:  res.AspectRatio,
		WebpageURL:   res.WebpageURL,
		Summary:      res.Summary,
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing 'video_id' or 'question' in request body",
		})
		return
	}

	answer, err := s.svc.Chat(c.Request.Context(), req.VideoID, strings.TrimSpace(req.Question))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Success: true, Answer: answer})
}

// renderError maps pipeline errors to HTTP responses. Client-facing messages
// stay generic; the full error goes to the log.
func (s *Server) renderError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), "Request %s failed: %v", c.FullPath(), err)

	var nce *service.NoCaptionsError
	switch {
	case errors.Is(err, service.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid YouTube URL",
		})
	case errors.Is(err, service.ErrTooLong):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Video duration exceeds the maximum allowed",
		})
	case errors.As(err, &nce):
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":  false,
			"error":    "Captions are not available for this video",
			"video_id": nce.VideoID,
		})
	case errors.Is(err, service.ErrNotCached):
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Transcript not found. Summarize the video first.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while processing the video",
		})
	}
}
