package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thaisassuncao/community-app/internal/domain"
	apperrors "github.com/thaisassuncao/community-app/internal/errors"
)

func (s *Server) registerAnalyticsRoutes(api *echo.Group) {
	api.GET("/communities/:id/top_messages", s.handleTopMessages)
	api.GET("/analytics/suspicious_ips", s.handleSuspiciousIPs)
}

type rankedMessageResponse struct {
	ID              uuid.UUID      `json:"id"`
	Content         string         `json:"content"`
	Author          authorResponse `json:"author"`
	SentimentScore  float64        `json:"sentiment_score"`
	ReactionCount   int            `json:"reaction_count"`
	ReplyCount      int            `json:"reply_count"`
	EngagementScore float64        `json:"engagement_score"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (s *Server) handleTopMessages(c echo.Context) error {
	ctx := c.Request().Context()

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid community ID").WithField("id", c.Param("id"))
	}

	// Malformed limits fall back to the default, matching the lenient
	// integer coercion the endpoint always had.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ranked, err := s.app.TopMessages(ctx, communityID, limit)
	if err != nil {
		return mapDomainError(err)
	}

	response := make([]rankedMessageResponse, 0, len(ranked))
	for _, r := range ranked {
		response = append(response, rankedMessageResponse{
			ID:              r.Message.ID,
			Content:         r.Message.Content,
			Author:          authorResponse{ID: r.Author.ID, Username: r.Author.Username},
			SentimentScore:  r.Message.SentimentScore,
			ReactionCount:   r.ReactionCount,
			ReplyCount:      r.ReplyCount,
			EngagementScore: r.EngagementScore,
			CreatedAt:       r.Message.CreatedAt,
		})
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSuspiciousIPs(c echo.Context) error {
	ctx := c.Request().Context()

	minUsers, _ := strconv.Atoi(c.QueryParam("min_users"))

	flagged, err := s.app.SuspiciousIPs(ctx, minUsers)
	if err != nil {
		return mapDomainError(err)
	}

	if flagged == nil {
		flagged = []domain.SuspiciousIP{}
	}
	if err := c.JSON(http.StatusOK, flagged); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
