package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thaisassuncao/community-app/internal/domain"
	apperrors "github.com/thaisassuncao/community-app/internal/errors"
)

func (s *Server) registerMessageRoutes(api *echo.Group) {
	api.POST("/messages", s.handleCreateMessage)
	api.DELETE("/messages/:id", s.handleDeleteMessage)
}

type createMessageRequest struct {
	Username        string  `json:"username"`
	CommunityID     string  `json:"community_id"`
	Content         string  `json:"content"`
	ParentMessageID *string `json:"parent_message_id"`
}

type authorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type messageResponse struct {
	ID             uuid.UUID      `json:"id"`
	Content        string         `json:"content"`
	Author         authorResponse `json:"author"`
	CommunityID    uuid.UUID      `json:"community_id"`
	ParentID       *uuid.UUID     `json:"parent_id,omitempty"`
	SentimentScore float64        `json:"sentiment_score"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (s *Server) handleCreateMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	communityID, err := uuid.Parse(req.CommunityID)
	if err != nil {
		return apperrors.ValidationError("invalid community ID").WithField("community_id", req.CommunityID)
	}

	var parentID *uuid.UUID
	if req.ParentMessageID != nil {
		parsed, err := uuid.Parse(*req.ParentMessageID)
		if err != nil {
			return apperrors.ValidationError("invalid parent message ID").WithField("parent_message_id", *req.ParentMessageID)
		}
		parentID = &parsed
	}

	message, author, err := s.app.CreateMessage(ctx, domain.NewMessage{
		Username:    req.Username,
		CommunityID: communityID,
		Content:     req.Content,
		UserIP:      c.RealIP(),
		ParentID:    parentID,
	})
	if err != nil {
		return mapDomainError(err)
	}

	response := messageResponse{
		ID:             message.ID,
		Content:        message.Content,
		Author:         authorResponse{ID: author.ID, Username: author.Username},
		CommunityID:    message.CommunityID,
		ParentID:       message.ParentID,
		SentimentScore: message.SentimentScore,
		CreatedAt:      message.CreatedAt,
	}
	if err := c.JSON(http.StatusCreated, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteMessage(c echo.Context) error {
	ctx := c.Request().Context()

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid message ID").WithField("id", c.Param("id"))
	}

	if err := s.app.DeleteMessage(ctx, messageID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
