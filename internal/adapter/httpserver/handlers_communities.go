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

func (s *Server) registerCommunityRoutes(api *echo.Group) {
	api.GET("/communities", s.handleListCommunities)
	api.POST("/communities", s.handleCreateCommunity)
	api.DELETE("/communities/:id", s.handleDeleteCommunity)
}

type createCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type communityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCommunityResponse(c domain.Community) communityResponse {
	return communityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func (s *Server) handleListCommunities(c echo.Context) error {
	ctx := c.Request().Context()

	communities, err := s.app.ListCommunities(ctx)
	if err != nil {
		return mapDomainError(err)
	}

	response := make([]communityResponse, 0, len(communities))
	for _, community := range communities {
		response = append(response, toCommunityResponse(community))
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCreateCommunity(c echo.Context) error {
	ctx := c.Request().Context()

	var req createCommunityRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	community, err := s.app.CreateCommunity(ctx, domain.NewCommunity{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(http.StatusCreated, toCommunityResponse(*community)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteCommunity(c echo.Context) error {
	ctx := c.Request().Context()

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid community ID").WithField("id", c.Param("id"))
	}

	if err := s.app.DeleteCommunity(ctx, communityID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
