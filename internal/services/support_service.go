package services

import (
	"context"
	"time"

	"marketBack/internal/models"
	"marketBack/internal/repositories"

	"github.com/google/uuid"
)

type SupportService struct {
	SupportRepo *repositories.SupportRepository
	UserRepo    *repositories.UserRepository
}

func (s *SupportService) CreateTicket(ctx context.Context, userID string, req models.SupportTicketCreate) (models.SupportTicket, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.SupportTicket{}, err
	}
	ticket := models.SupportTicket{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.TicketStatusOpen,
		Replies:   []models.TicketReply{},
		CreatedAt: time.Now().UTC(),
	}
	return s.SupportRepo.CreateTicket(ctx, ticket)
}

func (s *SupportService) MyTickets(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	return s.SupportRepo.GetTicketsByUser(ctx, userID)
}
