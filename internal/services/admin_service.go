package services

import (
	"context"
	"log"
	"time"

	"marketBack/internal/models"
	"marketBack/internal/repositories"
)

type AdminService struct {
	UserRepo     *repositories.UserRepository
	ListingRepo  *repositories.ListingRepository
	MessageRepo  *repositories.MessageRepository
	OfferRepo    *repositories.OfferRepository
	ReviewRepo   *repositories.ReviewRepository
	FavoriteRepo *repositories.FavoriteRepository
	SupportRepo  *repositories.SupportRepository
}

const recentMessagesLimit = 500

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAllUsers(ctx)
}

// DeleteUser removes the account and everything it owns. Ratings of users
// the account had reviewed are recomputed afterwards.
func (s *AdminService) DeleteUser(ctx context.Context, targetID, actorRole string) error {
	target, err := s.UserRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperAdmin {
		return models.ErrForbidden
	}
	if target.Role == models.RoleAdmin && actorRole != models.RoleSuperAdmin {
		return models.ErrForbidden
	}

	reviewed, err := s.ReviewRepo.ListReviewedBy(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.UserRepo.DeleteUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.ListingRepo.DeleteBySeller(ctx, targetID); err != nil {
		return err
	}
	if err := s.MessageRepo.DeleteForUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.OfferRepo.DeleteForUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.ReviewRepo.DeleteForUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.FavoriteRepo.DeleteForUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.UserRepo.DeleteSessionsForUser(ctx, targetID); err != nil {
		return err
	}
	for _, id := range reviewed {
		if err := s.ReviewRepo.RecalculateRating(ctx, id); err != nil {
			log.Printf("ERROR\trecalculate rating for user %s: %v", id, err)
		}
	}
	return nil
}

func (s *AdminService) PromoteUser(ctx context.Context, targetID string) error {
	target, err := s.UserRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperAdmin {
		return models.ErrForbidden
	}
	return s.UserRepo.SetRole(ctx, targetID, models.RoleAdmin)
}

func (s *AdminService) DemoteUser(ctx context.Context, targetID string) error {
	target, err := s.UserRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperAdmin {
		return models.ErrForbidden
	}
	return s.UserRepo.SetRole(ctx, targetID, models.RoleUser)
}

func (s *AdminService) SetVerified(ctx context.Context, targetID string, verified bool) error {
	return s.UserRepo.SetVerified(ctx, targetID, verified)
}

func (s *AdminService) ListListings(ctx context.Context) ([]models.Listing, error) {
	return s.ListingRepo.GetAllListings(ctx)
}

func (s *AdminService) DeleteListing(ctx context.Context, id string) error {
	if _, err := s.ListingRepo.GetListingByID(ctx, id); err != nil {
		return err
	}
	return s.ListingRepo.DeleteListingCascade(ctx, id)
}

func (s *AdminService) SetPinned(ctx context.Context, id string, pinned bool) error {
	return s.ListingRepo.SetPinned(ctx, id, pinned)
}

func (s *AdminService) RecentMessages(ctx context.Context) ([]models.Message, error) {
	return s.MessageRepo.ListRecent(ctx, recentMessagesLimit)
}

func (s *AdminService) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return s.SupportRepo.GetAllTickets(ctx)
}

func (s *AdminService) ReplyToTicket(ctx context.Context, ticketID, message string) error {
	reply := models.TicketReply{
		From:      "admin",
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	return s.SupportRepo.AppendReply(ctx, ticketID, reply)
}

func (s *AdminService) Stats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	var err error
	if stats.Users, err = s.UserRepo.CountUsers(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.VerifiedSellers, err = s.UserRepo.CountVerified(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Admins, err = s.UserRepo.CountUsersByRole(ctx, models.RoleAdmin); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Listings, err = s.ListingRepo.CountListings(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.PinnedListings, err = s.ListingRepo.CountPinned(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Messages, err = s.MessageRepo.CountMessages(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Offers, err = s.OfferRepo.CountOffers(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.OpenTickets, err = s.SupportRepo.CountOpen(ctx); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}
