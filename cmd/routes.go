package main

import (
	"net/http"

	"marketBack/internal/models"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleUser))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))
	superAdminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleSuperAdmin))
	optionalAuthMiddleware := standardMiddleware.Append(app.optionalAuth)

	mux := pat.New()

	// Auth
	mux.Post("/auth/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/auth/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/auth/request_reset", standardMiddleware.ThenFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/auth/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))

	// Users
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/users/me", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Get("/users/:id", standardMiddleware.ThenFunc(app.userHandler.GetPublicUser))
	mux.Get("/users/:id/listings", standardMiddleware.ThenFunc(app.listingHandler.GetSellerListings))
	mux.Get("/users/:id/reviews", standardMiddleware.ThenFunc(app.reviewHandler.GetUserReviews))

	// Listings
	mux.Post("/listings", authMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Get("/listings", standardMiddleware.ThenFunc(app.listingHandler.GetListings))
	mux.Get("/listings/my", authMiddleware.ThenFunc(app.listingHandler.GetMyListings))
	mux.Get("/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListing))
	mux.Put("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.DeleteListing))
	mux.Post("/listings/:id/media", authMiddleware.ThenFunc(app.listingHandler.UploadMedia))
	mux.Get("/listings/:id/similar", standardMiddleware.ThenFunc(app.recommendationHandler.GetSimilar))

	// Categories
	mux.Get("/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))

	// Recommendations
	mux.Get("/recommendations/for_you", optionalAuthMiddleware.ThenFunc(app.recommendationHandler.GetForYou))

	// Messages
	mux.Post("/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/messages/conversations", authMiddleware.ThenFunc(app.messageHandler.GetConversations))
	mux.Get("/messages/unread_count", authMiddleware.ThenFunc(app.messageHandler.GetUnreadCount))
	mux.Get("/messages/thread/:user_id/:listing_id", authMiddleware.ThenFunc(app.messageHandler.GetThread))
	mux.Post("/messages/read/:user_id/:listing_id", authMiddleware.ThenFunc(app.messageHandler.MarkConversationRead))

	// Offers
	mux.Post("/offers", authMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Post("/offers/:id/resolve", authMiddleware.ThenFunc(app.offerHandler.ResolveOffer))
	mux.Get("/offers/received", authMiddleware.ThenFunc(app.offerHandler.GetReceivedOffers))
	mux.Get("/offers/sent", authMiddleware.ThenFunc(app.offerHandler.GetSentOffers))

	// Reviews
	mux.Post("/reviews", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))

	// Favorites
	mux.Post("/favorites/:listing_id", authMiddleware.ThenFunc(app.favoriteHandler.AddFavorite))
	mux.Del("/favorites/:listing_id", authMiddleware.ThenFunc(app.favoriteHandler.RemoveFavorite))
	mux.Get("/favorites/check/:listing_id", authMiddleware.ThenFunc(app.favoriteHandler.CheckFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))

	// Support
	mux.Post("/support/tickets", authMiddleware.ThenFunc(app.supportHandler.CreateTicket))
	mux.Get("/support/tickets", authMiddleware.ThenFunc(app.supportHandler.GetMyTickets))

	// AI helpers
	mux.Post("/ai/generate_description", authMiddleware.ThenFunc(app.aiHandler.GenerateDescription))
	mux.Post("/ai/suggest_price", authMiddleware.ThenFunc(app.aiHandler.SuggestPrice))

	// Admin
	mux.Get("/admin/users", adminMiddleware.ThenFunc(app.adminHandler.GetUsers))
	mux.Del("/admin/users/:id", adminMiddleware.ThenFunc(app.adminHandler.DeleteUser))
	mux.Post("/admin/users/:id/verify", adminMiddleware.ThenFunc(app.adminHandler.VerifyUser))
	mux.Post("/admin/users/:id/unverify", adminMiddleware.ThenFunc(app.adminHandler.UnverifyUser))
	mux.Post("/admin/users/:id/promote", superAdminMiddleware.ThenFunc(app.adminHandler.PromoteUser))
	mux.Post("/admin/users/:id/demote", superAdminMiddleware.ThenFunc(app.adminHandler.DemoteUser))
	mux.Get("/admin/listings", adminMiddleware.ThenFunc(app.adminHandler.GetListings))
	mux.Del("/admin/listings/:id", adminMiddleware.ThenFunc(app.adminHandler.DeleteListing))
	mux.Post("/admin/listings/:id/pin", adminMiddleware.ThenFunc(app.adminHandler.PinListing))
	mux.Post("/admin/listings/:id/unpin", adminMiddleware.ThenFunc(app.adminHandler.UnpinListing))
	mux.Get("/admin/messages", adminMiddleware.ThenFunc(app.adminHandler.GetRecentMessages))
	mux.Get("/admin/tickets", adminMiddleware.ThenFunc(app.adminHandler.GetTickets))
	mux.Post("/admin/tickets/:id/reply", adminMiddleware.ThenFunc(app.adminHandler.ReplyToTicket))
	mux.Get("/admin/stats", adminMiddleware.ThenFunc(app.adminHandler.GetStats))

	return mux
}
