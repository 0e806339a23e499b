package routes

import (
	"net/http"

	"voyago/auth"
	"voyago/itinerary"
	"voyago/ratelim"
	"voyago/reviews"
	"voyago/spots"
	"voyago/status"
	"voyago/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/register", rl.Limit(h.Register))
	router.POST("/api/login", rl.Limit(h.Login))
}

func AddUserRoutes(router *httprouter.Router, h *users.Handler) {
	router.GET("/api/users/:email", h.GetUser)
	router.PUT("/api/users/:email/preferences", h.UpdatePreferences)
}

func AddSpotRoutes(router *httprouter.Router, h *spots.Handler) {
	router.GET("/api/spots", h.GetSpots)
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler) {
	router.POST("/api/itineraries", h.SaveItinerary)
	router.GET("/api/itineraries/:emailId", h.GetItinerary)
}

func AddReviewRoutes(router *httprouter.Router, h *reviews.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/reviews", rl.Limit(h.AddReview))
	router.GET("/api/reviews/:spotId", h.GetReviews)
}

func AddStatusRoutes(router *httprouter.Router, h *status.Handler) {
	router.GET("/health", status.Health)
	router.GET("/api/test", h.Test)
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/images/*filepath", http.Dir("static/images"))
}
