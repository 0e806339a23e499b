package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection seams; *mongo.Collection satisfies both.
type reviewCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

type itineraryCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type Handler struct {
	reviews     reviewCollection
	itineraries itineraryCollection
}

func NewHandler(store *db.Store) *Handler {
	return &Handler{reviews: store.Reviews, itineraries: store.Itineraries}
}

type ReviewInput struct {
	EmailID string `json:"emailId"`
	SpotID  *int   `json:"spotId"`
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// ValidateReview returns a client-facing message when the payload is
// unusable, or "" when it passes.
func ValidateReview(in ReviewInput) string {
	if in.EmailID == "" || in.SpotID == nil || in.Rating == nil || in.Comment == "" {
		return "All fields are required"
	}
	if *in.Rating < 1 || *in.Rating > 5 {
		return "Rating must be between 1 and 5"
	}
	return ""
}

// POST /api/reviews
//
// After the review is stored, any itinerary entry the reviewer had for
// that spot is dropped and the itinerary's totalCost recomputed. The two
// writes are sequential, not transactional: if the itinerary update
// fails the review still stands and the failure is only logged.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg := ValidateReview(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	review := models.Review{
		EmailID:   input.EmailID,
		SpotID:    *input.SpotID,
		Rating:    *input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if _, err := h.reviews.InsertOne(ctx, review); err != nil {
		log.Printf("reviews: insert failed for %s/%d: %v", review.EmailID, review.SpotID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	h.removeFromItinerary(ctx, review.EmailID, review.SpotID)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Review submitted successfully",
		"review":  review,
	})
}

func (h *Handler) removeFromItinerary(ctx context.Context, emailID string, spotID int) {
	var itin models.Itinerary
	err := h.itineraries.FindOne(ctx, bson.M{"emailId": emailID}).Decode(&itin)
	if err == mongo.ErrNoDocuments {
		return
	} else if err != nil {
		log.Printf("reviews: itinerary lookup failed for %s: %v", emailID, err)
		return
	}

	remaining, total := models.RemoveSpot(itin.Spots, spotID)
	if len(remaining) == len(itin.Spots) {
		return
	}

	update := bson.M{"$set": bson.M{
		"spots":     remaining,
		"totalCost": total,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}}

	if _, err := h.itineraries.UpdateOne(ctx, bson.M{"emailId": emailID}, update); err != nil {
		// Review already persisted; itinerary is left stale.
		log.Printf("reviews: itinerary update failed for %s after review of spot %d: %v", emailID, spotID, err)
	}
}

// ParseSort maps the sortBy/order query parameters onto a Mongo sort.
// Only whitelisted fields are accepted; anything else falls back to the
// default of newest first.
func ParseSort(sortBy, order string) bson.D {
	field := "createdAt"
	switch sortBy {
	case "rating":
		field = "rating"
	case "", "createdAt":
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}

// GET /api/reviews/:spotId
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	spotID, err := strconv.Atoi(ps.ByName("spotId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Spot id must be numeric")
		return
	}

	query := r.URL.Query()
	sort := ParseSort(query.Get("sortBy"), query.Get("order"))
	opts := options.Find().SetSort(sort)

	found, err := utils.FindAndDecode[models.Review](ctx, h.reviews, bson.M{"spotId": spotID}, opts)
	if err != nil {
		log.Printf("reviews: fetch failed for spot %d: %v", spotID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"reviews": found,
	})
}
