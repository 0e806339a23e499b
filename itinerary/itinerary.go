package itinerary

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// itineraryCollection is the slice of *mongo.Collection the handlers touch.
type itineraryCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type Handler struct {
	itineraries itineraryCollection
}

func NewHandler(store *db.Store) *Handler {
	return &Handler{itineraries: store.Itineraries}
}

func saveFilter(itin models.Itinerary) bson.M {
	return bson.M{"emailId": itin.EmailID}
}

// saveUpdate overwrites the whole spots array and totalCost; there is no
// merging of entries. createdAt is only written when the upsert inserts.
func saveUpdate(itin models.Itinerary) bson.M {
	return bson.M{
		"$set": bson.M{
			"spots":     itin.Spots,
			"totalCost": itin.TotalCost,
			"updatedAt": itin.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": itin.CreatedAt,
		},
	}
}

// POST /api/itineraries
//
// Saves replace the whole spots array and totalCost for the user; two
// concurrent saves for the same emailId are last-write-wins.
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itin models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&itin); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if itin.Spots == nil {
		itin.Spots = []models.ItinerarySpot{}
	}

	_, err := h.itineraries.UpdateOne(ctx, saveFilter(itin), saveUpdate(itin), options.Update().SetUpsert(true))
	if err != nil {
		log.Printf("itinerary: save failed for %s: %v", itin.EmailID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Itinerary saved successfully",
	})
}

// GET /api/itineraries/:emailId
//
// A user who never saved an itinerary gets an empty one back, not a 404.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	emailID := ps.ByName("emailId")

	var itin models.Itinerary
	err := h.itineraries.FindOne(ctx, bson.M{"emailId": emailID}).Decode(&itin)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"data": utils.M{
				"spots":     []models.ItinerarySpot{},
				"totalCost": 0,
			},
		})
		return
	} else if err != nil {
		log.Printf("itinerary: fetch failed for %s: %v", emailID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}

	if itin.Spots == nil {
		itin.Spots = []models.ItinerarySpot{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    itin,
	})
}
