package users

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userCollection is the slice of *mongo.Collection the handlers touch.
type userCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
}

type Handler struct {
	users userCollection
	cache *rdx.Cache
}

func NewHandler(store *db.Store, cache *rdx.Cache) *Handler {
	return &Handler{users: store.Users, cache: cache}
}

// GET /api/users/:email
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := utils.NormalizeEmail(ps.ByName("email"))

	var user models.User
	err := h.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		log.Printf("users: lookup failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    user.Profile(),
	})
}

type preferencesInput struct {
	Preferences *[]string `json:"preferences"`
}

// PUT /api/users/:email/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input preferencesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Preferences == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Preferences must be an array")
		return
	}

	email := utils.NormalizeEmail(ps.ByName("email"))

	var updated models.User
	err := h.users.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"preferences": *input.Preferences}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		log.Printf("users: preferences update failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	h.dropCachedProfile(email)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Preferences updated successfully",
		"user":    updated.Profile(),
	})
}

func (h *Handler) dropCachedProfile(email string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Del(context.Background(), "users:"+email); err != nil {
		log.Printf("Failed to drop cached profile: %v", err)
	}
}
