package auth

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
	"golang.org/x/crypto/bcrypt"
)

const profileCacheTTL = 10 * time.Minute

// Client-facing auth messages; the frontend matches on these exact strings.
const (
	MsgEmailAlreadyRegistered = "Email already registered"
	MsgEmailNotRegistered     = "This Email is not Registered. Please Register First"
	MsgPasswordIncorrect      = "The Password you have entered is Incorrect"
)

// userCollection is the slice of *mongo.Collection the handlers touch.
type userCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type Handler struct {
	users userCollection
	cache *rdx.Cache
}

func NewHandler(store *db.Store, cache *rdx.Cache) *Handler {
	return &Handler{users: store.Users, cache: cache}
}

type RegisterInput struct {
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	DestinationCity string    `json:"destinationCity"`
	Preferences     *[]string `json:"preferences"`
}

// ValidateRegistration returns a client-facing message when the payload
// is unusable, or "" when it passes. Preferences must be present as an
// array, even an empty one.
func ValidateRegistration(in RegisterInput) string {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.DestinationCity == "" {
		return "All fields are required"
	}
	if in.Preferences == nil {
		return "Preferences must be an array"
	}
	return ""
}

// POST /api/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg := ValidateRegistration(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	email := utils.NormalizeEmail(input.Email)

	err := h.users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, MsgEmailAlreadyRegistered)
		return
	} else if err != mongo.ErrNoDocuments {
		log.Printf("register: lookup failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: failed to hash password: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		FullName:        input.FullName,
		Email:           email,
		Password:        string(hashed),
		DestinationCity: input.DestinationCity,
		Preferences:     *input.Preferences,
		CreatedAt:       time.Now(),
	}

	if _, err := h.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, MsgEmailAlreadyRegistered)
			return
		}
		log.Printf("register: insert failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	h.cacheProfile(user.Profile())

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "User registered successfully",
		"user":    user.Profile(),
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	var stored models.User
	err := h.users.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(input.Email)}).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusUnauthorized, MsgEmailNotRegistered)
		return
	} else if err != nil {
		log.Printf("login: lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, MsgPasswordIncorrect)
		return
	}

	// No session or token is issued; the client keeps the email.
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Login successful",
		"user": utils.M{
			"email":       stored.Email,
			"fullName":    stored.FullName,
			"preferences": stored.Profile().Preferences,
		},
	})
}

func (h *Handler) cacheProfile(profile models.UserProfile) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := h.cache.Set(context.Background(), "users:"+profile.Email, string(data), profileCacheTTL); err != nil {
		log.Printf("Failed to cache user profile: %v", err)
	}
}
