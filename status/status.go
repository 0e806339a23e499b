package status

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	store *db.Store
	cache *rdx.Cache
}

func NewHandler(store *db.Store, cache *rdx.Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// Health is a simple health check handler.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// GET /api/test
//
// Diagnostic snapshot of the database wiring: collection names, spot
// count, database name and connection state.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	connectionState := "connected"
	if err := h.store.Ping(ctx); err != nil {
		connectionState = "disconnected"
	}

	collections, err := h.store.CollectionNames(ctx)
	if err != nil {
		log.Printf("status: listing collections failed: %v", err)
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Database check failed", err)
		return
	}

	spotCount, err := h.store.Spots.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("status: counting spots failed: %v", err)
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Database check failed", err)
		return
	}

	data := utils.M{
		"collections":     collections,
		"spotCount":       spotCount,
		"dbName":          h.store.Name,
		"connectionState": connectionState,
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			data["redis"] = "unreachable"
		} else {
			data["redis"] = "connected"
		}
	}

	utils.SendResponse(w, http.StatusOK, data, "Backend is running", nil)
}
