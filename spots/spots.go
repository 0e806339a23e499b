package spots

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	catalogCacheKey = "spots:catalog"
	catalogCacheTTL = 60 * time.Second
)

type Handler struct {
	spots utils.Finder
	cache *rdx.Cache
	// baseURL prefixes stored image filenames, e.g. http://localhost:8080
	baseURL string
}

func NewHandler(store *db.Store, cache *rdx.Cache, baseURL string) *Handler {
	return &Handler{spots: store.Spots, cache: cache, baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL rewrites a stored image filename to an absolute URL under the
// backend's /images path. Already-absolute values pass through untouched.
func ImageURL(baseURL, image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return baseURL + "/images/" + image
}

// GET /api/spots
func (h *Handler) GetSpots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if spots, ok := h.cachedCatalog(ctx); ok {
		utils.SendResponse(w, http.StatusOK, spots, "Spots fetched successfully", nil)
		return
	}

	spots, err := utils.FindAndDecode[models.Spot](ctx, h.spots, bson.M{})
	if err != nil {
		log.Printf("spots: fetch failed: %v", err)
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to fetch spots", err)
		return
	}

	for i := range spots {
		spots[i].Image = ImageURL(h.baseURL, spots[i].Image)
	}

	h.cacheCatalog(spots)

	utils.SendResponse(w, http.StatusOK, spots, "Spots fetched successfully", nil)
}

func (h *Handler) cachedCatalog(ctx context.Context) ([]models.Spot, bool) {
	if h.cache == nil {
		return nil, false
	}
	raw, err := h.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, false
	}
	var spots []models.Spot
	if err := json.Unmarshal([]byte(raw), &spots); err != nil {
		return nil, false
	}
	return spots, true
}

func (h *Handler) cacheCatalog(spots []models.Spot) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(spots)
	if err != nil {
		return
	}
	if err := h.cache.Set(context.Background(), catalogCacheKey, string(data), catalogCacheTTL); err != nil {
		log.Printf("Failed to cache spot catalog: %v", err)
	}
}
