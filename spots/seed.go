package spots

import (
	"context"
	"log"

	"voyago/db"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

var defaultSpots = []models.Spot{
	{
		SpotID:        1,
		Title:         "Gateway of India",
		Category:      []string{"Monument", "Historical"},
		Description:   "Iconic arch monument overlooking the Arabian Sea, built in the early 20th century.",
		Location:      models.Location{City: "Mumbai", MapLink: "https://maps.google.com/?q=Gateway+of+India"},
		Price:         0,
		GoogleReviews: models.GoogleReviews{Rating: 4.6, ReviewCount: 48211},
		Website:       "https://www.maharashtratourism.gov.in",
		Image:         "gateway-of-india.jpg",
	},
	{
		SpotID:        2,
		Title:         "Elephanta Caves",
		Category:      []string{"Heritage", "Caves"},
		Description:   "Rock-cut cave temples on Elephanta Island, a UNESCO World Heritage Site.",
		Location:      models.Location{City: "Mumbai", MapLink: "https://maps.google.com/?q=Elephanta+Caves"},
		Price:         600,
		GoogleReviews: models.GoogleReviews{Rating: 4.4, ReviewCount: 21874},
		Image:         "elephanta-caves.jpg",
	},
	{
		SpotID:        3,
		Title:         "Marine Drive",
		Category:      []string{"Promenade", "Scenic"},
		Description:   "Curved seaside boulevard known as the Queen's Necklace for its night-time lights.",
		Location:      models.Location{City: "Mumbai", MapLink: "https://maps.google.com/?q=Marine+Drive"},
		Price:         0,
		GoogleReviews: models.GoogleReviews{Rating: 4.7, ReviewCount: 35990},
		Image:         "marine-drive.jpg",
	},
	{
		SpotID:        4,
		Title:         "Sanjay Gandhi National Park",
		Category:      []string{"Nature", "Wildlife"},
		Description:   "Protected forest inside the city with the ancient Kanheri caves and safari rides.",
		Location:      models.Location{City: "Mumbai", MapLink: "https://maps.google.com/?q=Sanjay+Gandhi+National+Park"},
		Price:         85,
		GoogleReviews: models.GoogleReviews{Rating: 4.3, ReviewCount: 15430},
		Image:         "sgnp.jpg",
	},
}

// EnsureSeedData inserts the default catalog when the spots collection is
// empty. The catalog is otherwise seeded externally and read-only here.
func EnsureSeedData(ctx context.Context, store *db.Store) error {
	count, err := store.Spots.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(defaultSpots))
	for i, s := range defaultSpots {
		docs[i] = s
	}

	if _, err := store.Spots.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d spots", len(docs))
	return nil
}
