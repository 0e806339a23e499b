package models

type Location struct {
	City    string `json:"city" bson:"city"`
	MapLink string `json:"mapLink,omitempty" bson:"mapLink,omitempty"`
}

type GoogleReviews struct {
	Rating      float64 `json:"rating" bson:"rating"`
	ReviewCount int     `json:"reviewCount" bson:"reviewCount"`
}

// Spot is a tourist point-of-interest. The catalog is seeded externally
// and read-only through the API.
type Spot struct {
	SpotID        int           `json:"spotId" bson:"spotId"`
	Title         string        `json:"title" bson:"title"`
	Category      []string      `json:"category" bson:"category"`
	Description   string        `json:"description" bson:"description"`
	Location      Location      `json:"location" bson:"location"`
	Price         float64       `json:"price" bson:"price"`
	GoogleReviews GoogleReviews `json:"googleReviews" bson:"googleReviews"`
	Website       string        `json:"website,omitempty" bson:"website,omitempty"`
	// Image is stored as a bare filename; handlers rewrite it to an
	// absolute URL under the backend's /images path.
	Image string `json:"image" bson:"image"`
}
