package models

type ItinerarySpot struct {
	SpotID int     `json:"spotId" bson:"spotId"`
	Title  string  `json:"title" bson:"title"`
	Price  float64 `json:"price" bson:"price"`
	Date   string  `json:"date,omitempty" bson:"date,omitempty"`
	Status string  `json:"status,omitempty" bson:"status,omitempty"`
}

// Itinerary holds one user's planned spots. At most one document exists
// per emailId; saves replace the whole spots array, never merge.
type Itinerary struct {
	EmailID   string          `json:"emailId" bson:"emailId"`
	Spots     []ItinerarySpot `json:"spots" bson:"spots"`
	TotalCost float64         `json:"totalCost" bson:"totalCost"`
	CreatedAt string          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// RemoveSpot filters every entry for spotID out of spots and returns the
// remaining entries together with the sum of their prices. Reviewing a
// spot removes it from the reviewer's itinerary through this.
func RemoveSpot(spots []ItinerarySpot, spotID int) ([]ItinerarySpot, float64) {
	remaining := []ItinerarySpot{}
	total := 0.0
	for _, s := range spots {
		if s.SpotID == spotID {
			continue
		}
		remaining = append(remaining, s)
		total += s.Price
	}
	return remaining, total
}
