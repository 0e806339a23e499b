package models

import "testing"

func TestRemoveSpot(t *testing.T) {
	spots := []ItinerarySpot{
		{SpotID: 1, Title: "Gateway of India", Price: 100},
		{SpotID: 2, Title: "Elephanta Caves", Price: 50},
	}

	remaining, total := RemoveSpot(spots, 1)
	if len(remaining) != 1 || remaining[0].SpotID != 2 {
		t.Fatalf("expected only spot 2 to remain, got %v", remaining)
	}
	if total != 50 {
		t.Fatalf("expected totalCost 50, got %v", total)
	}
}

func TestRemoveSpotNoMatch(t *testing.T) {
	spots := []ItinerarySpot{
		{SpotID: 1, Price: 100},
		{SpotID: 2, Price: 50},
	}

	remaining, total := RemoveSpot(spots, 99)
	if len(remaining) != 2 {
		t.Fatalf("expected both spots to remain, got %v", remaining)
	}
	if total != 150 {
		t.Fatalf("expected totalCost 150, got %v", total)
	}
}

func TestRemoveSpotLastEntry(t *testing.T) {
	spots := []ItinerarySpot{{SpotID: 7, Price: 300}}

	remaining, total := RemoveSpot(spots, 7)
	if remaining == nil {
		t.Fatal("remaining must be an empty slice, not nil, so it serializes as []")
	}
	if len(remaining) != 0 || total != 0 {
		t.Fatalf("expected empty itinerary with zero cost, got %v / %v", remaining, total)
	}
}

func TestRemoveSpotDuplicateEntries(t *testing.T) {
	spots := []ItinerarySpot{
		{SpotID: 3, Price: 20},
		{SpotID: 3, Price: 20},
		{SpotID: 4, Price: 10},
	}

	remaining, total := RemoveSpot(spots, 3)
	if len(remaining) != 1 || remaining[0].SpotID != 4 {
		t.Fatalf("expected every entry for spot 3 removed, got %v", remaining)
	}
	if total != 10 {
		t.Fatalf("expected totalCost 10, got %v", total)
	}
}
