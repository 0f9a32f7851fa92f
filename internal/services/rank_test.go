package services

import (
	"context"
	"testing"

	"travel-time-service/internal/adapters/googlemaps"
)

func TestRankDestinationsOrdersByDuration(t *testing.T) {
	// build test data
	provider := googlemaps.NewMockTravelTimeProvider([]googlemaps.MockTrip{
		{From: "Boston MA", To: "Worcester MA", Meters: 77000, Seconds: 3100},
		{From: "Boston MA", To: "Cambridge MA", Meters: 5000, Seconds: 900},
		{From: "Boston MA", To: "Providence RI", Meters: 80000, Seconds: 2900},
	})
	destinations := []string{"Worcester MA", "Providence RI", "Cambridge MA"}

	ranked, err := RankDestinations(context.Background(), "Boston MA", destinations, provider)
	if err != nil {
		t.Fatalf("RankDestinations returned error: %v", err)
	}

	want := []string{"Cambridge MA", "Providence RI", "Worcester MA"}
	if len(ranked) != len(want) {
		t.Fatalf("got %d ranked destinations, want %d", len(ranked), len(want))
	}
	for i, name := range want {
		if ranked[i].Destination != name {
			t.Fatalf("rank %d = %q, want %q", i, ranked[i].Destination, name)
		}
	}
	if ranked[0].Result.Duration == nil || *ranked[0].Result.Duration != 900 {
		t.Fatalf("quickest destination result = %+v, want 900s duration", ranked[0].Result)
	}
}

func TestRankDestinationsFailuresSortLast(t *testing.T) {
	provider := googlemaps.NewMockTravelTimeProvider([]googlemaps.MockTrip{
		{From: "Boston MA", To: "Cambridge MA", Meters: 5000, Seconds: 900},
		{From: "Boston MA", To: "Worcester MA", Meters: 77000, Seconds: 3100},
	})
	destinations := []string{"Atlantis", "Worcester MA", "Cambridge MA"}

	ranked, err := RankDestinations(context.Background(), "Boston MA", destinations, provider)
	if err != nil {
		t.Fatalf("RankDestinations returned error: %v", err)
	}

	want := []string{"Cambridge MA", "Worcester MA", "Atlantis"}
	for i, name := range want {
		if ranked[i].Destination != name {
			t.Fatalf("rank %d = %q, want %q", i, ranked[i].Destination, name)
		}
	}
	if ranked[2].Result.Success {
		t.Fatal("unroutable destination reported as success")
	}
}

func TestRankDestinationsTiesKeepInputOrder(t *testing.T) {
	provider := googlemaps.NewMockTravelTimeProvider([]googlemaps.MockTrip{
		{From: "Boston MA", To: "Somerville MA", Meters: 6000, Seconds: 900},
		{From: "Boston MA", To: "Cambridge MA", Meters: 5000, Seconds: 900},
	})
	destinations := []string{"Somerville MA", "Cambridge MA"}

	ranked, err := RankDestinations(context.Background(), "Boston MA", destinations, provider)
	if err != nil {
		t.Fatalf("RankDestinations returned error: %v", err)
	}
	if ranked[0].Destination != "Somerville MA" || ranked[1].Destination != "Cambridge MA" {
		t.Fatalf("tied durations reordered: got %q, %q", ranked[0].Destination, ranked[1].Destination)
	}
}

func TestRankDestinationsValidation(t *testing.T) {
	provider := googlemaps.NewMockTravelTimeProvider(nil)

	if _, err := RankDestinations(context.Background(), "", []string{"X"}, provider); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if _, err := RankDestinations(context.Background(), "Boston MA", []string{"X"}, nil); err == nil {
		t.Fatal("expected error for nil provider")
	}

	ranked, err := RankDestinations(context.Background(), "Boston MA", nil, provider)
	if err != nil {
		t.Fatalf("RankDestinations returned error for empty destinations: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("got %d ranked destinations for empty input, want 0", len(ranked))
	}
}
