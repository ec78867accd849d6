package routepath

import "testing"

func TestVerticalPage(t *testing.T) {
	t.Parallel()

	if got := VerticalPage("delivery"); got != "/app/delivery" {
		t.Fatalf("VerticalPage = %q", got)
	}
}

func TestVerticalView(t *testing.T) {
	t.Parallel()

	if got := VerticalView("produce", ViewReceived); got != "/app/produce?view=received" {
		t.Fatalf("VerticalView = %q", got)
	}
	if got := VerticalView("produce", ""); got != "/app/produce" {
		t.Fatalf("VerticalView blank view = %q", got)
	}
}

func TestRequestAction(t *testing.T) {
	t.Parallel()

	if got := RequestAction("equipment", 42, "ACCEPT"); got != "/app/equipment/42/accept" {
		t.Fatalf("RequestAction = %q", got)
	}
}

func TestRequestActionPattern(t *testing.T) {
	t.Parallel()

	if got := RequestActionPattern("land"); got != "/app/land/{entityID}/{action}" {
		t.Fatalf("RequestActionPattern = %q", got)
	}
}

func TestFavoriteToggle(t *testing.T) {
	t.Parallel()

	if got := FavoriteToggle("listing-7"); got != "/app/favorites/listing-7/toggle" {
		t.Fatalf("FavoriteToggle = %q", got)
	}
}

func TestEscapeSegmentSanitizesInput(t *testing.T) {
	t.Parallel()

	if got := VerticalPage(" pro duce "); got != "/app/pro%20duce" {
		t.Fatalf("VerticalPage = %q", got)
	}
}
