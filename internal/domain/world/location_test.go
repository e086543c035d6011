package world

import "testing"

func TestLocationContentAccessors(t *testing.T) {
	empty := Location{X: 1, Y: 2}
	if empty.ContentType() != "" || empty.ContentCode() != "" {
		t.Fatalf("expected empty content, got type=%q code=%q", empty.ContentType(), empty.ContentCode())
	}
	loc := Location{X: 2, Y: 0, Content: &Content{Type: ContentResource, Code: "copper_rocks"}}
	if loc.ContentType() != ContentResource || loc.ContentCode() != "copper_rocks" {
		t.Fatalf("unexpected content: %+v", loc.Content)
	}
	if loc.Position() != (Position{X: 2, Y: 0}) {
		t.Fatalf("unexpected position %v", loc.Position())
	}
}

func TestWorkshopFor(t *testing.T) {
	pos, ok := WorkshopFor("mining")
	if !ok || pos != (Position{X: 1, Y: 5}) {
		t.Fatalf("mining workshop=%v ok=%v", pos, ok)
	}
	if _, ok := WorkshopFor("fishing"); ok {
		t.Fatalf("fishing has no workshop")
	}
}
