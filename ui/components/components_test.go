package components

import (
	"strings"
	"testing"

	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/models"
)

func TestRenderSOSShowsProgress(t *testing.T) {
	out := RenderSOS(2, 3, "112")
	if !strings.Contains(out, "●●○") {
		t.Fatalf("expected two filled dots: %q", out)
	}
	if !strings.Contains(out, "call 112") {
		t.Fatalf("expected number in hint: %q", out)
	}
}

func TestRenderLocationStates(t *testing.T) {
	if out := RenderLocation(geo.Snapshot{Loading: true}, "", 60); !strings.Contains(out, "Getting your location") {
		t.Fatalf("loading not shown: %q", out)
	}
	if out := RenderLocation(geo.Snapshot{Error: "permission denied"}, "", 60); !strings.Contains(out, "Press r to retry") {
		t.Fatalf("retry hint not shown: %q", out)
	}
	loc := &geo.Location{Lat: 12.9716, Lng: 77.5946}
	out := RenderLocation(geo.Snapshot{Location: loc}, "https://maps/x", 80)
	if !strings.Contains(out, "12.9716, 77.5946") {
		t.Fatalf("coordinates not shown: %q", out)
	}
}

func TestRenderContacts(t *testing.T) {
	if out := RenderContacts(nil, 0, 60); !strings.Contains(out, "No contacts yet") {
		t.Fatalf("empty state not shown: %q", out)
	}
	out := RenderContacts([]contacts.Contact{{Name: "Jane", Phone: "1"}, {Name: "Bob", Phone: "2"}}, 1, 60)
	if !strings.Contains(out, "> Bob") {
		t.Fatalf("selection marker missing: %q", out)
	}
}

func TestRenderSharingBarOnlyWhileSharing(t *testing.T) {
	if RenderSharingBar(false, 0, 40) != "" {
		t.Fatalf("bar should be hidden when not sharing")
	}
	if !strings.Contains(RenderSharingBar(true, 2, 60), "I'm safe") {
		t.Fatalf("mark safe affordance missing")
	}
}

func TestRenderToast(t *testing.T) {
	if RenderToast(nil, 40) != "" {
		t.Fatalf("nil toast should render nothing")
	}
	out := RenderToast(&models.Toast{Title: "Glad you're safe!", Description: "Location sharing has been stopped."}, 60)
	if !strings.Contains(out, "Glad you're safe!") {
		t.Fatalf("title missing: %q", out)
	}
}
