package serviceimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
	"venturedesk/infrastructure/memory"
)

func newBusinessFixture(t *testing.T) (*BusinessServiceImpl, uuid.UUID) {
	t.Helper()

	store := memory.NewStore(0)
	businessRepo := memory.NewBusinessRepository(store)

	svc := NewBusinessService(businessRepo, nil).(*BusinessServiceImpl)
	return svc, uuid.New()
}

func TestCreateBusinessRoundTrip(t *testing.T) {
	svc, userID := newBusinessFixture(t)

	foundedYear := 2020
	req := &dto.CreateBusinessRequest{
		Name:        "Harbor Light Cafe",
		Type:        "Cafe",
		Location:    "Portland, OR",
		Industry:    "Food & Beverage",
		Size:        models.SizeSmall,
		Description: "A waterfront cafe with locally roasted coffee.",
		FoundedYear: &foundedYear,
		Website:     "https://harborlight.example.com",
	}

	created, err := svc.CreateBusiness(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}
	if created.Slug != "harbor-light-cafe" {
		t.Errorf("slug = %q, want harbor-light-cafe", created.Slug)
	}

	businesses, err := svc.GetUserBusinesses(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetUserBusinesses: %v", err)
	}
	if len(businesses) != 1 {
		t.Fatalf("expected 1 business for owner, got %d", len(businesses))
	}

	got := businesses[0]
	if got.ID != created.ID || got.UserID != userID {
		t.Errorf("ownership mismatch: id=%s user=%s", got.ID, got.UserID)
	}
	if got.Name != req.Name || got.Type != req.Type || got.Location != req.Location {
		t.Errorf("profile fields mismatch: %+v", got)
	}
	if got.Industry != req.Industry || got.Size != req.Size || got.Description != req.Description {
		t.Errorf("classification fields mismatch: %+v", got)
	}
	if got.FoundedYear == nil || *got.FoundedYear != foundedYear {
		t.Errorf("founded year = %v, want %d", got.FoundedYear, foundedYear)
	}
	if got.Website != req.Website {
		t.Errorf("website = %q, want %q", got.Website, req.Website)
	}
}

func TestCreateBusinessSlugCollision(t *testing.T) {
	svc, userID := newBusinessFixture(t)

	req := &dto.CreateBusinessRequest{
		Name:        "Harbor Light Cafe",
		Type:        "Cafe",
		Size:        models.SizeSmall,
		Description: "A waterfront cafe with locally roasted coffee.",
	}

	first, err := svc.CreateBusiness(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("CreateBusiness first: %v", err)
	}

	second, err := svc.CreateBusiness(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("CreateBusiness with taken slug: %v", err)
	}

	if second.Slug == first.Slug {
		t.Fatalf("expected a suffixed slug, both are %q", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, first.Slug+"-") {
		t.Errorf("slug %q does not extend %q", second.Slug, first.Slug)
	}

	found, err := svc.GetBusinessBySlug(context.Background(), second.Slug)
	if err != nil {
		t.Fatalf("GetBusinessBySlug: %v", err)
	}
	if found.ID != second.ID {
		t.Errorf("slug lookup returned %s, want %s", found.ID, second.ID)
	}
}
