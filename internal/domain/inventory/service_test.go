package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bloodbank/bloodbank/internal/domain/hospital"
	"github.com/bloodbank/bloodbank/internal/platform/docstore"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	store := docstore.NewMemory()
	hospSvc := hospital.NewService(hospital.NewRepo(store))
	hospID, err := hospSvc.Create(context.Background(), &hospital.Hospital{
		Name: "City Hospital", Email: "admin@city.example.com", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("seed hospital: %v", err)
	}
	return NewService(NewRepo(store), hospSvc), hospID
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(DateLayout)
}

func TestAdd_Success(t *testing.T) {
	svc, hospID := newTestService(t)
	id, err := svc.Add(context.Background(), &Item{
		HospitalID: hospID, BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}
}

func TestAdd_MissingHospital(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), &Item{
		HospitalID: "b9e9e3a4-9a64-4a06-a3bb-4c9f2cdd5d6f",
		BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30),
	})
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, _ := svc.List(context.Background(), "", true)
	if len(items) != 0 {
		t.Errorf("expected nothing persisted, got %d items", len(items))
	}
}

func TestAdd_MalformedHospitalID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), &Item{
		HospitalID: "not-a-uuid", BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30),
	})
	if !errors.Is(err, docstore.ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}

func TestAdd_Invalid(t *testing.T) {
	svc, hospID := newTestService(t)
	cases := []struct {
		name string
		item Item
	}{
		{"zero units", Item{HospitalID: hospID, BloodGroup: "A+", Units: 0, ExpiryDate: futureDate(30)}},
		{"bad blood group", Item{HospitalID: hospID, BloodGroup: "C+", Units: 1, ExpiryDate: futureDate(30)}},
		{"bad date", Item{HospitalID: hospID, BloodGroup: "A+", Units: 1, ExpiryDate: "30-01-2026"}},
		{"missing hospital_id", Item{BloodGroup: "A+", Units: 1, ExpiryDate: futureDate(30)}},
	}
	for _, tc := range cases {
		item := tc.item
		_, err := svc.Add(context.Background(), &item)
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			t.Errorf("%s: expected validation errors, got %v", tc.name, err)
		}
	}
}

func TestList_ExcludesExpiredByDefault(t *testing.T) {
	svc, hospID := newTestService(t)
	svc.Add(context.Background(), &Item{HospitalID: hospID, BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30)})
	svc.Add(context.Background(), &Item{HospitalID: hospID, BloodGroup: "O-", Units: 2, ExpiryDate: futureDate(-1)})

	items, err := svc.List(context.Background(), "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].BloodGroup != "A+" {
		t.Fatalf("expected only the unexpired batch, got %+v", items)
	}

	items, err = svc.List(context.Background(), "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected both batches with include_expired, got %d", len(items))
	}
}

func TestList_ExpiringTodayIsKept(t *testing.T) {
	svc, hospID := newTestService(t)
	svc.Add(context.Background(), &Item{HospitalID: hospID, BloodGroup: "B+", Units: 1, ExpiryDate: futureDate(0)})

	items, err := svc.List(context.Background(), "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected batch expiring today to be kept, got %d items", len(items))
	}
}

func TestList_HospitalFilter(t *testing.T) {
	store := docstore.NewMemory()
	hospSvc := hospital.NewService(hospital.NewRepo(store))
	ctx := context.Background()
	first, _ := hospSvc.Create(ctx, &hospital.Hospital{Name: "City Hospital", Email: "a@city.example.com", Phone: "555-0101"})
	second, _ := hospSvc.Create(ctx, &hospital.Hospital{Name: "District Hospital", Email: "a@district.example.com", Phone: "555-0102"})
	svc := NewService(NewRepo(store), hospSvc)

	svc.Add(ctx, &Item{HospitalID: first, BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30)})
	svc.Add(ctx, &Item{HospitalID: second, BloodGroup: "A+", Units: 3, ExpiryDate: futureDate(30)})

	items, err := svc.List(ctx, second, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].HospitalID != second {
		t.Fatalf("expected only the second hospital's batch, got %+v", items)
	}
}

func TestDelete(t *testing.T) {
	svc, hospID := newTestService(t)
	id, _ := svc.Add(context.Background(), &Item{HospitalID: hospID, BloodGroup: "A+", Units: 5, ExpiryDate: futureDate(30)})

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), id); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDelete_MalformedID(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, docstore.ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}
