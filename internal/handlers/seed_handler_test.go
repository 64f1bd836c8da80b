package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthview/internal/errors"
	"wealthview/internal/seed"
	"wealthview/internal/services"
)

// --- mock seed service ---

type mockSeedService struct {
	seedFn           func(records []map[string]any) (*seed.Result, error)
	seedFromSourceFn func(location string) (*seed.Result, error)
}

func (m *mockSeedService) Seed(_ context.Context, records []map[string]any) (*seed.Result, error) {
	if m.seedFn != nil {
		return m.seedFn(records)
	}
	return seed.NewResult(), nil
}

func (m *mockSeedService) SeedFromSource(_ context.Context, location string) (*seed.Result, error) {
	if m.seedFromSourceFn != nil {
		return m.seedFromSourceFn(location)
	}
	return seed.NewResult(), nil
}

// verify interface compliance
var _ services.SeedServicer = (*mockSeedService)(nil)

func setupSeedRouter(handler *SeedHandler) *gin.Engine {
	r := gin.New()
	r.POST("/seed", handler.Seed)
	return r
}

func TestSeedHandler_Seed(t *testing.T) {
	t.Run("uses configured source without body", func(t *testing.T) {
		called := false
		svc := &mockSeedService{
			seedFromSourceFn: func(location string) (*seed.Result, error) {
				called = true
				if location != "" {
					t.Errorf("expected default location, got %q", location)
				}
				return &seed.Result{Inserted: 3, Skipped: 1, Errors: []string{}}, nil
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !called {
			t.Fatal("expected SeedFromSource to be called")
		}
		result := parseJSON(t, rec)
		if result["message"] != "Successfully seeded 3 assets" {
			t.Errorf("unexpected message %v", result["message"])
		}
		if result["inserted"] != float64(3) || result["skipped"] != float64(1) {
			t.Errorf("unexpected counts %v", result)
		}
		if errs, ok := result["errors"].([]interface{}); !ok || len(errs) != 0 {
			t.Errorf("expected empty errors list, got %v", result["errors"])
		}
	})

	t.Run("seeds records from body", func(t *testing.T) {
		var got []map[string]any
		svc := &mockSeedService{
			seedFn: func(records []map[string]any) (*seed.Result, error) {
				got = records
				return &seed.Result{Skipped: 2, Errors: []string{}}, nil
			},
			seedFromSourceFn: func(string) (*seed.Result, error) {
				t.Error("source must not be used when records are supplied")
				return seed.NewResult(), nil
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", `{"records":[{"assetId":"a-1","institutionId":101},{"assetId":"a-2"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		if got[0]["institutionId"] != json.Number("101") {
			t.Errorf("expected json.Number 101, got %T %v", got[0]["institutionId"], got[0]["institutionId"])
		}
		if msg := parseJSON(t, rec)["message"]; msg != "All 2 assets already exist in the database" {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("reports per-record errors", func(t *testing.T) {
		svc := &mockSeedService{
			seedFn: func([]map[string]any) (*seed.Result, error) {
				return &seed.Result{Inserted: 1, Errors: []string{"Error processing asset x: boom"}}, nil
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", `{"records":[{},{}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		errs := parseJSON(t, rec)["errors"].([]interface{})
		if len(errs) != 1 || errs[0] != "Error processing asset x: boom" {
			t.Errorf("unexpected errors %v", errs)
		}
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupSeedRouter(NewSeedHandler(&mockSeedService{}))

		rec := doRequest(r, "POST", "/seed", `{"records":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when records is not a list", func(t *testing.T) {
		called := false
		svc := &mockSeedService{
			seedFn: func([]map[string]any) (*seed.Result, error) {
				called = true
				return seed.NewResult(), nil
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", `{"records":{"assetId":"a-1"}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if called {
			t.Error("seed must not run on an invalid body")
		}
	})

	t.Run("returns 404 when source is missing", func(t *testing.T) {
		svc := &mockSeedService{
			seedFromSourceFn: func(string) (*seed.Result, error) {
				return nil, apperrors.WithMessage(apperrors.ErrSeedSourceNotFound, "Seed file not found: data/assets.json")
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "SEED_SOURCE_NOT_FOUND")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Seed file not found: data/assets.json" {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("returns 500 on commit failure", func(t *testing.T) {
		svc := &mockSeedService{
			seedFromSourceFn: func(string) (*seed.Result, error) {
				return nil, apperrors.Wrap(apperrors.ErrSeedCommitFailed, errors.New("disk full"))
			},
		}
		r := setupSeedRouter(NewSeedHandler(svc))

		rec := doRequest(r, "POST", "/seed", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SEED_COMMIT_FAILED")
	})
}
