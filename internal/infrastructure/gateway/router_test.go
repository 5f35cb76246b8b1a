package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestGetProject(t *testing.T) {
	var calls int
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotAuth = r.Header.Get("Authorization")

		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Variables["id"] != "proj-1" {
			t.Errorf("unexpected variables %v", req.Variables)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"projects": []map[string]any{
					{
						"id":      "proj-1",
						"name":    "Harbor Houses",
						"country": "DNK",
						"stages":  []map[string]any{{"phase": "A1"}, {"phase": "C3"}},
					},
				},
			},
		})
	}))
	defer server.Close()

	gw := NewRouterGateway(server.URL, nil)
	project, err := gw.GetProject(context.Background(), "proj-1", "token-1")
	if err != nil {
		t.Fatalf("get project failed: %v", err)
	}
	if project.Name != "Harbor Houses" || project.Country != "DNK" {
		t.Fatalf("unexpected project %+v", project)
	}
	if len(project.Stages) != 2 || !project.HasPhase("C3") {
		t.Fatalf("unexpected stages %+v", project.Stages)
	}
	if gotAuth != "Bearer token-1" {
		t.Fatalf("expected bearer token forwarded, got %q", gotAuth)
	}

	// Second call is served from cache.
	if _, err := gw.GetProject(context.Background(), "proj-1", "token-1"); err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", calls)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"projects": []any{}},
		})
	}))
	defer server.Close()

	gw := NewRouterGateway(server.URL, nil)
	if _, err := gw.GetProject(context.Background(), "missing", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetAssemblies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"assemblies": []map[string]any{
					{
						"id":       "assembly-1",
						"name":     "Concrete wall",
						"lifeTime": 80.0,
						"unit":     "m3",
						"layers": []map[string]any{
							{
								"id":               "layer-1",
								"name":             "Concrete C30",
								"conversionFactor": 0.3,
								"epd": map[string]any{
									"id":           "epd-1",
									"declaredUnit": "m3",
									"conversions":  []map[string]any{{"to": "kg", "value": 2350.0}},
									"gwp":          map[string]any{"a1a3": 291.8, "c3": 7.3, "c4": 1.9, "d": -44.8},
								},
							},
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	gw := NewRouterGateway(server.URL, nil)
	assemblies, err := gw.GetAssemblies(context.Background(), "proj-1", "")
	if err != nil {
		t.Fatalf("get assemblies failed: %v", err)
	}
	if len(assemblies) != 1 || len(assemblies[0].Layers) != 1 {
		t.Fatalf("unexpected assemblies %+v", assemblies)
	}
	layer := assemblies[0].Layers[0]
	if layer.EPD.GWP.A1A3 != 291.8 {
		t.Fatalf("unexpected gwp %+v", layer.EPD.GWP)
	}
	if len(layer.EPD.Conversions) != 1 || layer.EPD.Conversions[0].To != "kg" {
		t.Fatalf("unexpected conversions %+v", layer.EPD.Conversions)
	}
}

func TestQueryErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		gw := NewRouterGateway(server.URL, nil)
		if _, err := gw.GetProject(context.Background(), "proj-1", ""); !errors.Is(err, domain.ErrMicroservice) {
			t.Fatalf("expected microservice error, got %v", err)
		}
	})

	t.Run("graphql errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"errors": []map[string]any{{"message": "unauthorized"}},
			})
		}))
		defer server.Close()

		gw := NewRouterGateway(server.URL, nil)
		if _, err := gw.GetAssemblies(context.Background(), "proj-1", ""); !errors.Is(err, domain.ErrMicroservice) {
			t.Fatalf("expected microservice error, got %v", err)
		}
	})
}
