package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/meals"
	"github.com/julianstephens/mealplan/internal/notify"
	"github.com/julianstephens/mealplan/internal/recipes"
	"github.com/julianstephens/mealplan/internal/storage"
	"github.com/julianstephens/mealplan/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) (*httptest.Server, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := storage.Seed(store, storage.SampleRecipes); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	ts := httptest.NewServer(New(store).Handler())
	t.Cleanup(func() {
		ts.Close()
		store.Close()
	})
	return ts, store
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSetMeal_Status(t *testing.T) {
	ts, _ := setupTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"string day and id", `{"day":"2","meal":"lunch","recipe_id":"1"}`, http.StatusOK},
		{"numeric day and id", `{"day":3,"meal":"dinner","recipe_id":2}`, http.StatusOK},
		{"weekday name", `{"day":"friday","meal":"breakfast","recipe_id":"3"}`, http.StatusOK},
		{"null id clears", `{"day":"2","meal":"lunch","recipe_id":null}`, http.StatusOK},
		{"empty id clears", `{"day":"2","meal":"lunch","recipe_id":""}`, http.StatusOK},
		{"unknown recipe", `{"day":"2","meal":"lunch","recipe_id":"999"}`, http.StatusNotFound},
		{"bad day", `{"day":"9","meal":"lunch","recipe_id":"1"}`, http.StatusBadRequest},
		{"bad meal", `{"day":"2","meal":"brunch","recipe_id":"1"}`, http.StatusBadRequest},
		{"bad id", `{"day":"2","meal":"lunch","recipe_id":"abc"}`, http.StatusBadRequest},
		{"fractional id", `{"day":"2","meal":"lunch","recipe_id":1.5}`, http.StatusBadRequest},
		{"id beyond int64", `{"day":"2","meal":"lunch","recipe_id":1e19}`, http.StatusBadRequest},
		{"negative id beyond int64", `{"day":"2","meal":"lunch","recipe_id":-1e19}`, http.StatusBadRequest},
		{"bad json", `{"day":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/set-meal", tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestSetMeal_ResponseBody(t *testing.T) {
	ts, _ := setupTestServer(t)
	resp := post(t, ts.URL+"/api/set-meal", `{"day":"0","meal":"breakfast","recipe_id":"1"}`)

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["success"] != true {
		t.Errorf("body = %v, want success true", body)
	}
}

func TestAddRecipe(t *testing.T) {
	ts, store := setupTestServer(t)

	resp := post(t, ts.URL+"/api/add-recipe",
		`{"name":"Toast","instructions":"Toast it.","ingredients":[["bread","2 slices"],["butter","1 tbsp"]]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success  bool  `json:"success"`
		RecipeID int64 `json:"recipe_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.RecipeID == 0 {
		t.Fatalf("body = %+v, want success with a recipe id", body)
	}

	got, err := store.GetRecipe(body.RecipeID)
	if err != nil {
		t.Fatalf("GetRecipe() failed: %v", err)
	}
	if got.Name != "Toast" || len(got.Ingredients) != 2 || got.Ingredients[1].Item != "butter" {
		t.Errorf("stored recipe = %+v", got)
	}
}

func TestAddRecipe_Rejects(t *testing.T) {
	ts, _ := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"name":"","instructions":"x","ingredients":[]}`},
		{"ingredient not a pair", `{"name":"A","instructions":"x","ingredients":[["flour"]]}`},
		{"empty ingredient item", `{"name":"A","instructions":"x","ingredients":[["  ","2 cups"]]}`},
		{"malformed", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/add-recipe", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := setupTestServer(t)
	resp, err := http.Get(ts.URL + "/api/set-meal")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := setupTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/add-recipe", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

// The terminal client and the server agree on the wire format.
func TestClientRoundTrip(t *testing.T) {
	ts, _ := setupTestServer(t)
	c := client.New(ts.URL, 5*time.Second)
	ctx := context.Background()

	alerts := &notify.Recorder{}
	updater := meals.NewUpdater(c, alerts)
	if err := updater.Update(ctx, "1", "dinner", "2"); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	submitter := recipes.NewSubmitter(c, alerts, alerts)
	err := submitter.Submit(ctx, recipes.Fields{
		Name:         "Omelette",
		Ingredients:  "eggs, 3\nmilk, 2 tbsp",
		Instructions: "Whisk and cook.",
	})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if alerts.Reloads() != 1 {
		t.Errorf("Reloads() = %d, want 1", alerts.Reloads())
	}

	list, err := c.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("ListRecipes() failed: %v", err)
	}
	if len(list) != 5 {
		t.Errorf("ListRecipes() returned %d recipes, want 5", len(list))
	}

	plan, err := c.GetMealPlan(ctx)
	if err != nil {
		t.Fatalf("GetMealPlan() failed: %v", err)
	}
	if id, ok := plan.RecipeFor(1, "dinner"); !ok || id != 2 {
		t.Errorf("RecipeFor(1, dinner) = %d, %v; want 2, true", id, ok)
	}

	items, err := c.GetGroceryList(ctx)
	if err != nil {
		t.Fatalf("GetGroceryList() failed: %v", err)
	}
	// recipe 2 is Spaghetti Bolognese with five ingredients
	if len(items) != 5 {
		t.Errorf("GetGroceryList() returned %d items, want 5: %v", len(items), items)
	}

	err = updater.Update(ctx, "1", "dinner", "999")
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("error = %v, want StatusError 404", err)
	}
	got := alerts.Alerts()
	if last := got[len(got)-1]; last != "Failed to update meal. Please try again." {
		t.Errorf("last alert = %q, want the meal update failure", last)
	}
}
