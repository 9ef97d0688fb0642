package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/models"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method     string
	Route      string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Route, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client is the meal planner API as seen by the terminal client.
type Client interface {
	SetMeal(ctx context.Context, a models.MealAssignment) error
	AddRecipe(ctx context.Context, d models.RecipeDraft) error
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetMealPlan(ctx context.Context) (models.MealPlan, error)
	GetGroceryList(ctx context.Context) ([]models.GroceryItem, error)
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) SetMeal(ctx context.Context, a models.MealAssignment) error {
	return c.post(ctx, constants.RouteSetMeal, a)
}

func (c *httpClient) AddRecipe(ctx context.Context, d models.RecipeDraft) error {
	return c.post(ctx, constants.RouteAddRecipe, d)
}

func (c *httpClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := c.get(ctx, constants.RouteRecipes, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *httpClient) GetMealPlan(ctx context.Context) (models.MealPlan, error) {
	var plan models.MealPlan
	if err := c.get(ctx, constants.RouteMealPlan, &plan); err != nil {
		return models.MealPlan{}, err
	}
	return plan, nil
}

func (c *httpClient) GetGroceryList(ctx context.Context) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if err := c.get(ctx, constants.RouteGroceryList, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// post sends body as JSON. Only Content-Type is set and the response body is discarded.
func (c *httpClient) post(ctx context.Context, route string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", route, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", constants.ContentTypeJSON)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return checkStatus(req, resp)
}

func (c *httpClient) get(ctx context.Context, route string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+route, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(req, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *httpClient) do(req *http.Request) (*http.Response, error) {
	// The id only correlates log lines; it is never sent to the server.
	log := logger.With("id", uuid.New().String())
	start := time.Now()
	log.Debug("Sending request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("Request failed", "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	log.Debug("Received response", "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

func checkStatus(req *http.Request, resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: req.Method, Route: req.URL.Path, StatusCode: resp.StatusCode}
	}
	return nil
}
