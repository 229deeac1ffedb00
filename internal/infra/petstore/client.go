package petstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pet-order/internal/pkg/config"
)

type PetType struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type Pet struct {
	Name string `json:"name"`
}

// Client is a thin typed client over one pet-store inventory backend.
//
// Transport errors and non-2xx responses are absorbed: listings come back
// empty, lookups report absent, deletes report failure. The locator treats
// "no data" and "inventory unreachable" the same way, so nothing at this
// layer surfaces an error.
type Client struct {
	store      int
	baseURL    string
	httpClient *http.Client
}

func NewClient(store int, baseURL string, httpClient *http.Client) *Client {
	return &Client{
		store:      store,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NewClients builds the fixed set of inventory clients, one per configured
// store, sharing a single bounded-timeout HTTP client.
func NewClients(cfg config.PetStoresConfig) map[int]*Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return map[int]*Client{
		1: NewClient(1, cfg.Store1URL, httpClient),
		2: NewClient(2, cfg.Store2URL, httpClient),
	}
}

func (c *Client) Store() int {
	return c.store
}

func (c *Client) ListPetTypes(ctx context.Context) []PetType {
	var petTypes []PetType
	if err := c.getJSON(ctx, c.baseURL+"/pet-types", &petTypes); err != nil {
		slog.Debug("pet type listing unavailable", "store", c.store, "error", err.Error())
		return nil
	}
	return petTypes
}

// FindTypeID resolves a pet type name to its identifier in this inventory.
// Matching is case-insensitive; the first match in listing order wins.
func (c *Client) FindTypeID(ctx context.Context, typeName string) (string, bool) {
	for _, pt := range c.ListPetTypes(ctx) {
		if strings.EqualFold(pt.Type, typeName) {
			return pt.ID, true
		}
	}
	return "", false
}

func (c *Client) ListPets(ctx context.Context, petTypeID string) []Pet {
	u := fmt.Sprintf("%s/pet-types/%s/pets", c.baseURL, url.PathEscape(petTypeID))

	var pets []Pet
	if err := c.getJSON(ctx, u, &pets); err != nil {
		slog.Debug("pet listing unavailable", "store", c.store, "pet_type_id", petTypeID, "error", err.Error())
		return nil
	}
	return pets
}

// GetPet looks up one pet by its exact name. The lookup is case-sensitive:
// the name becomes a path segment and is matched verbatim by the remote
// resource, unlike the inventory service's own case-insensitive search.
func (c *Client) GetPet(ctx context.Context, petTypeID, petName string) (*Pet, bool) {
	u := fmt.Sprintf("%s/pet-types/%s/pets/%s", c.baseURL, url.PathEscape(petTypeID), url.PathEscape(petName))

	var pet Pet
	if err := c.getJSON(ctx, u, &pet); err != nil {
		return nil, false
	}
	return &pet, true
}

// DeletePet removes a pet from this inventory. True means exactly HTTP 200 or
// 204; a 404 (someone else claimed it first), a 5xx, or a transport failure
// all report false.
func (c *Client) DeletePet(ctx context.Context, petTypeID, petName string) bool {
	u := fmt.Sprintf("%s/pet-types/%s/pets/%s", c.baseURL, url.PathEscape(petTypeID), url.PathEscape(petName))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("pet delete failed", "store", c.store, "pet_type_id", petTypeID, "error", err.Error())
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent
}

func (c *Client) getJSON(ctx context.Context, u string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
