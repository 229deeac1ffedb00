//go:build unit

package petstore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-order/internal/infra/petstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInventoryServer serves a minimal pet-store inventory: a pet-type
// catalogue and per-type pet listings, with case-sensitive pet lookup and
// deletion the way the real service behaves.
func fakeInventoryServer(t *testing.T) *httptest.Server {
	t.Helper()

	petTypes := []petstore.PetType{
		{ID: "t1", Type: "Dog"},
		{ID: "t2", Type: "Cat"},
	}
	pets := map[string]map[string]bool{
		"t1": {"Rex": true, "Fido": true},
		"t2": {"Whiskers": true},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /pet-types", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(petTypes)
	})
	mux.HandleFunc("GET /pet-types/{typeID}/pets", func(w http.ResponseWriter, r *http.Request) {
		byName, ok := pets[r.PathValue("typeID")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		listing := []petstore.Pet{}
		for name := range byName {
			listing = append(listing, petstore.Pet{Name: name})
		}
		_ = json.NewEncoder(w).Encode(listing)
	})
	mux.HandleFunc("GET /pet-types/{typeID}/pets/{name}", func(w http.ResponseWriter, r *http.Request) {
		byName := pets[r.PathValue("typeID")]
		name := r.PathValue("name")
		if !byName[name] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(petstore.Pet{Name: name})
	})
	mux.HandleFunc("DELETE /pet-types/{typeID}/pets/{name}", func(w http.ResponseWriter, r *http.Request) {
		byName := pets[r.PathValue("typeID")]
		name := r.PathValue("name")
		if !byName[name] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(byName, name)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *petstore.Client {
	t.Helper()
	return petstore.NewClient(1, baseURL, &http.Client{Timeout: time.Second})
}

func TestClientListPetTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the catalogue", func(t *testing.T) {
		srv := fakeInventoryServer(t)
		client := newTestClient(t, srv.URL)

		got := client.ListPetTypes(ctx)
		want := []petstore.PetType{{ID: "t1", Type: "Dog"}, {ID: "t2", Type: "Cat"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("catalogue mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-200 yields an empty catalogue", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)
		client := newTestClient(t, srv.URL)

		assert.Empty(t, client.ListPetTypes(ctx))
	})

	t.Run("unreachable backend yields an empty catalogue", func(t *testing.T) {
		srv := fakeInventoryServer(t)
		srv.Close()
		client := newTestClient(t, srv.URL)

		assert.Empty(t, client.ListPetTypes(ctx))
	})
}

func TestClientFindTypeID(t *testing.T) {
	ctx := context.Background()
	srv := fakeInventoryServer(t)
	client := newTestClient(t, srv.URL)

	t.Run("matches ignoring case", func(t *testing.T) {
		id, ok := client.FindTypeID(ctx, "dOg")
		require.True(t, ok)
		assert.Equal(t, "t1", id)
	})

	t.Run("unknown type reports absent", func(t *testing.T) {
		_, ok := client.FindTypeID(ctx, "Parrot")
		assert.False(t, ok)
	})
}

func TestClientGetPet(t *testing.T) {
	ctx := context.Background()
	srv := fakeInventoryServer(t)
	client := newTestClient(t, srv.URL)

	t.Run("exact name is found", func(t *testing.T) {
		pet, ok := client.GetPet(ctx, "t1", "Rex")
		require.True(t, ok)
		assert.Equal(t, "Rex", pet.Name)
	})

	t.Run("name lookup is case-sensitive", func(t *testing.T) {
		_, ok := client.GetPet(ctx, "t1", "rex")
		assert.False(t, ok)
	})
}

func TestClientListPets(t *testing.T) {
	ctx := context.Background()
	srv := fakeInventoryServer(t)
	client := newTestClient(t, srv.URL)

	t.Run("lists pets of a type", func(t *testing.T) {
		pets := client.ListPets(ctx, "t1")
		names := make([]string, 0, len(pets))
		for _, p := range pets {
			names = append(names, p.Name)
		}
		assert.ElementsMatch(t, []string{"Rex", "Fido"}, names)
	})

	t.Run("unknown type yields an empty listing", func(t *testing.T) {
		assert.Empty(t, client.ListPets(ctx, "missing"))
	})
}

func TestClientDeletePet(t *testing.T) {
	ctx := context.Background()

	t.Run("delete succeeds once then reports failure", func(t *testing.T) {
		srv := fakeInventoryServer(t)
		client := newTestClient(t, srv.URL)

		assert.True(t, client.DeletePet(ctx, "t1", "Rex"))
		assert.False(t, client.DeletePet(ctx, "t1", "Rex"), "second delete races against nothing and must fail")
	})

	t.Run("200 also counts as claimed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)
		client := newTestClient(t, srv.URL)

		assert.True(t, client.DeletePet(ctx, "t1", "Rex"))
	})

	t.Run("5xx reports failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		client := newTestClient(t, srv.URL)

		assert.False(t, client.DeletePet(ctx, "t1", "Rex"))
	})

	t.Run("transport failure reports failure", func(t *testing.T) {
		srv := fakeInventoryServer(t)
		srv.Close()
		client := newTestClient(t, srv.URL)

		assert.False(t, client.DeletePet(ctx, "t1", "Rex"))
	})
}
