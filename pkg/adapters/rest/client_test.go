package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/pkg/adapters/rest"
	"github.com/notewire/notewire/pkg/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.New(rest.Config{BaseURL: srv.URL})
}

func TestListNotes_BareArray(t *testing.T) {
	var gotHeader, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-User-Id")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"n1","userId":"u1","title":"first"}]`))
	})

	notes, err := client.ListNotes(context.Background(), "u1", 2, 50)
	require.NoError(t, err)

	assert.Equal(t, "u1", gotHeader)
	assert.Equal(t, "page=2&size=50", gotQuery)
	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
	assert.Equal(t, "u1", notes[0].OwnerID)
}

func TestListNotes_PageEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"id":"n1"},{"id":"n2"}],"totalElements":2}`))
	})

	notes, err := client.ListNotes(context.Background(), "u1", 0, 100)
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[1].ID)
}

func TestListNotes_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	notes, err := client.ListNotes(context.Background(), "u1", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCreateNote_SendsDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes-service/api/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft core.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Untitled Note", draft.Title)

		json.NewEncoder(w).Encode(core.Note{ID: "n1", OwnerID: "u1", Title: draft.Title})
	})

	created, err := client.CreateNote(context.Background(), "u1", core.NewDraft())
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)
}

func TestUpdateNote_SendsFullRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notes-service/api/notes/n1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "renamed", body["title"])
		assert.Equal(t, true, body["pinned"])

		json.NewEncoder(w).Encode(core.Note{ID: "n1", Title: "renamed", Pinned: true})
	})

	updated, err := client.UpdateNote(context.Background(), "u1", core.Note{
		ID: "n1", OwnerID: "u1", Title: "renamed", Pinned: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Pinned)
}

func TestDeleteNote_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteNote(context.Background(), "u1", "n1"))
}

func TestErrorBodyBecomesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "note service unavailable", http.StatusBadGateway)
	})

	_, err := client.ListNotes(context.Background(), "u1", 0, 100)
	require.Error(t, err)

	var terr *core.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusBadGateway, terr.Status)
	assert.Equal(t, "note service unavailable", terr.Message)
}

func TestEmptyErrorBodyGetsGenericMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListIdentities(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "http error: status 500")
}

func TestGetIdentity_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.GetIdentity(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteNote_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	err := client.DeleteNote(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.True(t, core.IsStatus(err, http.StatusNotFound))
}

func TestCreateIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/userservice/api/users", r.URL.Path)

		var p core.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		json.NewEncoder(w).Encode(core.Identity{
			ID: "u7", FirstName: p.FirstName, LastName: p.LastName, Email: p.Email,
		})
	})

	ident, err := client.CreateIdentity(context.Background(), core.Profile{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "u7", ident.ID)
	assert.Equal(t, "Ada Lovelace", ident.DisplayName())
}

func TestNetworkErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	client := rest.New(rest.Config{BaseURL: srv.URL})

	_, err := client.ListIdentities(context.Background())
	var terr *core.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Zero(t, terr.Status)
}

func TestClientState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.ListIdentities(context.Background())
	require.NoError(t, err)

	state, ok := client.State().(rest.ClientState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Requests)
	assert.Equal(t, 0, state.Failures)
	assert.Equal(t, http.StatusOK, state.LastStatus)
	assert.Equal(t, "gateway", client.ComponentType())
}
