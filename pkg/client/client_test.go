package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newstalgia/backend/internal/block"
)

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

func TestSaveRejectsInvalidBlocksWithoutNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		respond(w, http.StatusOK, nil)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.Save(context.Background(), &Project{
		Title:  "x",
		Blocks: block.List{block.Unknown{TypeTag: "bogus"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindValidationFailed, KindOf(err))
	assert.Contains(t, err.Error(), "bogus")
	assert.Zero(t, calls)
}

func TestSaveCreatePostsSlugAndType(t *testing.T) {
	var method, path string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respond(w, http.StatusOK, []Project{})
			return
		}
		method, path = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		respond(w, http.StatusOK, Project{ID: "p1", Title: "T", Slug: "t", Type: "branding"})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	saved, err := c.Save(context.Background(), &Project{
		Title: "T", Slug: "t", Type: "branding",
		Blocks: block.List{block.Text{Text: "hi", Layout: block.LayoutLeft}},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", saved.ID)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/projects", path)
	assert.Equal(t, "t", body["slug"])
	assert.Equal(t, "branding", body["type"])
}

func TestSaveUpdateStripsImmutableAndServerOwnedFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respond(w, http.StatusOK, []Project{})
			return
		}
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/projects/p1", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&body)
		respond(w, http.StatusOK, Project{ID: "p1"})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.Save(context.Background(), &Project{
		ID: "p1", Title: "T", Slug: "immutable", Type: "immutable",
		Blocks: block.List{block.Text{ID: "server-id", Text: "hi", Layout: block.LayoutLeft}},
	})
	require.NoError(t, err)

	_, hasSlug := body["slug"]
	_, hasType := body["type"]
	_, hasID := body["id"]
	assert.False(t, hasSlug)
	assert.False(t, hasType)
	assert.False(t, hasID)

	blocks := body["blocks"].([]any)
	first := blocks[0].(map[string]any)
	_, hasBlockID := first["id"]
	assert.False(t, hasBlockID)
}

func TestSaveNormalizesLegacyImageBlocks(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respond(w, http.StatusOK, []Project{})
			return
		}
		json.NewDecoder(r.Body).Decode(&body)
		respond(w, http.StatusOK, Project{ID: "p1"})
	}))
	defer srv.Close()

	legacy, err := block.Decode(json.RawMessage(`{"type":"image","src":"x.png"}`))
	require.NoError(t, err)

	c := New(srv.URL, StaticToken("tok"))
	_, err = c.Save(context.Background(), &Project{ID: "p1", Blocks: block.List{legacy}})
	require.NoError(t, err)

	blocks := body["blocks"].([]any)
	first := blocks[0].(map[string]any)
	assert.Equal(t, "full_image", first["type"])
	assert.Equal(t, "x.png", first["src"])
}

func TestRemoveTreats404AsSuccessAndRefreshesList(t *testing.T) {
	listCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"code": 40401, "message": "project not found"})
		case r.Method == http.MethodGet:
			listCalls++
			respond(w, http.StatusOK, []Project{})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	err := c.Remove(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)
}

func TestUnauthorizedIsSurfacedNotSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"code": 40102, "message": "token expired"})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("stale"))
	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
}

func TestNetworkErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindNetworkError, KindOf(err))
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"code": 40001, "message": "slug already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.Save(context.Background(), &Project{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, KindServerError, KindOf(err))
	assert.Contains(t, err.Error(), "slug already exists")
}

func TestListCachesAndGetNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/projects":
			respond(w, http.StatusOK, []Project{{ID: "p1", Title: "One"}})
		case "/projects/slug/one":
			w.Header().Set("Content-Type", "application/json")
			// hand-built payload with a legacy block
			w.Write([]byte(`{"code":0,"message":"success","data":{
				"id":"p1","title":"One","slug":"one","type":"t","description":"","category":"",
				"blocks":[{"type":"image","src":"legacy.png"}],"team":[]}}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))

	_, ok := c.Cached()
	assert.False(t, ok)

	projects, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	cached, ok := c.Cached()
	require.True(t, ok)
	assert.Equal(t, "One", cached[0].Title)

	p, err := c.GetBySlug(context.Background(), "one")
	require.NoError(t, err)
	require.Len(t, p.Blocks, 1)
	assert.Equal(t, block.TypeFullImage, p.Blocks[0].BlockType())
}

func TestUploadReportsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "pic.png", header.Filename)
		respond(w, http.StatusOK, map[string]string{"url": "/uploads/pic.png"})
	}))
	defer srv.Close()

	var last int
	content := strings.Repeat("x", 1024)
	c := New(srv.URL, StaticToken("tok"))
	url, err := c.Upload(context.Background(), "pic.png", int64(len(content)), strings.NewReader(content), func(pct int) { last = pct })
	require.NoError(t, err)
	assert.Equal(t, "/uploads/pic.png", url)
	assert.Equal(t, 100, last)
}
