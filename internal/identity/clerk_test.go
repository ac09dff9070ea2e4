package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type mapNameCache struct {
	names map[string]string
	sets  int
}

func newMapNameCache() *mapNameCache {
	return &mapNameCache{names: make(map[string]string)}
}

func (m *mapNameCache) Get(_ context.Context, userID string) (string, bool) {
	name, ok := m.names[userID]
	return name, ok
}

func (m *mapNameCache) Set(_ context.Context, userID, firstName string) {
	m.names[userID] = firstName
	m.sets++
}

func newTestClient(baseURL string, opts ...Option) *ClerkClient {
	opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	return NewClerkClient("sk_test", zap.NewNop(), opts...)
}

func TestResolveFirstName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/user_1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test" {
			t.Errorf("unexpected authorization header %q", got)
		}
		_, _ = w.Write([]byte(`{"first_name":"Grace","last_name":"Hopper"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "Grace" {
		t.Errorf("expected %q, got %q", "Grace", name)
	}
}

func TestResolveFirstName_NetworkError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "user_1" {
		t.Errorf("expected fallback to user id, got %q", name)
	}
}

func TestResolveFirstName_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "user_1" {
		t.Errorf("expected fallback to user id, got %q", name)
	}
}

func TestResolveFirstName_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "user_1" {
		t.Errorf("expected fallback to user id, got %q", name)
	}
}

func TestResolveFirstName_MissingFirstName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"last_name":"Hopper"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "user_1" {
		t.Errorf("expected fallback to user id, got %q", name)
	}
}

func TestResolveFirstName_CacheHitSkipsProvider(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"first_name":"Grace"}`))
	}))
	defer server.Close()

	cache := newMapNameCache()
	cache.names["user_1"] = "Cached"

	client := newTestClient(server.URL, WithNameCache(cache))

	if name := client.ResolveFirstName(context.Background(), "user_1"); name != "Cached" {
		t.Errorf("expected cached name, got %q", name)
	}
	if calls != 0 {
		t.Errorf("expected no provider calls on cache hit, got %d", calls)
	}
}

func TestResolveFirstName_PopulatesCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"first_name":"Grace"}`))
	}))
	defer server.Close()

	cache := newMapNameCache()
	client := newTestClient(server.URL, WithNameCache(cache))

	_ = client.ResolveFirstName(context.Background(), "user_1")

	if cache.sets != 1 || cache.names["user_1"] != "Grace" {
		t.Errorf("expected resolved name to be cached, got %v", cache.names)
	}
}

func TestResolveFirstName_FailureNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cache := newMapNameCache()
	client := newTestClient(server.URL, WithNameCache(cache))

	_ = client.ResolveFirstName(context.Background(), "user_1")

	if cache.sets != 0 {
		t.Errorf("expected fallback value not to be cached, got %v", cache.names)
	}
}
