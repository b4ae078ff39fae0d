package video

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
)

func call(t *testing.T, h web.Handler, method, id, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, "/video/"+id, nil)
	} else {
		r = httptest.NewRequest(method, "/video/"+id, strings.NewReader(body))
	}
	r = mux.SetURLVars(r, map[string]string{"id": id})

	w := httptest.NewRecorder()
	return w, h(context.Background(), w, r)
}

func expectStatus(t *testing.T, err error, status int, msg string) {
	t.Helper()

	body, got, ok := weberr.Response(err)
	if !ok {
		t.Fatalf("expected an error with a response, got %v", err)
	}
	if got != status {
		t.Fatalf("expected status %d, got %d", status, got)
	}
	if msg != "" {
		er := body.(*weberr.ErrorResponse)
		if er.Error != msg {
			t.Fatalf("expected message %q, got %q", msg, er.Error)
		}
	}
}

func TestHandleCreateThenShow(t *testing.T) {
	store := NewMemoryStore()

	w, err := call(t, HandleCreate(store), http.MethodPut, "1", `{"name":"clip","views":10,"likes":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	exp := Video{ID: 1, Name: "clip", Views: 10, Likes: 2}
	var got Video
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("wrong created video (-want +got):\n%s", diff)
	}

	w, err = call(t, HandleShow(store), http.MethodGet, "1", "")
	if err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got = Video{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("wrong fetched video (-want +got):\n%s", diff)
	}

	_, err = call(t, HandleCreate(store), http.MethodPut, "1", `{"name":"again","views":1,"likes":1}`)
	expectStatus(t, err, http.StatusConflict, "Video id taken.")

	unchanged, ferr := store.Fetch(context.Background(), 1)
	if ferr != nil {
		t.Fatal(ferr)
	}
	if diff := cmp.Diff(exp, unchanged); diff != "" {
		t.Fatalf("conflicting put changed the record (-want +got):\n%s", diff)
	}
}

func TestHandleCreateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"views":10,"likes":2}`, "name"},
		{"missing views", `{"name":"clip","likes":2}`, "views"},
		{"missing likes", `{"name":"clip","views":10}`, "likes"},
		{"views not a number", `{"name":"clip","views":"ten","likes":2}`, "views"},
		{"name not a string", `{"name":5,"views":1,"likes":2}`, "name"},
		{"empty body", ``, "name"},
		{"name too long", `{"name":"` + strings.Repeat("a", 101) + `","views":1,"likes":2}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()

			_, err := call(t, HandleCreate(store), http.MethodPut, "3", tt.body)
			expectStatus(t, err, http.StatusBadRequest, "")

			body, _, _ := weberr.Response(err)
			er := body.(*weberr.ErrorResponse)
			if _, ok := er.Fields[tt.field]; !ok {
				t.Fatalf("expected field %q to be reported, got %v", tt.field, er.Fields)
			}

			if _, ferr := store.Fetch(context.Background(), 3); ferr == nil {
				t.Fatalf("invalid put must not create a record")
			}
		})
	}
}

func TestHandleCreateMalformedJSON(t *testing.T) {
	_, err := call(t, HandleCreate(NewMemoryStore()), http.MethodPut, "4", `{"name":`)
	expectStatus(t, err, http.StatusBadRequest, "bad request")
}

func TestHandleShowMissing(t *testing.T) {
	_, err := call(t, HandleShow(NewMemoryStore()), http.MethodGet, "5", "")
	expectStatus(t, err, http.StatusNotFound, "Video id is not valid.")
}

func TestHandleDelete(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Create(context.Background(), Video{ID: 6, Name: "gone", Views: 1, Likes: 1}); err != nil {
		t.Fatal(err)
	}

	w, err := call(t, HandleDelete(store), http.MethodDelete, "6", "")
	if err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", w.Code, w.Body.String())
	}

	_, err = call(t, HandleShow(store), http.MethodGet, "6", "")
	expectStatus(t, err, http.StatusNotFound, "Video id is not valid.")

	_, err = call(t, HandleDelete(store), http.MethodDelete, "6", "")
	expectStatus(t, err, http.StatusNotFound, "Video id is not valid.")
}

type failingStore struct{ MemoryStore }

func (*failingStore) Fetch(ctx context.Context, id int64) (Video, error) {
	return Video{}, errors.New("connection reset")
}

func TestHandleShowStoreFailure(t *testing.T) {
	_, err := call(t, HandleShow(&failingStore{}), http.MethodGet, "7", "")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, _, ok := weberr.Response(err); ok {
		t.Fatalf("store failures must surface as internal errors")
	}
}
