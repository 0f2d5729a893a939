package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// roundTripperFunc lets a test stand in for the HTTP transport.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestGetUserInfo(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet {
			t.Errorf("method = %s; want GET", req.Method)
		}
		if req.URL.String() != "http://api.test/v1/users/me" {
			t.Errorf("url = %s", req.URL)
		}
		if got := req.Header.Get("Authorization"); got != "secret-token" {
			t.Errorf("authorization = %q; want secret-token", got)
		}
		return jsonResponse(200, `{"_id":"u1","name":"Jacques","about":"Explorer","avatar":"http://img/a.png"}`), nil
	}), "http://api.test/v1", "secret-token")

	u, err := client.GetUserInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || u.Name != "Jacques" || u.About != "Explorer" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestGetCardList(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v1/cards" {
			t.Errorf("path = %s; want /v1/cards", req.URL.Path)
		}
		return jsonResponse(200, `[
			{"_id":"c1","name":"Alps","link":"http://img/1.jpg","likes":["u2"],"createdAt":"2024-03-01T10:00:00Z","owner":{"_id":"u2","name":"B"}},
			{"_id":"c2","name":"Baikal","link":"http://img/2.jpg","likes":[],"createdAt":"2024-01-01T10:00:00Z","owner":{"_id":"u1","name":"A"}}
		]`), nil
	}), "http://api.test/v1", "secret-token")

	cards, err := client.GetCardList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("len = %d; want 2", len(cards))
	}
	if cards[0].ID != "c1" || cards[0].Owner.ID != "u2" || !cards[0].LikedBy("u2") {
		t.Errorf("unexpected first card: %+v", cards[0])
	}
}

func TestUpdateProfile_Body(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPatch || req.URL.Path != "/v1/users/me" {
			t.Errorf("got %s %s", req.Method, req.URL.Path)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["name"] != "New Name" || body["about"] != "New About" {
			t.Errorf("body = %v", body)
		}
		return jsonResponse(200, `{"_id":"u1","name":"New Name","about":"New About"}`), nil
	}), "http://api.test/v1", "tok")

	u, err := client.UpdateProfile(context.Background(), "New Name", "New About")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "New Name" {
		t.Errorf("name = %q", u.Name)
	}
}

func TestUpdateAvatar_Body(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPatch || req.URL.Path != "/v1/users/me/avatar" {
			t.Errorf("got %s %s", req.Method, req.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["avatar"] != "http://img/new.png" {
			t.Errorf("body = %v", body)
		}
		return jsonResponse(200, `{"_id":"u1","avatar":"http://img/new.png"}`), nil
	}), "http://api.test/v1", "tok")

	u, err := client.UpdateAvatar(context.Background(), "http://img/new.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Avatar != "http://img/new.png" {
		t.Errorf("avatar = %q", u.Avatar)
	}
}

func TestCreateCard_Body(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost || req.URL.Path != "/v1/cards" {
			t.Errorf("got %s %s", req.Method, req.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["name"] != "Alps" || body["link"] != "http://img/1.jpg" {
			t.Errorf("body = %v", body)
		}
		return jsonResponse(201, `{"_id":"c9","name":"Alps","link":"http://img/1.jpg","likes":[],"owner":{"_id":"u1"}}`), nil
	}), "http://api.test/v1", "tok")

	card, err := client.CreateCard(context.Background(), "Alps", "http://img/1.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.ID != "c9" {
		t.Errorf("id = %q; want c9", card.ID)
	}
}

func TestRemoveCard(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodDelete || req.URL.Path != "/v1/cards/c1" {
			t.Errorf("got %s %s", req.Method, req.URL.Path)
		}
		return jsonResponse(200, `{"message":"card deleted"}`), nil
	}), "http://api.test/v1", "tok")

	if err := client.RemoveCard(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetLike_MethodFollowsDesiredState(t *testing.T) {
	tests := []struct {
		desired    bool
		wantMethod string
	}{
		{desired: true, wantMethod: http.MethodPut},
		{desired: false, wantMethod: http.MethodDelete},
	}
	for _, tt := range tests {
		client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
			if req.Method != tt.wantMethod {
				t.Errorf("method = %s; want %s", req.Method, tt.wantMethod)
			}
			if req.URL.Path != "/v1/cards/likes/c1" {
				t.Errorf("path = %s", req.URL.Path)
			}
			return jsonResponse(200, `{"_id":"c1","likes":["u1"]}`), nil
		}), "http://api.test/v1", "tok")

		card, err := client.SetLike(context.Background(), "c1", tt.desired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.LikeCount() != 1 {
			t.Errorf("like count = %d; want 1", card.LikeCount())
		}
	}
}

func TestRequestError(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(404, `{"message":"not found"}`), nil
	}), "http://api.test/v1", "tok")

	_, err := client.GetUserInfo(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.Status != 404 {
		t.Errorf("status = %d; want 404", reqErr.Status)
	}
}

func TestNetworkError(t *testing.T) {
	client := New(newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}), "http://api.test/v1", "tok")

	_, err := client.GetCardList(context.Background())
	if err == nil || !strings.Contains(err.Error(), "network down") {
		t.Errorf("expected network failure, got %v", err)
	}
}
