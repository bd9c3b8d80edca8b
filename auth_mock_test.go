package mindly_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mindly "github.com/mindly/mindly-client"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		// Login happens before any token exists.
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must be unauthenticated, got %q", r.Header.Get("Authorization"))
		}
		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		if body["email"] != "ana@mindly.com" || body["senha"] != "s3nha" {
			t.Errorf("credentials = %v", body)
		}
		_, _ = w.Write([]byte(`{"nome":"Ana","email":"ana@mindly.com","role":"PACIENTE","token":"tok-1"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	res, err := c.Login(context.Background(), mindly.LoginRequest{Email: "ana@mindly.com", Password: "s3nha"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "tok-1" || res.Role != mindly.RolePatient {
		t.Fatalf("result = %+v", res)
	}
}

func TestClient_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Credenciais inválidas"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.Login(context.Background(), mindly.LoginRequest{Email: "ana@mindly.com", Password: "errada"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := mindly.UserMessage(err); got != "Credenciais inválidas" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestClient_LoginValidation(t *testing.T) {
	c := newClient(t, "http://unused.test")
	if _, err := c.Login(context.Background(), mindly.LoginRequest{Email: "", Password: "x"}); err == nil {
		t.Fatal("blank email must be rejected before any call")
	}
	if _, err := c.Login(context.Background(), mindly.LoginRequest{Email: "a@b.com", Password: ""}); err == nil {
		t.Fatal("blank password must be rejected before any call")
	}
}

func TestClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"nome":"Bia","email":"bia@mindly.com","role":"PACIENTE","token":"tok-2"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	res, err := c.Register(context.Background(), mindly.RegisterRequest{
		Name:     "Bia",
		Email:    "bia@mindly.com",
		Password: "s3nha",
		Phone:    "(11) 98888-7777",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Email != "bia@mindly.com" || res.Token != "tok-2" {
		t.Fatalf("result = %+v", res)
	}
}
