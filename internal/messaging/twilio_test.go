package messaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTwilioSend_Success(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer ts.Close()

	p := NewTwilioProvider("AC123", "secret", "+15550001111", nil)
	p.apiBase = ts.URL

	if err := p.Send(context.Background(), "+15551234567", "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotUser != "AC123" || gotPass != "secret" {
		t.Fatalf("unexpected basic auth: %s:%s", gotUser, gotPass)
	}
	if gotTo != "+15551234567" || gotFrom != "+15550001111" || gotBody != "hello" {
		t.Fatalf("unexpected form values: to=%s from=%s body=%s", gotTo, gotFrom, gotBody)
	}
}

func TestTwilioSend_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number","status":400}`))
	}))
	defer ts.Close()

	p := NewTwilioProvider("AC123", "secret", "+15550001111", nil)
	p.apiBase = ts.URL

	err := p.Send(context.Background(), "+1", "hello")
	if err == nil {
		t.Fatal("expected error on 4xx")
	}
	if want := "code 21211"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in error, got: %v", want, err)
	}
}

func TestTwilioSend_MissingCredentials(t *testing.T) {
	p := NewTwilioProvider("", "", "", nil)
	if p.IsConfigured() {
		t.Fatal("expected provider to be unconfigured")
	}
	if err := p.Send(context.Background(), "+15551234567", "hello"); err == nil {
		t.Fatal("expected error when unconfigured")
	}
}

func TestTwilioSend_ValidatesInput(t *testing.T) {
	p := NewTwilioProvider("AC123", "secret", "+15550001111", nil)
	if err := p.Send(context.Background(), "", "hello"); err == nil {
		t.Fatal("expected error on empty to")
	}
	if err := p.Send(context.Background(), "+15551234567", "  "); err == nil {
		t.Fatal("expected error on empty body")
	}
}
