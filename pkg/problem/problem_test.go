package problem

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "name", Message: "required"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
	if p.Success || p.Error != "details" {
		t.Fatalf("envelope fields not set: %+v", p)
	}
}

func TestNew_ErrorFallsBackToTitle(t *testing.T) {
	p := InternalError("")
	if p.Error != "Internal Server Error" {
		t.Fatalf("Error = %q, want title", p.Error)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := CohortTooSmall("Minimum cohort size not met for privacy compliance")
	p.Write(resp)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded["success"] != false || decoded["error"] != "Minimum cohort size not met for privacy compliance" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
	if decoded["title"] != "Minimum Cohort Not Met" {
		t.Fatalf("unexpected title: %v", decoded["title"])
	}
}
