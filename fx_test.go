package fireplan

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRate_SameCurrency(t *testing.T) {
	rate, err := FetchRate("EUR", "EUR")
	if err != nil {
		t.Fatalf("FetchRate() error = %v", err)
	}
	if rate != 1 {
		t.Errorf("FetchRate(EUR, EUR) = %v, want 1", rate)
	}
}

func TestFetchRate_Extraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"amount":1.0,"base":"USD","rates":{"EUR":0.93}}`))
	}))
	defer srv.Close()

	rate, err := fetchRate(srv.Client(), srv.URL+"?from=USD&to=EUR", "EUR")
	if err != nil {
		t.Fatalf("fetchRate() error = %v", err)
	}
	if rate != 0.93 {
		t.Errorf("fetchRate = %v, want 0.93", rate)
	}
}

func TestFetchRate_MissingRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{}}`))
	}))
	defer srv.Close()

	if _, err := fetchRate(srv.Client(), srv.URL, "EUR"); err == nil {
		t.Error("fetchRate should fail when the pair is absent")
	}
}
