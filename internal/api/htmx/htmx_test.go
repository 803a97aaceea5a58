package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "missing", header: "", want: false},
		{name: "true", header: "true", want: true},
		{name: "mixed_case", header: "TRUE", want: true},
		{name: "false", header: "false", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.header != "" {
				req.Header.Set("HX-Request", test.header)
			}
			if got := IsRequest(req); got != test.want {
				t.Fatalf("IsRequest() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	rec := httptest.NewRecorder()
	Refresh(rec)
	if got := rec.Header().Get("HX-Refresh"); got != "true" {
		t.Fatalf("HX-Refresh = %q, want true", got)
	}
}
