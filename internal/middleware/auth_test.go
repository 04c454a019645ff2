package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-backoffice/internal/auth"
)

func okHandler(t *testing.T, seen **AuthContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := GetAuthContext(r.Context())
		if !ok {
			t.Errorf("expected auth context")
		}
		*seen = ac
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestOperatorAuth(t *testing.T) {
	outlet := "5"
	cashier, err := auth.IssueAccessToken(auth.Claims{UserID: "7", Role: auth.RoleCashier, OutletID: &outlet}, "secret", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cases := []struct {
		name     string
		method   string
		path     string
		header   string
		expected int
	}{
		{name: "missing token", method: "GET", path: "/api/reports/view", expected: http.StatusUnauthorized},
		{name: "bad token", method: "GET", path: "/api/reports/view", header: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "cashier reads reports", method: "GET", path: "/api/reports/view", header: "Bearer " + cashier, expected: http.StatusNoContent},
		{name: "cashier cannot export", method: "GET", path: "/api/reports/export/pdf", header: "Bearer " + cashier, expected: http.StatusForbidden},
		{name: "cashier cannot write settings", method: "PUT", path: "/api/settings/outlet-settings/5", header: "Bearer " + cashier, expected: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen *AuthContext
			h := OperatorAuth("secret", false)(okHandler(t, &seen))
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.expected {
				t.Fatalf("expected %d, got %d (%s)", tc.expected, rec.Code, rec.Body.String())
			}
			if tc.expected == http.StatusNoContent && (seen == nil || seen.UserID != "7" || seen.OutletID != "5") {
				t.Fatalf("unexpected auth context %+v", seen)
			}
		})
	}
}

func TestOperatorAuthAnonymous(t *testing.T) {
	var seen *AuthContext
	req := httptest.NewRequest("PUT", "/api/settings/outlet-settings/5", nil)

	rec := httptest.NewRecorder()
	OperatorAuth("", true)(okHandler(t, &seen)).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || seen.UserID != localOperatorID || seen.Role != auth.RoleAdmin {
		t.Fatalf("expected local admin, got %d %+v", rec.Code, seen)
	}

	rec = httptest.NewRecorder()
	OperatorAuth("", false)(okHandler(t, &seen)).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a secret, got %d", rec.Code)
	}
}
