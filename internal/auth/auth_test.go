package auth

import (
	"testing"
	"time"
)

func TestGetPermissionForAPI(t *testing.T) {
	cases := []struct {
		path     string
		method   string
		expected Permission
	}{
		{"/api/reports/view", "GET", PermReports},
		{"/api/reports/export/xlsx", "GET", PermReportExport},
		{"/api/reports/exports", "GET", PermReportExport},
		{"/api/settings/kot-print-settings/4", "GET", PermSettingsRead},
		{"/api/settings/kot-print-settings/4", "PUT", PermSettingsWrite},
		{"/api/preferences/kot-print-outlet-id", "PUT", PermPreferences},
	}
	for _, tc := range cases {
		perm := GetPermissionForAPI(tc.path, tc.method)
		if perm == nil || *perm != tc.expected {
			t.Fatalf("%s %s: expected %s, got %v", tc.method, tc.path, tc.expected, perm)
		}
	}
	if perm := GetPermissionForAPI("/api/reportsx", "GET"); perm != nil {
		t.Fatalf("expected no permission for unrelated path, got %s", *perm)
	}
}

func TestRoleHasPermission(t *testing.T) {
	if RoleHasPermission(RoleCashier, PermSettingsWrite) {
		t.Fatalf("cashier must not write settings")
	}
	if !RoleHasPermission(RoleManager, PermReportExport) {
		t.Fatalf("manager should export reports")
	}
	if RoleHasPermission(Role("GUEST"), PermReports) {
		t.Fatalf("unknown roles have no permissions")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	outlet := "5"
	token, err := IssueAccessToken(Claims{UserID: "42", Role: RoleCashier, OutletID: &outlet}, "secret", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := VerifyAccessToken(ParseBearerToken("Bearer "+token), "secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "42" || claims.Role != RoleCashier || claims.OutletID == nil || *claims.OutletID != "5" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, err := VerifyAccessToken(token, "other"); err == nil {
		t.Fatalf("expected signature error")
	}
	if ParseBearerToken("Token abc") != "" {
		t.Fatalf("expected non-bearer header to be ignored")
	}
}
