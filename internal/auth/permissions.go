package auth

import "strings"

type Permission string

const (
	PermReports       Permission = "reports"
	PermReportExport  Permission = "report_export"
	PermSettingsRead  Permission = "settings_read"
	PermSettingsWrite Permission = "settings_write"
	PermPreferences   Permission = "preferences"
)

var apiPermissionMap = map[string]Permission{
	"/api/reports":         PermReports,
	"/api/reports/export":  PermReportExport,
	"/api/reports/exports": PermReportExport,
	"/api/payment-modes":   PermReports,
	"/api/settings":        PermSettingsRead,
	"PUT /api/settings":    PermSettingsWrite,
	"/api/preferences":     PermPreferences,
}

var rolePermissions = map[Role][]Permission{
	RoleAdmin:   {PermReports, PermReportExport, PermSettingsRead, PermSettingsWrite, PermPreferences},
	RoleManager: {PermReports, PermReportExport, PermSettingsRead, PermSettingsWrite, PermPreferences},
	RoleCashier: {PermReports, PermSettingsRead, PermPreferences},
}

// GetPermissionForAPI returns the permission guarding path, preferring the
// longest matching prefix and method-specific entries.
func GetPermissionForAPI(path string, method string) *Permission {
	method = strings.ToUpper(strings.TrimSpace(method))

	var bestPath string
	var bestPerm *Permission
	var bestMethodSpecific bool

	for key, perm := range apiPermissionMap {
		keyPath := key
		methodSpecific := false
		if strings.Contains(key, " ") {
			parts := strings.SplitN(key, " ", 2)
			if method == "" || method != strings.ToUpper(strings.TrimSpace(parts[0])) {
				continue
			}
			keyPath = strings.TrimSpace(parts[1])
			methodSpecific = true
		}

		if path != keyPath && !strings.HasPrefix(path, keyPath+"/") {
			continue
		}

		if bestPerm == nil || len(keyPath) > len(bestPath) || (len(keyPath) == len(bestPath) && methodSpecific && !bestMethodSpecific) {
			bestPath = keyPath
			bestMethodSpecific = methodSpecific
			permCopy := perm
			bestPerm = &permCopy
		}
	}

	return bestPerm
}

func RoleHasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
