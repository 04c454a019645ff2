package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		env     string
		level   string
		debugOn bool
		infoOn  bool
	}{
		{env: "development", debugOn: true, infoOn: true},
		{env: "production", debugOn: false, infoOn: true},
		{env: "production", level: "debug", debugOn: true, infoOn: true},
		{env: "development", level: "warn", debugOn: false, infoOn: false},
		{env: "production", level: "loud", debugOn: false, infoOn: true},
	}
	for _, tc := range cases {
		log, err := New(tc.env, tc.level)
		if err != nil {
			t.Fatalf("%s/%s: %v", tc.env, tc.level, err)
		}
		if got := log.Core().Enabled(zap.DebugLevel); got != tc.debugOn {
			t.Fatalf("%s/%s: debug enabled = %v", tc.env, tc.level, got)
		}
		if got := log.Core().Enabled(zap.InfoLevel); got != tc.infoOn {
			t.Fatalf("%s/%s: info enabled = %v", tc.env, tc.level, got)
		}
	}
}
