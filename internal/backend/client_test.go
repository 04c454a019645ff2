package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second)
}

func TestFetchOrders(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reports" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"success":true,"data":{"orders":[{"orderNo":"A1","amount":100.25},{"orderNo":"A2"}]}}`)
	})

	orders, err := client.FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if n, ok := orders[0]["amount"].(json.Number); !ok || n.String() != "100.25" {
		t.Fatalf("expected amount as json.Number, got %#v", orders[0]["amount"])
	}
}

func TestFetchOrdersFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"success":false,"error":"db down"}`},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"message":"no data"}`},
		{name: "bad json", status: http.StatusOK, body: `{"success":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			if _, err := client.FetchOrders(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestStatusErrorCarriesBackendMessage(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"error":"upstream"}`)
	})
	_, err := client.FetchOrders(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Message != "upstream" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchPaymentModes(t *testing.T) {
	var gotOutlet string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotOutlet = r.URL.Query().Get("outletid")
		if r.URL.Query().Get("outletid") == "9" {
			_, _ = io.WriteString(w, `{"success":true,"data":[{"id":3,"mode_name":"UPI"}]}`)
			return
		}
		_, _ = io.WriteString(w, `[{"id":1,"mode_name":"Cash"},{"id":2,"mode_name":"Card"}]`)
	})

	modes, err := client.FetchPaymentModes(context.Background(), "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOutlet != "5" || len(modes) != 2 || modes[1].ModeName != "Card" || modes[1].ID != 2 {
		t.Fatalf("unexpected modes %+v for outlet %q", modes, gotOutlet)
	}

	wrapped, err := client.FetchPaymentModes(context.Background(), "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wrapped) != 1 || wrapped[0].ModeName != "UPI" {
		t.Fatalf("unexpected wrapped modes %+v", wrapped)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	var putBody map[string]any
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/settings/kot-print-settings/4" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"success":true,"data":{"outletid":4,"show_waiter":1}}`)
		case http.MethodPut:
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected json content type")
			}
			_ = json.NewDecoder(r.Body).Decode(&putBody)
			_, _ = io.WriteString(w, `{"success":true,"changes":1}`)
		}
	})

	record, err := client.GetSettings(context.Background(), "kot-print-settings", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := record["show_waiter"]; !ok {
		t.Fatalf("expected unwrapped record, got %v", record)
	}

	if _, err := client.PutSettings(context.Background(), "kot-print-settings", "4", map[string]any{"show_waiter": 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if putBody["show_waiter"] != float64(0) {
		t.Fatalf("unexpected put body %v", putBody)
	}

	if _, err := client.GetSettings(context.Background(), "bill-print-settings", "4"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsRequireOutlet(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should have been skipped")
	})
	if _, err := client.GetSettings(context.Background(), "outlet-settings", " "); !errors.Is(err, ErrMissingOutlet) {
		t.Fatalf("expected ErrMissingOutlet, got %v", err)
	}
}

func TestFetchHonoursContext(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.FetchOrders(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPutSettingsRejectedAcknowledgement(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"outlet locked"}`)
	})
	_, err := client.PutSettings(context.Background(), "outlet-settings", "4", map[string]any{"outletid": 4})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Message != "outlet locked" {
		t.Fatalf("expected rejected write to surface as StatusError, got %v", err)
	}
}
