package workers

import (
	"net"
	"net/http"
	"testing"
	"time"
)

// Constructing the server must not open any listener; only Start may bind.
func TestNewAPIServerBindsNothing(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserving port: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	NewAPIServer(addr, http.NewServeMux())

	conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
	if err == nil {
		conn.Close()
		t.Fatalf("expected no listener on %s before Start", addr)
	}
}

func TestAPIServerName(t *testing.T) {
	if got := NewAPIServer(":0", nil).Name(); got != "api_server" {
		t.Errorf("unexpected name %q", got)
	}
}
