package main

import (
	"net/http"
	"os"
	"time"
)

// healthcheck probes the local server's liveness endpoint; it is used as the
// container HEALTHCHECK command.
func main() {
	url := "http://127.0.0.1:8080/healthz"
	if addr := os.Getenv("VECNA_ADDR"); addr != "" {
		if addr[0] == ':' {
			addr = "127.0.0.1" + addr
		}
		url = "http://" + addr + "/healthz"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
