package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

func TestRemove(c Config) {

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	namespace := NewNamespace()

	transport := &http.Transport{
		MaxConnsPerHost:     1024,
		MaxIdleConns:        1024,
		MaxIdleConnsPerHost: 1024,
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}

	{
		fmt.Println("Preload documents...")
		r, w := io.Pipe()

		encoder := json.NewEncoder(w)
		go func() {
			for i := int64(0); i < c.N; i++ {
				encoder.Encode(JSON{
					"id":     i,
					"worker": i % int64(c.Workers),
				})
			}
			w.Close()
		}()

		req, err := http.NewRequest("POST", c.Base+"/v1/namespaces/"+namespace+":insert", r)
		if err != nil {
			fmt.Println("ERROR: new request:", err.Error())
			os.Exit(3)
		}

		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("ERROR: do request:", err.Error())
			os.Exit(4)
		}
		io.Copy(io.Discard, resp.Body)
	}

	removeURL := c.Base + "/v1/namespaces/" + namespace + ":remove"

	t0 := time.Now()
	worker := int64(-1)
	Parallel(c.Workers, func() {
		w := atomic.AddInt64(&worker, 1)

		// Remove all documents belonging to this worker
		body := fmt.Sprintf(`{"filter":{"worker":%d}}`, w)
		req, err := http.NewRequest(http.MethodPost, removeURL, strings.NewReader(body))
		if err != nil {
			fmt.Println("ERROR: new request:", err.Error())
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("ERROR: do request:", err.Error())
			return
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fmt.Println("ERROR: bad status:", resp.Status)
		}
	})

	took := time.Since(t0)
	fmt.Println("removed:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f rows/sec\n", float64(c.N)/took.Seconds())
}
