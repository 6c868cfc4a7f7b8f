// Benchmark tool: measures latency and QPS of the posts API.
// It runs a worker pool issuing list requests concurrently and aggregates metrics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"
)

func main() {
	// CLI flags to control workload.
	var baseURL string
	var concurrency int
	var requests int
	var limit int
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the posts API")
	flag.IntVar(&concurrency, "concurrency", 50, "number of concurrent workers")
	flag.IntVar(&requests, "requests", 1000, "total number of requests")
	flag.IntVar(&limit, "limit", 0, "list limit (0 = full list)")
	flag.Parse()

	url := fmt.Sprintf("%s/api/posts", baseURL)
	if limit > 0 {
		url = fmt.Sprintf("%s?limit=%d", url, limit)
	}

	// result is a per-request measurement for aggregation.
	type result struct {
		latency time.Duration
		err     error
	}

	// jobs is a bounded channel; each entry indicates "run one request".
	jobs := make(chan struct{}, requests)
	results := make(chan result, requests)

	for i := 0; i < requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(concurrency)

	client := &http.Client{Timeout: 10 * time.Second}

	// Start N workers to process jobs in parallel.
	startAll := time.Now()
	for w := 0; w < concurrency; w++ {
		go func() {
			defer wg.Done()
			for range jobs {
				// Time a single logical request (one list fetch).
				start := time.Now()
				err := fetch(client, url)
				dur := time.Since(start)
				results <- result{latency: dur, err: err}
			}
		}()
	}
	wg.Wait()
	close(results)
	totalDur := time.Since(startAll)

	// Aggregate metrics: average latency, p95, and QPS.
	var latencies []time.Duration
	var errs int
	for r := range results {
		if r.err != nil {
			errs++
			continue
		}
		latencies = append(latencies, r.latency)
	}
	if len(latencies) == 0 {
		log.Fatalf("no successful requests (errors=%d)", errs)
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	avg := time.Duration(int64(sum) / int64(len(latencies)))
	p95 := latencies[int(float64(len(latencies))*0.95)-1]
	qps := float64(len(latencies)) / totalDur.Seconds()

	fmt.Printf("Requests: %d, Concurrency: %d, Errors: %d\n", len(latencies), concurrency, errs)
	fmt.Printf("Avg latency: %s\n", avg.Truncate(time.Microsecond))
	fmt.Printf("P95 latency: %s\n", p95.Truncate(time.Microsecond))
	fmt.Printf("Total QPS: %.2f\n", qps)
}

// fetch issues one GET and drains the body so connections are reused.
func fetch(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
