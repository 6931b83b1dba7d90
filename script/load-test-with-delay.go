package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// PointRequest is the charge and use payload
type PointRequest struct {
	Amount int64 `json:"amount"`
}

// PointResponse is a user's balance as returned by the API
type PointResponse struct {
	ID    uint64 `json:"id"`
	Point int64  `json:"point"`
}

// HistoryResponse is one history entry as returned by the API
type HistoryResponse struct {
	ID     uint64 `json:"id"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

// Scenario is one kind of request the workers send
type Scenario struct {
	Name   string
	Path   string // charge or use
	Amount int64
}

// TestStats contains aggregated test statistics
type TestStats struct {
	mu            sync.Mutex
	Requests      int
	Committed     int
	Rejected      int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ScenarioStats map[string]int
	// Delta is the committed balance change per user
	Delta map[uint64]int64
}

func (s *TestStats) record(userID uint64, scenario Scenario, status int, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, elapsed)
	s.ScenarioStats[scenario.Name]++
	if err != nil {
		s.Failed++
		return
	}
	s.StatusCounts[status]++

	switch {
	case status == http.StatusOK:
		s.Committed++
		if scenario.Path == "charge" {
			s.Delta[userID] += scenario.Amount
		} else {
			s.Delta[userID] -= scenario.Amount
		}
	case status >= 400 && status < 500:
		s.Rejected++
	default:
		s.Failed++
	}
}

func main() {
	concurrency := flag.Int("c", 20, "Number of concurrent requests")
	totalRequests := flag.Int("n", 1000, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay before each request in milliseconds")
	flag.Parse()

	var userIDs []uint64
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []uint64{1}
	}

	scenarios := []Scenario{
		{"Charge Small", "charge", 10},
		{"Charge Medium", "charge", 250},
		{"Charge Large", "charge", 5_000},
		{"Use Small", "use", 15},
		{"Use Medium", "use", 400},
		{"Use Large", "use", 6_000},
	}

	fmt.Printf("Load testing %s across %d users: %v\n", *baseURL, len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	client := &http.Client{Timeout: 10 * time.Second}
	ctx := context.Background()

	start := make(map[uint64]int64, len(userIDs))
	for _, id := range userIDs {
		balance, err := getBalance(ctx, client, *baseURL, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read starting balance of user %d: %v\n", id, err)
			os.Exit(1)
		}
		start[id] = balance
	}

	stats := &TestStats{
		Requests:      *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ScenarioStats: make(map[string]int),
		Delta:         make(map[uint64]int64),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	begin := time.Now()
	for i := 0; i < *totalRequests; i++ {
		userID := userIDs[rand.IntN(len(userIDs))]
		scenario := scenarios[rand.IntN(len(scenarios))]

		g.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			status, elapsed, err := mutate(gctx, client, *baseURL, userID, scenario)
			stats.record(userID, scenario, status, elapsed, err)
			return nil
		})
	}
	_ = g.Wait()
	stats.TotalTime = time.Since(begin)

	printResults(stats)

	if !verify(ctx, client, *baseURL, userIDs, start, stats) {
		os.Exit(1)
	}
}

func mutate(ctx context.Context, client *http.Client, baseURL string, userID uint64, scenario Scenario) (int, time.Duration, error) {
	body, err := json.Marshal(PointRequest{Amount: scenario.Amount})
	if err != nil {
		return 0, 0, err
	}

	url := fmt.Sprintf("%s/point/%d/%s", baseURL, userID, scenario.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	begin := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(begin)
	if err != nil {
		return 0, elapsed, err
	}
	_ = resp.Body.Close()
	return resp.StatusCode, elapsed, nil
}

func getBalance(ctx context.Context, client *http.Client, baseURL string, userID uint64) (int64, error) {
	var out PointResponse
	if err := getJSON(ctx, client, fmt.Sprintf("%s/point/%d", baseURL, userID), &out); err != nil {
		return 0, err
	}
	return out.Point, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// verify checks that each final balance equals the starting balance plus the
// committed changes, and that the history replays to the same value
func verify(ctx context.Context, client *http.Client, baseURL string, userIDs []uint64, start map[uint64]int64, stats *TestStats) bool {
	fmt.Println("\n----------------- CONSISTENCY -----------------")
	ok := true
	for _, id := range userIDs {
		final, err := getBalance(ctx, client, baseURL, id)
		if err != nil {
			fmt.Printf("User %d: failed to read balance: %v\n", id, err)
			ok = false
			continue
		}

		var history []HistoryResponse
		if err := getJSON(ctx, client, fmt.Sprintf("%s/point/%d/histories", baseURL, id), &history); err != nil {
			fmt.Printf("User %d: failed to read history: %v\n", id, err)
			ok = false
			continue
		}
		var replayed int64
		for _, h := range history {
			if h.Type == "USE" {
				replayed -= h.Amount
			} else {
				replayed += h.Amount
			}
		}

		expected := start[id] + stats.Delta[id]
		status := "OK"
		if final != expected || replayed != final {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("User %d: start=%d committed_delta=%d final=%d replayed=%d %s\n",
			id, start[id], stats.Delta[id], final, replayed, status)
	}
	return ok
}

func printResults(stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.Requests)
	fmt.Printf("Committed:           %d\n", stats.Committed)
	fmt.Printf("Rejected (4xx):      %d\n", stats.Rejected)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.Requests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for status, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", status, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d\n", name, count)
	}
}
