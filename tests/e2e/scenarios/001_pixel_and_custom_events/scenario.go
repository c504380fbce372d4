package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic traffic and must match the expected dashboard numbers.
// DO NOT MODIFY: Changing these will break the expected results below.
const (
	pixelLoads   = 400 // GET requests, spread round-robin over pages and user agents
	customEvents = 100 // POST requests, half JSON and half plain text
)

var (
	pages = []string{
		"https://shop.example/",
		"https://shop.example/cart",
		"https://shop.example/checkout",
		"https://shop.example/about",
	}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type stats struct {
	DailyCount int64 `json:"dailyCount"`
	TopPages   []struct {
		Value string `json:"value"`
		Count int64  `json:"count"`
	} `json:"topPages"`
	RecentEvents []json.RawMessage `json:"recentEvents"`
	Browsers     []struct {
		Value string `json:"value"`
		Count int64  `json:"count"`
	} `json:"browsers"`
	Devices []struct {
		Value string `json:"value"`
		Count int64  `json:"count"`
	} `json:"devices"`
}

type request struct {
	index  int
	method string
	page   string
	ua     string
	body   []byte
}

// main runs the e2e scenario: 001_pixel_and_custom_events
//
// The scenario drives a running server (local stream driver, memory counter store,
// local blob storage, aggregation.mode=sync) with pixel loads and custom events, then
// checks the dashboard statistics and the hourly archive blobs.
//
// What it tests:
//   - GET <ingest path> answers a 1x1 GIF and POST answers 202
//   - Inline aggregation: daily count, top pages and browsers from /api/stats
//   - Recent events are capped at 10, newest first
//   - The in-process stream consumer archives every event into gzip NDJSON blobs
//
// Expected results (on a fresh server and empty archive directory):
//   - dailyCount == 500
//   - 4 top pages with 100 loads each (custom events carry no referer)
//   - recentEvents has 10 entries
//   - the archive directory holds 500 records once the consumer has flushed
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080")         // Base URL of the tracking pixel server
	ingestPath := getEnv("INGEST_PATH", "/e")                      // Must match ingest.path
	archiveDir := getEnv("ARCHIVE_DIR", ".tmp/archive")            // Must match blob_storage.root_dir, relative to project root
	parallel := getEnvInt("PARALLEL", 8)                           // Number of concurrent requests
	wantCleanArchive := getEnvBool("WANT_CLEAN_ARCHIVE_DIR", true) // Remove archived blobs before sending
	settleTimeout := 15 * time.Second                              // How long to wait for counters and archives

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	archivePath := filepath.Join(projectRoot, archiveDir)

	if wantCleanArchive {
		fmt.Printf("Cleaning archive directory: %s\n", archivePath)
		if err := os.RemoveAll(filepath.Join(archivePath, "events")); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean archive directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_pixel_and_custom_events")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("INGEST_PATH: %s\n", ingestPath)
	fmt.Printf("ARCHIVE_PATH: %s\n", archivePath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("PIXEL_LOADS: %d\n", pixelLoads)
	fmt.Printf("CUSTOM_EVENTS: %d\n", customEvents)
	fmt.Println()

	requests := generateRequests()
	client := &http.Client{Timeout: 10 * time.Second}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var pixelServed int64    // 200 with image/gif
	var customAccepted int64 // 202

	for _, req := range requests {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(r request) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			if err := send(client, baseURL+ingestPath, r); err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("request %d: %w", r.index, err))
				mu.Unlock()
				return
			}
			if r.method == http.MethodGet {
				atomic.AddInt64(&pixelServed, 1)
			} else {
				atomic.AddInt64(&customAccepted, 1)
			}
		}(req)
	}
	wg.Wait()

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Pixels served: %d\n", atomic.LoadInt64(&pixelServed))
	fmt.Printf("Custom events accepted: %d\n", atomic.LoadInt64(&customAccepted))
	fmt.Println()

	total := int64(pixelLoads + customEvents)
	var failures []string

	// Counters are written inline, so they settle as soon as every request has returned
	got, err := fetchStats(client, baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if got.DailyCount != total {
		failures = append(failures, fmt.Sprintf("dailyCount = %d, want %d", got.DailyCount, total))
	}
	if len(got.TopPages) != len(pages) {
		failures = append(failures, fmt.Sprintf("topPages has %d entries, want %d", len(got.TopPages), len(pages)))
	}
	for _, page := range got.TopPages {
		if page.Count != pixelLoads/int64(len(pages)) {
			failures = append(failures, fmt.Sprintf("page %s count = %d, want %d", page.Value, page.Count, pixelLoads/len(pages)))
		}
	}
	if len(got.RecentEvents) != 10 {
		failures = append(failures, fmt.Sprintf("recentEvents has %d entries, want 10", len(got.RecentEvents)))
	}

	// Archives are written by the batching consumer after its flush interval
	archived, err := waitForArchivedRecords(archivePath, total, settleTimeout)
	if err != nil {
		failures = append(failures, err.Error())
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Daily count: %d\n", got.DailyCount)
	for _, page := range got.TopPages {
		fmt.Printf("Page %s: %d\n", page.Value, page.Count)
	}
	for _, browser := range got.Browsers {
		fmt.Printf("Browser %s: %d\n", browser.Value, browser.Count)
	}
	for _, device := range got.Devices {
		fmt.Printf("Device %s: %d\n", device.Value, device.Count)
	}
	fmt.Printf("Archived records: %d\n", archived)
	fmt.Println()

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", failure)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func generateRequests() []request {
	requests := make([]request, 0, pixelLoads+customEvents)
	for i := 0; i < pixelLoads; i++ {
		requests = append(requests, request{
			index:  i,
			method: http.MethodGet,
			page:   pages[i%len(pages)],
			ua:     userAgents[(i/len(pages))%len(userAgents)],
		})
	}
	for i := 0; i < customEvents; i++ {
		body := []byte(fmt.Sprintf(`{"action":"button_click","n":%d}`, i))
		if i%2 == 1 {
			body = []byte(fmt.Sprintf("plain text event %d", i))
		}
		requests = append(requests, request{
			index:  pixelLoads + i,
			method: http.MethodPost,
			ua:     userAgents[i%len(userAgents)],
			body:   body,
		})
	}
	return requests
}

func send(client *http.Client, url string, r request) error {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequest(r.method, url+"?n="+strconv.Itoa(r.index), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", r.ua)
	if r.page != "" {
		req.Header.Set("Referer", r.page)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case r.method == http.MethodGet && resp.StatusCode == http.StatusOK && resp.Header.Get("Content-Type") == "image/gif":
		return nil
	case r.method == http.MethodPost && resp.StatusCode == http.StatusAccepted:
		return nil
	default:
		return fmt.Errorf("HTTP %d (%s)", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
}

func fetchStats(client *http.Client, baseURL string) (*stats, error) {
	resp, err := client.Get(baseURL + "/api/stats")
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats returned HTTP %d", resp.StatusCode)
	}
	var s stats
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &s, nil
}

// waitForArchivedRecords polls the archive directory until want records are archived or timeout passes.
func waitForArchivedRecords(archivePath string, want int64, timeout time.Duration) (int64, error) {
	deadline := time.Now().Add(timeout)
	for {
		got, err := countArchivedRecords(archivePath)
		if err != nil {
			return got, err
		}
		if got >= want {
			if got > want {
				return got, fmt.Errorf("archived %d records, want %d", got, want)
			}
			return got, nil
		}
		if time.Now().After(deadline) {
			return got, fmt.Errorf("archived %d records after %s, want %d", got, timeout, want)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func countArchivedRecords(archivePath string) (int64, error) {
	var count int64
	err := filepath.WalkDir(filepath.Join(archivePath, "events"), func(path string, d os.DirEntry, err error) error {
		if os.IsNotExist(err) {
			return filepath.SkipDir
		}
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json.gz") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()

		scanner := bufio.NewScanner(gz)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if len(bytes.TrimSpace(scanner.Bytes())) > 0 {
				count++
			}
		}
		return scanner.Err()
	})
	return count, err
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod; run from the project root")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
