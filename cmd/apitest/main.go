// Command apitest runs a smoke test suite against a running zmanim API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Zman struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// ZmanimResponse is the response for /zmanim
type ZmanimResponse struct {
	Date     string `json:"date"`
	Location struct {
		Name     string `json:"name"`
		Timezone string `json:"timezone"`
		InIsrael bool   `json:"in_israel"`
	} `json:"location"`
	Day struct {
		HebrewDate string `json:"hebrew_date"`
		Holiday    string `json:"holiday"`
		Parsha     string `json:"parsha"`
		DafBavli   string `json:"daf_bavli"`
	} `json:"day"`
	Zmanim []Zman `json:"zmanim"`
}

// RangeResponse is the response for /zmanim/range
type RangeResponse struct {
	Start string           `json:"start"`
	End   string           `json:"end"`
	Days  []ZmanimResponse `json:"days"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

var (
	pass    = color.New(color.FgGreen).SprintFunc()
	fail    = color.New(color.FgRed).SprintFunc()
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
)

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println(heading("=============================================="))
	fmt.Println(heading("Zmanim API Test Suite"))
	fmt.Println(heading("=============================================="))
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testKnownDays()
	tr.testLocations()
	tr.testDateRange()
	tr.testCalendar()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := tr.parseDataAs(resp, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today at the Default Location")

	resp, err := tr.get("/api/v1/zmanim")
	if err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	var data ZmanimResponse
	if err := tr.parseDataAs(resp, &data); err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	tr.recordSuccess(fmt.Sprintf("Today (%s, %s): %s, %d zmanim",
		data.Date, data.Location.Timezone, data.Day.HebrewDate, len(data.Zmanim)))
	tr.printZmanimDetail(&data)

	// Hebrew names through Accept-Language
	req, _ := http.NewRequest("GET", tr.baseURL+"/api/v1/zmanim?zmanim=sunrise", nil)
	req.Header.Set("Accept-Language", "he")
	httpResp, err := tr.client.Do(req)
	if err != nil {
		tr.recordError("Today (he)", err.Error())
		return
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == 200 {
		tr.recordSuccess("Accept-Language: he works")
	} else {
		tr.recordError("Today (he)", fmt.Sprintf("HTTP %d", httpResp.StatusCode))
	}
}

func (tr *TestRunner) testKnownDays() {
	tr.printSection("Known Days")

	testCases := []struct {
		query       string
		zman        string
		expected    string
		description string
	}{
		{"date=2024-06-21&lat=31.778&lon=35.2354&elev=754&tz=Asia/Jerusalem", "sunrise", "2024-06-21T05:29:23+03:00", "Jerusalem sunrise, summer solstice"},
		{"date=2024-06-21&lat=31.778&lon=35.2354&elev=754&tz=Asia/Jerusalem", "chatzos", "2024-06-21T12:40:51+03:00", "Jerusalem chatzos"},
		{"date=2024-06-21&lat=31.778&lon=35.2354&elev=754&tz=Asia/Jerusalem", "tzais", "2024-06-21T20:30:04+03:00", "Jerusalem tzais 8.5°"},
	}

	for _, tc := range testCases {
		resp, err := tr.get("/api/v1/zmanim?" + tc.query + "&zmanim=" + tc.zman)
		if err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}

		var data ZmanimResponse
		if err := tr.parseDataAs(resp, &data); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}

		if len(data.Zmanim) == 1 && data.Zmanim[0].Time == tc.expected {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.description, tc.expected))
		} else {
			tr.recordError(tc.description, fmt.Sprintf("Expected %s, got %+v", tc.expected, data.Zmanim))
		}
	}

	// Polar day: no sunrise, chatzos still there
	resp, err := tr.get("/api/v1/zmanim?date=2024-06-21&lat=78&lon=15&tz=Arctic/Longyearbyen&zmanim=sunrise,chatzos")
	if err != nil {
		tr.recordError("Polar day", err.Error())
		return
	}
	var polar ZmanimResponse
	if err := tr.parseDataAs(resp, &polar); err != nil {
		tr.recordError("Polar day", err.Error())
		return
	}
	if len(polar.Zmanim) == 1 && polar.Zmanim[0].Key == "chatzos" {
		tr.recordSuccess("Polar day omits sunrise and keeps chatzos")
	} else {
		tr.recordError("Polar day", fmt.Sprintf("Unexpected zmanim %+v", polar.Zmanim))
	}
}

func (tr *TestRunner) testLocations() {
	tr.printSection("Saved Locations")

	resp, err := tr.get("/api/v1/locations")
	if err != nil {
		tr.recordError("Locations", err.Error())
		return
	}

	var locations []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := tr.parseDataAs(resp, &locations); err != nil {
		tr.recordError("Locations", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("%d saved locations", len(locations)))

	for _, loc := range locations {
		resp, err := tr.get("/api/v1/zmanim?zmanim=sunrise,sunset&location=" + loc.ID)
		if err != nil {
			tr.recordError(loc.Name, err.Error())
			continue
		}
		var data ZmanimResponse
		if err := tr.parseDataAs(resp, &data); err != nil {
			tr.recordError(loc.Name, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s (%s): %d zmanim", loc.Name, data.Location.Timezone, len(data.Zmanim)))
		if tr.verbose {
			tr.printZmanimDetail(&data)
		}
	}
}

func (tr *TestRunner) testDateRange() {
	tr.printSection("Date Range Tests")

	resp, err := tr.get("/api/v1/zmanim/range?start=2025-12-21&end=2025-12-27&zmanim=sunset")
	if err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	var rangeData RangeResponse
	if err := tr.parseDataAs(resp, &rangeData); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	if len(rangeData.Days) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(rangeData.Days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(rangeData.Days)))
	}

	resp2, _ := tr.getRaw("/api/v1/zmanim/range?start=2025-01-01&end=2025-12-31")
	if resp2 != nil && resp2.StatusCode == 400 {
		tr.recordSuccess("Range limit enforced (>31 days rejected)")
	} else {
		tr.recordError("Range limit", "Should reject ranges > 31 days")
	}

	resp3, _ := tr.getRaw("/api/v1/zmanim/range?start=2025-12-31&end=2025-01-01")
	if resp3 != nil && resp3.StatusCode == 400 {
		tr.recordSuccess("Invalid range rejected (end before start)")
	} else {
		tr.recordError("Invalid range", "Should reject end < start")
	}
}

func (tr *TestRunner) testCalendar() {
	tr.printSection("Hebrew Calendar")

	checks := []struct {
		path, field, expected, description string
	}{
		{"/api/v1/hebrew-date?date=2024-10-12&israel=false", "holiday", "Yom Kippur", "Yom Kippur 5785"},
		{"/api/v1/hebrew-date/convert?year=5785&month=7&day=1", "date", "2024-10-03", "Rosh Hashana 5785"},
		{"/api/v1/parsha?date=2024-06-22&israel=false", "parsha", "Beha'aloscha", "Parsha 2024-06-22"},
		{"/api/v1/daf?date=2024-06-21", "bavli", "Bava Metzia 114", "Daf yomi 2024-06-21"},
		{"/api/v1/molad?year=5784&month=13&tz=Asia/Jerusalem&lat=31.778&lon=35.2354", "instant", "2024-03-10T09:52:23+02:00", "Molad Adar II 5784"},
	}

	for _, c := range checks {
		resp, err := tr.get(c.path)
		if err != nil {
			tr.recordError(c.description, err.Error())
			continue
		}
		var data map[string]any
		if err := tr.parseDataAs(resp, &data); err != nil {
			tr.recordError(c.description, err.Error())
			continue
		}
		if got := fmt.Sprint(data[c.field]); got == c.expected {
			tr.recordSuccess(fmt.Sprintf("%s: %s", c.description, got))
		} else {
			tr.recordError(c.description, fmt.Sprintf("Expected %s '%s', got '%s'", c.field, c.expected, got))
		}
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	rejected := []struct {
		path, description string
	}{
		{"/api/v1/zmanim?date=invalid", "Invalid date format rejected"},
		{"/api/v1/zmanim?lat=95&lon=0", "Latitude out of range rejected"},
		{"/api/v1/zmanim?lat=40&lon=-74&tz=Mars/Base", "Unknown timezone rejected"},
		{"/api/v1/zmanim?zmanim=noon", "Unknown zman rejected"},
		{"/api/v1/hebrew-date/convert?year=5785&month=13&day=1", "Adar II in a common year rejected"},
		{"/api/v1/zmanim/range?start=2025-01-01", "Missing end parameter rejected"},
	}

	for _, c := range rejected {
		resp, _ := tr.getRaw(c.path)
		if resp != nil && resp.StatusCode == 400 {
			tr.recordSuccess(c.description)
		} else {
			tr.recordError(c.description, "Should return 400")
		}
		if resp != nil {
			resp.Body.Close()
		}
	}

	if _, err := tr.get("/api/v1/zmanim?date=2024-02-29"); err != nil {
		tr.recordError("Leap year", err.Error())
	} else {
		tr.recordSuccess("Leap year date (2024-02-29) handled")
	}

	if _, err := tr.get("/api/v1/zmanim?date=2030-06-15&lat=-33.87&lon=151.21&tz=Australia/Sydney"); err != nil {
		tr.recordError("Southern hemisphere", err.Error())
	} else {
		tr.recordSuccess("Southern hemisphere future date handled")
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) parseDataAs(resp *APIResponse, target interface{}) error {
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Println(heading("--- " + name + " ---"))
	fmt.Println()
}

func (tr *TestRunner) printZmanimDetail(z *ZmanimResponse) {
	if z == nil || !tr.verbose {
		return
	}
	if z.Day.Holiday != "" {
		fmt.Printf("    Holiday: %s\n", z.Day.Holiday)
	}
	if z.Day.Parsha != "" {
		fmt.Printf("    Parsha: %s\n", z.Day.Parsha)
	}
	for _, zm := range z.Zmanim {
		fmt.Printf("      - %-40s %s\n", zm.Name, zm.Time)
	}
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  %s %s\n", pass("✓"), msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  %s %s\n", fail("✗"), errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println(heading("=============================================="))
	fmt.Println(heading("Summary"))
	fmt.Println(heading("=============================================="))
	fmt.Printf("  Passed: %s\n", pass(tr.successCount))
	fmt.Printf("  Failed: %s\n", fail(tr.errorCount))
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println(pass("All tests passed! ✓"))
	} else {
		fmt.Println(fail(fmt.Sprintf("Tests completed with %d failure(s)", tr.errorCount)))
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show every zman)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Println(fail(fmt.Sprintf("Error: Cannot connect to %s", *baseURL)))
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
