package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zapponejosh/zmanim-api/internal/cache"
	"github.com/zapponejosh/zmanim-api/internal/config"
	"github.com/zapponejosh/zmanim-api/internal/database"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

const testAPIKey = "test-key"

type testEnv struct {
	db     *database.DB
	cfg    *config.Config
	router http.Handler
}

// memoryCache is a map backed cache.Cache.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, cache.ErrMiss
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Close() error { return nil }

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, slog.Default())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Port:                  8080,
		Env:                   config.EnvDevelopment,
		DatabasePath:          ":memory:",
		APIKey:                testAPIKey,
		LogLevel:              "error",
		LogFormat:             "text",
		CacheTTL:              time.Hour,
		DefaultLatitude:       31.778,
		DefaultLongitude:      35.2354,
		DefaultElevation:      754,
		DefaultTimezone:       "Asia/Jerusalem",
		InIsrael:              true,
		CandleLightingMinutes: 18,
	}

	handlers, err := NewHandlers(db, &memoryCache{data: map[string][]byte{}}, cfg)
	if err != nil {
		t.Fatalf("new handlers: %v", err)
	}

	return &testEnv{db: db, cfg: cfg, router: SetupRoutes(handlers, cfg)}
}

func (env *testEnv) do(method, path string, body any, apiKey string) *httptest.ResponseRecorder {
	var bodyReader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

type envelope[T any] struct {
	Success bool       `json:"success"`
	Data    T          `json:"data"`
	Error   *ErrorInfo `json:"error"`
}

func parse[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var e envelope[T]
	if err := json.NewDecoder(rr.Body).Decode(&e); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return e
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rr.Code, want, rr.Body.String())
	}
}

func findZman(day zmanimDay, key string) (zmanView, bool) {
	for _, z := range day.Zmanim {
		if z.Key == key {
			return z, true
		}
	}
	return zmanView{}, false
}

// =============================================================================
// Middleware
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/health", nil, "")
	expectStatus(t, rr, http.StatusOK)

	if _, err := uuid.Parse(rr.Header().Get("X-Request-ID")); err != nil {
		t.Errorf("X-Request-ID = %q, want a uuid", rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := setupTest(t)
	id := uuid.NewString()

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", id)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}
}

func TestUnknownRoute(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/nothing", nil, "")
	expectStatus(t, rr, http.StatusNotFound)
	if e := parse[any](t, rr); e.Error == nil || e.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", e.Error)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTest(t)

	rr := env.do("OPTIONS", "/api/v1/locations", nil, "")
	expectStatus(t, rr, http.StatusNoContent)
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}

// =============================================================================
// Zmanim
// =============================================================================

func TestGetZmanim_DefaultLocation(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/zmanim?date=2024-06-21", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Cache") != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", rr.Header().Get("X-Cache"))
	}

	e := parse[zmanimDay](t, rr)
	if !e.Success {
		t.Fatalf("success = false: %+v", e.Error)
	}
	if e.Data.Day.HebrewDate != "15 Sivan 5784" {
		t.Errorf("hebrew date = %q, want 15 Sivan 5784", e.Data.Day.HebrewDate)
	}
	if !e.Data.Location.InIsrael || e.Data.Location.Timezone != "Asia/Jerusalem" {
		t.Errorf("location = %+v", e.Data.Location)
	}

	want := map[string]string{
		"sunrise":           "2024-06-21T05:29:23+03:00",
		"sof_zman_shma_gra": "2024-06-21T09:05:10+03:00",
		"chatzos":           "2024-06-21T12:40:51+03:00",
		"sunset":            "2024-06-21T19:52:31+03:00",
		"tzais":             "2024-06-21T20:30:04+03:00",
	}
	for key, at := range want {
		z, ok := findZman(e.Data, key)
		if !ok {
			t.Errorf("%s missing", key)
			continue
		}
		if z.Time != at {
			t.Errorf("%s = %s, want %s", key, z.Time, at)
		}
	}

	// Same request again is served from the cache.
	rr = env.do("GET", "/api/v1/zmanim?date=2024-06-21", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", rr.Header().Get("X-Cache"))
	}
}

func TestGetZmanim_PolarDay(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/zmanim?date=2024-06-21&lat=78&lon=15&tz=Arctic/Longyearbyen", nil, "")
	expectStatus(t, rr, http.StatusOK)

	day := parse[zmanimDay](t, rr).Data
	for _, key := range []string{"sunrise", "sunset", "sof_zman_shma_gra", "tzais"} {
		if _, ok := findZman(day, key); ok {
			t.Errorf("%s present during polar day", key)
		}
	}
	if _, ok := findZman(day, "chatzos"); !ok {
		t.Error("chatzos missing")
	}
}

func TestGetZmanim_Selection(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/zmanim?date=2024-06-21&zmanim=sunset,sunrise", nil, "")
	expectStatus(t, rr, http.StatusOK)

	day := parse[zmanimDay](t, rr).Data
	if len(day.Zmanim) != 2 || day.Zmanim[0].Key != "sunrise" || day.Zmanim[1].Key != "sunset" {
		t.Errorf("zmanim = %+v, want sunrise then sunset", day.Zmanim)
	}

	rr = env.do("GET", "/api/v1/zmanim?date=2024-06-21&zmanim=sunrise,noon", nil, "")
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestGetZmanim_Hebrew(t *testing.T) {
	env := setupTest(t)

	req := httptest.NewRequest("GET", "/api/v1/zmanim?date=2024-06-21&zmanim=sunrise", nil)
	req.Header.Set("Accept-Language", "he-IL,he;q=0.9,en;q=0.5")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	expectStatus(t, rr, http.StatusOK)

	day := parse[zmanimDay](t, rr).Data
	if len(day.Zmanim) != 1 || day.Zmanim[0].Name != "הנץ החמה" {
		t.Errorf("zmanim = %+v, want Hebrew sunrise", day.Zmanim)
	}

	// lang overrides the header.
	req = httptest.NewRequest("GET", "/api/v1/zmanim?date=2024-06-21&zmanim=sunrise&lang=en", nil)
	req.Header.Set("Accept-Language", "he")
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	day = parse[zmanimDay](t, rr).Data
	if len(day.Zmanim) != 1 || day.Zmanim[0].Name != "Sunrise" {
		t.Errorf("zmanim = %+v, want English sunrise", day.Zmanim)
	}
}

func TestGetZmanim_BadRequests(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name string
		path string
	}{
		{"latitude out of range", "/api/v1/zmanim?lat=95&lon=0"},
		{"missing longitude", "/api/v1/zmanim?lat=40"},
		{"latitude not a number", "/api/v1/zmanim?lat=north&lon=0"},
		{"unknown timezone", "/api/v1/zmanim?lat=40&lon=-74&tz=Mars/Base"},
		{"bad date", "/api/v1/zmanim?date=21-06-2024"},
		{"bad israel flag", "/api/v1/zmanim?israel=sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do("GET", tt.path, nil, "")
			expectStatus(t, rr, http.StatusBadRequest)
			if e := parse[any](t, rr); e.Error == nil || e.Error.Code != "BAD_REQUEST" {
				t.Errorf("error = %+v, want BAD_REQUEST", e.Error)
			}
		})
	}
}

func TestGetZmanimRange(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/zmanim/range?start=2024-06-21&end=2024-06-23&zmanim=sunrise", nil, "")
	expectStatus(t, rr, http.StatusOK)

	e := parse[struct {
		Days []zmanimDay `json:"days"`
	}](t, rr)
	if len(e.Data.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(e.Data.Days))
	}
	if e.Data.Days[2].Date != "2024-06-23" {
		t.Errorf("last day = %s, want 2024-06-23", e.Data.Days[2].Date)
	}

	for _, path := range []string{
		"/api/v1/zmanim/range?start=2024-06-21",
		"/api/v1/zmanim/range?start=2024-06-23&end=2024-06-21",
		"/api/v1/zmanim/range?start=2024-01-01&end=2024-02-15",
	} {
		rr := env.do("GET", path, nil, "")
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rr.Code)
		}
	}
}

// =============================================================================
// Hebrew calendar
// =============================================================================

func TestGetHebrewDate(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/hebrew-date?date=2024-10-12&israel=false", nil, "")
	expectStatus(t, rr, http.StatusOK)

	e := parse[map[string]any](t, rr)
	if e.Data["holiday"] != "Yom Kippur" {
		t.Errorf("holiday = %v, want Yom Kippur", e.Data["holiday"])
	}
	if e.Data["hebrew_date"] != "10 Tishrei 5785" {
		t.Errorf("hebrew_date = %v, want 10 Tishrei 5785", e.Data["hebrew_date"])
	}
}

func TestConvertHebrewDate(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/hebrew-date/convert?year=5785&month=7&day=1", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if e := parse[map[string]any](t, rr); e.Data["date"] != "2024-10-03" {
		t.Errorf("date = %v, want 2024-10-03", e.Data["date"])
	}

	// 5785 has no Adar II.
	rr = env.do("GET", "/api/v1/hebrew-date/convert?year=5785&month=13&day=1", nil, "")
	expectStatus(t, rr, http.StatusBadRequest)

	rr = env.do("GET", "/api/v1/hebrew-date/convert?year=5785&month=7", nil, "")
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestGetParshaAndDaf(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/parsha?date=2024-06-22&israel=false", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if p := parse[map[string]string](t, rr).Data; p["parsha"] != "Beha'aloscha" {
		t.Errorf("parsha = %q, want Beha'aloscha", p["parsha"])
	}

	rr = env.do("GET", "/api/v1/parsha?date=2024-06-21&israel=false", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if p := parse[map[string]string](t, rr).Data; p["parsha"] != "" || p["upcoming"] != "Beha'aloscha" || p["upcoming_date"] != "2024-06-22" {
		t.Errorf("friday parsha = %+v", p)
	}

	rr = env.do("GET", "/api/v1/daf?date=2024-06-21", nil, "")
	expectStatus(t, rr, http.StatusOK)
	d := parse[map[string]string](t, rr).Data
	if d["bavli"] != "Bava Metzia 114" {
		t.Errorf("bavli = %q, want Bava Metzia 114", d["bavli"])
	}
	if d["yerushalmi"] == "" {
		t.Error("yerushalmi missing")
	}
}

func TestGetMolad(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/molad?year=5784&month=13", nil, "")
	expectStatus(t, rr, http.StatusOK)

	m := parse[moladView](t, rr).Data
	if m.Instant != "2024-03-10T09:52:23+02:00" {
		t.Errorf("instant = %s, want 2024-03-10T09:52:23+02:00", m.Instant)
	}
	if m.TchilasKiddushLevana7Days != "2024-03-17T09:52:23+02:00" {
		t.Errorf("tchilas 7 days = %s", m.TchilasKiddushLevana7Days)
	}
	if m.Month != "Adar II" {
		t.Errorf("month = %q, want Adar II", m.Month)
	}

	rr = env.do("GET", "/api/v1/molad?year=5785&month=13", nil, "")
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestGetSeasons(t *testing.T) {
	env := setupTest(t)

	rr := env.do("GET", "/api/v1/seasons?year=2024", nil, "")
	expectStatus(t, rr, http.StatusOK)

	e := parse[struct {
		HebrewYear int `json:"hebrew_year"`
		Seasons    struct {
			JuneSolstice time.Time `json:"june_solstice"`
		} `json:"seasons"`
		Start map[string]string `json:"vesein_tal_umatar_start"`
	}](t, rr)
	if e.Data.HebrewYear != 5785 {
		t.Errorf("hebrew_year = %d, want 5785", e.Data.HebrewYear)
	}
	if e.Data.Start["diaspora"] != "2024-12-05" || e.Data.Start["israel"] != "2024-11-08" {
		t.Errorf("vesein tal umatar = %+v", e.Data.Start)
	}
	if got := e.Data.Seasons.JuneSolstice.UTC().Format("2006-01-02"); got != "2024-06-20" {
		t.Errorf("june solstice = %s, want 2024-06-20", got)
	}

	rr = env.do("GET", "/api/v1/seasons?year=99999", nil, "")
	expectStatus(t, rr, http.StatusBadRequest)
}

// =============================================================================
// Locations
// =============================================================================

func TestLocations_CRUD(t *testing.T) {
	env := setupTest(t)

	body := map[string]any{
		"name":      "New York",
		"latitude":  40.7128,
		"longitude": -74.006,
		"timezone":  "America/New_York",
	}

	rr := env.do("POST", "/api/v1/locations", body, "")
	expectStatus(t, rr, http.StatusUnauthorized)

	rr = env.do("POST", "/api/v1/locations", body, "wrong")
	expectStatus(t, rr, http.StatusUnauthorized)

	rr = env.do("POST", "/api/v1/locations", body, testAPIKey)
	expectStatus(t, rr, http.StatusCreated)
	created := parse[database.Location](t, rr).Data
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("id %q is not a uuid", created.ID)
	}

	rr = env.do("POST", "/api/v1/locations", body, testAPIKey)
	expectStatus(t, rr, http.StatusConflict)

	rr = env.do("GET", "/api/v1/locations", nil, "")
	expectStatus(t, rr, http.StatusOK)
	if list := parse[[]database.Location](t, rr).Data; len(list) != 1 || list[0].Name != "New York" {
		t.Errorf("list = %+v", list)
	}

	rr = env.do("GET", "/api/v1/locations/"+created.ID, nil, "")
	expectStatus(t, rr, http.StatusOK)

	// Saved locations drive the zmanim query, by id or by name.
	for _, ref := range []string{created.ID, "New%20York"} {
		rr = env.do("GET", "/api/v1/zmanim?date=2024-06-21&zmanim=sunrise&location="+ref, nil, "")
		expectStatus(t, rr, http.StatusOK)
		day := parse[zmanimDay](t, rr).Data
		if day.Location.Timezone != "America/New_York" || day.Location.InIsrael {
			t.Errorf("location = %+v", day.Location)
		}
		if len(day.Zmanim) != 1 || !strings.HasSuffix(day.Zmanim[0].Time, "-04:00") {
			t.Errorf("zmanim = %+v, want a New York sunrise", day.Zmanim)
		}
	}

	rr = env.do("DELETE", "/api/v1/locations/"+created.ID, nil, testAPIKey)
	expectStatus(t, rr, http.StatusOK)

	rr = env.do("GET", "/api/v1/locations/"+created.ID, nil, "")
	expectStatus(t, rr, http.StatusNotFound)

	rr = env.do("GET", "/api/v1/zmanim?location=nowhere", nil, "")
	expectStatus(t, rr, http.StatusNotFound)
}

func TestCreateLocation_Invalid(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name string
		body any
	}{
		{"latitude", map[string]any{"name": "X", "latitude": 100, "longitude": 0, "timezone": "UTC"}},
		{"timezone", map[string]any{"name": "X", "latitude": 10, "longitude": 0, "timezone": "Nope/Nope"}},
		{"missing name", map[string]any{"latitude": 10, "longitude": 0, "timezone": "UTC"}},
		{"unknown field", map[string]any{"name": "X", "latitude": 10, "longitude": 0, "timezone": "UTC", "altitude": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do("POST", "/api/v1/locations", tt.body, testAPIKey)
			expectStatus(t, rr, http.StatusBadRequest)
		})
	}
}
