package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	"github.com/BruksfildServices01/service-auto/internal/config"
	"github.com/BruksfildServices01/service-auto/internal/infra/storage"
)

const seedClients = `[
  {"id":"1","nume":"Ionescu","prenume":"Ana","masini":[
    {"serie_sasiu":"ABC123","marca":"Dacia","model":"Logan","an_fabricatie":2019}
  ]},
  {"id":"2","nume":"Popa","masini":[]}
]`

func testConfig() *config.Config {
	return &config.Config{
		ShopTimezone: "UTC",
		Storage: config.StorageConfig{
			ClientsCollection:      "clienti",
			AppointmentsCollection: "programari",
			ClientsReadPolicy:      "strict",
			AppointmentsReadPolicy: "lenient",
		},
		Schedule: config.ScheduleConfig{OpenHour: 8, CloseHour: 17, SlotMinutes: 30},
	}
}

func newTestServer(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	return newTestServerWith(t, seedClients)
}

func newTestServerWith(t *testing.T, clients string) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "clienti", []byte(clients)))

	dispatcher := audit.NewDispatcher(nil, 10)
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	require.NoError(t, RegisterRoutes(r, Dependencies{
		Config: testConfig(),
		Logger: zap.NewNop(),
		Store:  store,
		Audit:  dispatcher,
	}))
	return r, store
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBooking = `{
  "clientId": "1",
  "serieSasiu": "ABC123",
  "actiune": "revizie",
  "interval": {"start": "2024-01-01T09:00:00", "end": "2024-01-01T09:30:00"}
}`

// ======================================================
// APPOINTMENTS
// ======================================================

func TestCreateAppointment_Success(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(r, http.MethodPost, "/programari", validBooking)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"id": 1,
		"clientId": "1",
		"serieSasiu": "ABC123",
		"masina": {"serie_sasiu":"ABC123","marca":"Dacia","model":"Logan","an_fabricatie":2019},
		"actiune": "revizie",
		"interval": {"start":"2024-01-01T09:00:00","end":"2024-01-01T09:30:00"},
		"istoricServicii": []
	}`, w.Body.String())

	list := do(r, http.MethodGet, "/programari", "")
	require.Equal(t, http.StatusOK, list.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0]["id"])
}

func TestCreateAppointment_IDsFollowTheLargest(t *testing.T) {
	r, _ := newTestServer(t)

	for want := 1; want <= 3; want++ {
		w := do(r, http.MethodPost, "/programari", validBooking)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct{ ID int }
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, want, body.ID)
	}
}

func TestCreateAppointment_Failures(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		status  int
		message string
		code    string
	}{
		{
			name:    "unknown client",
			body:    `{"clientId":"99","serieSasiu":"ABC123","actiune":"x","interval":{"start":"2024-01-01T09:00:00","end":"2024-01-01T09:30:00"}}`,
			status:  http.StatusNotFound,
			message: "Clientul nu există.",
			code:    "client_not_found",
		},
		{
			name:    "vehicle of another client",
			body:    `{"clientId":"2","serieSasiu":"ABC123","actiune":"x","interval":{"start":"2024-01-01T09:00:00","end":"2024-01-01T09:30:00"}}`,
			status:  http.StatusNotFound,
			message: "Mașina nu a fost găsită.",
			code:    "vehicle_not_found",
		},
		{
			name:    "missing action",
			body:    `{"clientId":"1","serieSasiu":"ABC123","interval":{"start":"2024-01-01T09:00:00","end":"2024-01-01T09:30:00"}}`,
			status:  http.StatusBadRequest,
			message: "Detaliile programării sunt incomplete.",
			code:    "incomplete_details",
		},
		{
			name:    "before opening",
			body:    `{"clientId":"1","serieSasiu":"ABC123","actiune":"x","interval":{"start":"2024-01-01T07:00:00","end":"2024-01-01T09:00:00"}}`,
			status:  http.StatusBadRequest,
			message: "Intervalul trebuie să fie în intervalul de funcționare 8-17 și să fie un multiplu de 30 de minute.",
			code:    "outside_business_hours",
		},
		{
			name:    "off the half hour",
			body:    `{"clientId":"1","serieSasiu":"ABC123","actiune":"x","interval":{"start":"2024-01-01T09:15:00","end":"2024-01-01T10:00:00"}}`,
			status:  http.StatusBadRequest,
			message: "Intervalul trebuie să fie în intervalul de funcționare 8-17 și să fie un multiplu de 30 de minute.",
			code:    "outside_business_hours",
		},
		{
			name:    "malformed json",
			body:    `{"clientId":`,
			status:  http.StatusBadRequest,
			message: "Cerere invalidă.",
			code:    "invalid_request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, store := newTestServer(t)

			w := do(r, http.MethodPost, "/programari", tc.body)

			require.Equal(t, tc.status, w.Code, w.Body.String())

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["error"])
			assert.Equal(t, tc.code, body["code"])

			_, err := store.Load(context.Background(), "programari")
			assert.ErrorIs(t, err, storage.ErrNotFound, "nothing may be persisted")
		})
	}
}

func TestAppendHistory(t *testing.T) {
	r, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/programari", validBooking).Code)

	w := do(r, http.MethodPost, "/programari/1/istoric",
		`{"primireMasina":"2024-01-01T09:00:00","procesareMasina":"in lucru","durataReparatie":2}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ap struct {
		ID              int               `json:"id"`
		IstoricServicii []json.RawMessage `json:"istoricServicii"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.Equal(t, 1, ap.ID)
	require.Len(t, ap.IstoricServicii, 1)
	assert.JSONEq(t,
		`{"primireMasina":"2024-01-01T09:00:00","procesareMasina":"in lucru","durataReparatie":2}`,
		string(ap.IstoricServicii[0]),
	)

	second := do(r, http.MethodPost, "/programari/1/istoric", `{}`)
	require.Equal(t, http.StatusOK, second.Code)
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &ap))
	assert.Len(t, ap.IstoricServicii, 2)
}

func TestAppendHistory_EmptyBodyAppendsEmptyEvent(t *testing.T) {
	r, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/programari", validBooking).Code)

	w := do(r, http.MethodPost, "/programari/1/istoric", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ap struct {
		IstoricServicii []json.RawMessage `json:"istoricServicii"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	require.Len(t, ap.IstoricServicii, 1)
	assert.JSONEq(t, `{}`, string(ap.IstoricServicii[0]))
}

func TestAppendHistory_UnknownAppointment(t *testing.T) {
	r, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/programari", validBooking).Code)

	// ids must be whole base-10 integers; "1abc" and "1.5" do not address appointment 1
	for _, path := range []string{
		"/programari/7/istoric",
		"/programari/abc/istoric",
		"/programari/1abc/istoric",
		"/programari/1.5/istoric",
	} {
		w := do(r, http.MethodPost, path, `{}`)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t,
			`{"error":"Programarea nu există.","code":"appointment_not_found"}`,
			w.Body.String(), path,
		)
	}
}

// ======================================================
// CLIENTS
// ======================================================

func TestClients_CRUD(t *testing.T) {
	r, _ := newTestServer(t)

	created := do(r, http.MethodPost, "/clienti", `{"id":"x","nume":"Marin","telefon":"0700"}`)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())
	assert.JSONEq(t, `{"id":"3","nume":"Marin","telefon":"0700"}`, created.Body.String())

	updated := do(r, http.MethodPut, "/clienti/3", `{"email":"marin@example.com"}`)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.JSONEq(t,
		`{"id":"3","nume":"Marin","telefon":"0700","email":"marin@example.com"}`,
		updated.Body.String(),
	)

	deleted := do(r, http.MethodDelete, "/clienti/3", "")
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.JSONEq(t, `{"message":"Clientul a fost dezactivat."}`, deleted.Body.String())

	list := do(r, http.MethodGet, "/clienti", "")
	var clients []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &clients))
	assert.Len(t, clients, 2)
}

func TestClients_UnknownMembersSurviveWrites(t *testing.T) {
	const seed = `[
  {"id":"1","nume":"A","adresa":"Str. X","masini":[
    {"serie_sasiu":"ABC123","culoare":"rosu","km":120000,"an_fabricatie":"2019"}
  ]},
  {"id":"2","nume":"B"}
]`
	r, store := newTestServerWith(t, seed)

	w := do(r, http.MethodPut, "/clienti/2", `{"telefon":"07"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	raw, err := store.Load(context.Background(), "clienti")
	require.NoError(t, err)
	assert.JSONEq(t, `[
  {"id":"1","nume":"A","adresa":"Str. X","masini":[
    {"serie_sasiu":"ABC123","culoare":"rosu","km":120000,"an_fabricatie":"2019"}
  ]},
  {"id":"2","nume":"B","telefon":"07"}
]`, string(raw))

	list := do(r, http.MethodGet, "/clienti", "")
	require.Equal(t, http.StatusOK, list.Code)

	created := do(r, http.MethodPost, "/programari", validBooking)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())

	var ap struct {
		Masina json.RawMessage `json:"masina"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &ap))
	assert.JSONEq(t,
		`{"serie_sasiu":"ABC123","culoare":"rosu","km":120000,"an_fabricatie":"2019"}`,
		string(ap.Masina),
	)

	// the appointment collection is re-saved on append; the vehicle copy must survive it
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/programari/1/istoric", `{}`).Code)
	stored := do(r, http.MethodGet, "/programari", "")
	var all []struct {
		Masina json.RawMessage `json:"masina"`
	}
	require.NoError(t, json.Unmarshal(stored.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.JSONEq(t, string(ap.Masina), string(all[0].Masina))
}

func TestClients_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	const body = `{"error":"Clientul nu a fost găsit.","code":"client_not_found"}`

	w := do(r, http.MethodPut, "/clienti/42", `{"nume":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, body, w.Body.String())

	w = do(r, http.MethodDelete, "/clienti/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterRoutes_RejectsUnknownReadPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.ClientsReadPolicy = "sometimes"

	err := RegisterRoutes(gin.New(), Dependencies{
		Config: cfg,
		Logger: zap.NewNop(),
		Store:  storage.NewMemoryStore(),
	})
	assert.Error(t, err)
}
