package routes

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/config"
)

const testSchema = `
	CREATE TABLE user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		google_id TEXT,
		password_hash TEXT,
		picture_url TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE campaign (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE group_question (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		campaign_id INTEGER NOT NULL REFERENCES campaign (id),
		survey_json TEXT NOT NULL,
		data TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE question_type (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	INSERT INTO question_type (name)
	VALUES ('text'), ('radiogroup'), ('checkbox'), ('dropdown');

	CREATE TABLE question (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		title TEXT NOT NULL,
		is_required INTEGER NOT NULL DEFAULT 0,
		choices TEXT,
		visible_if TEXT,
		other_text TEXT,
		group_id INTEGER NOT NULL REFERENCES group_question (id),
		has_other INTEGER NOT NULL DEFAULT 0,
		question_type_id INTEGER NOT NULL REFERENCES question_type (id),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE answer (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id INTEGER NOT NULL REFERENCES question (id),
		question_name TEXT NOT NULL,
		value TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (question_id, question_name)
	);`

// newTestApp opens a fresh in-memory database with the full schema.
func newTestApp(t *testing.T) app.App {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// a single connection keeps every statement on the same in-memory DB
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return app.New(db, config.Config{
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigin:  "http://localhost:5173",
	})
}

func bearerToken(t *testing.T, a app.App) string {
	t.Helper()

	_, token, err := a.TokenAuth.Encode(map[string]interface{}{
		"id":    int64(1),
		"email": "tester@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	e := envelope{}
	// decode from a copy so callers can still inspect w.Body afterwards
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	return e
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()

	e := decodeEnvelope(t, w)
	if err := json.Unmarshal(e.Data, v); err != nil {
		t.Fatalf("Failed to decode envelope data: %v", err)
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

func createTestCampaign(t *testing.T, a app.App, name string) int64 {
	t.Helper()

	var id int64
	err := a.QueryRow(`
		INSERT INTO campaign (name, description, created_at)
		VALUES (?, ?, ?)
		RETURNING id`,
		name, "a test campaign", time.Now(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test campaign: %v", err)
	}
	return id
}

func createTestGroup(t *testing.T, a app.App, campaignId int64) int64 {
	t.Helper()

	var id int64
	err := a.QueryRow(`
		INSERT INTO group_question (name, campaign_id, survey_json, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`,
		"test group", campaignId, `{"pages":[]}`, time.Now(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}
	return id
}

func createTestQuestion(t *testing.T, a app.App, groupId int64, name, typeName string) int64 {
	t.Helper()

	var id int64
	err := a.QueryRow(`
		INSERT INTO question (name, title, group_id, question_type_id, created_at)
		VALUES (?, ?, ?, (SELECT id FROM question_type WHERE name = ?), ?)
		RETURNING id`,
		name, "Question "+name, groupId, typeName, time.Now(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return id
}

// surveyFixture creates a campaign, a group and one question, returning the
// question id.
func surveyFixture(t *testing.T, a app.App, questionName string) int64 {
	t.Helper()

	campaignId := createTestCampaign(t, a, "fixture campaign")
	groupId := createTestGroup(t, a, campaignId)
	return createTestQuestion(t, a, groupId, questionName, "text")
}

func insertTestAnswer(t *testing.T, a app.App, questionId int64, name, value string) {
	t.Helper()

	_, err := a.Exec(`
		INSERT INTO answer (question_id, question_name, value, created_at)
		VALUES (?, ?, ?, ?)`,
		questionId, name, value, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test answer: %v", err)
	}
}

func countRows(t *testing.T, a app.App, table string) int {
	t.Helper()

	var n int
	if err := a.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
