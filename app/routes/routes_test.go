package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-go/app/controllers"
	"task-manager-go/app/routes"
	"task-manager-go/app/services"

	"github.com/gorilla/mux"
)

func TestPanic_500Envelope(t *testing.T) {
	router := mux.NewRouter()
	routes.RegisterRoutes(router, controllers.NewTaskController(services.NewTaskService()))
	router.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}).Methods(http.MethodGet)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusInternalServerError)
	}

	var out map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode err=%v body=%s", err, rr.Body.String())
	}
	if out["ok"] != false || out["error"] != "Server error" {
		t.Fatalf("body=%v", out)
	}
}
