package routes

import (
	"net/http"
	"task-manager-go/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application, plus the
// envelope-shaped 404/405/500 fallbacks.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController) {
	router.HandleFunc("/", taskController.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", taskController.Health).Methods(http.MethodGet)
	router.HandleFunc("/tasks", taskController.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks", taskController.ClearTasks).Methods(http.MethodDelete)
	router.HandleFunc("/tasks/{taskID}", taskController.GetTask).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", taskController.UpdateTask).Methods(http.MethodPut)
	router.HandleFunc("/tasks/{taskID}", taskController.DeleteTask).Methods(http.MethodDelete)

	router.NotFoundHandler = errorHandler(http.StatusNotFound, "Invalid endpoint")
	router.MethodNotAllowedHandler = errorHandler(http.StatusMethodNotAllowed, "Method not allowed")
	router.Use(recoverMiddleware)
}

func errorHandler(status int, category string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, status, category)
	})
}

// recoverMiddleware turns a handler panic into a generic 500 without
// leaking any detail to the client.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recover() != nil {
				writeError(w, http.StatusInternalServerError, "Server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, category string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"ok":false,"error":"` + category + `"}` + "\n"))
}
