package main

import (
	"fmt"
	"log"

	"task-manager-go/app/config"
	"task-manager-go/app/controllers"
	"task-manager-go/app/routes"
	"task-manager-go/app/services"

	"github.com/gorilla/mux"
)

func main() {
	// Initialize the in-memory store, seeded with demo tasks
	taskService := services.NewTaskService()

	// Initialize the controller layer
	taskController := controllers.NewTaskController(taskService)

	// Setup HTTP server
	router := mux.NewRouter()
	routes.RegisterRoutes(router, taskController)

	server := config.NewServer(router)

	fmt.Println("Starting Task Manager API on http://" + config.ListenAddr)
	log.Fatal(server.ListenAndServe())
}
