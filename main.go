package main

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/controllers"
	"github.com/profinder-dev/profinder/routes"
	"github.com/profinder-dev/profinder/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(controllers.RegistrationData{})

	// Load environment variables
	_, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create bootstrap super admin
	if err := controllers.CreateSampleSuperAdmin(); err != nil {
		utils.LogError("Failed to create sample super admin: %v", err)
		log.Fatal("Failed to create sample super admin:", err)
	}

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Set up router
	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	// Start server
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
