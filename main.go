package main

import (
	"log"

	"cms-backend/config"
	"cms-backend/database"
	"cms-backend/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitializeMaintenanceScheduler(database.Database.Db, config.AppConfig.ResultSweepSpec)

	app := buildApp(database.Database.Db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
