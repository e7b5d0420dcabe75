package main

import (
	"context"
	"os"

	"github.com/addressly/address-server/cronJobs"
	"github.com/addressly/address-server/database"
	"github.com/addressly/address-server/dbHelpers"
	"github.com/addressly/address-server/handlers"
	"github.com/addressly/address-server/server"
	"github.com/addressly/address-server/services"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file found, relying on the environment: %v", err)
	}

	db, err := database.Connect(os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		database.ParseSSLMode(os.Getenv("DB_SSL_MODE")))
	if err != nil {
		logrus.Panicf("Failed to connect to database with error: %+v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logrus.Panicf("Failed to create database schema with error: %+v", err)
	}
	logrus.Print("schema ready!!")

	addressRepo := dbHelpers.NewAddressRepo(db)
	relationRepo := dbHelpers.NewUserAddressRepo(db)
	addressService := services.NewAddressService(db, addressRepo, relationRepo)

	if err := cronJobs.InitiateCronJobs(addressRepo, relationRepo); err != nil {
		logrus.Error("error from cron job", err)
	}

	// create server instance
	srv := server.SetupRoutes(handlers.NewAddressHandler(addressService))

	logrus.Print("Server started at ", os.Getenv("SERVER_HOST_PORT"))
	if err := srv.Run(":" + os.Getenv("SERVER_HOST_PORT")); err != nil {
		logrus.Panicf("Failed to run server with error: %+v", err)
	}
}
