package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"realty_backend/internal/app/router"
	propertiesadapters "realty_backend/internal/feature/properties/adapters"
	propertieshandler "realty_backend/internal/feature/properties/transport/handler"
	propertiesusecase "realty_backend/internal/feature/properties/usecase"
	usersadapters "realty_backend/internal/feature/users/adapters"
	usershandler "realty_backend/internal/feature/users/transport/handler"
	usersusecase "realty_backend/internal/feature/users/usecase"
	infradb "realty_backend/internal/infrastructure/db"
)

func main() {
	// .envがあれば読み込む（本番はコンテナの環境変数を使う）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment")
	}

	// db
	db := infradb.OpenDB()

	// Repository
	userRepo := usersadapters.NewUserMySQL(db)
	propertyRepo := propertiesadapters.NewPropertyMySQL(db)
	ownerRepo := propertiesadapters.NewOwnerMySQL(db)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	propertyUC := propertiesusecase.NewPropertyUsecase(propertyRepo, ownerRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	propertyH := propertieshandler.NewPropertyHandler(propertyUC)

	// ルータ生成
	router := router.NewRouter(userH, propertyH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
