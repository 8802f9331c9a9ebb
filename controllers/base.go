package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/handler"
	"github.com/radhian/fuel-station-analytics/infra/cache"
	"github.com/radhian/fuel-station-analytics/infra/db/dao"
	"github.com/radhian/fuel-station-analytics/infra/db/model"
	"github.com/radhian/fuel-station-analytics/middlewares"
	analyticsUsecase "github.com/radhian/fuel-station-analytics/usecase/analytics"
	ingestionUsecase "github.com/radhian/fuel-station-analytics/usecase/ingestion"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", DbName)
		log.Fatal("This is the error:", err)
	} else {
		fmt.Printf("We are connected to the database %s", DbName)
	}

	// Recycle long-lived idle connections.
	a.DB.DB().SetMaxIdleConns(5)
	a.DB.DB().SetMaxOpenConns(20)
	a.DB.DB().SetConnMaxLifetime(time.Hour)

	a.DB.AutoMigrate(
		&model.Transaction{},
		&model.UploadLog{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.CORSMiddleware)
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	d := dao.NewDaoMethod(a.DB)
	statsCache := cache.New(consts.CacheDuration)

	ingestion := ingestionUsecase.NewIngestionUsecase(d)
	analytics := analyticsUsecase.NewAnalyticsUsecase(d, statsCache)

	h := handler.NewFuelStationHandler(ingestion, analytics)
	RegisterFuelStationRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
