package main

import (
	"fmt"
	"log"
	"net/http"

	"saisolaredge/config"
	"saisolaredge/db"
	"saisolaredge/db/mongo"
	"saisolaredge/db/postgres"
	"saisolaredge/handlers"
	"saisolaredge/quotation"
	"saisolaredge/repository"
	"saisolaredge/routes"
	"saisolaredge/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var archiveRepo repository.ArchiveRepository
	var profileRepo repository.ProfileRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		archiveRepo = repository.NewPostgresArchiveRepo(pg.Conn)
		profileRepo = repository.NewPostgresProfileRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		archiveRepo = repository.NewMongoArchiveRepo(mg.Client)
		profileRepo = repository.NewMongoProfileRepo(mg.Client)

	case db.Memory:
		archiveRepo = repository.NewMemoryArchiveRepo()
		profileRepo = repository.NewMemoryProfileRepo()

	default:
		panic("DB_TYPE not supported")
	}

	// Live document sessions are always in-memory
	sessions := repository.NewSessionStore()

	// Optional R2 upload for exported PDFs
	var upload handlers.UploadFunc
	if cfg.R2Configured() {
		uploader, err := utils.NewR2Uploader(cfg)
		if err != nil {
			log.Printf("R2 upload disabled: %v", err)
		} else {
			upload = uploader.Upload
		}
	}

	exporter := &quotation.Exporter{Render: utils.GenerateQuotationPDF}

	quoteHandler := &handlers.QuoteHandler{Sessions: sessions, Profiles: profileRepo}
	pdfHandler := &handlers.PDFHandler{
		Sessions: sessions,
		Archive:  archiveRepo,
		Exporter: exporter,
		SavePath: cfg.PDFSavePath,
		Upload:   upload,
	}
	profileHandler := &handlers.ProfileHandler{Repo: profileRepo}

	routes.SetupRoutes(quoteHandler, pdfHandler, profileHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
