package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"fashionstore/config"
	"fashionstore/controllers"
	"fashionstore/reports"
	"fashionstore/routes"
	"fashionstore/sales"
	"fashionstore/storage"
	"fashionstore/store"
)

func main() {
	config.Load()
	log := config.GetLogger()

	var kv storage.Bucket
	if url := config.DatabaseURL(); url != "" {
		pg, err := storage.NewPostgres(context.Background(), url)
		if err != nil {
			log.Fatalf("connecting to postgres: %v", err)
		}
		defer pg.Close()
		kv = pg
		log.Info("using postgres bucket store")
	} else {
		kv = storage.NewMemory()
		log.Warn("DATABASE_URL not set, using in-memory store; data is lost on restart")
	}

	catalog := store.NewCatalog(kv)
	customers := store.NewCustomers(kv)
	ledger := store.NewLedger(kv)
	session := store.NewSession(kv)

	engine := sales.NewEngine(catalog, customers, ledger, log)
	rep := reports.New(catalog, customers, ledger)

	h := controllers.New(catalog, customers, ledger, session, engine, rep, log)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowOrigins(),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app, h, session)

	log.Fatal(app.Listen(":" + config.Port()))
}
