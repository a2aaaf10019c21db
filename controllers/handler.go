package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"fashionstore/reports"
	"fashionstore/sales"
	"fashionstore/store"
)

var validate = validator.New()

// Handler carries every dependency the HTTP layer needs. Stores are only
// reached through the injected services and stores, never as globals.
type Handler struct {
	Catalog   *store.CatalogStore
	Customers *store.CustomerStore
	Ledger    *store.SaleLedger
	Session   *store.Session
	Engine    *sales.Engine
	Reports   *reports.Reports
	Log       *logrus.Logger
}

func New(
	catalog *store.CatalogStore,
	customers *store.CustomerStore,
	ledger *store.SaleLedger,
	session *store.Session,
	engine *sales.Engine,
	rep *reports.Reports,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		Catalog:   catalog,
		Customers: customers,
		Ledger:    ledger,
		Session:   session,
		Engine:    engine,
		Reports:   rep,
		Log:       log,
	}
}
