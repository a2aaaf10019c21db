package routes

import (
	"github.com/gofiber/fiber/v2"

	"fashionstore/controllers"
	"fashionstore/middleware"
	"fashionstore/store"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler, session *store.Session) {

	// login
	app.Post("/login", h.Login)

	auth := middleware.Protected(session)

	app.Post("/logout", auth, h.Logout)

	// products
	app.Get("/products", auth, h.GetProducts)
	app.Post("/products", auth, h.CreateProduct)
	app.Get("/products/:product_id", auth, h.GetProductByID)
	app.Put("/products/:product_id", auth, h.UpdateProduct)
	app.Delete("/products/:product_id", auth, h.DeleteProduct)

	// customers
	app.Get("/customers", auth, h.GetCustomers)
	app.Post("/customers", auth, h.CreateCustomer)
	app.Get("/customers/:customer_id", auth, h.GetCustomerByID)
	app.Put("/customers/:customer_id", auth, h.UpdateCustomer)
	app.Delete("/customers/:customer_id", auth, h.DeleteCustomer)
	app.Put("/customers/:customer_id/status", auth, h.ToggleCustomerStatus)

	// sales (the ledger is append-only: no update, no delete)
	app.Post("/sales", auth, h.CreateSale)
	app.Get("/sales", auth, h.GetSales)
	app.Get("/sales/:sale_id", auth, h.GetSaleByID)
	app.Get("/sales/:sale_id/receipt", auth, h.GetSaleReceipt)

	// debtors
	app.Get("/debtors", auth, h.GetDebtors)
	app.Get("/debtors/export", auth, h.ExportDebtors)
	app.Get("/debtors/:customer_id/sales", auth, h.GetDebtorSales)
	app.Post("/debtors/:customer_id/settle", auth, h.SettleDebt)

	// reports
	app.Get("/reports", auth, h.GetReport)
	app.Get("/reports/export", auth, h.ExportReport)
	app.Get("/dashboard", auth, h.GetDashboard)
}
