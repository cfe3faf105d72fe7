package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/config"
	"github.com/example/lazzat/internal/handlers"
	"github.com/example/lazzat/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize Telegram service
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	submitter := services.NewOrderSubmitter(db, telegramService)

	branchHandler := handlers.NewBranchHandler(db)
	menuHandler := handlers.NewMenuHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)
	posHandler := handlers.NewPOSHandler(db)
	orderHandler := handlers.NewOrderHandler(db, submitter)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Branches and their dining tables
	branches := api.Group("/branches")
	branches.Get("/", branchHandler.ListBranches)
	branches.Post("/", branchHandler.CreateBranch)
	branches.Get("/:id", branchHandler.GetBranch)
	branches.Put("/:id", branchHandler.UpdateBranch)
	branches.Delete("/:id", branchHandler.DeleteBranch)
	branches.Get("/:id/tables", branchHandler.ListTables)
	branches.Post("/:id/tables", branchHandler.CreateTable)
	branches.Put("/:id/tables/:tableId", branchHandler.UpdateTable)
	branches.Delete("/:id/tables/:tableId", branchHandler.DeleteTable)

	// Menu catalog
	categories := api.Group("/categories")
	categories.Get("/", menuHandler.ListCategories)
	categories.Post("/", menuHandler.CreateCategory)
	categories.Get("/:id", menuHandler.GetCategory)
	categories.Put("/:id", menuHandler.UpdateCategory)
	categories.Delete("/:id", menuHandler.DeleteCategory)

	menuItems := api.Group("/menu-items")
	menuItems.Get("/", menuHandler.ListMenuItems)
	menuItems.Post("/", menuHandler.CreateMenuItem)
	menuItems.Get("/:id", menuHandler.GetMenuItem)
	menuItems.Put("/:id", menuHandler.UpdateMenuItem)
	menuItems.Delete("/:id", menuHandler.DeleteMenuItem)

	modifiers := api.Group("/modifiers")
	modifiers.Get("/", menuHandler.ListModifiers)
	modifiers.Post("/", menuHandler.CreateModifier)
	modifiers.Get("/:id", menuHandler.GetModifier)
	modifiers.Put("/:id", menuHandler.UpdateModifier)
	modifiers.Delete("/:id", menuHandler.DeleteModifier)

	// Staff
	staff := api.Group("/staff")
	staff.Get("/", staffHandler.ListStaff)
	staff.Post("/", staffHandler.CreateStaffMember)
	staff.Get("/:id", staffHandler.GetStaffMember)
	staff.Put("/:id", staffHandler.UpdateStaffMember)
	staff.Delete("/:id", staffHandler.DeleteStaffMember)

	// Customers
	customers := api.Group("/customers")
	customers.Get("/", customerHandler.ListCustomers)
	customers.Post("/", customerHandler.CreateCustomer)
	customers.Get("/:id", customerHandler.GetCustomer)
	customers.Put("/:id", customerHandler.UpdateCustomer)
	customers.Delete("/:id", customerHandler.DeleteCustomer)

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Get("/", inventoryHandler.ListInventory)
	inventory.Post("/", inventoryHandler.CreateInventoryItem)
	inventory.Get("/:id", inventoryHandler.GetInventoryItem)
	inventory.Put("/:id", inventoryHandler.UpdateInventoryItem)
	inventory.Delete("/:id", inventoryHandler.DeleteInventoryItem)
	inventory.Post("/:id/adjust", inventoryHandler.AdjustStock)

	// POS pricing and orders
	pos := api.Group("/pos")
	pos.Post("/quote", posHandler.Quote)

	orders := api.Group("/orders")
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Post("/:id/pay", orderHandler.PayOrder)
}
