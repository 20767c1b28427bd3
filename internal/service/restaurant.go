package service

import (
	"log/slog"

	"restaurant-pos/internal/ledger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/repository"
)

// Restaurant is the aggregate root owning the menu catalog, the table
// registry, both ledgers, and the services over them. All mutable state hangs
// off this value; there are no package-level globals.
type Restaurant struct {
	Menu     *MenuService
	Orders   *OrderService
	Reports  *ReportService
	Feedback *FeedbackService
}

// RestaurantParams collects the construction inputs for a Restaurant.
type RestaurantParams struct {
	MenuSeed           []models.MenuItem
	TableCount         int
	OrderLedgerPath    string
	FeedbackLedgerPath string
	Surcharges         []models.Surcharge
}

// NewRestaurant wires the repositories, ledgers, and services together.
func NewRestaurant(p RestaurantParams, log *slog.Logger) *Restaurant {
	menuRepo := repository.NewInMemoryMenuRepository(p.MenuSeed)
	tables := repository.NewTableRegistry(p.TableCount)
	orderLedger := ledger.NewOrderLedger(p.OrderLedgerPath)
	feedbackLedger := ledger.NewFeedbackLedger(p.FeedbackLedgerPath)

	return &Restaurant{
		Menu:     NewMenuService(menuRepo, log),
		Orders:   NewOrderService(menuRepo, tables, orderLedger, p.Surcharges, log),
		Reports:  NewReportService(orderLedger, log),
		Feedback: NewFeedbackService(feedbackLedger, log),
	}
}
