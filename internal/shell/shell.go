// Package shell is the interactive console front end. It owns no state: every
// branch reads input, delegates to a core operation, and prints the result.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/service"
	"restaurant-pos/internal/validation"
)

// Shell runs the interactive menu loop against a Restaurant.
type Shell struct {
	restaurant *service.Restaurant
	gate       auth.Gate
	in         *bufio.Scanner
	out        io.Writer
	log        *slog.Logger
}

// New creates a shell reading from in and printing to out.
func New(restaurant *service.Restaurant, gate auth.Gate, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		restaurant: restaurant,
		gate:       gate,
		in:         bufio.NewScanner(in),
		out:        out,
		log:        log,
	}
}

// Run loops until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "\n==== RESTAURANT SYSTEM ====\n"+
			"1. Show Menu\n"+
			"2. Take Order\n"+
			"3. Show Order History\n"+
			"4. Show Feedback\n"+
			"5. Edit Menu\n"+
			"6. Search Menu Item\n"+
			"7. Summary Report\n"+
			"8. Clear Feedback\n"+
			"9. Exit\n"+
			"Choose an option: ")

		choice, ok := s.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.showMenu(ctx, false)
		case "2":
			s.takeOrder(ctx)
		case "3":
			s.showOrderHistory(ctx)
		case "4":
			s.showFeedback(ctx)
		case "5":
			s.editMenu(ctx)
		case "6":
			s.searchMenu(ctx)
		case "7":
			s.summaryReport(ctx)
		case "8":
			s.clearFeedback(ctx)
		case "9":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice!")
		}
	}
}

func (s *Shell) showMenu(ctx context.Context, includeUnavailable bool) {
	items, err := s.restaurant.Menu.List(ctx, includeUnavailable)
	if err != nil {
		fmt.Fprintf(s.out, "Could not load menu: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "\n------ MENU ------")
	for _, item := range items {
		marker := ""
		if !item.Available {
			marker = "  (unavailable)"
		}
		fmt.Fprintf(s.out, "%d. %-25s Rs. %s%s\n", item.ID, item.Name, item.Price.StringFixed(2), marker)
	}
	fmt.Fprintln(s.out, "------------------")
}

func (s *Shell) takeOrder(ctx context.Context) {
	customer, ok := s.prompt("Enter customer name: ")
	if !ok {
		return
	}

	free := s.restaurant.Orders.FreeTables()
	fmt.Fprintf(s.out, "\nAvailable Tables: %s\n", joinInts(free))

	tableID, ok := s.promptInt("Choose a table number: ")
	if !ok {
		return
	}

	order, err := s.restaurant.Orders.Open(ctx, validation.OpenOrderRequest{
		CustomerName: customer,
		TableID:      tableID,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Table not available or invalid! (%v)\n", err)
		return
	}

	for {
		s.showMenu(ctx, false)
		itemID, ok := s.promptInt("Enter item ID: ")
		if !ok {
			break
		}
		qty, ok := s.promptInt("Enter quantity: ")
		if !ok {
			break
		}
		if err := s.restaurant.Orders.AddItem(ctx, order, itemID, qty); err != nil {
			fmt.Fprintf(s.out, "Cannot add item: %v\n", err)
		}
		if !s.confirm("Add more items? (y/n): ") {
			break
		}
	}

	bill, err := s.restaurant.Orders.Finalize(ctx, order)
	if err != nil {
		fmt.Fprintf(s.out, "Order not completed: %v\n", err)
		s.restaurant.Orders.Abort(ctx, order)
		return
	}

	s.printBill(bill)
	fmt.Fprintln(s.out, "Order placed successfully!")
	s.collectFeedback(ctx, customer)
}

func (s *Shell) printBill(bill models.Bill) {
	fmt.Fprintln(s.out, "\n-------- BILL --------")
	fmt.Fprintf(s.out, "Order ID: %d\nCustomer: %s\nTable: %d\n", bill.OrderID, bill.CustomerName, bill.TableID)
	fmt.Fprintf(s.out, "Date/Time: %s\n", bill.CreatedAt.Format(time.ANSIC))
	fmt.Fprintln(s.out, "----------------------")
	for _, line := range bill.Lines {
		fmt.Fprintf(s.out, "%-20s x%d = Rs. %s\n", line.Name, line.Quantity, line.Total.StringFixed(2))
	}
	fmt.Fprintln(s.out, "----------------------")
	if len(bill.Surcharges) > 0 {
		fmt.Fprintf(s.out, "Subtotal: Rs. %s\n", bill.Subtotal.StringFixed(2))
		for _, sc := range bill.Surcharges {
			fmt.Fprintf(s.out, "%-20s Rs. %s\n", sc.Name, sc.Amount.StringFixed(2))
		}
	}
	fmt.Fprintf(s.out, "Total: Rs. %s\n", bill.Total.StringFixed(2))
	fmt.Fprintln(s.out, "----------------------")
}

func (s *Shell) collectFeedback(ctx context.Context, customer string) {
	if !s.confirm("\nWould you like to leave feedback? (y/n): ") {
		return
	}
	text, ok := s.prompt("Enter your feedback: ")
	if !ok {
		return
	}
	err := s.restaurant.Feedback.Record(ctx, validation.FeedbackRequest{
		CustomerName: customer,
		Text:         text,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Could not save feedback: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Thank you for your feedback!")
}

func (s *Shell) showOrderHistory(ctx context.Context) {
	lines, err := s.restaurant.Reports.History(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Could not read order history: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "\n---- Order History ----")
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) showFeedback(ctx context.Context) {
	lines, err := s.restaurant.Feedback.List(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Could not read feedback: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "\n---- Customer Feedback ----")
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) editMenu(ctx context.Context) {
	fmt.Fprint(s.out, "\n--- Menu Edit ---\n1. Add Item\n2. Edit Item Price\n3. Delete Item\n4. Toggle Availability\nChoose: ")
	choice, ok := s.readLine()
	if !ok {
		return
	}

	switch strings.TrimSpace(choice) {
	case "1":
		name, ok := s.prompt("Enter item name: ")
		if !ok {
			return
		}
		price, ok := s.promptDecimal("Enter item price: ")
		if !ok {
			return
		}
		item, err := s.restaurant.Menu.Add(ctx, validation.AddMenuItemRequest{Name: name, Price: price})
		if err != nil {
			fmt.Fprintf(s.out, "Cannot add item: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Item added with ID %d!\n", item.ID)
	case "2":
		id, ok := s.promptInt("Enter item ID to edit: ")
		if !ok {
			return
		}
		item, err := s.restaurant.Menu.Find(ctx, id)
		if err != nil {
			fmt.Fprintln(s.out, "Item ID not found!")
			return
		}
		fmt.Fprintf(s.out, "Current price of %s: Rs. %s\n", item.Name, item.Price.StringFixed(2))
		price, ok := s.promptDecimal("Enter new price: ")
		if !ok {
			return
		}
		if err := s.restaurant.Menu.SetPrice(ctx, id, price); err != nil {
			fmt.Fprintf(s.out, "Cannot update price: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, "Price updated!")
	case "3":
		id, ok := s.promptInt("Enter item ID to delete: ")
		if !ok {
			return
		}
		if err := s.restaurant.Menu.Remove(ctx, id); err != nil {
			fmt.Fprintf(s.out, "Cannot delete item: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, "Item deleted!")
	case "4":
		id, ok := s.promptInt("Enter item ID to toggle: ")
		if !ok {
			return
		}
		item, err := s.restaurant.Menu.Find(ctx, id)
		if err != nil {
			fmt.Fprintln(s.out, "Item ID not found!")
			return
		}
		if err := s.restaurant.Menu.SetAvailability(ctx, id, !item.Available); err != nil {
			fmt.Fprintf(s.out, "Cannot update availability: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "%s is now available: %t\n", item.Name, !item.Available)
	default:
		fmt.Fprintln(s.out, "Invalid choice!")
	}
}

func (s *Shell) searchMenu(ctx context.Context) {
	keyword, ok := s.prompt("Enter item name to search: ")
	if !ok {
		return
	}
	matches, err := s.restaurant.Menu.Search(ctx, keyword)
	if err != nil {
		fmt.Fprintf(s.out, "Search failed: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No items matched your search.")
		return
	}
	for _, item := range matches {
		fmt.Fprintf(s.out, "%d. %s - Rs. %s\n", item.ID, item.Name, item.Price.StringFixed(2))
	}
}

func (s *Shell) summaryReport(ctx context.Context) {
	summary, err := s.restaurant.Reports.Summary(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Could not compute summary: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "\n--- Summary Report ---\nTotal Orders: %d\nTotal Revenue: Rs. %s\n----------------------\n",
		summary.OrderCount, summary.TotalRevenue.StringFixed(2))
}

func (s *Shell) clearFeedback(ctx context.Context) {
	password, ok := s.prompt("Enter admin password: ")
	if !ok {
		return
	}
	if !s.gate.Authorize(password) {
		fmt.Fprintln(s.out, "Access denied!")
		s.log.Warn("feedback clear denied")
		return
	}
	if err := s.restaurant.Feedback.Clear(ctx); err != nil {
		fmt.Fprintf(s.out, "Could not clear feedback: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Feedback cleared!")
}

// Input helpers. readLine returns ok=false when input has ended.

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	line, ok := s.readLine()
	return strings.TrimSpace(line), ok
}

func (s *Shell) promptInt(label string) (int, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a number.")
		return 0, false
	}
	return n, true
}

func (s *Shell) promptDecimal(label string) (decimal.Decimal, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter an amount.")
		return decimal.Zero, false
	}
	return d, true
}

func (s *Shell) confirm(label string) bool {
	answer, ok := s.prompt(label)
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
