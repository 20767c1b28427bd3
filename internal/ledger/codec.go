// Package ledger implements the append-only flat-file stores for completed
// orders and customer feedback, plus the text codec for order records.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

// Order records are one line each:
//
//	<orderId>|<customerName>|<tableId>|<timestamp><tuples>
//
// The timestamp uses ctime's fixed 24-character layout (time.ANSIC) but is
// written without the trailing newline ctime carries, so a record never spans
// lines. The tuple block follows the timestamp with no separator byte; each
// tuple is <itemId>,<itemName>,<quantity>,<lineTotal> terminated by ";".
const timestampLayout = time.ANSIC

var ErrMalformedRecord = errors.New("malformed ledger record")

// Record is a decoded order ledger line.
type Record struct {
	OrderID      int
	CustomerName string
	TableID      int
	CreatedAt    time.Time
	Items        []RecordItem
}

// RecordItem is one decoded item tuple.
type RecordItem struct {
	ItemID    int
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

// EncodeRecord serializes a completed order into its single-line ledger form.
func EncodeRecord(o *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%d|%s", o.ID, o.CustomerName, o.TableID, o.CreatedAt.Format(timestampLayout))
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "%d,%s,%d,%s;", line.Item.ID, line.Item.Name, line.Quantity, line.Total().StringFixed(2))
	}
	return b.String()
}

// DecodeRecord parses one ledger line. A record whose header does not parse is
// rejected with ErrMalformedRecord; malformed item tuples inside an otherwise
// valid record are skipped individually.
func DecodeRecord(line string) (*Record, error) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) != 4 {
		return nil, ErrMalformedRecord
	}

	orderID, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: order id %q", ErrMalformedRecord, parts[0])
	}
	tableID, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: table id %q", ErrMalformedRecord, parts[2])
	}

	rest := parts[3]
	if len(rest) < len(timestampLayout) {
		return nil, fmt.Errorf("%w: truncated timestamp", ErrMalformedRecord)
	}
	createdAt, err := time.Parse(timestampLayout, rest[:len(timestampLayout)])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return &Record{
		OrderID:      orderID,
		CustomerName: parts[1],
		TableID:      tableID,
		CreatedAt:    createdAt,
		Items:        decodeItems(rest[len(timestampLayout):]),
	}, nil
}

// decodeItems walks the ";"-terminated tuple block. Item names may contain
// spaces but never the delimiter characters, so each tuple splits as: first
// "," ends the id, last "," starts the line total, the "," before that starts
// the quantity.
func decodeItems(block string) []RecordItem {
	var items []RecordItem
	for _, seg := range strings.Split(block, ";") {
		if seg == "" {
			continue
		}
		item, ok := decodeItem(seg)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

func decodeItem(seg string) (RecordItem, bool) {
	idStr, rest, found := strings.Cut(seg, ",")
	if !found {
		return RecordItem{}, false
	}
	totalIdx := strings.LastIndex(rest, ",")
	if totalIdx < 0 {
		return RecordItem{}, false
	}
	qtyIdx := strings.LastIndex(rest[:totalIdx], ",")
	if qtyIdx < 0 {
		return RecordItem{}, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return RecordItem{}, false
	}
	qty, err := strconv.Atoi(rest[qtyIdx+1 : totalIdx])
	if err != nil {
		return RecordItem{}, false
	}
	total, err := decimal.NewFromString(rest[totalIdx+1:])
	if err != nil {
		return RecordItem{}, false
	}

	return RecordItem{
		ItemID:    id,
		Name:      rest[:qtyIdx],
		Quantity:  qty,
		LineTotal: total,
	}, true
}

// lineTotals extracts every parseable line-total token from a record line: a
// forward scan over ";"-delimited segments, splitting each on its last ",".
// Malformed tokens are skipped without aborting the scan.
func lineTotals(line string) []decimal.Decimal {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) != 4 {
		return nil
	}
	var totals []decimal.Decimal
	for _, seg := range strings.Split(parts[3], ";") {
		idx := strings.LastIndex(seg, ",")
		if idx < 0 {
			continue
		}
		total, err := decimal.NewFromString(seg[idx+1:])
		if err != nil {
			continue
		}
		totals = append(totals, total)
	}
	return totals
}
