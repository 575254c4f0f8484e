package jsonfile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkorobko/orderbot/internal/domain/model"
)

func init() {
	// The order file historically stores prices as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// timestampLayout is the on-disk timestamp form: ISO-8601, seconds precision,
// no zone. Older files may carry fractional seconds.
const timestampLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	timestampLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	time.RFC3339,
}

type lineItemRecord struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category,omitempty"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// orderRecord mirrors one element of the persisted JSON array. Two encodings
// are in circulation: the legacy flat single-item form and the newer form
// with an items array. Both must stay readable indefinitely.
type orderRecord struct {
	OrderNumber int              `json:"order_number"`
	UserID      int64            `json:"user_id"`
	Username    string           `json:"username"`
	Items       []lineItemRecord `json:"items,omitempty"`

	// Legacy flat fields, set only when Items is absent.
	ItemID       string           `json:"item_id,omitempty"`
	ItemName     string           `json:"item_name,omitempty"`
	Category     string           `json:"category,omitempty"`
	Quantity     int              `json:"quantity,omitempty"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty"`

	TotalPrice decimal.Decimal `json:"total_price"`
	Timestamp  string          `json:"timestamp"`
	Status     string          `json:"status"`
}

func encodeOrder(o model.Order) orderRecord {
	rec := orderRecord{
		OrderNumber: o.Number,
		UserID:      o.UserID,
		Username:    o.Username,
		TotalPrice:  o.Total,
		Timestamp:   o.CreatedAt.Format(timestampLayout),
		Status:      string(o.Status),
	}

	if len(o.Items) == 1 {
		// Single-position orders keep the legacy flat encoding so the file
		// stays interchangeable with the previous writer.
		it := o.Items[0]
		price := it.UnitPrice
		rec.ItemID = it.ItemID
		rec.ItemName = it.ItemName
		rec.Category = it.Category
		rec.Quantity = it.Quantity
		rec.PricePerUnit = &price
		return rec
	}

	rec.Items = make([]lineItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		rec.Items = append(rec.Items, lineItemRecord{
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			Category:     it.Category,
			Quantity:     it.Quantity,
			PricePerUnit: it.UnitPrice,
			TotalPrice:   it.Total,
		})
	}
	return rec
}

func decodeOrder(rec orderRecord) (model.Order, error) {
	status, ok := model.ParseStatus(rec.Status)
	if !ok {
		return model.Order{}, fmt.Errorf("order %d: unknown status %q", rec.OrderNumber, rec.Status)
	}

	createdAt, err := parseTimestamp(rec.Timestamp)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %d: %w", rec.OrderNumber, err)
	}

	order := model.Order{
		Number:    rec.OrderNumber,
		UserID:    rec.UserID,
		Username:  rec.Username,
		Total:     rec.TotalPrice,
		CreatedAt: createdAt,
		Status:    status,
	}

	if len(rec.Items) > 0 {
		order.Items = make([]model.LineItem, 0, len(rec.Items))
		for _, it := range rec.Items {
			order.Items = append(order.Items, model.LineItem{
				ItemID:    it.ItemID,
				ItemName:  it.ItemName,
				Category:  it.Category,
				Quantity:  it.Quantity,
				UnitPrice: it.PricePerUnit,
				Total:     it.TotalPrice,
			})
		}
		return order, nil
	}

	unitPrice := decimal.Zero
	if rec.PricePerUnit != nil {
		unitPrice = *rec.PricePerUnit
	}
	order.Items = []model.LineItem{{
		ItemID:    rec.ItemID,
		ItemName:  rec.ItemName,
		Category:  rec.Category,
		Quantity:  rec.Quantity,
		UnitPrice: unitPrice,
		Total:     rec.TotalPrice,
	}}
	return order, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
