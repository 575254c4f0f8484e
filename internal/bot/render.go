package bot

import (
	"fmt"
	"strings"

	"github.com/mkorobko/orderbot/internal/domain/model"
)

// tokenSep joins the verb and arguments of a callback token.
const tokenSep = "_"

// Callback token verbs understood by the router.
const (
	verbCategory = "cat"
	verbItem     = "item"
	verbQuantity = "qty"
	verbStatus   = "status"
	verbOrders   = "orders"
	verbBack     = "back"

	backToCategoriesToken = "back_to_categories"
)

const (
	welcomeText = `🤖 Welcome to the grocery shop!

🛒 Available commands:
/catalog - Open the product catalog
/orders - Show your orders
/help - Help

Tap the 'Catalog' button to start shopping!`

	helpText = `🤖 Available commands:
/start - Start the bot
/catalog - Open the product catalog
/orders - Show your orders
/help - Show this help

🛒 To place an order:
1. Tap the 'Catalog' button or send /catalog
2. Pick a category
3. Pick an item
4. Enter the quantity`

	catalogMenuLabel = "Catalog"
)

// CategoriesKeyboard renders one button per catalog category.
func CategoriesKeyboard(categories []model.Category) Keyboard {
	kb := make(Keyboard, 0, len(categories))
	for _, c := range categories {
		kb = append(kb, []Button{{
			Label: c.Name,
			Token: verbCategory + tokenSep + c.Key,
		}})
	}
	return kb
}

// ItemsKeyboard renders the products of a category plus a back button.
func ItemsKeyboard(products []model.Product) Keyboard {
	kb := make(Keyboard, 0, len(products)+1)
	for _, p := range products {
		kb = append(kb, []Button{{
			Label: fmt.Sprintf("%s - $%s", p.Name, p.Price.String()),
			Token: verbItem + tokenSep + p.ID,
		}})
	}
	kb = append(kb, []Button{{Label: "🔙 Back to categories", Token: backToCategoriesToken}})
	return kb
}

// QuantityKeyboard renders the digit pad used to compose a quantity.
func QuantityKeyboard(itemID string) Keyboard {
	qty := func(action string) string {
		return verbQuantity + tokenSep + action + tokenSep + itemID
	}
	return Keyboard{
		{{Label: "1", Token: qty("1")}, {Label: "2", Token: qty("2")}, {Label: "3", Token: qty("3")}},
		{{Label: "4", Token: qty("4")}, {Label: "5", Token: qty("5")}, {Label: "6", Token: qty("6")}},
		{{Label: "7", Token: qty("7")}, {Label: "8", Token: qty("8")}, {Label: "9", Token: qty("9")}},
		{{Label: "⌫", Token: qty("backspace")}, {Label: "0", Token: qty("0")}, {Label: "❌", Token: qty("clear")}},
		{{Label: "✅ Confirm", Token: qty("enter")}},
	}
}

// QuantityPrompt renders the digit pad caption with the composed value.
func QuantityPrompt(digits string) string {
	if digits == "" {
		digits = "0"
	}
	return "🔢 Enter the quantity:\n\nCurrent quantity: " + digits
}

// StatusKeyboard renders the tap-to-cycle status button of an order.
func StatusKeyboard(number int) Keyboard {
	return Keyboard{{{
		Label: "🔄 Refresh status",
		Token: fmt.Sprintf("%s%s%d", verbStatus, tokenSep, number),
	}}}
}

// OrdersKeyboard renders the refresh button under the order list.
func OrdersKeyboard() Keyboard {
	return Keyboard{{{Label: "🔄 Refresh status", Token: verbOrders}}}
}

// OrderSummary renders the confirmation text of an order: every line item,
// the total, the creation timestamp and the current status. Pure function
// of the order.
func OrderSummary(o *model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Order №%d placed!\n\n🛒 Items:\n", o.Number)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  • %s (%d) – $%s × %d = $%s\n",
			it.ItemName, it.Quantity, it.UnitPrice.String(), it.Quantity, it.Total.String())
	}
	fmt.Fprintf(&b, "\n💵 Total: $%s\n", o.Total.String())
	fmt.Fprintf(&b, "\n📅 Ordered at: %s\n", displayTimestamp(o))
	fmt.Fprintf(&b, "\nCurrent status: %s\n", o.Status.Label())
	b.WriteString("\nTap \"Refresh status\" to check the current order status.")
	return b.String()
}

// OrdersList renders the short per-user order list, newest first, capped at
// the last five orders.
func OrdersList(orders []model.Order) string {
	var b strings.Builder
	b.WriteString("📋 Your orders:\n\n")

	start := 0
	if len(orders) > 5 {
		start = len(orders) - 5
	}
	recent := orders[start:]

	for i := len(recent) - 1; i >= 0; i-- {
		o := recent[i]
		if len(o.Items) == 1 {
			fmt.Fprintf(&b, "№%d - %s (%d pcs)\n", o.Number, o.Items[0].ItemName, o.Items[0].Quantity)
		} else {
			fmt.Fprintf(&b, "№%d - %d items\n", o.Number, len(o.Items))
		}
		fmt.Fprintf(&b, "Status: %s\n", o.Status.Label())
		fmt.Fprintf(&b, "Total: $%s\n", o.Total.String())
		b.WriteString("➖➖➖\n")
	}
	return b.String()
}

// displayTimestamp shows the creation time at seconds precision with the
// ISO "T" replaced by a space.
func displayTimestamp(o *model.Order) string {
	return strings.Replace(o.CreatedAt.Format("2006-01-02T15:04:05"), "T", " ", 1)
}
