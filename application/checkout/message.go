package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/currency"
)

// timestampLayout mirrors the id-ID locale, e.g. "15/10/2026 14.30.05".
const timestampLayout = "02/01/2006 15.04.05"

// RenderMessage formats the order the way the merchant reads it in WhatsApp.
// Item lines keep the order's item order.
func RenderMessage(order *model.Order, at time.Time) string {
	var b strings.Builder

	b.WriteString("🍽️ *New Order Received*\n\n")
	fmt.Fprintf(&b, "📋 Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "👤 Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📱 Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "📍 Address: %s\n", order.CustomerAddress)
	fmt.Fprintf(&b, "💳 Payment: %s\n\n", paymentLabel(order.PaymentMethod))
	b.WriteString("🛒 *Order Details:*\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Qty: %d x %s\n", item.Quantity, currency.FormatRupiah(item.Price))
		fmt.Fprintf(&b, "   Subtotal: %s\n", currency.FormatRupiah(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n", currency.FormatRupiah(order.TotalAmount))
	fmt.Fprintf(&b, "\n📅 %s", at.Format(timestampLayout))

	return b.String()
}

func paymentLabel(m constant.PaymentMethod) string {
	if label, ok := constant.PaymentMethodLabel[m]; ok {
		return label
	}
	return string(m)
}

// BuildRedirectURI returns https://wa.me/<number>?text=<message>, with the message
// percent-encoded the way encodeURIComponent does (spaces as %20).
func BuildRedirectURI(number, message string) string {
	return constant.WhatsappBaseURL + number + "?text=" + encodeComponent(message)
}

// QueryEscape output differs from encodeURIComponent only on these.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}
