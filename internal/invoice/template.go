package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/tirupurthreads/storefront-backend/internal/orders"
)

// Data feeds the invoice HTML template.
type Data struct {
	BrandName    string
	BrandTagline string
	Number       string
	PlacedOn     string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	State        string
	Pincode      string
	Status       string
	Payment      string
	Lines        []LineData
	Subtotal     string
	Tax          string
	Total        string
}

// LineData is one rendered invoice row.
type LineData struct {
	Name      string
	Size      string
	Quantity  int
	Price     string
	LineTotal string
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1c1c1c; margin: 48px; }
  .brand { font-size: 26px; font-weight: 700; letter-spacing: 2px; }
  .tagline { color: #777; font-size: 12px; margin-top: 4px; }
  .meta { margin-top: 28px; display: flex; justify-content: space-between; }
  .meta h3 { font-size: 13px; text-transform: uppercase; color: #999; margin-bottom: 6px; }
  .meta p { font-size: 13px; margin: 2px 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 32px; }
  th { text-align: left; font-size: 12px; text-transform: uppercase; color: #999; border-bottom: 1px solid #ddd; padding: 8px 4px; }
  td { font-size: 13px; padding: 10px 4px; border-bottom: 1px solid #f0f0f0; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 24px; width: 280px; margin-left: auto; }
  .totals div { display: flex; justify-content: space-between; font-size: 13px; padding: 4px 0; }
  .totals .grand { font-weight: 700; font-size: 15px; border-top: 1px solid #ddd; padding-top: 8px; }
  .footer { margin-top: 48px; font-size: 11px; color: #aaa; }
</style>
</head>
<body>
  <div class="brand">{{.BrandName}}</div>
  <div class="tagline">{{.BrandTagline}}</div>

  <div class="meta">
    <div>
      <h3>Invoice</h3>
      <p>{{.Number}}</p>
      <p>{{.PlacedOn}}</p>
      <p>Status: {{.Status}}</p>
      <p>Payment: {{.Payment}}</p>
    </div>
    <div>
      <h3>Ship To</h3>
      <p>{{.CustomerName}}</p>
      <p>{{.Address}}</p>
      <p>{{.City}}, {{.State}} {{.Pincode}}</p>
      <p>{{.Email}}</p>
      {{if .Phone}}<p>{{.Phone}}</p>{{end}}
    </div>
  </div>

  <table>
    <thead>
      <tr><th>Item</th><th>Size</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Lines}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Size}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="num">{{.Price}}</td>
        <td class="num">{{.LineTotal}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
    <div><span>Tax (GST)</span><span>{{.Tax}}</span></div>
    <div class="grand"><span>Total</span><span>{{.Total}}</span></div>
  </div>

  <div class="footer">Cash on delivery. Keep this invoice for your records.</div>
</body>
</html>`))

// BuildHTML renders the invoice document for a placed order.
func BuildHTML(brandName, brandTagline string, order *orders.View) (string, error) {
	if order == nil {
		return "", fmt.Errorf("order is required")
	}

	lines := make([]LineData, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, LineData{
			Name:      item.ProductName,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     FormatINR(item.Price),
			LineTotal: FormatINR(item.LineTotal),
		})
	}

	data := Data{
		BrandName:    brandName,
		BrandTagline: brandTagline,
		Number:       order.Number,
		PlacedOn:     order.CreatedAt.Format("2 Jan 2006"),
		CustomerName: strings.TrimSpace(order.FirstName + " " + order.LastName),
		Email:        order.Email,
		Phone:        order.Phone,
		Address:      order.Address,
		City:         order.City,
		State:        order.State,
		Pincode:      order.Pincode,
		Status:       strings.ToUpper(string(order.Status)),
		Payment:      strings.ToUpper(string(order.PaymentMethod)),
		Lines:        lines,
		Subtotal:     FormatINR(order.Subtotal),
		Tax:          FormatINR(order.Tax),
		Total:        FormatINR(order.TotalAmount),
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render invoice template: %w", err)
	}
	return buf.String(), nil
}

// FormatINR renders whole rupees with Indian digit grouping, e.g. 123456
// becomes ₹1,23,456.
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
