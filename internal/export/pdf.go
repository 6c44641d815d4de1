package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"guestadmin/internal/domain"
	"guestadmin/internal/utils"
)

// BuildOrderPDF renders the printable order summary behind the list
// page's print action.
func BuildOrderPDF(o domain.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Order Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ORDER SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Order Number : %s", safe(o.OrderNumber, "-")),
		fmt.Sprintf("Customer     : %s", safe(o.Customer.DisplayName(), "-")),
		fmt.Sprintf("Email        : %s", safe(o.Customer.Email, "-")),
		fmt.Sprintf("Phone        : %s", safe(o.Customer.Phone, "-")),
		fmt.Sprintf("Status       : %s", o.Status.Label()),
		fmt.Sprintf("Created      : %s", utils.FormatDateTime(o.CreatedAt.Time)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, item := range o.OrderItems {
		desc := fmt.Sprintf("%d) %s x%d @ %s = %s",
			i+1,
			safe(item.Product.Name, "-"),
			item.Quantity,
			utils.FormatDollar(item.Price.Float()),
			utils.FormatDollar(item.Subtotal()),
		)
		pdf.MultiCell(0, 6, desc, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatDollar(o.TotalAmount.Float()))
	pdf.Ln(10)

	if strings.TrimSpace(o.Notes) != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+o.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ORDER_%s.pdf", safeFilenamePart(o.OrderNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
