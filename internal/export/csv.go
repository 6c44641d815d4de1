package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"guestadmin/internal/domain"
	"guestadmin/internal/utils"
)

// CSV exports operate on the already filtered collection. Status and
// category codes are rendered as their labels, the way the tables show
// them.

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportFilename(page string) string {
	return fmt.Sprintf("%s_%s.csv", page, time.Now().Format("2006-01-02"))
}

func OrdersCSV(orders []domain.Order) ([]byte, string, error) {
	header := []string{"Order Number", "Customer", "Email", "Status", "Total", "Created At"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderNumber,
			o.Customer.DisplayName(),
			o.Customer.Email,
			o.Status.Label(),
			utils.FormatMoney(o.TotalAmount.Float()),
			utils.FormatDateTime(o.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("orders"), err
}

func RoomsCSV(rooms []domain.Room) ([]byte, string, error) {
	header := []string{"Room Code", "Category", "Price Per Night", "Capacity", "Reserved", "Active", "Created At"}
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{
			r.RoomCode,
			r.Category.Label(),
			utils.FormatMoney(r.PricePerNight.Float()),
			strconv.Itoa(r.Capacity),
			yesNo(r.Reserved),
			yesNo(r.IsActive),
			utils.FormatDate(r.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("rooms"), err
}

func ProductsCSV(products []domain.Product) ([]byte, string, error) {
	header := []string{"Name", "Product Code", "Categories", "Cost", "Price", "Quantity", "Active", "Created At"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Name,
			p.ProductCode,
			strings.Join(p.CategoryNames(), ", "),
			utils.FormatMoney(p.Cost.Float()),
			utils.FormatMoney(p.Price.Float()),
			strconv.Itoa(p.Quantity),
			yesNo(p.IsActive),
			utils.FormatDate(p.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("products"), err
}

func UsersCSV(users []domain.User) ([]byte, string, error) {
	header := []string{"User ID", "Name", "Email", "Phone", "Role", "Status", "Created At"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.UserID,
			u.Name,
			u.Email,
			u.Phone,
			u.Role.Label(),
			u.Status.Label(),
			utils.FormatDate(u.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("users"), err
}

func CustomersCSV(customers []domain.Customer) ([]byte, string, error) {
	header := []string{"Customer ID", "Name", "Email", "Phone", "Location", "Status", "Created At"}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.CustomerID,
			c.DisplayName(),
			c.Email,
			c.Phone,
			c.Location,
			c.Status.Label(),
			utils.FormatDate(c.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("customers"), err
}

func ReservationsCSV(reservations []domain.Reservation) ([]byte, string, error) {
	header := []string{"Room", "Customer", "Check In", "Check Out", "Guests", "Total", "Status", "Created At"}
	rows := make([][]string, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, []string{
			r.Room.RoomCode,
			r.Customer.DisplayName(),
			r.CheckIn,
			r.CheckOut,
			strconv.Itoa(r.Guests),
			utils.FormatMoney(r.TotalAmount.Float()),
			r.Status.Label(),
			utils.FormatDate(r.CreatedAt.Time),
		})
	}
	data, err := writeCSV(header, rows)
	return data, exportFilename("reservations"), err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
