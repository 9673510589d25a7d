// Package placeholder holds the fixed rows the seed command writes.
package placeholder

import (
	"time"

	"github.com/google/uuid"

	"dashboard_seed/internal/models"
)

// Fixtures is the full set of rows for one seeding run.
type Fixtures struct {
	Users     []models.User
	Customers []models.Customer
	Invoices  []models.Invoice
	Revenue   []models.Revenue
}

// Default returns a fresh copy of the placeholder data set.
func Default() Fixtures {
	return Fixtures{
		Users:     Users(),
		Customers: Customers(),
		Invoices:  Invoices(),
		Revenue:   Revenue(),
	}
}

var (
	evilRabbit      = uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa")
	delbaDeOliveira = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	leeRobinson     = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	michaelNovotny  = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")
	amyBurns        = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	balazsOrban     = uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb")
)

func Users() []models.User {
	return []models.User{
		{
			ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
			Name:     "User",
			Email:    "user@nextmail.com",
			Password: "123456",
		},
	}
}

func Customers() []models.Customer {
	return []models.Customer{
		{ID: evilRabbit, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: delbaDeOliveira, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: leeRobinson, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: michaelNovotny, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: amyBurns, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: balazsOrban, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
}

// Invoices returns the placeholder invoices with their ids already derived.
func Invoices() []models.Invoice {
	invoices := []models.Invoice{
		{CustomerID: evilRabbit, Amount: 15795, Status: models.InvoiceStatusPending, Date: date(2022, time.December, 6)},
		{CustomerID: delbaDeOliveira, Amount: 20348, Status: models.InvoiceStatusPending, Date: date(2022, time.November, 14)},
		{CustomerID: amyBurns, Amount: 3040, Status: models.InvoiceStatusPaid, Date: date(2022, time.October, 29)},
		{CustomerID: michaelNovotny, Amount: 44800, Status: models.InvoiceStatusPaid, Date: date(2023, time.September, 10)},
		{CustomerID: balazsOrban, Amount: 34577, Status: models.InvoiceStatusPending, Date: date(2023, time.August, 5)},
		{CustomerID: leeRobinson, Amount: 54246, Status: models.InvoiceStatusPending, Date: date(2023, time.July, 16)},
		{CustomerID: evilRabbit, Amount: 666, Status: models.InvoiceStatusPending, Date: date(2023, time.June, 27)},
		{CustomerID: michaelNovotny, Amount: 32545, Status: models.InvoiceStatusPaid, Date: date(2023, time.June, 9)},
		{CustomerID: amyBurns, Amount: 1250, Status: models.InvoiceStatusPaid, Date: date(2023, time.June, 17)},
		{CustomerID: balazsOrban, Amount: 8546, Status: models.InvoiceStatusPaid, Date: date(2023, time.June, 7)},
		{CustomerID: delbaDeOliveira, Amount: 500, Status: models.InvoiceStatusPaid, Date: date(2023, time.August, 19)},
		{CustomerID: balazsOrban, Amount: 8945, Status: models.InvoiceStatusPaid, Date: date(2023, time.June, 3)},
		{CustomerID: leeRobinson, Amount: 1000, Status: models.InvoiceStatusPaid, Date: date(2022, time.June, 5)},
	}
	for i := range invoices {
		invoices[i].Prepare()
	}
	return invoices
}

func Revenue() []models.Revenue {
	return []models.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
