package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/virtualstore/internal/checkout"
	"github.com/nikolayk812/virtualstore/internal/domain"
	"github.com/nikolayk812/virtualstore/internal/port"
	"github.com/nikolayk812/virtualstore/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSession(t *testing.T) port.Checkout {
	t.Helper()

	customer := domain.Customer{Name: gofakeit.Name(), Email: gofakeit.Email()}
	session, err := checkout.NewSession(domain.DefaultCatalog(currency.BRL), customer)
	require.NoError(t, err)

	return session
}

func TestConsole_Run(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantOut   []string
		wantItems int
		wantError error
	}{
		{
			name:    "show products: ok",
			input:   []string{"1", "6"},
			wantOut: []string{"=== Available Products ===", "1. Mouse Gamer", `4. Monitor 24"`, "5. Gamer Chair", "Exiting..."},
		},
		{
			name:      "add product: ok",
			input:     []string{"2", "3", "6"},
			wantOut:   []string{"Enter the number of product to add:", "Headset added on shopping cart."},
			wantItems: 1,
		},
		{
			name:    "add product out of range: invalid option",
			input:   []string{"2", "9", "6"},
			wantOut: []string{"Invalid option."},
		},
		{
			name:    "add product not a number: invalid option",
			input:   []string{"2", "abc", "6"},
			wantOut: []string{"Invalid option."},
		},
		{
			name:    "unknown menu choice: invalid option",
			input:   []string{"42", "6"},
			wantOut: []string{"Invalid option.", "Exiting..."},
		},
		{
			name:    "show empty cart: ok",
			input:   []string{"4", "6"},
			wantOut: []string{"Empty shopping cart!"},
		},
		{
			name:      "show cart: ok",
			input:     []string{"2", "1", "2", "5", "4", "6"},
			wantOut:   []string{"=== Shopping Cart ===", "1. Mouse Gamer", "2. Gamer Chair", "Subtotal:", "Discount:", "Total:"},
			wantItems: 2,
		},
		{
			name:      "remove item: ok",
			input:     []string{"2", "3", "2", "5", "3", "1", "6"},
			wantOut:   []string{"Enter the number of item to remove:", "Headset removed from shopping cart."},
			wantItems: 1,
		},
		{
			name:      "remove out of range: invalid position",
			input:     []string{"2", "3", "3", "2", "6"},
			wantOut:   []string{"Invalid position."},
			wantItems: 1,
		},
		{
			name:    "remove from empty cart: ok",
			input:   []string{"3", "6"},
			wantOut: []string{"Empty shopping cart!"},
		},
		{
			name:    "finish empty order: keeps running",
			input:   []string{"5", "6"},
			wantOut: []string{"Your shopping cart is empty", "Exiting..."},
		},
		{
			name:      "finish order: ok",
			input:     []string{"2", "1", "5"},
			wantOut:   []string{"=== Purchase Order Finished ===", "Client:", "Thanks for the purchase!"},
			wantItems: 1,
		},
		{
			name:    "end of input: exits",
			input:   nil,
			wantOut: []string{"=== MENU ===", "Exiting..."},
		},
		{
			name:    "end of input inside prompt: exits",
			input:   []string{"2"},
			wantOut: []string{"Enter the number of product to add:", "Exiting..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession(t)
			in := strings.NewReader(strings.Join(tt.input, "\n"))
			var out bytes.Buffer

			console := shell.New(in, &out, language.English, zaptest.NewLogger(t))
			err := console.Run(t.Context(), session)
			require.NoError(t, err)

			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			assert.Len(t, session.Cart().Items, tt.wantItems)
		})
	}
}

func TestConsole_RunFinishSummary(t *testing.T) {
	session := newSession(t)
	input := strings.Join([]string{"2", "1", "2", "2", "2", "3", "2", "4", "5", "1"}, "\n")
	var out bytes.Buffer

	console := shell.New(strings.NewReader(input), &out, language.English, nil)
	require.NoError(t, console.Run(t.Context(), session))

	got := out.String()
	assert.Contains(t, got, "Order: "+session.OrderID().String())
	assert.Contains(t, got, "Client: "+session.Customer().Name+" ("+session.Customer().Email+")")
	assert.Contains(t, got, "Subtotal: R$ 1,450.00")
	assert.Contains(t, got, "Discount: -R$ 145.00")
	assert.Contains(t, got, "Total: R$ 1,305.00")

	// lines after a successful finish are not read
	assert.NotContains(t, got, "=== Available Products ===")

	_, err := session.Finish()
	require.ErrorIs(t, err, domain.ErrOrderFinalized)
}

func TestConsole_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	console := shell.New(strings.NewReader("1\n"), &bytes.Buffer{}, language.English, nil)
	err := console.Run(ctx, newSession(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestConsole_ReadCustomer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Customer
	}{
		{
			name:  "name and email: ok",
			input: "Ana Souza\nana@example.com\n",
			want:  domain.Customer{Name: "Ana Souza", Email: "ana@example.com"},
		},
		{
			name:  "blank answers: defaults",
			input: "  \n\n",
			want:  domain.Customer{Name: "Client", Email: "email@example.com"},
		},
		{
			name:  "no input: defaults",
			input: "",
			want:  domain.Customer{Name: "Client", Email: "email@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			console := shell.New(strings.NewReader(tt.input), &out, language.English, nil)

			got, err := console.ReadCustomer()
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "=== Welcome to the Virtual Store ===")
		})
	}
}

func TestConsole_SharesInputBetweenPrompts(t *testing.T) {
	input := "Ana\nana@example.com\n2\n1\n5\n"
	var out bytes.Buffer
	console := shell.New(strings.NewReader(input), &out, language.English, nil)

	customer, err := console.ReadCustomer()
	require.NoError(t, err)

	session, err := checkout.NewSession(domain.DefaultCatalog(currency.BRL), customer)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, session.OrderID())

	require.NoError(t, console.Run(t.Context(), session))
	assert.Contains(t, out.String(), "Client: Ana (ana@example.com)")
}

func TestConsole_RunOverlongLine(t *testing.T) {
	long := strings.Repeat("x", 70_000)

	tests := []struct {
		name      string
		input     []string
		wantOut   []string
		wantItems int
	}{
		{
			name:    "overlong menu choice: invalid option",
			input:   []string{long, "1", "6"},
			wantOut: []string{"Invalid option.", "=== Available Products ===", "Exiting..."},
		},
		{
			name:      "overlong product number: invalid option",
			input:     []string{"2", long, "2", "1", "6"},
			wantOut:   []string{"Invalid option.", "Mouse Gamer added on shopping cart."},
			wantItems: 1,
		},
		{
			name:      "overlong digits: invalid option",
			input:     []string{"2", "1", "3", "1" + strings.Repeat(" ", 70_000), "6"},
			wantOut:   []string{"Invalid option.", "Exiting..."},
			wantItems: 1,
		},
		{
			name:    "overlong last line without newline: invalid option",
			input:   []string{long},
			wantOut: []string{"Invalid option.", "Exiting..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession(t)
			var out bytes.Buffer

			console := shell.New(strings.NewReader(strings.Join(tt.input, "\n")), &out, language.English, nil)
			require.NoError(t, console.Run(t.Context(), session))

			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			assert.Len(t, session.Cart().Items, tt.wantItems)
		})
	}
}

func TestConsole_ReadCustomerOverlongLine(t *testing.T) {
	input := strings.Repeat("a", 70_000) + "\nana@example.com\n"
	console := shell.New(strings.NewReader(input), &bytes.Buffer{}, language.English, nil)

	got, err := console.ReadCustomer()
	require.NoError(t, err)

	assert.Equal(t, domain.Customer{Name: "Client", Email: "ana@example.com"}, got)
}
