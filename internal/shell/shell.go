package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/virtualstore/internal/domain"
	"github.com/nikolayk812/virtualstore/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	defaultCustomerName  = "Client"
	defaultCustomerEmail = "email@example.com"
)

const menu = `
=== MENU ===
1 - Show products
2 - Add product to the shopping cart
3 - Remove product from the shopping cart
4 - Show shopping cart
5 - Finish order
6 - Exit`

// maxLineLength bounds a single answer. Longer lines are discarded and
// reported as invalid input.
const maxLineLength = 4096

var (
	errLineTooLong  = errors.New("input line too long")
	errInvalidInput = errors.New("invalid input")
)

// Console is the line-oriented front end of the store.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
	logger  *zap.Logger
}

func New(in io.Reader, out io.Writer, lang language.Tag, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(lang),
		logger:  logger,
	}
}

// ReadCustomer greets the user and asks for a name and an e-mail.
// Blank or unreadable answers fall back to placeholder values.
func (c *Console) ReadCustomer() (domain.Customer, error) {
	c.println("=== Welcome to the Virtual Store ===")

	c.print("Enter your name: ")
	name, err := c.readAnswer(defaultCustomerName)
	if err != nil {
		return domain.Customer{}, err
	}

	c.print("Enter your e-mail: ")
	email, err := c.readAnswer(defaultCustomerEmail)
	if err != nil {
		return domain.Customer{}, err
	}

	return domain.NewCustomer(name, email)
}

func (c *Console) readAnswer(def string) (string, error) {
	line, err := c.readLine()
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, errLineTooLong):
		return def, nil
	case err != nil:
		return "", fmt.Errorf("in.ReadLine: %w", err)
	}

	if strings.TrimSpace(line) == "" {
		return def, nil
	}

	return line, nil
}

// Run drives the menu until the order is finished, the user exits or the
// input ends.
func (c *Console) Run(ctx context.Context, checkout port.Checkout) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(menu)
		c.print(" > ")

		choice, err := c.readLine()
		if errors.Is(err, errLineTooLong) {
			c.println("Invalid option.")
			continue
		}
		if err != nil {
			return c.stop(err)
		}

		c.logger.Debug("menu choice", zap.String("choice", choice))

		switch strings.TrimSpace(choice) {
		case "1":
			c.showProducts(checkout.Products())
		case "2":
			if err := c.addProduct(checkout); err != nil {
				return c.stop(err)
			}
		case "3":
			if err := c.removeItem(checkout); err != nil {
				return c.stop(err)
			}
		case "4":
			c.showCart(checkout.Cart())
		case "5":
			summary, err := checkout.Finish()
			if errors.Is(err, domain.ErrEmptyOrder) {
				c.println("Your shopping cart is empty, add a product before finishing the order.")
				continue
			}
			if err != nil {
				return fmt.Errorf("checkout.Finish: %w", err)
			}
			c.showSummary(summary)
			return nil
		case "6":
			c.println("Exiting...")
			return nil
		default:
			c.println("Invalid option.")
		}
	}
}

// stop ends the loop on a read failure. End of input is a normal exit.
func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		c.println("Exiting...")
		return nil
	}
	return fmt.Errorf("in.ReadLine: %w", err)
}

func (c *Console) addProduct(checkout port.Checkout) error {
	c.println("\nEnter the number of product to add: ")
	c.listItems(checkout.Products())
	c.print(" > ")

	position, err := c.readPosition()
	if errors.Is(err, errInvalidInput) {
		c.println("Invalid option.")
		return nil
	}
	if err != nil {
		return err
	}

	item, err := checkout.AddProduct(position)
	if err != nil {
		c.println("Invalid option.")
		return nil
	}

	c.println(item.Name + " added on shopping cart.")

	return nil
}

func (c *Console) removeItem(checkout port.Checkout) error {
	view := checkout.Cart()
	if view.IsEmpty() {
		c.println("Empty shopping cart!")
		return nil
	}

	c.println("\nEnter the number of item to remove: ")
	c.listItems(view.Items)
	c.print(" > ")

	position, err := c.readPosition()
	if errors.Is(err, errInvalidInput) {
		c.println("Invalid option.")
		return nil
	}
	if err != nil {
		return err
	}

	item, err := checkout.RemoveItem(position)
	if errors.Is(err, domain.ErrInvalidPosition) {
		c.println("Invalid position.")
		return nil
	}
	if err != nil {
		c.println("Item could not be removed: " + err.Error())
		return nil
	}

	c.println(item.Name + " removed from shopping cart.")

	return nil
}

func (c *Console) showProducts(items []domain.Item) {
	c.println("\n=== Available Products ===")
	c.listItems(items)
}

func (c *Console) showCart(view domain.CartView) {
	if view.IsEmpty() {
		c.println("Empty shopping cart!")
		return
	}

	c.println("\n=== Shopping Cart ===")
	c.listItems(view.Items)
	c.showTotals(view.Subtotal, view.Discount, view.Total)
}

func (c *Console) showSummary(summary domain.Summary) {
	c.println("\n=== Purchase Order Finished ===")
	c.println("Order: " + summary.OrderID.String())
	c.println(fmt.Sprintf("Client: %s (%s)", summary.Customer.Name, summary.Customer.Email))
	c.listItems(summary.Items)
	c.showTotals(summary.Subtotal, summary.Discount, summary.Total)
	c.println("Thanks for the purchase!\n")
}

func (c *Console) showTotals(subtotal, discount, total domain.Money) {
	c.println("Subtotal: " + c.formatMoney(subtotal))
	if !discount.IsZero() {
		c.println("Discount: -" + c.formatMoney(discount))
	}
	c.println("Total: " + c.formatMoney(total))
}

func (c *Console) listItems(items []domain.Item) {
	for i, item := range items {
		c.println(fmt.Sprintf("%d. %s - %s", i+1, item.Name, c.formatMoney(item.Price)))
	}
}

// formatMoney renders m with the currency symbol and the digit grouping of
// the console's language. The float conversion is for display only.
func (c *Console) formatMoney(m domain.Money) string {
	return c.printer.Sprintf("%v %v",
		currency.Symbol(m.Currency),
		number.Decimal(m.Amount.InexactFloat64(), number.Scale(2)))
}

func (c *Console) readPosition() (int, error) {
	line, err := c.readLine()
	if errors.Is(err, errLineTooLong) {
		return 0, errInvalidInput
	}
	if err != nil {
		return 0, err
	}

	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errInvalidInput
	}

	return position, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed in full and reported as errLineTooLong.
func (c *Console) readLine() (string, error) {
	var (
		buf     []byte
		read    bool
		tooLong bool
	)

	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			if read {
				break
			}
			return "", err
		}
		read = true

		if tooLong || len(buf)+len(chunk) > maxLineLength {
			tooLong = true
		} else {
			buf = append(buf, chunk...)
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}

	return string(buf), nil
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}
