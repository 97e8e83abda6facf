package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danielhkuo/dish4u/admin"
	"github.com/danielhkuo/dish4u/cart"
	"github.com/danielhkuo/dish4u/checkout"
	"github.com/danielhkuo/dish4u/confirmation"
	"github.com/danielhkuo/dish4u/contact"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/orders"
)

// itemList collects repeated -item id:name:price:qty flags
type itemList []models.CartItem

func (l *itemList) String() string {
	parts := make([]string, 0, len(*l))
	for _, it := range *l {
		parts = append(parts, fmt.Sprintf("%s:%s:%g:%d", it.ID, it.Name, it.UnitPrice, it.Quantity))
	}
	return strings.Join(parts, ",")
}

func (l *itemList) Set(value string) error {
	item, err := parseItem(value)
	if err != nil {
		return err
	}
	*l = append(*l, item)
	return nil
}

// parseItem reads id:name:price:qty. The name may itself contain colons.
func parseItem(value string) (models.CartItem, error) {
	first := strings.Index(value, ":")
	last := strings.LastIndex(value, ":")
	if first < 0 || first == last {
		return models.CartItem{}, fmt.Errorf("item %q must be id:name:price:qty", value)
	}
	id := value[:first]
	qtyStr := value[last+1:]
	middle := value[first+1 : last]

	sep := strings.LastIndex(middle, ":")
	if sep < 0 {
		return models.CartItem{}, fmt.Errorf("item %q must be id:name:price:qty", value)
	}
	name, priceStr := middle[:sep], middle[sep+1:]

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("item %q: invalid price %q", value, priceStr)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("item %q: invalid quantity %q", value, qtyStr)
	}
	return models.CartItem{ID: id, Name: name, UnitPrice: price, Quantity: qty}, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	var items itemList
	var form models.DeliveryForm

	fs := newFlagSet("checkout")
	fs.Var(&items, "item", "Cart line id:name:price:qty (repeatable)")
	fs.StringVar(&form.FirstName, "first", "", "First name")
	fs.StringVar(&form.LastName, "last", "", "Last name")
	fs.StringVar(&form.Email, "email", "", "Email")
	fs.StringVar(&form.Address, "address", "", "Delivery address")
	fs.StringVar(&form.Phone, "phone", "", "Phone number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	c := cart.New()
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return fmt.Errorf("%w: %s: %v", errUsage, item.ID, err)
		}
	}

	svc := checkout.NewService(c, orders.NewBuilder(a.cfg.DeliveryFee), a.client, a.store)
	h, err := svc.Submit(ctx, form)
	if err != nil {
		return errors.New(checkout.UserMessage(err))
	}
	fmt.Fprintf(a.out, "Order placed: %s\n\n", h.OrderID)

	// Same process: hand the order over directly
	view, err := confirmation.NewFetcher(a.client, a.store).FetchOrder(ctx, &h)
	if err != nil {
		renderPending(a.out, h.Pending)
		return nil
	}
	renderConfirmation(a.out, view)
	return nil
}

func (a *app) confirm(ctx context.Context, args []string) error {
	var orderID string

	fs := newFlagSet("confirm")
	fs.StringVar(&orderID, "order-id", "", "Order ID (defaults to the last placed order)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var h *checkout.Handoff
	if orderID != "" {
		h = &checkout.Handoff{OrderID: orderID}
	}

	view, err := confirmation.NewFetcher(a.client, a.store).FetchOrder(ctx, h)
	if err != nil {
		var nf *confirmation.ErrNotFound
		if errors.As(err, &nf) {
			return errors.New(nf.Message)
		}
		return err
	}
	renderConfirmation(a.out, view)
	return nil
}

func (a *app) contact(ctx context.Context, args []string) error {
	var msg models.ContactRequest

	fs := newFlagSet("contact")
	fs.StringVar(&msg.Name, "name", "", "Your name")
	fs.StringVar(&msg.Email, "email", "", "Your email")
	fs.StringVar(&msg.Subject, "subject", "", "Subject")
	fs.StringVar(&msg.Message, "message", "", "Message")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	form := contact.NewForm(a.client)
	form.Set(msg)
	err := form.Submit(ctx)
	success, failure := form.Messages()
	if err != nil {
		return errors.New(failure)
	}
	fmt.Fprintln(a.out, success)
	return nil
}

func (a *app) admin(ctx context.Context, sub string, args []string) error {
	switch sub {
	case "login":
		return a.adminLogin(ctx, args)
	case "logout":
		if err := a.store.ClearRole(ctx); err != nil {
			return err
		}
		if err := a.store.ClearAdminToken(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	case "orders":
		return a.adminOrders(ctx)
	case "status":
		return a.adminStatus(ctx, args)
	case "add-item":
		return a.adminAddItem(ctx, args)
	}
	return fmt.Errorf("%w: unknown admin command %q", errUsage, sub)
}

func (a *app) adminLogin(ctx context.Context, args []string) error {
	var token string

	fs := newFlagSet("admin login")
	fs.StringVar(&token, "token", "", "Admin token")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if token == "" {
		token = a.cfg.AdminToken
	}
	if token == "" {
		return fmt.Errorf("%w: admin login needs -token or ADMIN_TOKEN", errUsage)
	}

	if err := a.store.SetAdminToken(ctx, token); err != nil {
		return err
	}
	if err := a.store.SetRole(ctx, models.RoleAdmin); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged in as admin.")
	return nil
}

func (a *app) dashboard(ctx context.Context) (*admin.Dashboard, error) {
	session, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	d, err := admin.NewDashboard(a.client, session)
	if err != nil {
		return nil, fmt.Errorf("%v (run: dish4u admin login -token TOKEN)", err)
	}
	return d, nil
}

func (a *app) adminOrders(ctx context.Context) error {
	d, err := a.dashboard(ctx)
	if err != nil {
		return err
	}
	if err := d.Load(ctx); err != nil {
		return errors.New(d.Banner())
	}
	renderDashboard(a.out, d.Orders(), d.Stats())
	return nil
}

func (a *app) adminStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: admin status ORDER_ID STATUS", errUsage)
	}
	orderID, status := args[0], models.OrderStatus(args[1])

	d, err := a.dashboard(ctx)
	if err != nil {
		return err
	}
	if err := d.UpdateStatus(ctx, orderID, status); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s (one of %v)", errUsage, verr.Message, models.Statuses)
		}
		return errors.New(admin.UpdateFailedMessage)
	}
	fmt.Fprintf(a.out, "Order %s is now %s.\n", orderID, status)
	return nil
}

func (a *app) adminAddItem(ctx context.Context, args []string) error {
	var fields admin.ItemFields
	var imagePath string

	fs := newFlagSet("admin add-item")
	fs.StringVar(&fields.Name, "name", "", "Item name")
	fs.StringVar(&fields.Description, "description", "", "Description")
	fs.StringVar(&fields.Price, "price", "", "Price")
	fs.StringVar(&fields.Category, "category", "", "Category")
	fs.StringVar(&imagePath, "image", "", "Image file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}
	form, err := admin.NewItemForm(a.client, session)
	if err != nil {
		return err
	}
	form.SetFields(fields)

	var size int
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		form.SetImage(filepath.Base(imagePath), data)
		size = len(data)
	}

	if err := form.Submit(ctx); err != nil {
		_, failure := form.Messages()
		return errors.New(failure)
	}
	success, _ := form.Messages()
	fmt.Fprintf(a.out, "%s (%s uploaded)\n", success, humanBytes(size))
	return nil
}
