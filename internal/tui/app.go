// ABOUTME: Root bubbletea model for the interactive storefront
// ABOUTME: Routes screens, replays pre-login intents, and drops stale refetches

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/intent"
	"github.com/GKcoding-prog/BiMarket/internal/session"
	"github.com/GKcoding-prog/BiMarket/internal/tui/authform"
	"github.com/GKcoding-prog/BiMarket/internal/tui/cartview"
	"github.com/GKcoding-prog/BiMarket/internal/tui/catalog"
	"github.com/GKcoding-prog/BiMarket/internal/tui/checkout"
	"github.com/GKcoding-prog/BiMarket/internal/tui/menu"
	"github.com/GKcoding-prog/BiMarket/internal/tui/notify"
	"github.com/GKcoding-prog/BiMarket/internal/tui/sellerdash"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// Screen identifies the active TUI screen.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenAuth
	ScreenCatalog
	ScreenWishlist
	ScreenCart
	ScreenCheckout
	ScreenOrders
	ScreenSellerDash
)

// redirectCatalog is the redirect target recorded when a visitor is
// bounced to the auth screen from the catalog.
const redirectCatalog = "catalog"

type sessionEventMsg struct {
	event session.Event
}

type productsLoadedMsg struct {
	seq      int
	products []api.Product
	err      error
}

type categoriesLoadedMsg struct {
	categories []api.Category
	err        error
}

type wishlistLoadedMsg struct {
	seq      int
	wishlist *api.Wishlist
	err      error
}

type cartLoadedMsg struct {
	seq  int
	cart *api.Cart
	err  error
}

type ordersLoadedMsg struct {
	orders []api.Order
	err    error
}

type sellerDataMsg struct {
	summary  *api.DashboardSummary
	products []api.Product
	orders   []api.Order
	err      error
}

// cartMutatedMsg reports the outcome of an add/update/remove; the cart
// snapshot itself arrives via the refetch that follows.
type cartMutatedMsg struct {
	note string
	err  error
}

type wishlistToggledMsg struct {
	product api.Product
	status  *api.WishlistStatus
	err     error
}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	err error
}

type orderPlacedMsg struct {
	order *api.Order
	err   error
}

type logoutDoneMsg struct{}

// App is the root model for the storefront TUI.
type App struct {
	client  *api.Client
	sess    *session.Manager
	intents *intent.Store
	log     zerolog.Logger

	screen Screen
	width  int
	height int

	// Request sequence counters. A response carrying a stale sequence
	// number is discarded so an older refetch can never overwrite a
	// newer snapshot.
	productsSeq int
	wishlistSeq int
	cartSeq     int

	cart      api.Cart
	orders    []api.Order

	menu       *menu.Menu
	auth       *authform.Form
	catalogV   *catalog.Catalog
	wishlistV  *catalog.Catalog
	cartV      *cartview.View
	checkoutW  *checkout.Wizard
	sellerDash *sellerdash.Dashboard
	notes      *notify.Model

	events chan session.Event
}

// New creates the TUI application. The session manager must already be
// restored; its current state seeds the menu.
func New(client *api.Client, sess *session.Manager, intents *intent.Store, log zerolog.Logger) *App {
	a := &App{
		client:  client,
		sess:    sess,
		intents: intents,
		log:     log,
		screen:  ScreenMenu,
		menu:    menu.New(),
		notes:   notify.New(),
		events:  make(chan session.Event, 8),
	}

	sess.Subscribe(func(e session.Event) {
		select {
		case a.events <- e:
		default:
		}
	})

	cur := sess.Current()
	a.menu.SetSession(cur.Authenticated(), cur.Role)

	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.listenSession()}
	if a.sess.Authenticated() {
		cmds = append(cmds, a.loadCart())
	}
	return tea.Batch(cmds...)
}

// listenSession waits for the next session event from the manager.
func (a *App) listenSession() tea.Cmd {
	return func() tea.Msg {
		return sessionEventMsg{event: <-a.events}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.notes.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.catalogV != nil {
			a.catalogV.SetSize(msg.Width, msg.Height)
		}
		if a.wishlistV != nil {
			a.wishlistV.SetSize(msg.Width, msg.Height)
		}
		if a.screen == ScreenAuth || a.screen == ScreenCheckout {
			return a.forwardToScreen(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forwardToScreen(msg)

	case sessionEventMsg:
		return a.handleSessionEvent(msg.event)

	case menu.SelectedMsg:
		return a.handleMenuSelection(msg.Item)

	case authform.LoginSubmittedMsg:
		return a, a.login(msg.Email, msg.Password)

	case authform.RegisterSubmittedMsg:
		return a, a.register(msg.Input)

	case authform.CancelledMsg:
		a.screen = ScreenMenu
		a.auth = nil
		return a, nil

	case loginDoneMsg:
		return a.handleLoginDone(msg)

	case registerDoneMsg:
		if msg.err != nil {
			a.auth = authform.New(authform.ModeRegister)
			a.auth.SetNote("")
			cmd := a.notes.Show(msg.err.Error(), notify.KindError)
			return a, tea.Batch(cmd, a.auth.Init())
		}
		a.auth = authform.New(authform.ModeLogin)
		cmd := a.notes.Show("Account created. Log in to continue.", notify.KindSuccess)
		return a, tea.Batch(cmd, a.auth.Init())

	case catalog.AddToCartMsg:
		return a.handleAddToCart(msg.Product)

	case catalog.ToggleWishlistMsg:
		return a.handleToggleWishlist(msg.Product)

	case catalog.BackMsg:
		a.screen = ScreenMenu
		return a, nil

	case catalog.FilterChangedMsg:
		return a, a.loadProducts(msg.CategoryID)

	case categoriesLoadedMsg:
		// Filter choices are a convenience; a failed fetch just leaves
		// the catalog unfiltered.
		if msg.err == nil && a.catalogV != nil {
			a.catalogV.SetCategories(msg.categories)
		}
		return a, nil

	case productsLoadedMsg:
		if msg.seq != a.productsSeq {
			return a, nil
		}
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		if a.catalogV != nil {
			a.catalogV.SetProducts(msg.products)
		}
		return a, nil

	case wishlistLoadedMsg:
		if msg.seq != a.wishlistSeq {
			return a, nil
		}
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		return a.applyWishlist(msg.wishlist)

	case cartLoadedMsg:
		if msg.seq != a.cartSeq {
			return a, nil
		}
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		a.cart = *msg.cart
		a.menu.SetCartCount(a.cart.Count())
		if a.cartV != nil {
			a.cartV.SetCart(a.cart)
		}
		return a, nil

	case cartMutatedMsg:
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		cmds := []tea.Cmd{a.loadCart()}
		if msg.note != "" {
			cmds = append(cmds, a.notes.Show(msg.note, notify.KindSuccess))
		}
		return a, tea.Batch(cmds...)

	case wishlistToggledMsg:
		return a.handleWishlistToggled(msg)

	case cartview.ChangeQuantityMsg:
		return a, a.updateCartItem(msg.ItemID, msg.Quantity)

	case cartview.RemoveItemMsg:
		return a, a.removeCartItem(msg.ItemID)

	case cartview.CheckoutMsg:
		a.checkoutW = checkout.New(a.cart.Total)
		a.screen = ScreenCheckout
		return a, a.checkoutW.Init()

	case cartview.BackMsg:
		a.screen = ScreenMenu
		return a, nil

	case checkout.CompleteMsg:
		a.checkoutW = nil
		return a, a.placeOrder(msg.Input)

	case checkout.CancelledMsg:
		a.checkoutW = nil
		a.screen = ScreenCart
		return a, nil

	case orderPlacedMsg:
		if msg.err != nil {
			a.screen = ScreenCart
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		a.screen = ScreenOrders
		note := fmt.Sprintf("Order %s placed.", msg.order.ID)
		return a, tea.Batch(
			a.notes.Show(note, notify.KindSuccess),
			a.loadOrders(),
			a.loadCart(),
		)

	case ordersLoadedMsg:
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		a.orders = msg.orders
		return a, nil

	case sellerDataMsg:
		if msg.err != nil {
			return a, a.notes.Show(msg.err.Error(), notify.KindError)
		}
		if a.sellerDash != nil {
			a.sellerDash.SetSummary(msg.summary)
			a.sellerDash.SetProducts(msg.products)
			a.sellerDash.SetOrders(msg.orders)
		}
		return a, nil

	case sellerdash.RefreshMsg:
		return a, a.loadSellerData()

	case sellerdash.BackMsg:
		a.screen = ScreenMenu
		return a, nil

	case logoutDoneMsg:
		// State reset happens via the session event broadcast.
		return a, nil

	case notify.ExpiredMsg:
		return a, nil

	default:
		// huh forms need non-key messages (blink, etc.) forwarded.
		if a.screen == ScreenAuth || a.screen == ScreenCheckout {
			return a.forwardToScreen(msg)
		}
	}

	return a, nil
}

func (a *App) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenMenu:
		if a.menu != nil {
			_, cmd := a.menu.Update(msg)
			return a, cmd
		}
	case ScreenAuth:
		if a.auth != nil {
			model, cmd := a.auth.Update(msg)
			a.auth = model.(*authform.Form)
			return a, cmd
		}
	case ScreenCatalog:
		if a.catalogV != nil {
			model, cmd := a.catalogV.Update(msg)
			a.catalogV = model.(*catalog.Catalog)
			return a, cmd
		}
	case ScreenWishlist:
		if a.wishlistV != nil {
			model, cmd := a.wishlistV.Update(msg)
			a.wishlistV = model.(*catalog.Catalog)
			return a, cmd
		}
	case ScreenCart:
		if a.cartV != nil {
			model, cmd := a.cartV.Update(msg)
			a.cartV = model.(*cartview.View)
			return a, cmd
		}
	case ScreenCheckout:
		if a.checkoutW != nil {
			model, cmd := a.checkoutW.Update(msg)
			a.checkoutW = model.(*checkout.Wizard)
			return a, cmd
		}
	case ScreenOrders:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "b", "q":
				a.screen = ScreenMenu
			case "r":
				return a, a.loadOrders()
			}
		}
	case ScreenSellerDash:
		if a.sellerDash != nil {
			model, cmd := a.sellerDash.Update(msg)
			a.sellerDash = model.(*sellerdash.Dashboard)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleMenuSelection(item menu.Item) (tea.Model, tea.Cmd) {
	switch item {
	case menu.ItemBrowse:
		a.catalogV = catalog.New()
		a.catalogV.SetSize(a.width, a.height)
		a.screen = ScreenCatalog
		cmds := []tea.Cmd{a.loadProducts(""), a.loadCategories()}
		if a.sess.Authenticated() {
			cmds = append(cmds, a.loadWishlist())
		}
		return a, tea.Batch(cmds...)

	case menu.ItemCart:
		if !a.sess.Authenticated() {
			return a.gateToAuth("Log in to see your cart.")
		}
		a.cartV = cartview.New()
		a.cartV.SetCart(a.cart)
		a.screen = ScreenCart
		return a, a.loadCart()

	case menu.ItemWishlist:
		if !a.sess.Authenticated() {
			return a.gateToAuth("Log in to see your wishlist.")
		}
		a.wishlistV = catalog.New()
		a.wishlistV.SetSize(a.width, a.height)
		a.screen = ScreenWishlist
		return a, a.loadWishlist()

	case menu.ItemOrders:
		a.screen = ScreenOrders
		return a, a.loadOrders()

	case menu.ItemSellerDash:
		a.sellerDash = sellerdash.New()
		a.screen = ScreenSellerDash
		return a, a.loadSellerData()

	case menu.ItemLogin:
		a.auth = authform.New(authform.ModeLogin)
		a.screen = ScreenAuth
		return a, a.auth.Init()

	case menu.ItemRegister:
		a.auth = authform.New(authform.ModeRegister)
		a.screen = ScreenAuth
		return a, a.auth.Init()

	case menu.ItemLogout:
		return a, a.logout()

	case menu.ItemQuit:
		return a, tea.Quit
	}

	return a, nil
}

// handleAddToCart adds the product for an authenticated user. For a
// visitor it records the intent and bounces to the auth screen without
// touching the network; the add is replayed after login.
func (a *App) handleAddToCart(p api.Product) (tea.Model, tea.Cmd) {
	if !a.sess.Authenticated() {
		a.intents.SetPendingCartItem(intent.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  1,
		})
		a.intents.SetRedirect(redirectCatalog)
		return a.gateToAuth(fmt.Sprintf("Log in to add %q to your cart.", p.Name))
	}

	note := fmt.Sprintf("Added %s to cart.", p.Name)
	return a, a.addCartItem(p.ID, 1, note)
}

func (a *App) handleToggleWishlist(p api.Product) (tea.Model, tea.Cmd) {
	if !a.sess.Authenticated() {
		a.intents.SetRedirect(redirectCatalog)
		return a.gateToAuth("Log in to manage your wishlist.")
	}
	return a, a.toggleWishlist(p)
}

func (a *App) handleWishlistToggled(msg wishlistToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return a, a.notes.Show(msg.err.Error(), notify.KindError)
	}

	if a.catalogV != nil {
		a.catalogV.MarkWishlist(msg.status.ProductID, msg.status.InWishlist)
	}

	var cmds []tea.Cmd
	if a.screen == ScreenWishlist {
		// Removal from the wishlist screen needs a refetch to drop the row.
		cmds = append(cmds, a.loadWishlist())
	}

	note := fmt.Sprintf("Added %s to wishlist.", msg.product.Name)
	if !msg.status.InWishlist {
		note = fmt.Sprintf("Removed %s from wishlist.", msg.product.Name)
	}
	cmds = append(cmds, a.notes.Show(note, notify.KindSuccess))
	return a, tea.Batch(cmds...)
}

func (a *App) gateToAuth(note string) (tea.Model, tea.Cmd) {
	a.auth = authform.New(authform.ModeLogin)
	a.auth.SetNote(note)
	a.screen = ScreenAuth
	return a, a.auth.Init()
}

func (a *App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.auth = authform.New(authform.ModeLogin)
		cmd := a.notes.Show(msg.err.Error(), notify.KindError)
		return a, tea.Batch(cmd, a.auth.Init())
	}

	a.auth = nil
	cur := a.sess.Current()
	a.menu.SetSession(cur.Authenticated(), cur.Role)

	cmds := []tea.Cmd{a.loadCart()}

	welcome := "Welcome back."
	if cur.Identity != nil {
		welcome = fmt.Sprintf("Welcome back, %s.", cur.Identity.DisplayName)
	}
	cmds = append(cmds, a.notes.Show(welcome, notify.KindSuccess))

	// Replay the cart add the visitor attempted before logging in.
	if item, ok := a.intents.TakePendingCartItem(); ok {
		note := fmt.Sprintf("Added %s to cart.", item.Name)
		cmds = append(cmds, a.addCartItem(item.ProductID, item.Quantity, note))
	}

	if target, ok := a.intents.TakeRedirect(); ok && target == redirectCatalog {
		a.catalogV = catalog.New()
		a.catalogV.SetSize(a.width, a.height)
		a.screen = ScreenCatalog
		cmds = append(cmds, a.loadProducts(""), a.loadCategories(), a.loadWishlist())
	} else {
		a.screen = ScreenMenu
	}

	return a, tea.Batch(cmds...)
}

// handleSessionEvent reflects external session changes. A reset drops
// every piece of identity-derived state in one place.
func (a *App) handleSessionEvent(e session.Event) (tea.Model, tea.Cmd) {
	a.log.Debug().
		Bool("authenticated", e.Session.Authenticated()).
		Bool("reset", e.Kind == session.EventReset).
		Msg("session event")

	a.menu.SetSession(e.Session.Authenticated(), e.Session.Role)

	if e.Kind == session.EventReset {
		a.cart = api.Cart{}
		a.orders = nil
		a.cartV = nil
		a.wishlistV = nil
		a.checkoutW = nil
		a.sellerDash = nil
		if a.catalogV != nil {
			a.catalogV.SetWishlist(nil)
		}
		a.menu.SetCartCount(0)
		a.screen = ScreenMenu
		return a, tea.Batch(
			a.notes.Show("Logged out.", notify.KindInfo),
			a.listenSession(),
		)
	}

	return a, a.listenSession()
}

func (a *App) applyWishlist(w *api.Wishlist) (tea.Model, tea.Cmd) {
	ids := make([]string, 0, len(w.Products))
	for _, p := range w.Products {
		ids = append(ids, p.ID)
	}
	if a.catalogV != nil {
		a.catalogV.SetWishlist(ids)
	}
	if a.wishlistV != nil {
		a.wishlistV.SetProducts(w.Products)
		a.wishlistV.SetWishlist(ids)
	}
	return a, nil
}

// Commands

func (a *App) loadProducts(categoryID string) tea.Cmd {
	a.productsSeq++
	seq := a.productsSeq
	return func() tea.Msg {
		products, err := a.client.Products(context.Background(), categoryID)
		return productsLoadedMsg{seq: seq, products: products, err: err}
	}
}

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := a.client.Categories(context.Background())
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (a *App) loadWishlist() tea.Cmd {
	a.wishlistSeq++
	seq := a.wishlistSeq
	return func() tea.Msg {
		wl, err := a.client.Wishlist(context.Background())
		return wishlistLoadedMsg{seq: seq, wishlist: wl, err: err}
	}
}

func (a *App) loadCart() tea.Cmd {
	a.cartSeq++
	seq := a.cartSeq
	return func() tea.Msg {
		cart, err := a.client.Cart(context.Background())
		return cartLoadedMsg{seq: seq, cart: cart, err: err}
	}
}

func (a *App) loadOrders() tea.Cmd {
	return func() tea.Msg {
		orders, err := a.client.Orders(context.Background())
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (a *App) loadSellerData() tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.Dashboard(context.Background())
		if err != nil {
			return sellerDataMsg{err: err}
		}
		products, err := a.client.SellerProducts(context.Background())
		if err != nil {
			return sellerDataMsg{err: err}
		}
		orders, err := a.client.SellerOrders(context.Background())
		if err != nil {
			return sellerDataMsg{err: err}
		}
		return sellerDataMsg{summary: summary, products: products, orders: orders}
	}
}

func (a *App) addCartItem(productID string, quantity int, note string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.AddCartItem(context.Background(), productID, quantity)
		return cartMutatedMsg{note: note, err: err}
	}
}

func (a *App) updateCartItem(itemID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.UpdateCartItem(context.Background(), itemID, quantity)
		return cartMutatedMsg{err: err}
	}
}

func (a *App) removeCartItem(itemID string) tea.Cmd {
	return func() tea.Msg {
		err := a.client.RemoveCartItem(context.Background(), itemID)
		return cartMutatedMsg{note: "Item removed.", err: err}
	}
}

func (a *App) toggleWishlist(p api.Product) tea.Cmd {
	return func() tea.Msg {
		status, err := a.client.ToggleWishlist(context.Background(), p.ID)
		return wishlistToggledMsg{product: p, status: status, err: err}
	}
}

func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.sess.Login(context.Background(), email, password)
		return loginDoneMsg{err: err}
	}
}

func (a *App) register(in api.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.sess.Register(context.Background(), in)
		return registerDoneMsg{err: err}
	}
}

func (a *App) logout() tea.Cmd {
	return func() tea.Msg {
		a.sess.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

func (a *App) placeOrder(in api.OrderInput) tea.Cmd {
	return func() tea.Msg {
		order, err := a.client.CreateOrder(context.Background(), in)
		return orderPlacedMsg{order: order, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenAuth:
		if a.auth != nil {
			content = a.auth.View()
		}
	case ScreenCatalog:
		if a.catalogV != nil {
			content = a.catalogV.View()
		}
	case ScreenWishlist:
		content = a.viewWishlist()
	case ScreenCart:
		if a.cartV != nil {
			content = a.cartV.View()
		}
	case ScreenCheckout:
		if a.checkoutW != nil {
			content = a.checkoutW.View()
		}
	case ScreenOrders:
		content = a.viewOrders()
	case ScreenSellerDash:
		if a.sellerDash != nil {
			content = a.sellerDash.View()
		}
	default:
		content = a.menu.View()
	}

	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	if a.notes.Visible() {
		sb.WriteString(a.notes.View())
		sb.WriteString("\n")
	}
	sb.WriteString(content)
	return sb.String()
}

func (a *App) viewWishlist() string {
	if a.wishlistV == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Wishlist"))
	sb.WriteString("\n")
	sb.WriteString(a.wishlistV.View())
	return sb.String()
}

func (a *App) viewOrders() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("My orders"))
	sb.WriteString("\n")

	if len(a.orders) == 0 {
		sb.WriteString(styles.Subtitle.Render("No orders yet."))
	} else {
		for _, o := range a.orders {
			sb.WriteString(fmt.Sprintf("  %-12s %-10s %-12s %s\n",
				o.ID,
				o.Status,
				o.CreatedAt,
				styles.Price.Render(fmt.Sprintf("%.0f FCFA", o.TotalAmount)),
			))
		}
	}

	sb.WriteString(styles.Help.Render("r refresh  b back"))
	return sb.String()
}

func (a *App) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("BiMarket")

	account := ""
	cur := a.sess.Current()
	if cur.Identity != nil {
		account = lipgloss.NewStyle().Foreground(styles.Secondary).Render(cur.Identity.DisplayName)
		if cur.Degraded {
			account += " " + styles.BadgeWarning.Render("offline")
		}
	}

	if account == "" {
		return title
	}
	return title + "  " + account
}

// Run starts the TUI and blocks until it exits.
func Run(client *api.Client, sess *session.Manager, intents *intent.Store, log zerolog.Logger) error {
	app := New(client, sess, intents, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
