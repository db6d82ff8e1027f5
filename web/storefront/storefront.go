// Package storefront provides the Kurly storefront views, its route table,
// and the embedded templates and assets that render them.
package storefront

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/storefront/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"robots.txt",
	"site.webmanifest",
}

var (
	Home          = web.View{Name: "Home", Template: "home.html", Title: "Home", Bundle: "app"}
	SignUp        = web.View{Name: "SignUp", Template: "sign-up.html", Title: "Sign Up", Bundle: "app"}
	Login         = web.View{Name: "Login", Template: "login.html", Title: "Login", Bundle: "app"}
	Cart          = web.View{Name: "Cart", Template: "cart.html", Title: "Cart", Bundle: "app"}
	Favorite      = web.View{Name: "Favorite", Template: "favorites.html", Title: "Favorites", Bundle: "app"}
	Products      = web.View{Name: "Products", Template: "products.html", Title: "Products", Bundle: "app"}
	Receipt       = web.View{Name: "Receipt", Template: "receipt.html", Title: "Receipt", Bundle: "app"}
	Category      = web.View{Name: "Category", Template: "categories.html", Title: "Categories", Bundle: "app"}
	Support       = web.View{Name: "Support", Template: "support.html", Title: "Support", Bundle: "app"}
	CreateReview  = web.View{Name: "CreateReview", Template: "create-review.html", Title: "Write a Review", Bundle: "app"}
	ReviewList    = web.View{Name: "ReviewList", Template: "review-list.html", Title: "My Reviews", Bundle: "app"}
	ProductReview = web.View{Name: "ProductReview", Template: "product-review.html", Title: "Product Reviews", Bundle: "app"}
	Detail        = web.View{Name: "Detail", Template: "detail.html", Title: "Product Detail", Bundle: "app"}
	NotFound      = web.View{Name: "NotFound", Template: "404.html", Title: "Not Found", Bundle: "app"}
)

// Entries is the storefront route table in registration order.
// /favorites is registered twice; the table collapses identical duplicates.
var Entries = []web.Entry{
	{Path: "/", View: Home},
	{Path: "/sign-up", View: SignUp},
	{Path: "/login", View: Login},
	{Path: "/cart", View: Cart},
	{Path: "/favorites", View: Favorite},
	{Path: "/new-products", View: Products},
	{Path: "/best-products", View: Products},
	{Path: "/products", View: Products},
	{Path: "/favorites", View: Favorite},
	{Path: "/receipt", View: Receipt},
	{Path: "/categories", View: Category},
	{Path: "/support", View: Support},
	{Path: "/create-review", View: CreateReview},
	{Path: "/review-list", View: ReviewList},
	{Path: "/product-review", View: ProductReview},
	{Path: "/detail", View: Detail},
	{Path: "/detail/:id", View: Detail},
}

// Views returns every view the storefront can render, including NotFound.
func Views() []web.View {
	views := make([]web.View, 0, len(Entries)+1)
	for _, e := range Entries {
		views = append(views, e.View)
	}
	return append(views, NotFound)
}

// Observer receives render and miss events from the storefront router.
type Observer interface {
	ViewRendered(view string)
	RouteMissed()
}

type nopObserver struct{}

func (nopObserver) ViewRendered(string) {}
func (nopObserver) RouteMissed()        {}

// Dist returns a handler that serves built assets from the dist directory.
func Dist() http.HandlerFunc {
	return web.DistServer(distFS, "dist", "/dist/")
}

type Handler struct {
	templates *web.TemplateSet
	table     *web.Table
	logger    *slog.Logger
	observer  Observer
}

// NewHandler builds the route table and parses all view templates.
// A nil observer discards events.
func NewHandler(basePath string, policy web.DuplicatePolicy, logger *slog.Logger, observer Observer) (*Handler, error) {
	table, err := web.NewTable(Entries, policy, logger)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		Views(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Handler{
		templates: ts,
		table:     table,
		logger:    logger,
		observer:  observer,
	}, nil
}

// Table returns the storefront route table.
func (h *Handler) Table() *web.Table {
	return h.table
}

// NotFound renders the NotFound view with a 404 status and reports the miss
// to the observer.
func (h *Handler) NotFound() http.HandlerFunc {
	render := h.templates.ErrorHandler(layout, NotFound, http.StatusNotFound)
	return func(w http.ResponseWriter, req *http.Request) {
		h.observer.RouteMissed()
		h.logger.Debug("no route matched", "method", req.Method, "path", req.URL.Path)
		render(w, req)
	}
}

// Router returns a router serving every view in the table, the built
// assets, the root public files and the NotFound view for unmatched paths.
func (h *Handler) Router() (*web.Router, error) {
	r := web.NewRouter()
	r.SetFallback(h.NotFound())

	render := h.templates.ViewHandler(layout, h.logger)
	err := h.table.Mount(r, func(w http.ResponseWriter, req *http.Request, m web.Match) {
		h.observer.ViewRendered(m.Entry.View.Name)
		render(w, req, m)
	})
	if err != nil {
		return nil, err
	}

	r.Handle("GET /dist/", Dist())

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r, nil
}
