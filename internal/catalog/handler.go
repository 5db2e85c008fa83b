package catalog

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pricescout/pricescout/internal/platform/httpx"
	"github.com/pricescout/pricescout/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches the catalog endpoints to the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/search", h.Search)
	r.Get("/products/filter", h.Filter)
	r.Get("/products/{id}", h.Get)
	r.Get("/stores", h.Stores)
	r.Get("/stores/{store}/products", h.StoreProducts)
	r.Get("/categories", h.Categories)
	r.Get("/categories/{category}/products", h.CategoryProducts)
	r.Get("/statistics", h.Statistics)

	r.Post("/admin/products", h.Create)
	r.Put("/admin/products/{id}", h.Update)
	r.Delete("/admin/products/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	products, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("list products failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.JSON(w, http.StatusOK, ListResponse{
		Data:       products,
		Pagination: shared.Pagination{Limit: limit, Offset: offset, Total: total},
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid product id")
		return
	}
	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "search query must be at least 2 characters")
		return
	}
	limit := shared.ClampLimit(intParam(r, "limit", 50))

	products, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		h.logger.Error("search products failed", slog.Any("error", err), slog.String("query", query))
		httpx.RespondError(w, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.JSON(w, http.StatusOK, SearchResponse{Query: query, Results: products, Count: len(products)})
}

func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	filters := Filters{
		Category:     r.URL.Query().Get("category"),
		Store:        r.URL.Query().Get("store"),
		Availability: r.URL.Query().Get("availability"),
	}

	var parseErr error
	filters.MinPrice = floatParam(r, "min_price", &parseErr)
	filters.MaxPrice = floatParam(r, "max_price", &parseErr)
	filters.MinRating = floatParam(r, "min_rating", &parseErr)
	if parseErr != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", parseErr.Error())
		return
	}

	products, err := h.service.Filter(r.Context(), filters)
	if err != nil {
		h.logger.Error("filter products failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.JSON(w, http.StatusOK, FilterResponse{
		Filters: FilterEcho{
			Category:     filters.Category,
			Store:        filters.Store,
			PriceRange:   []*float64{filters.MinPrice, filters.MaxPrice},
			MinRating:    filters.MinRating,
			Availability: filters.Availability,
		},
		Results: products,
		Count:   len(products),
	})
}

func (h *Handler) Stores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.Stores(r.Context())
	if err != nil {
		h.logger.Error("list stores failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if stores == nil {
		stores = []string{}
	}
	httpx.JSON(w, http.StatusOK, StoresResponse{Stores: stores, Count: len(stores)})
}

func (h *Handler) StoreProducts(w http.ResponseWriter, r *http.Request) {
	store := chi.URLParam(r, "store")
	limit, offset := paginationParams(r)

	products, err := h.service.StoreProducts(r.Context(), store)
	if err != nil {
		h.logger.Error("list store products failed", slog.Any("error", err), slog.String("store", store))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, StoreProductsResponse{
		Store:      store,
		Data:       shared.Page(products, limit, offset),
		Pagination: shared.Pagination{Limit: limit, Offset: offset, Total: len(products)},
	})
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	httpx.JSON(w, http.StatusOK, CategoriesResponse{Categories: categories, Count: len(categories)})
}

func (h *Handler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	limit, offset := paginationParams(r)

	products, err := h.service.CategoryProducts(r.Context(), category)
	if err != nil {
		h.logger.Error("list category products failed", slog.Any("error", err), slog.String("category", category))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CategoryProductsResponse{
		Category:   category,
		Data:       shared.Page(products, limit, offset),
		Pagination: shared.Pagination{Limit: limit, Offset: offset, Total: len(products)},
	})
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		h.logger.Error("catalog statistics failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := validateCreateRequest(req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	id, err := h.service.Ingest(r.Context(), req.Candidate())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, CreatedResponse{Message: "Product created successfully", ProductID: id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid product id")
		return
	}
	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	var params UpdateParams
	if err := httpx.DecodeJSON(r, &params); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}

	changed, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !changed {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "failed to update product")
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Product updated successfully", ProductID: id})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid product id")
		return
	}
	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	removed, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !removed {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "failed to delete product")
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func paginationParams(r *http.Request) (int, int) {
	return shared.ClampLimit(intParam(r, "limit", 50)), shared.ClampOffset(intParam(r, "offset", 0))
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatParam(r *http.Request, name string, parseErr *error) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = fmt.Errorf("invalid %s value %q", name, raw)
		return nil
	}
	return &v
}
