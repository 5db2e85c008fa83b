package comparison

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pricescout/pricescout/internal/catalog"
	"github.com/pricescout/pricescout/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches the comparison endpoints to the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/compare", h.CompareByIDs)
	r.Get("/price-comparison", h.Compare)
}

type compareByIDsResponse struct {
	Comparison []catalog.Product `json:"comparison"`
	Count      int               `json:"count"`
}

type compareResponse struct {
	Product    string            `json:"product"`
	Comparison []catalog.Listing `json:"comparison"`
	Count      int               `json:"count"`
	Cheapest   *catalog.Listing  `json:"cheapest"`
}

func (h *Handler) CompareByIDs(w http.ResponseWriter, r *http.Request) {
	rawIDs := r.URL.Query().Get("ids")
	if rawIDs == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "no product ids provided")
		return
	}

	var ids []int64
	for _, raw := range strings.Split(rawIDs, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid product ids")
			return
		}
		ids = append(ids, id)
	}

	products, err := h.service.CompareByIDs(r.Context(), ids)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if len(products) == 0 {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "products not found")
		return
	}
	httpx.JSON(w, http.StatusOK, compareByIDsResponse{Comparison: products, Count: len(products)})
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	productName := strings.TrimSpace(r.URL.Query().Get("product"))
	if productName == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "product name required")
		return
	}

	listings, err := h.service.Compare(r.Context(), productName)
	if err != nil {
		h.logger.Error("price comparison failed", slog.Any("error", err), slog.String("product", productName))
		httpx.RespondError(w, err)
		return
	}
	if len(listings) == 0 {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no products found")
		return
	}
	httpx.JSON(w, http.StatusOK, compareResponse{
		Product:    productName,
		Comparison: listings,
		Count:      len(listings),
		Cheapest:   &listings[0],
	})
}
