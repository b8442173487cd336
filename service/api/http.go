package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/otellib"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/admin"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

const (
	// CountdownPath is called by the storefront widget
	CountdownPath = "/api/countdown"

	// AppUninstalledPath receives the app/uninstalled webhook
	AppUninstalledPath = "/webhooks/app/uninstalled"

	shopDomainHeader = "X-Shopify-Shop-Domain"
	maxWebhookBody   = 64 << 10
)

// HTTPHandler serves the public endpoints that are not part of the gRPC API
type HTTPHandler struct {
	countdown countdown.IService
	admin     admin.IService
}

// NewHTTPHandler ...
func NewHTTPHandler(countdownService countdown.IService, adminService admin.IService) *HTTPHandler {
	return &HTTPHandler{
		countdown: countdownService,
		admin:     adminService,
	}
}

// Register adds the handlers to the gateway mux
func (h *HTTPHandler) Register(mux *runtime.ServeMux) error {
	err := mux.HandlePath(http.MethodGet, CountdownPath, h.GetCountdown)
	if err != nil {
		return err
	}
	return mux.HandlePath(http.MethodPost, AppUninstalledPath, h.AppUninstalled)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body interface{}) {
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		otellib.Extract(r.Context()).Warn("Write response failed", zap.Error(err))
	}
}

// GetCountdown returns the promotion to show for a product page. The response is readable by any origin.
func (h *HTTPHandler) GetCountdown(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET")
	header.Set("Content-Type", "application/json")

	query := r.URL.Query()
	ctx := r.Context()

	output, err := h.countdown.Select(ctx, countdown.Input{
		Shop:          query.Get("shop"),
		ProductID:     query.Get("productId"),
		CollectionIDs: countdown.ParseCollectionIDs(query.Get("collectionIds")),
	})
	if errors.Is(err, countdown.ErrMissingParameters) {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Missing parameters"})
		return
	}
	if err != nil {
		otellib.WrapError(ctx, err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
		return
	}

	if !output.Active {
		writeJSON(w, r, http.StatusOK, countdownrpc.SelectResponse{})
		return
	}
	writeJSON(w, r, http.StatusOK, countdownrpc.NewSelectResponse(output.Promotion))
}

type appUninstalledPayload struct {
	MyshopifyDomain string `json:"myshopify_domain"`
}

// AppUninstalled deactivates the shop, the shop is read from the payload or the shop domain header
func (h *HTTPHandler) AppUninstalled(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var payload appUninstalledPayload
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWebhookBody)).Decode(&payload)
	if err != nil {
		otellib.Extract(ctx).Warn("Decode app uninstalled payload failed", zap.Error(err))
	}

	shop := strings.TrimSpace(payload.MyshopifyDomain)
	if shop == "" {
		shop = strings.TrimSpace(r.Header.Get(shopDomainHeader))
	}
	if shop == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Missing shop"})
		return
	}

	err = h.admin.UninstallStore(ctx, shop)
	if err != nil {
		otellib.WrapError(ctx, err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
		return
	}

	otellib.Extract(ctx).Info("App uninstalled", zap.String("shop", shop))
	writeJSON(w, r, http.StatusOK, struct{}{})
}
