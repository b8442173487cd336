package widget

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// Request is the context of the product page
type Request struct {
	Shop          string
	ProductID     string
	CollectionIDs []string
}

// Client calls the public selection endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient ...
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

const maxResponseBody = 1 << 20

// Fetch returns false on any failure, the widget is hidden instead of showing partial data
func (c *Client) Fetch(ctx context.Context, req Request) (Selection, bool) {
	query := url.Values{}
	query.Set("shop", req.Shop)
	query.Set("productId", req.ProductID)
	if len(req.CollectionIDs) > 0 {
		query.Set("collectionIds", strings.Join(req.CollectionIDs, ","))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/countdown?"+query.Encode(), nil)
	if err != nil {
		c.logger.Warn("Build countdown request failed", zap.Error(err))
		return Selection{}, false
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("Fetch countdown failed", zap.Error(err))
		return Selection{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Fetch countdown failed", zap.Int("status", resp.StatusCode))
		return Selection{}, false
	}

	var body countdownrpc.SelectResponse
	err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&body)
	if err != nil {
		c.logger.Warn("Decode countdown response failed", zap.Error(err))
		return Selection{}, false
	}

	if !body.Active || body.ID == "" {
		return Selection{}, false
	}

	sel := Selection{
		ID:              body.ID,
		Shop:            req.Shop,
		Mode:            model.TimerMode(body.Type),
		DurationMinutes: body.Duration,
		EndDate:         body.EndDate,
		Description:     body.Description,
	}
	if body.Display != nil {
		sel.Display = *body.Display
	}
	if body.Urgency != nil {
		sel.Urgency = *body.Urgency
	}
	return sel, true
}
