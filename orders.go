package printforge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MyOrders lists the caller's orders.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/api/v1/orders/my", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order. A 401 here is passed through untouched by
// the transport: it can mean the caller may not view this order, not that
// the session ended.
func (c *Client) Order(ctx context.Context, id int64) (*Order, error) {
	order := new(Order)
	if err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%d", id), order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderHistory fetches the status trail of an order. A 404 means the order
// has no history yet and yields an empty slice, not an error.
func (c *Client) OrderHistory(ctx context.Context, id int64) ([]OrderHistory, error) {
	var history []OrderHistory
	err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%d/history", id), &history)
	if IsNotFoundError(err) {
		return []OrderHistory{}, nil
	}
	if err != nil {
		return nil, err
	}
	return history, nil
}

// CreateOrder submits a new order. The customer id comes from the stored
// token's subject claim, the status is the fixed initial one, and the price
// is zero until the backend computes it.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	claims, err := DecodeToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	payload := createOrderPayload{
		CustomerID: claims.UserID(),
		Comment:    req.Comment,
		StatusID:   StatusAccepted,
		TotalPrice: 0,
	}

	order := new(Order)
	if err := c.send(ctx, http.MethodPost, "/api/v1/orders", payload, order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderFile is one attachment for an order upload.
type OrderFile struct {
	Name   string
	Reader io.Reader
}

// UploadOrderFiles attaches files to an order as a multipart request with
// one "files" part per file.
func (c *Client) UploadOrderFiles(ctx context.Context, orderID int64, files []OrderFile) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("read %s: %w", file.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	path := fmt.Sprintf("/api/v1/orders/%d/files", orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, data)
	}
	return nil
}

// OrderStatuses fetches the id-to-description status catalog.
func (c *Client) OrderStatuses(ctx context.Context) ([]OrderStatus, error) {
	var statuses []OrderStatus
	if err := c.get(ctx, "/api/v1/order-status", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
