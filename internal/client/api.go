package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"hrms-console/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Client performs JSON calls against the HR backend. It keeps no state between calls.
type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Do sends method path?query with body encoded as JSON (when non-nil) and decodes a 2xx
// response into out (when non-nil). Every failure is returned as *Error.
func (c *Client) Do(method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	a.Set(fiber.HeaderXRequestID, uuid.NewString())

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			fiber.ReleaseAgent(a)
			return c.fail(method, path, unexpectedError(fmt.Errorf("encode body: %w", err)))
		}
		a.ContentType(fiber.MIMEApplicationJSON)
		a.Body(payload)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return c.fail(method, path, unexpectedError(fmt.Errorf("parse request: %w", err)))
	}

	// Bytes releases the agent.
	status, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		return c.fail(method, path, networkError(errors.Join(errs...)))
	}

	if status < 200 || status > 299 {
		var eb model.ErrorBody
		// A body that is not {"detail": "<string>"} falls back to the generic message.
		_ = json.Unmarshal(respBody, &eb)
		return c.fail(method, path, serverError(status, eb.Detail))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return c.fail(method, path, unexpectedError(fmt.Errorf("decode response: %w", err)))
	}
	return nil
}

func (c *Client) fail(method, path string, e *Error) *Error {
	if e.Kind == KindServer {
		log.Debugw("backend rejected request", "method", method, "path", path, "status", e.Status, "detail", e.Message)
	} else {
		log.Warnw("backend call failed", "method", method, "path", path, "kind", e.Kind.String(), "err", e.Err)
	}
	return e
}

type validator interface {
	Validate() error
}

// checkAll applies the schema checks to decoded backend payloads.
func checkAll[T validator](items ...T) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return unexpectedError(err)
		}
	}
	return nil
}
