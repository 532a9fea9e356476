package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/humanos-cli/internal/domain"
)

var errMissingRecord = errors.New("response is missing the record")

func (c *Client) FetchStatus(ctx context.Context) (domain.CognitiveStatus, error) {
	var out statusDTO
	if err := c.do(ctx, http.MethodGet, "/dashboard/status", nil, nil, &out, nil); err != nil {
		return domain.CognitiveStatus{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) SetFocus(ctx context.Context, in domain.FocusSetInput) (domain.Focus, error) {
	return c.focusMutation(ctx, "/focus/set", focusSetRequest{
		TaskName:        in.TaskName,
		Duration:        in.Duration,
		SuccessCriteria: in.SuccessCriteria,
	})
}

func (c *Client) LockFocus(ctx context.Context, in domain.FocusLockInput) (domain.Focus, error) {
	return c.focusMutation(ctx, "/focus/lock", focusLockRequest{
		TaskName: in.TaskName,
		Timebox:  in.Timebox,
		Fallback: in.Fallback,
	})
}

func (c *Client) ClearFocus(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/focus/clear", nil, nil, nil, domain.ErrFocusNotFound)
}

func (c *Client) CurrentFocus(ctx context.Context) (domain.Focus, error) {
	var out focusResponse
	if err := c.do(ctx, http.MethodGet, "/focus/current", nil, nil, &out, domain.ErrFocusNotFound); err != nil {
		return domain.Focus{}, err
	}
	if out.Focus == nil {
		return domain.Focus{}, domain.ErrFocusNotFound
	}
	return out.Focus.toDomain(), nil
}

func (c *Client) focusMutation(ctx context.Context, path string, body any) (domain.Focus, error) {
	var out focusResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out, nil); err != nil {
		return domain.Focus{}, err
	}
	if out.Focus == nil {
		return domain.Focus{}, fmt.Errorf("POST %s: %w", path, errMissingRecord)
	}
	return out.Focus.toDomain(), nil
}
