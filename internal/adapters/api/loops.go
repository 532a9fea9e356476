package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnema/humanos-cli/internal/domain"
)

func (c *Client) AuthorizeLoop(ctx context.Context, in domain.LoopAuthorizeInput) (domain.Loop, error) {
	var out loopResponse
	err := c.do(ctx, http.MethodPost, "/loop/authorize", nil, loopAuthorizeRequest{
		Description: in.Description,
		Priority:    string(in.Priority),
		Queue:       string(in.Queue),
		Owner:       in.Owner,
	}, &out, nil)
	if err != nil {
		return domain.Loop{}, err
	}
	if out.Loop == nil {
		return domain.Loop{}, fmt.Errorf("POST /loop/authorize: %w", errMissingRecord)
	}
	return out.Loop.toDomain(), nil
}

func (c *Client) CloseLoop(ctx context.Context, in domain.LoopCloseInput) error {
	return c.do(ctx, http.MethodPost, "/loop/close", nil, loopCloseRequest{
		LoopID:      in.LoopID,
		ClosureType: string(in.ClosureType),
		NextStep:    in.NextStep,
	}, nil, domain.ErrLoopNotFound)
}

// KillLoop returns domain.ErrLoopNotFound when no open loop matched.
func (c *Client) KillLoop(ctx context.Context, in domain.LoopKillInput) error {
	return c.do(ctx, http.MethodDelete, "/loop/kill", nil, loopKillRequest{
		Description: in.Description,
		Reason:      in.Reason,
	}, nil, domain.ErrLoopNotFound)
}

func (c *Client) ListLoops(ctx context.Context, queue domain.QueueType) ([]domain.Loop, error) {
	var query url.Values
	if queue != "" {
		query = url.Values{"queue": {string(queue)}}
	}

	var out loopsListResponse
	if err := c.do(ctx, http.MethodGet, "/loop/list", query, nil, &out, nil); err != nil {
		return nil, err
	}

	loops := make([]domain.Loop, 0, len(out.Loops))
	for _, loop := range out.Loops {
		loops = append(loops, loop.toDomain())
	}
	return loops, nil
}

func (c *Client) GetLoop(ctx context.Context, id string) (domain.Loop, error) {
	var out loopResponse
	if err := c.do(ctx, http.MethodGet, "/loop/"+url.PathEscape(id), nil, nil, &out, domain.ErrLoopNotFound); err != nil {
		return domain.Loop{}, err
	}
	if out.Loop == nil {
		return domain.Loop{}, domain.ErrLoopNotFound
	}
	return out.Loop.toDomain(), nil
}
