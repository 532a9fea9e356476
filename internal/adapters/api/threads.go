package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnema/humanos-cli/internal/domain"
)

func (c *Client) SpawnThread(ctx context.Context, in domain.ThreadSpawnInput) (domain.Thread, error) {
	var out threadResponse
	err := c.do(ctx, http.MethodPost, "/thread/spawn", nil, threadSpawnRequest{
		ThreadName: in.Name,
		Mode:       string(in.Mode),
		TimeScope:  in.TimeScope,
	}, &out, nil)
	if err != nil {
		return domain.Thread{}, err
	}
	if out.Thread == nil {
		return domain.Thread{}, fmt.Errorf("POST /thread/spawn: %w", errMissingRecord)
	}
	return out.Thread.toDomain(), nil
}

func (c *Client) BackgroundThread(ctx context.Context, in domain.ThreadBackgroundInput) error {
	return c.do(ctx, http.MethodPost, "/thread/background", nil, threadBackgroundRequest{
		ThreadName: in.Name,
		Goal:       in.Goal,
	}, nil, domain.ErrThreadNotFound)
}

func (c *Client) TerminateThreads(ctx context.Context, rule string) error {
	return c.do(ctx, http.MethodDelete, "/thread/terminate", nil, threadTerminateRequest{Rule: rule}, nil, domain.ErrThreadNotFound)
}

func (c *Client) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	var out threadsListResponse
	if err := c.do(ctx, http.MethodGet, "/thread/list", nil, nil, &out, nil); err != nil {
		return nil, err
	}

	threads := make([]domain.Thread, 0, len(out.Threads))
	for _, thread := range out.Threads {
		threads = append(threads, thread.toDomain())
	}
	return threads, nil
}

func (c *Client) GetThread(ctx context.Context, id string) (domain.Thread, error) {
	var out threadResponse
	if err := c.do(ctx, http.MethodGet, "/thread/"+url.PathEscape(id), nil, nil, &out, domain.ErrThreadNotFound); err != nil {
		return domain.Thread{}, err
	}
	if out.Thread == nil {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	return out.Thread.toDomain(), nil
}
