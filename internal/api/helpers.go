package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// parseResponseData unmarshals the data field of a successful response.
func parseResponseData[T any](resp *Response) (*T, error) {
	if !resp.Success {
		return nil, fmt.Errorf(apiErrorFmt, resp.ErrorString())
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	var result T
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// parseResponseList unmarshals a data field that is a bare JSON array.
func parseResponseList[T any](resp *Response) ([]T, error) {
	if !resp.Success {
		return nil, fmt.Errorf(apiErrorFmt, resp.ErrorString())
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	var items []T
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return items, nil
}

// putAction performs a PUT whose outcome is only success or failure.
func (c *Client) putAction(ctx context.Context, path string, payload any) error {
	resp, err := c.doRequestWithContext(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf(apiErrorFmt, resp.ErrorString())
	}
	return nil
}
