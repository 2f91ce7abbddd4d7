package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// ListOf fetches and decodes one page into records of type T.
func ListOf[T models.Record](ctx context.Context, c *HRClient, resource constants.Resource, fs models.FilterState) (models.PageResult[T], error) {
	var resp models.ListResponse[T]
	path := resource.ListPath() + "?" + fs.Query().Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.PageResult[T]{}, fetchFailure(apperrors.OpList, resource, err)
	}
	return models.PageFromResponse(resp), nil
}

// Statistics fetches GET /api/<resource>/statistics.
func (c *HRClient) Statistics(ctx context.Context, resource constants.Resource) (models.Statistics, error) {
	var raw map[string]json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, resource.SubPath(constants.PathStatistics), nil, &raw); err != nil {
		return nil, fetchFailure(apperrors.OpStatistics, resource, err)
	}
	// Accept both a bare object and a {statistics: {...}} envelope.
	body := raw
	if inner, ok := raw[constants.ResponseStatistics]; ok && len(raw) == 1 {
		if err := json.Unmarshal(inner, &body); err != nil {
			return nil, fetchFailure(apperrors.OpStatistics, resource, fmt.Errorf("failed to decode statistics: %w", err))
		}
	}
	stats := make(models.Statistics, len(body))
	for k, v := range body {
		var val interface{}
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, fetchFailure(apperrors.OpStatistics, resource, fmt.Errorf("failed to decode statistic %s: %w", k, err))
		}
		stats[k] = val
	}
	return stats, nil
}

// UpdateStatus issues PATCH /api/<resource>/{id} with {"status": status}.
func (c *HRClient) UpdateStatus(ctx context.Context, resource constants.Resource, id, status string) error {
	body := map[string]string{constants.DefaultStatusField: status}
	if err := c.doJSON(ctx, http.MethodPatch, resource.RecordPath(url.PathEscape(id)), body, nil); err != nil {
		return mutationFailure(apperrors.OpUpdateStatus, resource, err)
	}
	return nil
}

// Approve issues POST /api/<resource>/{id}/approve.
func (c *HRClient) Approve(ctx context.Context, resource constants.Resource, id string) error {
	path := resource.RecordPath(url.PathEscape(id)) + "/" + constants.PathApprove
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, nil); err != nil {
		return mutationFailure(apperrors.OpApprove, resource, err)
	}
	return nil
}

// Delete issues DELETE /api/<resource>/{id}.
func (c *HRClient) Delete(ctx context.Context, resource constants.Resource, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, resource.RecordPath(url.PathEscape(id)), nil, nil); err != nil {
		return mutationFailure(apperrors.OpDelete, resource, err)
	}
	return nil
}

// Export downloads the spreadsheet for the filters of fs (pagination is not
// sent). The body is returned only once fully read; a short read is an
// ExportFailure.
func (c *HRClient) Export(ctx context.Context, resource constants.Resource, fs models.FilterState) ([]byte, string, error) {
	path := resource.SubPath(constants.PathExport)
	if q := fs.ExportQuery(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", apperrors.NewExportFailure(string(resource), 0, "", err)
	}
	resp, err := c.do(req)
	if err != nil {
		status, msg, cause := splitError(err)
		return nil, "", apperrors.NewExportFailure(string(resource), status, msg, cause)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get(constants.HeaderContentType); strings.HasPrefix(ct, constants.ContentTypeJSON) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, "", apperrors.NewExportFailure(string(resource), resp.StatusCode, errorMessage(body), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.NewExportFailure(string(resource), 0, "", fmt.Errorf("read export body: %w", err))
	}
	if resp.ContentLength >= 0 && int64(len(data)) != resp.ContentLength {
		return nil, "", apperrors.NewExportFailure(string(resource), 0, "",
			fmt.Errorf("incomplete export body: got %d of %d bytes", len(data), resp.ContentLength))
	}
	if len(data) == 0 {
		return nil, "", apperrors.NewExportFailure(string(resource), 0, "", fmt.Errorf("empty export body"))
	}
	return data, exportFilename(resp.Header.Get(constants.HeaderContentDisposition), resource), nil
}

// exportFilename takes the attachment filename when present and safe.
func exportFilename(disposition string, resource constants.Resource) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." && name != "/" {
				return name
			}
		}
	}
	return resource.ExportFilename()
}

// ListLeaves fetches leaves overlapping [from, to] for the updates view.
func (c *HRClient) ListLeaves(ctx context.Context, from, to models.Date) ([]models.Leave, error) {
	q := url.Values{}
	q.Set(constants.ParamFrom, from.String())
	q.Set(constants.ParamTo, to.String())
	var resp models.ListResponse[models.Leave]
	if err := c.doJSON(ctx, http.MethodGet, constants.PathLeaves+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, fetchFailure(apperrors.OpList, constants.ResourceLeaves, err)
	}
	if resp.Data == nil {
		return []models.Leave{}, nil
	}
	return resp.Data, nil
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Login exchanges credentials for a token and stores it on the client.
func (c *HRClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, constants.PathLogin, LoginRequest{Email: email, Password: password}, &resp); err != nil {
		status, msg, cause := splitError(err)
		if status == http.StatusUnauthorized {
			return "", apperrors.NewUnauthorizedError(msg)
		}
		return "", apperrors.NewFetchFailure(apperrors.OpLogin, "", status, msg, cause)
	}
	if resp.Token == "" {
		return "", apperrors.NewUnauthorizedError("no token issued")
	}
	c.Token = resp.Token
	return resp.Token, nil
}
