package cms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/imroc/req/v3"
)

const (
	mediaTypeManagement = "application/vnd.contentful.management.v1+json"
	mediaTypeOctet      = "application/octet-stream"

	headerVersion     = "X-Contentful-Version"
	headerContentType = "X-Contentful-Content-Type"

	// maxContentTypes is the largest page the content type endpoint serves.
	maxContentTypes = 1000
)

// Client defines the capability surface of the remote content store.
type Client interface {
	// ContentTypes lists every content type definition of the environment.
	ContentTypes(ctx context.Context) ([]ContentType, error)
	// Entries returns one page of entries.
	Entries(ctx context.Context, q Query) (*EntryCollection, error)
	// Assets returns one page of assets.
	Assets(ctx context.Context, q Query) (*AssetCollection, error)
	// CreateEntry creates an entry of the given content type.
	CreateEntry(ctx context.Context, contentType string, fields Fields) (*Entry, error)
	// UpdateEntry replaces the field map of an existing entry.
	// The entry handle is only used for its id and version.
	UpdateEntry(ctx context.Context, entry *Entry, fields Fields) (*Entry, error)
	// PublishEntry publishes the current version of an entry.
	PublishEntry(ctx context.Context, entry *Entry) (*Entry, error)
	// UnpublishEntry reverts an entry to draft.
	UnpublishEntry(ctx context.Context, entry *Entry) (*Entry, error)
	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, entry *Entry) error
	// Upload stores raw bytes that an asset can later reference.
	Upload(ctx context.Context, r io.Reader) (*Upload, error)
	// CreateAsset creates an asset with the given fields.
	CreateAsset(ctx context.Context, fields Fields) (*Asset, error)
	// ProcessAsset asks the store to process the asset file for a locale.
	ProcessAsset(ctx context.Context, asset *Asset, locale string) error
	// GetAsset fetches the current state of an asset.
	GetAsset(ctx context.Context, id string) (*Asset, error)
	// PublishAsset publishes the current version of an asset.
	PublishAsset(ctx context.Context, asset *Asset) (*Asset, error)
}

// NewClient creates a management API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.SpaceID == "" {
		return nil, ErrNoSpace
	}
	if cfg.EnvironmentID == "" {
		return nil, ErrNoEnvironment
	}
	if cfg.ManagementToken == "" {
		return nil, ErrNoToken
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	api := req.C().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(timeout)*time.Second).
		SetUserAgent("content-sync").
		SetCommonBearerAuthToken(cfg.ManagementToken).
		SetCommonContentType(mediaTypeManagement)

	upload := req.C().
		SetBaseURL(cfg.UploadURL).
		SetTimeout(time.Duration(timeout)*time.Second).
		SetUserAgent("content-sync").
		SetCommonBearerAuthToken(cfg.ManagementToken).
		SetCommonContentType(mediaTypeOctet)

	return &httpClient{
		api:     api,
		upload:  upload,
		envPath: fmt.Sprintf("/spaces/%s/environments/%s", cfg.SpaceID, cfg.EnvironmentID),
		space:   cfg.SpaceID,
	}, nil
}

type httpClient struct {
	api     *req.Client
	upload  *req.Client
	envPath string
	space   string
}

// call issues a request and decodes the success body into out (if non-nil).
func (c *httpClient) call(r *req.Request, method, path, operation string, out any) error {
	var apiErr APIError
	r.SetErrorResult(&apiErr)
	if out != nil {
		r.SetSuccessResult(out)
	}
	resp, err := r.Send(method, path)
	return handleAPIError(resp, err, &apiErr, operation)
}

func (c *httpClient) ContentTypes(ctx context.Context) ([]ContentType, error) {
	var coll ContentTypeCollection
	r := c.api.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(maxContentTypes))
	if err := c.call(r, http.MethodGet, c.envPath+"/content_types", "list content types", &coll); err != nil {
		return nil, err
	}
	return coll.Items, nil
}

func (c *httpClient) Entries(ctx context.Context, q Query) (*EntryCollection, error) {
	var coll EntryCollection
	r := c.api.R().SetContext(ctx)
	setPage(r, q)
	if err := c.call(r, http.MethodGet, c.envPath+"/entries", "list entries", &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}

func (c *httpClient) Assets(ctx context.Context, q Query) (*AssetCollection, error) {
	var coll AssetCollection
	r := c.api.R().SetContext(ctx)
	setPage(r, q)
	if err := c.call(r, http.MethodGet, c.envPath+"/assets", "list assets", &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}

func (c *httpClient) CreateEntry(ctx context.Context, contentType string, fields Fields) (*Entry, error) {
	var entry Entry
	r := c.api.R().
		SetContext(ctx).
		SetHeader(headerContentType, contentType).
		SetBody(map[string]any{"fields": fields})
	if err := c.call(r, http.MethodPost, c.envPath+"/entries", "create entry", &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *httpClient) UpdateEntry(ctx context.Context, entry *Entry, fields Fields) (*Entry, error) {
	var updated Entry
	r := c.api.R().
		SetContext(ctx).
		SetHeader(headerVersion, strconv.Itoa(entry.Sys.Version)).
		SetBody(map[string]any{"fields": fields})
	if err := c.call(r, http.MethodPut, c.envPath+"/entries/"+entry.Sys.ID, "update entry", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *httpClient) PublishEntry(ctx context.Context, entry *Entry) (*Entry, error) {
	var published Entry
	r := c.api.R().
		SetContext(ctx).
		SetHeader(headerVersion, strconv.Itoa(entry.Sys.Version))
	if err := c.call(r, http.MethodPut, c.envPath+"/entries/"+entry.Sys.ID+"/published", "publish entry", &published); err != nil {
		return nil, err
	}
	return &published, nil
}

func (c *httpClient) UnpublishEntry(ctx context.Context, entry *Entry) (*Entry, error) {
	var draft Entry
	r := c.api.R().SetContext(ctx)
	if err := c.call(r, http.MethodDelete, c.envPath+"/entries/"+entry.Sys.ID+"/published", "unpublish entry", &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *httpClient) DeleteEntry(ctx context.Context, entry *Entry) error {
	r := c.api.R().SetContext(ctx)
	return c.call(r, http.MethodDelete, c.envPath+"/entries/"+entry.Sys.ID, "delete entry", nil)
}

func (c *httpClient) Upload(ctx context.Context, body io.Reader) (*Upload, error) {
	var upload Upload
	r := c.upload.R().
		SetContext(ctx).
		SetBody(body)
	if err := c.call(r, http.MethodPost, "/spaces/"+c.space+"/uploads", "upload file", &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

func (c *httpClient) CreateAsset(ctx context.Context, fields Fields) (*Asset, error) {
	var asset Asset
	r := c.api.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": fields})
	if err := c.call(r, http.MethodPost, c.envPath+"/assets", "create asset", &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *httpClient) ProcessAsset(ctx context.Context, asset *Asset, locale string) error {
	r := c.api.R().
		SetContext(ctx).
		SetHeader(headerVersion, strconv.Itoa(asset.Sys.Version))
	path := c.envPath + "/assets/" + asset.Sys.ID + "/files/" + locale + "/process"
	return c.call(r, http.MethodPut, path, "process asset", nil)
}

func (c *httpClient) GetAsset(ctx context.Context, id string) (*Asset, error) {
	var asset Asset
	r := c.api.R().SetContext(ctx)
	if err := c.call(r, http.MethodGet, c.envPath+"/assets/"+id, "get asset", &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *httpClient) PublishAsset(ctx context.Context, asset *Asset) (*Asset, error) {
	var published Asset
	r := c.api.R().
		SetContext(ctx).
		SetHeader(headerVersion, strconv.Itoa(asset.Sys.Version))
	if err := c.call(r, http.MethodPut, c.envPath+"/assets/"+asset.Sys.ID+"/published", "publish asset", &published); err != nil {
		return nil, err
	}
	return &published, nil
}

func setPage(r *req.Request, q Query) {
	r.SetQueryParam("skip", strconv.Itoa(q.Skip))
	if q.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(q.Limit))
	}
	if q.Order != "" {
		r.SetQueryParam("order", q.Order)
	}
}
