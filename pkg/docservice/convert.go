package docservice

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

// ConvertRequest describes a document conversion.
type ConvertRequest struct {
	DocumentURI string // address the document service downloads the source from
	FromExt     string // derived from DocumentURI when empty
	ToExt       string
	RevisionID  string // DocumentURI when empty
	Async       bool
	Region      string // optional, e.g. "en-US"
}

type convertPayload struct {
	Async      bool   `json:"async"`
	URL        string `json:"url"`
	OutputType string `json:"outputtype"`
	FileType   string `json:"filetype"`
	Title      string `json:"title"`
	Key        string `json:"key"`
	Region     string `json:"region,omitempty"`
}

// ConvertResult is the conversion service reply.
type ConvertResult struct {
	XMLName    xml.Name `xml:"FileResult"`
	Error      *int     `xml:"Error"`
	EndConvert string   `xml:"EndConvert"`
	FileURL    string   `xml:"FileUrl"`
	Percent    int      `xml:"Percent"`
	FileType   string   `xml:"FileType"`
}

// Done reports whether the conversion has finished.
func (r *ConvertResult) Done() bool {
	return strings.EqualFold(strings.TrimSpace(r.EndConvert), "true")
}

// Err maps the reply's error code, if any, to an errcode.ErrDocService error.
func (r *ConvertResult) Err() error {
	if r.Error == nil {
		return nil
	}
	return errcode.ConvertError(*r.Error)
}

// Convert sends req to the conversion service and returns the parsed reply
// without interpreting its error code. A reply that is not valid XML fails
// with errcode.ErrProtocol.
func (c *Client) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	endpoint := c.settings.ConvertServiceURL(true)
	if endpoint == "" {
		return nil, errcode.Config(errcode.CommonNoConvertServiceEndpoint)
	}

	key := req.RevisionID
	if key == "" {
		key = req.DocumentURI
	}
	key = document.GenerateRevisionID(key)

	fromExt := strings.TrimLeft(req.FromExt, ".")
	if fromExt == "" {
		fromExt = extFromURI(req.DocumentURI)
	}

	payload := convertPayload{
		Async:      req.Async,
		URL:        req.DocumentURI,
		OutputType: strings.TrimLeft(req.ToExt, "."),
		FileType:   fromExt,
		Title:      key + "." + fromExt,
		Key:        key,
		Region:     req.Region,
	}

	resp, err := c.SignedRequest(ctx, endpoint, payload, ConvertTimeout)
	if err != nil {
		return nil, err
	}

	var result ConvertResult
	if err := xml.Unmarshal(resp.Body, &result); err != nil {
		return nil, errcode.Wrap(errcode.ErrProtocol, errcode.CommonBadResponseXML, err)
	}
	return &result, nil
}

// ConvertedURI converts synchronously and returns the result URL, or ""
// when the service has not finished yet. Service error codes are returned
// as errcode.ErrDocService errors carrying the table message.
func (c *Client) ConvertedURI(ctx context.Context, req ConvertRequest) (string, error) {
	req.Async = false
	result, err := c.Convert(ctx, req)
	if err != nil {
		return "", err
	}
	if err := result.Err(); err != nil {
		return "", err
	}
	if result.Done() {
		return result.FileURL, nil
	}
	return "", nil
}

func extFromURI(uri string) string {
	path := uri
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		path = u.Path
	}
	return document.Ext(path)
}
