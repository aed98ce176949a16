package questionsets

import (
	"fmt"
	"modifications-service/internal/app/config"
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"net/http"
	"net/url"

	"context"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type questionSetCmsClient struct {
	BaseUrl string
	limiter *rate.Limiter
}

func NewQuestionSetCmsClient(internalConfig *config.InternalConfig) contracts.QuestionSetClient {
	return &questionSetCmsClient{
		BaseUrl: internalConfig.CMS.BaseUrl,
		limiter: rate.NewLimiter(rate.Limit(internalConfig.CMS.RequestsPerSecond), internalConfig.CMS.RequestsPerSecond),
	}
}

func (c *questionSetCmsClient) FetchQuestionSet(ctx context.Context, sectionFilter string) (*contracts.SchemaDocument, error) {
	endpoint := c.BaseUrl + "/question-sets"
	if sectionFilter != "" {
		endpoint = fmt.Sprintf("%s?section=%s", endpoint, url.QueryEscape(sectionFilter))
	}

	resp, err := c.doGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrSchemaUnavailable(c.remoteFailure(resp))
	}

	document := new(contracts.SchemaDocument)
	err = json.NewDecoder(resp.Body).Decode(&document)
	if err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, "question set")
	}

	return document, nil
}

func (c *questionSetCmsClient) FetchPreviousSection(ctx context.Context, sectionID string) (*models.SectionRef, error) {
	return c.fetchAdjacentSection(ctx, sectionID, "previous")
}

func (c *questionSetCmsClient) FetchNextSection(ctx context.Context, sectionID string) (*models.SectionRef, error) {
	return c.fetchAdjacentSection(ctx, sectionID, "next")
}

// fetchAdjacentSection returns (nil, nil) when the CMS reports that no
// neighbour exists: the start or end of a journey is a valid terminal
// condition, not an error.
func (c *questionSetCmsClient) fetchAdjacentSection(ctx context.Context, sectionID, direction string) (*models.SectionRef, error) {
	endpoint := fmt.Sprintf("%s/sections/%s/%s", c.BaseUrl, url.PathEscape(sectionID), direction)

	resp, err := c.doGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNoContent, constvars.StatusNotFound:
		return nil, nil
	default:
		return nil, exceptions.ErrSectionLookup(c.remoteFailure(resp), direction)
	}

	sectionRef := new(models.SectionRef)
	err = json.NewDecoder(resp.Body).Decode(&sectionRef)
	if err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, direction+" section")
	}

	return sectionRef, nil
}

func (c *questionSetCmsClient) FetchDocumentMetadataSchema(ctx context.Context) (*contracts.SchemaDocument, error) {
	endpoint := c.BaseUrl + "/document-metadata-schema"

	resp, err := c.doGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrDocumentSchemaUnavailable(c.remoteFailure(resp))
	}

	document := new(contracts.SchemaDocument)
	err = json.NewDecoder(resp.Body).Decode(&document)
	if err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, "document metadata schema")
	}

	return document, nil
}

func (c *questionSetCmsClient) doGet(ctx context.Context, endpoint string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrRateLimiterWait(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func (c *questionSetCmsClient) remoteFailure(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return fmt.Errorf("CMS responded %d: %s", resp.StatusCode, payload.Message)
	}
	return fmt.Errorf("CMS responded %d", resp.StatusCode)
}
