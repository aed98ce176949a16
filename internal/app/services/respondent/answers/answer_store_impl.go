package answers

import (
	"bytes"
	"context"
	"fmt"
	"modifications-service/internal/app/config"
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

type answerStoreClient struct {
	BaseUrl string
}

func NewAnswerStoreClient(internalConfig *config.InternalConfig) contracts.AnswerStoreClient {
	return &answerStoreClient{
		BaseUrl: internalConfig.AnswerStore.BaseUrl,
	}
}

func (c *answerStoreClient) FetchAnswers(ctx context.Context, changeID, projectRecordID string) ([]models.Answer, error) {
	endpoint := fmt.Sprintf("%s/answers?change_id=%s&project_record_id=%s",
		c.BaseUrl, url.QueryEscape(changeID), url.QueryEscape(projectRecordID))

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
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrAnswerFetchFailed(fmt.Errorf("answer store responded %d", resp.StatusCode))
	}

	var result struct {
		Answers []models.Answer `json:"answers"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, "answers")
	}

	return result.Answers, nil
}

func (c *answerStoreClient) SaveAnswers(ctx context.Context, request *contracts.SaveAnswersRequest) error {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := c.BaseUrl + "/answers"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return exceptions.ErrAnswerSaveFailed(fmt.Errorf("answer store responded %d", resp.StatusCode))
	}

	return nil
}

func (c *answerStoreClient) FetchDocumentAnswers(ctx context.Context, modificationID, projectRecordID string) (map[string][]models.Answer, error) {
	endpoint := fmt.Sprintf("%s/document-answers?modification_id=%s&project_record_id=%s",
		c.BaseUrl, url.QueryEscape(modificationID), url.QueryEscape(projectRecordID))

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
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrAnswerFetchFailed(fmt.Errorf("answer store responded %d", resp.StatusCode))
	}

	var result struct {
		Documents map[string][]models.Answer `json:"documents"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, "document answers")
	}

	return result.Documents, nil
}
