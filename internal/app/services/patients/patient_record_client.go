package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"patientdesk-service/internal/app/contracts"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/exceptions"
	"patientdesk-service/internal/pkg/record_dto"

	"go.uber.org/zap"
)

type patientRecordClient struct {
	BaseUrl   string
	SearchUrl string
	Log       *zap.Logger
}

func NewPatientRecordClient(baseUrl string, logger *zap.Logger) contracts.RecordClient {
	return &patientRecordClient{
		BaseUrl:   baseUrl + constvars.RecordServicePatientsPath,
		SearchUrl: baseUrl + constvars.RecordServicePatientSearchPath,
		Log:       logger,
	}
}

// rejectionError turns a non-2xx record service response into a CustomError,
// surfacing the joined error list or message when the body carries the
// structured payload, and the generic message otherwise.
func (c *patientRecordClient) rejectionError(requestID string, caller string, statusCode int, body io.Reader, devMessage string) error {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		c.Log.Error(caller+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRecordServiceRejected(err, statusCode, "", devMessage)
	}

	var payload record_dto.ErrorPayload
	err = json.Unmarshal(bodyBytes, &payload)
	if err != nil || payload.ClientMessage() == "" {
		c.Log.Error(caller+" record service rejected request without structured payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		)
		return exceptions.ErrRecordServiceRejected(err, statusCode, "", devMessage)
	}

	serviceErr := fmt.Errorf("%s", payload.ClientMessage())
	c.Log.Error(caller+" record service rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.Error(serviceErr),
	)
	return exceptions.ErrRecordServiceRejected(serviceErr, statusCode, payload.ClientMessage(), devMessage)
}

func (c *patientRecordClient) ListPatients(ctx context.Context) ([]record_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("patientRecordClient.ListPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.ListPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.ListPatients", resp.StatusCode, resp.Body, constvars.ErrDevRecordServiceListFailed)
	}

	var records []record_dto.Patient
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		c.Log.Error("patientRecordClient.ListPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(records)),
	)
	return records, nil
}

func (c *patientRecordClient) FindPatientByID(ctx context.Context, patientID int64) (*record_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%d", c.BaseUrl, patientID), nil)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.FindPatientByID", resp.StatusCode, resp.Body, constvars.ErrDevRecordServiceGetFailed)
	}

	record := new(record_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.ID),
	)
	return record, nil
}

func (c *patientRecordClient) CreatePatient(ctx context.Context, draft *record_dto.PatientDraft) (*record_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(draft)
	if err != nil {
		c.Log.Error("patientRecordClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientRecordClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.CreatePatient", resp.StatusCode, resp.Body, constvars.ErrDevRecordServiceCreateFailed)
	}

	record := new(record_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		c.Log.Error("patientRecordClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.ID),
	)
	return record, nil
}

func (c *patientRecordClient) PatchPatient(ctx context.Context, patientID int64, patch *record_dto.PatientPatch) (*record_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.PatchPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	requestJSON, err := json.Marshal(patch)
	if err != nil {
		c.Log.Error("patientRecordClient.PatchPatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, fmt.Sprintf("%s/%d", c.BaseUrl, patientID), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientRecordClient.PatchPatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.PatchPatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.PatchPatient", resp.StatusCode, resp.Body, constvars.ErrDevRecordServicePatchFailed)
	}

	record := new(record_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		c.Log.Error("patientRecordClient.PatchPatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.PatchPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.ID),
	)
	return record, nil
}

func (c *patientRecordClient) DeletePatient(ctx context.Context, patientID int64) (*record_dto.DeleteResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%d", c.BaseUrl, patientID), nil)
	if err != nil {
		c.Log.Error("patientRecordClient.DeletePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.DeletePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.DeletePatient", resp.StatusCode, resp.Body, constvars.ErrDevRecordServiceDeleteFailed)
	}

	result := new(record_dto.DeleteResult)
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("patientRecordClient.DeletePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return result, nil
}

func (c *patientRecordClient) SearchPatients(ctx context.Context, keyword string) ([]record_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKeywordKey, keyword),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.SearchUrl, nil)
	if err != nil {
		c.Log.Error("patientRecordClient.SearchPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	query := req.URL.Query()
	query.Set(constvars.URLQueryParamKeyword, keyword)
	req.URL.RawQuery = query.Encode()
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.SearchPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.rejectionError(requestID, "patientRecordClient.SearchPatients", resp.StatusCode, resp.Body, constvars.ErrDevRecordServiceSearchFailed)
	}

	var records []record_dto.Patient
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		c.Log.Error("patientRecordClient.SearchPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(records)),
	)
	return records, nil
}
