package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/kpa-form-data/internal/model"
	"github.com/iliyamo/kpa-form-data/internal/repository"
)

// fakeWheelStore implements WheelSpecStore in memory, mimicking the
// repository contract: duplicate form numbers return the sentinel, created
// records get ID, Saved status and timestamps.
type fakeWheelStore struct {
	specs []*model.WheelSpecification
	err   error // forced infrastructure error
}

func (f *fakeWheelStore) Create(_ context.Context, s *model.WheelSpecification) error {
	if f.err != nil {
		return f.err
	}
	for _, e := range f.specs {
		if e.FormNumber == s.FormNumber {
			return repository.ErrDuplicateFormNumber
		}
	}
	s.ID = uint64(len(f.specs) + 1)
	s.Status = "Saved"
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	f.specs = append(f.specs, &cp)
	return nil
}

func (f *fakeWheelStore) List(_ context.Context, flt repository.WheelSpecFilter) ([]*model.WheelSpecification, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.WheelSpecification
	for _, s := range f.specs {
		if flt.FormNumber != "" && s.FormNumber != flt.FormNumber {
			continue
		}
		if flt.SubmittedBy != "" && s.SubmittedBy != flt.SubmittedBy {
			continue
		}
		if flt.SubmittedDate != "" && s.SubmittedDate != flt.SubmittedDate {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeBogieStore struct {
	sheets []*model.BogieChecksheet
	err    error
}

func (f *fakeBogieStore) Create(_ context.Context, b *model.BogieChecksheet) error {
	if f.err != nil {
		return f.err
	}
	for _, e := range f.sheets {
		if e.FormNumber == b.FormNumber {
			return repository.ErrDuplicateFormNumber
		}
	}
	b.ID = uint64(len(f.sheets) + 1)
	b.Status = "Saved"
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.sheets = append(f.sheets, &cp)
	return nil
}

func newFormTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestCreateWheelSpec_Success(t *testing.T) {
	store := &fakeWheelStore{}
	h := NewFormHandler(store, &fakeBogieStore{}, "")

	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", validWheelSpecJSON())
	if err := h.CreateWheelSpec(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Error("expected success=true")
	}
	if body["message"] != "Wheel specification submitted successfully." {
		t.Errorf("unexpected message: %v", body["message"])
	}
	data, _ := body["data"].(map[string]any)
	if data["formNumber"] != "WHEEL-2025-001" || data["status"] != "Saved" {
		t.Errorf("unexpected data block: %v", data)
	}
	if len(store.specs) != 1 {
		t.Fatalf("expected one stored record, got %d", len(store.specs))
	}
}

func TestCreateWheelSpec_Duplicate(t *testing.T) {
	store := &fakeWheelStore{}
	h := NewFormHandler(store, &fakeBogieStore{}, "")

	c, _ := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", validWheelSpecJSON())
	if err := h.CreateWheelSpec(c); err != nil {
		t.Fatalf("first create: %v", err)
	}

	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", validWheelSpecJSON())
	if err := h.CreateWheelSpec(c); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "WHEEL-2025-001") {
		t.Errorf("expected duplicate message to name the form number, got %s", rec.Body.String())
	}
	if len(store.specs) != 1 {
		t.Errorf("duplicate submission must not persist a second row, got %d", len(store.specs))
	}
}

func TestCreateWheelSpec_BadPrefixRejectedBeforePersistence(t *testing.T) {
	store := &fakeWheelStore{}
	h := NewFormHandler(store, &fakeBogieStore{}, "")

	body := strings.Replace(validWheelSpecJSON(), "WHEEL-2025-001", "FORM-2025-001", 1)
	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", body)
	if err := h.CreateWheelSpec(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(store.specs) != 0 {
		t.Error("invalid submission must not reach the store")
	}
}

func TestCreateWheelSpec_StoreFailure(t *testing.T) {
	store := &fakeWheelStore{err: context.DeadlineExceeded}
	h := NewFormHandler(store, &fakeBogieStore{}, "")

	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", validWheelSpecJSON())
	if err := h.CreateWheelSpec(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func seededWheelHandler(t *testing.T) (*FormHandler, *fakeWheelStore) {
	t.Helper()
	store := &fakeWheelStore{}
	h := NewFormHandler(store, &fakeBogieStore{}, "")
	for _, body := range []string{
		validWheelSpecJSON(),
		strings.Replace(strings.Replace(validWheelSpecJSON(), "WHEEL-2025-001", "WHEEL-2025-002", 1),
			"user_id_123", "user_id_456", 1),
	} {
		c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/wheel-specifications", body)
		if err := h.CreateWheelSpec(c); err != nil || rec.Code != http.StatusCreated {
			t.Fatalf("seed create failed: err=%v code=%d", err, rec.Code)
		}
	}
	return h, store
}

func TestListWheelSpecs_NoFiltersReturnsAll(t *testing.T) {
	h, _ := seededWheelHandler(t)

	c, rec := newFormTestContext(t, http.MethodGet, "/api/forms/wheel-specifications", "")
	if err := h.ListWheelSpecs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].([]any)
	if len(data) != 2 {
		t.Errorf("expected 2 records, got %d", len(data))
	}
}

func TestListWheelSpecs_FilterByFormNumber(t *testing.T) {
	h, _ := seededWheelHandler(t)

	c, rec := newFormTestContext(t, http.MethodGet,
		"/api/forms/wheel-specifications?formNumber=WHEEL-2025-001", "")
	if err := h.ListWheelSpecs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(data))
	}
	item, _ := data[0].(map[string]any)
	if item["formNumber"] != "WHEEL-2025-001" {
		t.Errorf("unexpected record: %v", item)
	}
	fields, _ := item["fields"].(map[string]any)
	if fields["treadDiameterNew"] != "915 (900-1000)" {
		t.Errorf("fields not reshaped to external names: %v", fields)
	}
	if item["status"] != "Saved" {
		t.Errorf("expected status Saved, got %v", item["status"])
	}
}

func TestListWheelSpecs_CombinedFiltersAND(t *testing.T) {
	h, _ := seededWheelHandler(t)

	// submittedBy matches record 2, formNumber matches record 1: AND yields none.
	c, rec := newFormTestContext(t, http.MethodGet,
		"/api/forms/wheel-specifications?formNumber=WHEEL-2025-001&submittedBy=user_id_456", "")
	if err := h.ListWheelSpecs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("zero matches must still be 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Error("expected success=true for empty result")
	}
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data to be a list, got %T", body["data"])
	}
	if len(data) != 0 {
		t.Errorf("expected empty list, got %v", data)
	}
}

func TestCreateBogieChecksheet_Success(t *testing.T) {
	store := &fakeBogieStore{}
	h := NewFormHandler(&fakeWheelStore{}, store, "")

	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/bogie-checksheet", validBogieJSON())
	if err := h.CreateBogieChecksheet(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Bogie checksheet submitted successfully." {
		t.Errorf("unexpected message: %v", body["message"])
	}
	data, _ := body["data"].(map[string]any)
	if data["formNumber"] != "BOGIE-2025-001" || data["inspectionBy"] != "user_id_456" || data["status"] != "Saved" {
		t.Errorf("unexpected data block: %v", data)
	}
	if len(store.sheets) != 1 {
		t.Fatalf("expected one stored sheet, got %d", len(store.sheets))
	}
	if store.sheets[0].BogieChecksheet.BolsterSuspensionBracket != "Cracked" {
		t.Errorf("nested block not carried into the store: %+v", store.sheets[0].BogieChecksheet)
	}
}

func TestCreateBogieChecksheet_Duplicate(t *testing.T) {
	store := &fakeBogieStore{}
	h := NewFormHandler(&fakeWheelStore{}, store, "")

	c, _ := newFormTestContext(t, http.MethodPost, "/api/forms/bogie-checksheet", validBogieJSON())
	if err := h.CreateBogieChecksheet(c); err != nil {
		t.Fatalf("first create: %v", err)
	}
	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/bogie-checksheet", validBogieJSON())
	if err := h.CreateBogieChecksheet(c); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "BOGIE-2025-001") {
		t.Errorf("expected duplicate message to name the form number, got %s", rec.Body.String())
	}
	if len(store.sheets) != 1 {
		t.Errorf("duplicate submission must not persist a second row, got %d", len(store.sheets))
	}
}

func TestCreateBogieChecksheet_MissingBlockRejected(t *testing.T) {
	store := &fakeBogieStore{}
	h := NewFormHandler(&fakeWheelStore{}, store, "")

	body := strings.Replace(validBogieJSON(), `"bogieDetails"`, `"somethingElse"`, 1)
	c, rec := newFormTestContext(t, http.MethodPost, "/api/forms/bogie-checksheet", body)
	if err := h.CreateBogieChecksheet(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(store.sheets) != 0 {
		t.Error("invalid submission must not reach the store")
	}
}
