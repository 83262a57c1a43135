package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/kpa-form-data/internal/model"
	"github.com/iliyamo/kpa-form-data/internal/queue"
	"github.com/iliyamo/kpa-form-data/internal/repository"
	queue_publisher "github.com/iliyamo/kpa-form-data/internal/service"
)

// WheelSpecStore is the slice of the wheel spec repository used by handlers.
type WheelSpecStore interface {
	Create(ctx context.Context, s *model.WheelSpecification) error
	List(ctx context.Context, f repository.WheelSpecFilter) ([]*model.WheelSpecification, error)
}

// BogieChecksheetStore is the slice of the bogie repository used by handlers.
type BogieChecksheetStore interface {
	Create(ctx context.Context, b *model.BogieChecksheet) error
}

// FormHandler bundles dependencies for the form submission endpoints.
// AMQPURL may be empty, which disables submission events.
type FormHandler struct {
	WheelSpecs WheelSpecStore
	Bogies     BogieChecksheetStore
	AMQPURL    string
}

func NewFormHandler(w WheelSpecStore, b BogieChecksheetStore, amqpURL string) *FormHandler {
	return &FormHandler{WheelSpecs: w, Bogies: b, AMQPURL: amqpURL}
}

// CreateWheelSpec handles POST /api/forms/wheel-specifications.
func (h *FormHandler) CreateWheelSpec(c echo.Context) error {
	var req wheelSpecCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{Message: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, envelope{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	spec := req.toModel()
	if err := h.WheelSpecs.Create(ctx, spec); err != nil {
		if errors.Is(err, repository.ErrDuplicateFormNumber) {
			return c.JSON(http.StatusBadRequest, envelope{
				Message: fmt.Sprintf("Form number %s already exists", req.FormNumber),
			})
		}
		return c.JSON(http.StatusInternalServerError, envelope{
			Message: "Failed to create wheel specification",
		})
	}

	h.publishSubmitted("wheel-specification", spec.FormNumber, spec.SubmittedBy, spec.Status)

	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Wheel specification submitted successfully.",
		Data: echo.Map{
			"formNumber":    spec.FormNumber,
			"submittedBy":   spec.SubmittedBy,
			"submittedDate": spec.SubmittedDate,
			"status":        spec.Status,
		},
	})
}

// ListWheelSpecs handles GET /api/forms/wheel-specifications. The three query
// filters combine with AND; empty values impose no constraint. Zero matches
// is a success with an empty list, never an error.
func (h *FormHandler) ListWheelSpecs(c echo.Context) error {
	filter := repository.WheelSpecFilter{
		FormNumber:    c.QueryParam("formNumber"),
		SubmittedBy:   c.QueryParam("submittedBy"),
		SubmittedDate: c.QueryParam("submittedDate"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	specs, err := h.WheelSpecs.List(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, envelope{
			Message: "Failed to retrieve wheel specifications",
		})
	}

	items := make([]wheelSpecItem, 0, len(specs))
	for _, s := range specs {
		items = append(items, wheelSpecItemFromModel(s))
	}
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Filtered wheel specification forms fetched successfully.",
		Data:    items,
	})
}

// CreateBogieChecksheet handles POST /api/forms/bogie-checksheet.
func (h *FormHandler) CreateBogieChecksheet(c echo.Context) error {
	var req bogieChecksheetCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{Message: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, envelope{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sheet := req.toModel()
	if err := h.Bogies.Create(ctx, sheet); err != nil {
		if errors.Is(err, repository.ErrDuplicateFormNumber) {
			return c.JSON(http.StatusBadRequest, envelope{
				Message: fmt.Sprintf("Form number %s already exists", req.FormNumber),
			})
		}
		return c.JSON(http.StatusInternalServerError, envelope{
			Message: "Failed to create bogie checksheet",
		})
	}

	h.publishSubmitted("bogie-checksheet", sheet.FormNumber, sheet.InspectionBy, sheet.Status)

	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Bogie checksheet submitted successfully.",
		Data: echo.Map{
			"formNumber":     sheet.FormNumber,
			"inspectionBy":   sheet.InspectionBy,
			"inspectionDate": sheet.InspectionDate,
			"status":         sheet.Status,
		},
	})
}

// publishSubmitted fires a form.submitted event without blocking the request.
// Publish failures are logged inside the publisher and otherwise ignored.
func (h *FormHandler) publishSubmitted(formType, formNumber, submittedBy, status string) {
	if h.AMQPURL == "" {
		return
	}
	ev := queue.FormSubmittedEvent{
		FormType:    formType,
		FormNumber:  formNumber,
		SubmittedBy: submittedBy,
		Status:      status,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishFormSubmitted(ctx, h.AMQPURL, ev)
	}()
}
