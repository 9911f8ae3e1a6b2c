package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/response"
	"github.com/stemsi/gradebook/internal/service"
	"github.com/stemsi/gradebook/internal/validator"
)

// ReportHandler serves the text reports as text/plain. The count (or grade)
// returned with each report travels in the X-Report-Count header.
type ReportHandler struct {
	gradebook *service.Gradebook
}

func NewReportHandler(gradebook *service.Gradebook) *ReportHandler {
	return &ReportHandler{gradebook: gradebook}
}

// RecordedExams godoc
// GET /api/v1/datasets/:dbsize/reports/students/:code/exams
func (h *ReportHandler) RecordedExams(c *gin.Context) {
	var req model.CodeRequest
	if fields := validator.BindURI(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var buf bytes.Buffer
	count, err := h.gradebook.PrintRecordedExams(c.Request.Context(), req.Code, req.DBSize, &buf)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Report(c, buf.String(), count)
}

// TopStudents godoc
// GET /api/v1/datasets/:dbsize/reports/top-students
func (h *ReportHandler) TopStudents(c *gin.Context) {
	var req model.DatasetRequest
	if fields := validator.BindURI(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var buf bytes.Buffer
	count, err := h.gradebook.PrintTopStudents(c.Request.Context(), req.DBSize, &buf)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Report(c, buf.String(), count)
}

// ExamRecord godoc
// GET /api/v1/datasets/:dbsize/reports/exams/:code
func (h *ReportHandler) ExamRecord(c *gin.Context) {
	var req model.CodeRequest
	if fields := validator.BindURI(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var buf bytes.Buffer
	grade, err := h.gradebook.PrintExamRecord(c.Request.Context(), req.Code, req.DBSize, &buf)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Report(c, buf.String(), grade)
}
