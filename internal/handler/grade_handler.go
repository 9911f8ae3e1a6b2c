package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/response"
	"github.com/stemsi/gradebook/internal/service"
	"github.com/stemsi/gradebook/internal/validator"
)

// GradeHandler serves the numeric queries: averages and the top-student list.
type GradeHandler struct {
	gradebook *service.Gradebook
}

func NewGradeHandler(gradebook *service.Gradebook) *GradeHandler {
	return &GradeHandler{gradebook: gradebook}
}

type averageResult struct {
	Code    string  `json:"code"`
	DBSize  string  `json:"dbsize"`
	Average float64 `json:"average"`
}

// StudentAverage godoc
// GET /api/v1/datasets/:dbsize/students/:code/average
func (h *GradeHandler) StudentAverage(c *gin.Context) {
	h.average(c, h.gradebook.StudentAverage)
}

// CourseAverage godoc
// GET /api/v1/datasets/:dbsize/courses/:code/average
func (h *GradeHandler) CourseAverage(c *gin.Context) {
	h.average(c, h.gradebook.CourseAverage)
}

// TeacherAverage godoc
// GET /api/v1/datasets/:dbsize/teachers/:code/average
func (h *GradeHandler) TeacherAverage(c *gin.Context) {
	h.average(c, h.gradebook.TeacherAverage)
}

// TopStudents godoc
// GET /api/v1/datasets/:dbsize/top-students
func (h *GradeHandler) TopStudents(c *gin.Context) {
	var req model.DatasetRequest
	if fields := validator.BindURI(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	codes, err := h.gradebook.TopStudents(c.Request.Context(), req.DBSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dbsize": req.DBSize, "stud_codes": codes})
}

func (h *GradeHandler) average(c *gin.Context, query func(context.Context, string, string) (float64, error)) {
	var req model.CodeRequest
	if fields := validator.BindURI(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	avg, err := query(c.Request.Context(), req.Code, req.DBSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, averageResult{Code: req.Code, DBSize: req.DBSize, Average: avg})
}
