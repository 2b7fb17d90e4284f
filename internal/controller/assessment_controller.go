package controller

import (
	"errors"
	"net/http"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/service"
	"literacy_dapat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
	}
}

// List godoc
// @Summary List assessments
// @Description Return all assessments, newest first
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {array} model.Assessment
// @Failure 500 {object} object "Internal error"
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	assessments, err := c.AssessmentService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// swagger:model CreateAssessmentRequest
type CreateAssessmentRequest struct {
	StudentAge        int    `json:"student_age"`
	StudentGender     string `json:"student_gender"`
	StudentGradeLevel string `json:"student_grade_level"`
	StudentCity       string `json:"student_city"`
	StudentSchool     string `json:"student_school"`
	StudentBarangay   string `json:"student_barangay"`
	StudentRegion     string `json:"student_region"`
}

// Create godoc
// @Summary Create an assessment
// @Description Insert a new assessment with the student demographic fields
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateAssessmentRequest true "Student demographics"
// @Success 201 {object} model.Assessment
// @Failure 500 {object} object "Internal error"
// @Router /api/assessments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	var req CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment := &model.Assessment{
		StudentAge:        req.StudentAge,
		StudentGender:     req.StudentGender,
		StudentGradeLevel: req.StudentGradeLevel,
		StudentCity:       req.StudentCity,
		StudentSchool:     req.StudentSchool,
		StudentBarangay:   req.StudentBarangay,
		StudentRegion:     req.StudentRegion,
	}

	if err := c.AssessmentService.Create(assessment); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, assessment)
}

// GetByID godoc
// @Summary Get an assessment
// @Tags assessments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Assessment ID"
// @Success 200 {object} model.Assessment
// @Failure 404 {object} object "Assessment not found"
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) GetByID(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	assessment, err := c.AssessmentService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx, util.ErrAssessmentNotFound.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, assessment)
}

// swagger:model DeleteAssessmentsRequest
type DeleteAssessmentsRequest struct {
	IDs []uint `json:"ids"`
}

// DeleteMany godoc
// @Summary Delete assessments in bulk
// @Description Delete every assessment in the id list; unknown ids are skipped
// @Tags assessments
// @Accept  json
// @Produce  json
// @Param   body body DeleteAssessmentsRequest true "Assessment ids"
// @Success 200 {object} object "Assessments deleted successfully"
// @Failure 400 {object} object "No assessments selected for deletion"
// @Router /api/assessments/delete [post]
func (c *AssessmentController) DeleteMany(ctx *gin.Context) {
	var req DeleteAssessmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrNoAssessmentIDs.Error())
		return
	}

	if err := c.AssessmentService.DeleteMany(req.IDs); err != nil {
		if errors.Is(err, util.ErrNoAssessmentIDs) {
			util.BadRequest(ctx, util.ErrNoAssessmentIDs.Error())
		} else {
			util.Message(ctx, http.StatusInternalServerError, "Error deleting assessments")
		}
		return
	}

	util.Message(ctx, http.StatusOK, "Assessments deleted successfully")
}

// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus godoc
// @Summary Update an assessment's status
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Assessment ID"
// @Param   body body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Assessment
// @Failure 400 {object} object "Missing status field"
// @Failure 404 {object} object "Assessment not found"
// @Router /api/assessments/{id}/status [put]
func (c *AssessmentController) SetStatus(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ErrorMessage(ctx, http.StatusBadRequest, util.ErrMissingStatusField.Error())
		return
	}

	assessment, err := c.AssessmentService.SetStatus(id, req.Status)
	if err != nil {
		c.writeUpdateError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// swagger:model UpdateLevelRequest
type UpdateLevelRequest struct {
	Level string `json:"level"`
}

// SetLevel godoc
// @Summary Update an assessment's level
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Assessment ID"
// @Param   body body UpdateLevelRequest true "New level"
// @Success 200 {object} model.Assessment
// @Failure 400 {object} object "Missing level field"
// @Failure 404 {object} object "Assessment not found"
// @Router /api/assessments/{id}/level [put]
func (c *AssessmentController) SetLevel(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req UpdateLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ErrorMessage(ctx, http.StatusBadRequest, util.ErrMissingLevelField.Error())
		return
	}

	assessment, err := c.AssessmentService.SetLevel(id, req.Level)
	if err != nil {
		c.writeUpdateError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// The status/level endpoints report failures under an "error" key, unlike
// the rest of the API.
func (c *AssessmentController) writeUpdateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrMissingStatusField), errors.Is(err, util.ErrMissingLevelField):
		util.ErrorMessage(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, util.ErrAssessmentNotFound):
		util.ErrorMessage(ctx, http.StatusNotFound, err.Error())
	default:
		util.ErrorMessage(ctx, http.StatusInternalServerError, "Internal Server Error")
	}
}
