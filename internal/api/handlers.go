package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orchidbreed/adapters/excel"
	"orchidbreed/app"
	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/internal/errors"
)

// AssessmentResponse is an assessment plus its narrative rendered to HTML
type AssessmentResponse struct {
	breeding.CompatibilityAssessment
	NarrativeHTML string `json:"narrative_html,omitempty"`
}

// ProgramRequest is the body of POST /api/programs
type ProgramRequest struct {
	SpecimenIDs []string `json:"specimen_ids" binding:"required"`
	Persist     bool     `json:"persist"`
}

func (s *Server) handleAssessPair(c *gin.Context) {
	enrich, err := boolQuery(c, "enrich", true)
	if err != nil {
		s.writeError(c, err)
		return
	}
	persist, err := boolQuery(c, "persist", false)
	if err != nil {
		s.writeError(c, err)
		return
	}

	result, err := s.service.AssessPair(c.Request.Context(), app.PairRequest{
		A:       core.SpecimenID(c.Param("a")),
		B:       core.SpecimenID(c.Param("b")),
		Enrich:  enrich,
		Persist: persist,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := AssessmentResponse{CompatibilityAssessment: *result}
	if result.HasNarrative() {
		resp.NarrativeHTML = RenderNarrative(result.Narrative)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFindPartners(c *gin.Context) {
	maxResults := 0
	if raw := c.Query("max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(c, errors.InvalidInput(fmt.Sprintf("invalid max %q", raw)))
			return
		}
		maxResults = v
	}

	var traits []string
	for _, t := range c.QueryArray("trait") {
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				traits = append(traits, part)
			}
		}
	}

	matches, err := s.service.FindPartners(c.Request.Context(), app.PartnerRequest{
		ID:            core.SpecimenID(c.Param("id")),
		DesiredTraits: traits,
		MaxResults:    maxResults,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": matches, "count": len(matches)})
}

func (s *Server) handleAnalyzeProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errors.InvalidInput("invalid request body: "+err.Error()))
		return
	}

	ids := make([]core.SpecimenID, len(req.SpecimenIDs))
	for i, id := range req.SpecimenIDs {
		ids[i] = core.SpecimenID(strings.TrimSpace(id))
	}

	report, err := s.service.AnalyzeProgram(c.Request.Context(), app.ProgramRequest{IDs: ids, Persist: req.Persist})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleGetReport(c *gin.Context) {
	report, err := s.service.GetReport(c.Request.Context(), core.ReportID(c.Param("id")))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleExportReport(c *gin.Context) {
	report, err := s.service.GetReport(c.Request.Context(), core.ReportID(c.Param("id")))
	if err != nil {
		s.writeError(c, err)
		return
	}

	f, err := excel.BuildReportWorkbook(report)
	if err != nil {
		s.writeError(c, errors.Wrap(err, "failed to build workbook"))
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="program-%s.xlsx"`, report.ID))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		s.logger.Error("failed to stream workbook for %s: %v", report.ID, err)
	}
}

func (s *Server) handleUsage(c *gin.Context) {
	window := 24 * time.Hour
	if raw := c.Query("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			s.writeError(c, errors.InvalidInput(fmt.Sprintf("invalid window %q", raw)))
			return
		}
		window = d
	}

	summary, err := s.usage.Summary(c.Request.Context(), window)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	appErr := errors.FromDomain(err)
	c.JSON(status, gin.H{"error": appErr.Error(), "code": appErr.Code})
}

func boolQuery(c *gin.Context, key string, def bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.InvalidInput(fmt.Sprintf("invalid %s %q", key, raw))
	}
	return v, nil
}
