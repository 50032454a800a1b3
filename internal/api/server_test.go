package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"orchidbreed/adapters/memory"
	"orchidbreed/app"
	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal"
	"orchidbreed/internal/engine"
	"orchidbreed/internal/engine/reference"
	"orchidbreed/internal/usage"
)

type staticEnricher struct {
	text string
	err  error
}

func (e staticEnricher) Summarize(context.Context, breeding.CompatibilityAssessment) (string, error) {
	return e.text, e.err
}

func newTestServer(t *testing.T, enricher staticEnricher) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := internal.NewLogger("test", internal.LogLevelError)
	specimens := memory.NewSpecimenRepository(
		specimen.SpecimenRef{ID: "c1", Genus: "Cattleya", Species: "labiata", Notes: "fall bloomer"},
		specimen.SpecimenRef{ID: "c2", Genus: "Cattleya", Species: "mossiae", Notes: "fall bloomer"},
		specimen.SpecimenRef{ID: "l1", Genus: "Laelia", Species: "anceps", Notes: "compact plant"},
		specimen.SpecimenRef{ID: "v1", Genus: "Vanda", Species: "coerulea"},
	)
	eng := engine.NewEngine(reference.Default(), engine.DefaultOptions())
	svc := app.NewBreedingService(eng, specimens, logger).
		WithEnricher(enricher).
		WithAssessmentRepository(memory.NewAssessmentRepository())

	return NewServer(svc, usage.NewService(memory.NewLLMUsageRepository(), logger), logger)
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, staticEnricher{})
	w := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAssessPairEndpoint(t *testing.T) {
	s := newTestServer(t, staticEnricher{text: "A **strong** sibling cross."})

	w := do(t, s, http.MethodGet, "/api/pairs/c1/c2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.CompatibilityScore, 80.0)
	assert.Equal(t, "A **strong** sibling cross.", resp.Narrative)
	assert.Contains(t, resp.NarrativeHTML, "<strong>strong</strong>")

	w = do(t, s, http.MethodGet, "/api/pairs/c1/c2?enrich=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "narrative")
}

func TestAssessPairEndpointErrors(t *testing.T) {
	s := newTestServer(t, staticEnricher{})

	w := do(t, s, http.MethodGet, "/api/pairs/c1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w = do(t, s, http.MethodGet, "/api/pairs/c1/c2?enrich=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindPartnersEndpoint(t *testing.T) {
	s := newTestServer(t, staticEnricher{})

	w := do(t, s, http.MethodGet, "/api/specimens/c1/partners?max=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Partners []breeding.PartnerMatch `json:"partners"`
		Count    int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	for _, p := range resp.Partners {
		assert.NotEqual(t, "c1", p.Specimen.ID.String())
	}

	w = do(t, s, http.MethodGet, "/api/specimens/c1/partners?trait=compact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "l1", resp.Partners[0].Specimen.ID.String())

	w = do(t, s, http.MethodGet, "/api/specimens/c1/partners?max=lots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgramEndpoints(t *testing.T) {
	s := newTestServer(t, staticEnricher{})

	w := do(t, s, http.MethodPost, "/api/programs", []byte(`{"specimen_ids":["c1"]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INSUFFICIENT_INPUT")

	w = do(t, s, http.MethodPost, "/api/programs", []byte(`{"specimen_ids":["c1","c2","l1","v1"],"persist":true}`))
	require.Equal(t, http.StatusOK, w.Code)

	var report breeding.ProgramReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 6, report.Overview.PairCount)

	w = do(t, s, http.MethodGet, "/api/programs/"+report.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/api/programs/"+report.ID.String()+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Pairs")

	w = do(t, s, http.MethodGet, "/api/programs/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsageEndpoint(t *testing.T) {
	s := newTestServer(t, staticEnricher{})

	w := do(t, s, http.MethodGet, "/api/usage?window=1h", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_tokens":0`)

	w = do(t, s, http.MethodGet, "/api/usage?window=-1h", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderNarrative(t *testing.T) {
	assert.Empty(t, RenderNarrative("   "))
	out := RenderNarrative("Expect *vigorous* seedlings.<script>alert(1)</script>")
	assert.Contains(t, out, "<em>vigorous</em>")
	assert.NotContains(t, out, "<script>")
}
