package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casewell/go-housing-hazards/internal/assess"
	"github.com/casewell/go-housing-hazards/internal/models"
	"github.com/casewell/go-housing-hazards/internal/notify"
	"github.com/casewell/go-housing-hazards/internal/packs"
	"github.com/casewell/go-housing-hazards/internal/repository"
)

type Handler struct {
	service     *assess.Service
	repo        repository.AssessmentRepository
	registry    *packs.Registry
	broadcaster *notify.Broadcaster
}

func NewHandler(service *assess.Service, repo repository.AssessmentRepository, registry *packs.Registry, broadcaster *notify.Broadcaster) *Handler {
	return &Handler{
		service:     service,
		repo:        repo,
		registry:    registry,
		broadcaster: broadcaster,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/assessments", h.createAssessment)
	r.POST("/api/assessments/queue", h.queueAssessment)
	r.GET("/api/assessments", h.listAssessments)
	r.GET("/api/assessments/:id", h.getAssessment)
	r.GET("/api/packs/:area", h.getPack)
	r.GET("/api/stream", h.streamAssessments)
	r.GET("/health", h.health)
}

func (h *Handler) createAssessment(c *gin.Context) {
	var req assess.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PracticeArea == "" {
		req.PracticeArea = packs.PracticeAreaHousingDisrepair
	}
	req.Input.LandlordType = models.ParseLandlordType(string(req.Input.LandlordType))

	a, err := h.service.Assess(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess case"})
		return
	}

	c.JSON(http.StatusCreated, a)
}

// queueAssessment hands the case to the worker pool instead of evaluating
// inline. The result is persisted and broadcast like any other assessment;
// callers poll the list endpoint or the stream by case ref.
func (h *Handler) queueAssessment(c *gin.Context) {
	var req assess.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PracticeArea == "" {
		req.PracticeArea = packs.PracticeAreaHousingDisrepair
	}
	req.Input.LandlordType = models.ParseLandlordType(string(req.Input.LandlordType))

	h.service.Submit(req)

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "queued",
		"caseRef": req.CaseRef,
	})
}

func (h *Handler) listAssessments(c *gin.Context) {
	filter := repository.Filter{
		Limit: 20, // Default to 20 assessments if limit param not supplied
	}

	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}
	if s := c.Query("since"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.Since = &t
		}
	}
	if ms := c.Query("min_severity"); ms != "" {
		if sev, ok := models.ParseSeverity(ms); ok {
			filter.MinOverall = &sev
		}
	}
	if u := c.Query("urgent"); u != "" {
		if urgent, err := strconv.ParseBool(u); err == nil {
			filter.UrgentOnly = &urgent
		}
	}
	if lt := c.Query("landlord_type"); lt != "" {
		parsed := models.ParseLandlordType(lt)
		filter.LandlordType = &parsed
	}
	if ref := c.Query("case_ref"); ref != "" {
		filter.CaseRef = &ref
	}

	assessments, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch assessments"})
		return
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

func (h *Handler) getAssessment(c *gin.Context) {
	a, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch assessment"})
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) getPack(c *gin.Context) {
	pack, ok := h.registry.Get(c.Param("area"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pack registered for practice area"})
		return
	}

	c.JSON(http.StatusOK, pack)
}

// streamAssessments pushes broadcast assessments (urgent ones) to the client
// as server-sent events until the client disconnects.
func (h *Handler) streamAssessments(c *gin.Context) {
	if h.broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "streaming not available"})
		return
	}

	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Stream(func(w io.Writer) bool {
		select {
		case a, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("assessment", a)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
