package api

import (
	"net/http"

	reqdto "candidate-assistance/internal/handler/dto/request"
	resdto "candidate-assistance/internal/handler/dto/response"
	"candidate-assistance/internal/handler/httperr"
	"candidate-assistance/internal/handler/middleware"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/assistance"
	"candidate-assistance/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssistanceHandler struct {
	registry *assistance.Registry
}

func NewAssistanceHandler(registry *assistance.Registry) *AssistanceHandler {
	return &AssistanceHandler{registry: registry}
}

// resolves the service named by the :provider and :serviceCode path params
func (h *AssistanceHandler) service(c *gin.Context) (*assistance.Service, bool) {
	svc, err := h.registry.ForProviderAndServiceCode(c.Param("provider"), c.Param("serviceCode"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return nil, false
	}
	return svc, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary List registered services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceKeyResponse
// @Router /services [get]
func (h *AssistanceHandler) ListServices(c *gin.Context) {
	all := h.registry.All()
	res := make([]*resdto.ServiceKeyResponse, len(all))
	for i, svc := range all {
		res[i] = &resdto.ServiceKeyResponse{
			Provider:    svc.Provider().String(),
			ServiceCode: svc.ServiceCode().String(),
			Key:         svc.Key().String(),
		}
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Assign a resource to a candidate
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param candidateId path string true "Candidate ID"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/candidates/{candidateId}/assignments [post]
func (h *AssistanceHandler) AssignToCandidate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	candidateID, ok := uuidParam(c, "candidateId")
	if !ok {
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("actor missing"), "Unauthorized", nil)
		return
	}

	a, err := svc.AssignToCandidate(c.Request.Context(), candidateID, act)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignment(a))
}

// @Summary Reassign a candidate's resource
// @Description Supersedes the candidate's current assignment with a fresh resource
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param candidateNumber path string true "Candidate number"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/candidates/number/{candidateNumber}/reassign [post]
func (h *AssistanceHandler) ReassignForCandidate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("actor missing"), "Unauthorized", nil)
		return
	}

	a, err := svc.ReassignForCandidate(c.Request.Context(), c.Param("candidateNumber"), act)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignment(a))
}

// @Summary Assign resources to a saved list
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param listId path string true "Saved list ID"
// @Success 201 {array} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/lists/{listId}/assignments [post]
func (h *AssistanceHandler) AssignToList(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	listID, ok := uuidParam(c, "listId")
	if !ok {
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("actor missing"), "Unauthorized", nil)
		return
	}

	created, err := svc.AssignToList(c.Request.Context(), listID, act)
	if err != nil {
		var detail any
		if len(created) > 0 {
			detail = gin.H{"created": resdto.FromAssignments(created)}
		}
		httperr.AbortWithDomainErrorDetail(c, err, detail)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignments(created))
}

// @Summary Ledger rows of a candidate
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param candidateId path string true "Candidate ID"
// @Success 200 {array} resdto.AssignmentResponse
// @Router /services/{provider}/{serviceCode}/candidates/{candidateId}/assignments [get]
func (h *AssistanceHandler) GetAssignmentsForCandidate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	candidateID, ok := uuidParam(c, "candidateId")
	if !ok {
		return
	}

	rows, err := svc.GetAssignmentsForCandidate(c.Request.Context(), candidateID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignments(rows))
}

// @Summary Resources held by a candidate
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param candidateId path string true "Candidate ID"
// @Success 200 {array} resdto.ResourceResponse
// @Router /services/{provider}/{serviceCode}/candidates/{candidateId}/resources [get]
func (h *AssistanceHandler) GetResourcesForCandidate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	candidateID, ok := uuidParam(c, "candidateId")
	if !ok {
		return
	}

	rows, err := svc.GetResourcesForCandidate(c.Request.Context(), candidateID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResources(rows))
}

// @Summary Available resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Success 200 {array} resdto.ResourceResponse
// @Router /services/{provider}/{serviceCode}/resources/available [get]
func (h *AssistanceHandler) GetAvailableResources(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	rows, err := svc.GetAvailableResources(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResources(rows))
}

// @Summary Count available resources
// @Description scope=provider counts across every service code of the provider
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param scope query string false "provider"
// @Success 200 {object} resdto.CountResponse
// @Router /services/{provider}/{serviceCode}/resources/available/count [get]
func (h *AssistanceHandler) CountAvailable(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	res := resdto.CountResponse{Provider: svc.Provider().String()}
	var err error
	if c.Query("scope") == "provider" {
		res.Available, err = svc.CountAvailableForProvider(c.Request.Context())
	} else {
		res.ServiceCode = svc.ServiceCode().String()
		res.Available, err = svc.CountAvailableForProviderAndService(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resource by code
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param code path string true "Resource code"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/resources/{code} [get]
func (h *AssistanceHandler) GetResourceForResourceCode(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	res, err := svc.GetResourceForResourceCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResource(res))
}

// @Summary Candidate holding a resource
// @Description 204 when the resource was never assigned
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param code path string true "Resource code"
// @Success 200 {object} resdto.CandidateResponse
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/resources/{code}/candidate [get]
func (h *AssistanceHandler) GetCandidateForResourceCode(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	cand, err := svc.GetCandidateForResourceCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if cand == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidate(cand))
}

// @Summary Update resource status
// @Tags resources
// @Accept json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param code path string true "Resource code"
// @Param request body reqdto.UpdateResourceStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/resources/{code}/status [put]
func (h *AssistanceHandler) UpdateResourceStatus(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req reqdto.UpdateResourceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	if err := svc.UpdateResourceStatus(c.Request.Context(), c.Param("code"), status); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Import inventory file
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param file formData file true "Provider inventory CSV"
// @Success 200 {object} resdto.ImportSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/inventory [post]
func (h *AssistanceHandler) ImportInventory(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "unreadable file", nil)
		return
	}
	defer f.Close()

	summary, err := svc.ImportInventory(c.Request.Context(), f)
	h.writeSummary(c, summary, err)
}

// @Summary Import inventory from the bucket
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Param request body reqdto.BucketImportRequest true "Object key"
// @Success 200 {object} resdto.ImportSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /services/{provider}/{serviceCode}/inventory/bucket [post]
func (h *AssistanceHandler) ImportInventoryFromBucket(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req reqdto.BucketImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	summary, err := svc.ImportInventoryFromBucket(c.Request.Context(), req.Key)
	h.writeSummary(c, summary, err)
}

func (h *AssistanceHandler) writeSummary(c *gin.Context, summary *shared.ImportSummary, err error) {
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromImportSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Run the expiry sweep now
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider"
// @Param serviceCode path string true "Service code"
// @Success 200 {object} resdto.ExpireResponse
// @Router /services/{provider}/{serviceCode}/resources/expire [post]
func (h *AssistanceHandler) ExpireOverdueResources(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	n, err := svc.ExpireOverdueResources(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ExpireResponse{Expired: n})
}
