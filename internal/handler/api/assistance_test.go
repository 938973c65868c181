//go:build unit

package api_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/handler"
	"candidate-assistance/internal/handler/api"
	reqdto "candidate-assistance/internal/handler/dto/request"
	resdto "candidate-assistance/internal/handler/dto/response"
	"candidate-assistance/internal/handler/middleware"
	"candidate-assistance/internal/infra/importer"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/config"
	"candidate-assistance/internal/pkg/jwt"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/assistance"
	"candidate-assistance/internal/usecase/auth"
	"candidate-assistance/tests/common/authtest"
	"candidate-assistance/tests/common/httptest"
	"candidate-assistance/tests/common/memstore"
	"candidate-assistance/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

var (
	proctored    = resource.Key{Provider: "DUOLINGO", ServiceCode: "DUOLINGO_TEST_PROCTORED"}
	nonProctored = resource.Key{Provider: "DUOLINGO", ServiceCode: "DUOLINGO_TEST_NON_PROCTORED"}
	baseTime     = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
)

const basePath = "/api/services/duolingo/duolingo_test_proctored"

type AssistanceHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	store    *memstore.Store
	viewer   string
	operator string
	admin    string
}

func (s *AssistanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.store = memstore.New()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := allocation.NewEngine(s.store, clk, nil, nil, logger)
	imp := importer.NewDuolingoImporter(s.store, time.UTC, logger)

	var services []*assistance.Service
	for _, key := range []resource.Key{proctored, nonProctored} {
		svc, err := assistance.NewService(assistance.Strategy{
			Provider:    key.Provider,
			ServiceCode: key.ServiceCode,
			Allocator:   allocation.NewOldestExpiryFirst(key, clk),
			Importer:    imp,
		}, engine, s.store, assistance.WithLogger(logger))
		s.Require().NoError(err)
		services = append(services, svc)
	}
	registry, err := assistance.NewRegistry(services...)
	s.Require().NoError(err)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	authMiddleware := middleware.NewAuthMiddleware(auth.NewTokenValidator(jwtService))

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log), prometheus.NewRegistry(),
		api.NewAssistanceHandler(registry), authMiddleware)

	tokens := authtest.NewJWTHelper(cfg.JWT)
	s.viewer, _ = tokens.GenerateToken(s.T(), actor.RoleViewer)
	s.operator, _ = tokens.GenerateToken(s.T(), actor.RoleOperator)
	s.admin, _ = tokens.GenerateToken(s.T(), actor.RoleAdmin)
}

func TestAssistanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistanceHandlerTestSuite))
}

func (s *AssistanceHandlerTestSuite) stock(key resource.Key, codes ...string) {
	for i, code := range codes {
		expires := baseTime.Add(time.Duration(i+1) * 24 * time.Hour)
		s.store.AddResource(key, code, resource.StatusAvailable, &expires)
	}
}

func (s *AssistanceHandlerTestSuite) TestHealthAndMetrics() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *AssistanceHandlerTestSuite) TestListServices() {
	var body []resdto.ServiceKeyResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services", nil, s.viewer)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

	s.Require().Len(body, 2)
	s.Equal("DUOLINGO::DUOLINGO_TEST_NON_PROCTORED", body[0].Key)
	s.Equal("DUOLINGO::DUOLINGO_TEST_PROCTORED", body[1].Key)
}

func (s *AssistanceHandlerTestSuite) TestAssignToCandidate() {
	s.stock(proctored, "P-2", "P-3")
	cand := s.store.AddCandidate("C-001", "c1@example.com")
	path := fmt.Sprintf("%s/candidates/%s/assignments", basePath, cand.ID())

	tests := []struct {
		name       string
		path       string
		token      string
		expectCode int
		expectMsg  string
	}{
		{name: "no token", path: path, token: "", expectCode: http.StatusUnauthorized},
		{name: "閲覧者は不可", path: path, token: s.viewer, expectCode: http.StatusForbidden, expectMsg: "Insufficient permissions"},
		{name: "invalid candidate id", path: basePath + "/candidates/not-a-uuid/assignments", token: s.operator, expectCode: http.StatusBadRequest, expectMsg: "Invalid candidateId"},
		{name: "unknown service", path: fmt.Sprintf("/api/services/toefl/ibt/candidates/%s/assignments", cand.ID()), token: s.operator, expectCode: http.StatusNotFound},
		{name: "unknown candidate", path: fmt.Sprintf("%s/candidates/%s/assignments", basePath, uuid.New()), token: s.operator, expectCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tt.path, nil, tt.token)
			httptest.AssertErrorResponse(s.T(), w, tt.expectCode, tt.expectMsg)
		})
	}

	s.Run("基本成功ケース", func() {
		var body resdto.AssignmentResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.operator)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)

		s.Equal("ASSIGNED", body.Status)
		s.Equal(cand.ID().String(), body.CandidateID)
		s.Require().NotNil(body.Resource)
		s.Equal("P-2", body.Resource.Code)
		s.Equal("ASSIGNED", body.Resource.Status)
	})

	s.Run("second assign conflicts", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.operator)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

func (s *AssistanceHandlerTestSuite) TestAssignToCandidate_EmptyPool() {
	cand := s.store.AddCandidate("C-002", "c2@example.com")
	path := fmt.Sprintf("%s/candidates/%s/assignments", basePath, cand.ID())

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.operator)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
}

func (s *AssistanceHandlerTestSuite) TestReassignAndHistory() {
	s.stock(proctored, "P-1", "P-2")
	cand := s.store.AddCandidate("C-010", "c10@example.com")

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		fmt.Sprintf("%s/candidates/%s/assignments", basePath, cand.ID()), nil, s.operator)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var reassigned resdto.AssignmentResponse
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, basePath+"/candidates/number/C-010/reassign", nil, s.operator)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &reassigned)
	s.Equal("P-2", reassigned.Resource.Code)

	var history []resdto.AssignmentResponse
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		fmt.Sprintf("%s/candidates/%s/assignments", basePath, cand.ID()), nil, s.viewer)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &history)
	s.Require().Len(history, 2)
	s.Equal("REASSIGNED", history[0].Status)
	s.Equal("ASSIGNED", history[1].Status)

	var held []resdto.ResourceResponse
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		fmt.Sprintf("%s/candidates/%s/resources", basePath, cand.ID()), nil, s.viewer)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &held)
	s.Require().Len(held, 2)
	s.Equal("P-1", held[0].Code)
	s.Equal("DISABLED", held[0].Status)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, basePath+"/candidates/number/C-404/reassign", nil, s.operator)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
}

func (s *AssistanceHandlerTestSuite) TestAssignToList() {
	c1 := s.store.AddCandidate("C-101", "a@example.com")
	c2 := s.store.AddCandidate("C-102", "b@example.com")
	listID := s.store.AddSavedList("cohort", c1, c2)
	path := fmt.Sprintf("%s/lists/%s/assignments", basePath, listID)

	s.Run("在庫不足", func() {
		s.stock(proctored, "L-1")
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.operator)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "only 1")
		s.Equal(0, s.store.TotalAssignments())
	})

	s.Run("success", func() {
		s.stock(proctored, "L-2")
		var body []resdto.AssignmentResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.operator)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Len(body, 2)
	})

	s.Run("unknown list", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			fmt.Sprintf("%s/lists/%s/assignments", basePath, uuid.New()), nil, s.operator)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *AssistanceHandlerTestSuite) TestAvailableAndCounts() {
	s.stock(proctored, "P-1", "P-2")
	s.stock(nonProctored, "N-1")

	var available []resdto.ResourceResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/available", nil, s.viewer)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &available)
	s.Len(available, 2)

	tests := []struct {
		name   string
		query  string
		expect resdto.CountResponse
	}{
		{name: "service scope", query: "", expect: resdto.CountResponse{Provider: "DUOLINGO", ServiceCode: "DUOLINGO_TEST_PROCTORED", Available: 2}},
		{name: "provider scope", query: "?scope=provider", expect: resdto.CountResponse{Provider: "DUOLINGO", Available: 3}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			var body resdto.CountResponse
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/available/count"+tt.query, nil, s.viewer)
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			s.Equal(tt.expect, body)
		})
	}
}

func (s *AssistanceHandlerTestSuite) TestResourceLookups() {
	s.stock(proctored, "P-1", "P-2")
	cand := s.store.AddCandidate("C-200", "c200@example.com")

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		fmt.Sprintf("%s/candidates/%s/assignments", basePath, cand.ID()), nil, s.operator)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	s.Run("by code", func() {
		var body resdto.ResourceResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/P-1", nil, s.viewer)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("ASSIGNED", body.Status)
	})

	s.Run("unknown code", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/NOPE", nil, s.viewer)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("candidate of assigned code", func() {
		var body resdto.CandidateResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/P-1/candidate", nil, s.viewer)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("C-200", body.Number)
	})

	s.Run("未割当は204", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, basePath+"/resources/P-2/candidate", nil, s.viewer)
		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *AssistanceHandlerTestSuite) TestUpdateResourceStatus() {
	id := s.store.AddResource(proctored, "P-9", resource.StatusAvailable, nil)
	path := basePath + "/resources/P-9/status"
	valid := reqdto.UpdateResourceStatusRequest{Status: "REDEEMED"}

	tests := []struct {
		name       string
		token      string
		body       any
		expectCode int
	}{
		{name: "operator forbidden", token: s.operator, body: testutil.DtoMap(s.T(), valid), expectCode: http.StatusForbidden},
		{name: "missing status", token: s.admin, body: testutil.DtoMap(s.T(), valid, testutil.Field("status", nil)), expectCode: http.StatusBadRequest},
		{name: "invalid status", token: s.admin, body: testutil.DtoMap(s.T(), valid, testutil.Field("status", "LOST")), expectCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, tt.body, tt.token)
			httptest.AssertErrorResponse(s.T(), w, tt.expectCode, "")
		})
	}

	s.Run("基本成功ケース", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{"status": "redeemed"}, s.admin)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())
		s.Equal(resource.StatusRedeemed, s.store.ResourceStatus(id))
	})

	s.Run("unknown code", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, basePath+"/resources/NOPE/status", map[string]any{"status": "REDEEMED"}, s.admin)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *AssistanceHandlerTestSuite) TestImportInventory() {
	csv := "\ufeffCoupon Code, Expiration Date ,Date Sent,Coupon Status\n" +
		"ACC-1,2025/12/31 23:59:59,,\n" +
		"NONP-1,2025/12/31 23:59,,\n" +
		"ACC-1,2025/12/31 23:59:59,,\n" +
		"ACC-2,2025/12/31 23:59:59,2025/04/01 10:00,SENT\n"

	var summary resdto.ImportSummaryResponse
	w := httptest.PerformUpload(s.T(), s.router, http.MethodPost, basePath+"/inventory", "file", "coupons.csv", []byte(csv), s.admin)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)
	s.Equal(resdto.ImportSummaryResponse{Read: 4, Imported: 3, Skipped: 1}, summary)

	s.Equal(1, s.store.CountResources(proctored, resource.StatusAvailable))
	s.Equal(1, s.store.CountResources(proctored, resource.StatusAssigned))
	s.Equal(1, s.store.CountResources(nonProctored, resource.StatusAvailable))

	s.Run("missing column", func() {
		w := httptest.PerformUpload(s.T(), s.router, http.MethodPost, basePath+"/inventory", "file", "bad.csv", []byte("coupon code\nX-1\n"), s.admin)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("no file", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, basePath+"/inventory", nil, s.admin)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "file is required")
	})

	s.Run("operator forbidden", func() {
		w := httptest.PerformUpload(s.T(), s.router, http.MethodPost, basePath+"/inventory", "file", "coupons.csv", []byte(csv), s.operator)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *AssistanceHandlerTestSuite) TestImportInventoryFromBucket_NotConfigured() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, basePath+"/inventory/bucket", map[string]any{"key": "coupons.csv"}, s.admin)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "no inventory bucket")
}

func (s *AssistanceHandlerTestSuite) TestExpireOverdueResources() {
	past := baseTime.Add(-time.Hour)
	s.store.AddResource(proctored, "OLD-1", resource.StatusAvailable, &past)
	s.stock(proctored, "NEW-1")

	var body resdto.ExpireResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, basePath+"/resources/expire", nil, s.admin)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal(1, body.Expired)
}
