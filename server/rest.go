package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/manifold"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error       string                   `json:"error"`
	Code        domain.Code              `json:"code,omitempty"`
	Permission  *domain.PermissionDenial `json:"permission,omitempty"`
	InvalidKeys []invalidKey             `json:"invalidKeys,omitempty"`
	NotFound    *domain.NotFound         `json:"notFound,omitempty"`
}

type invalidKey struct {
	KeyPath []string `json:"keyPath"`
	Error   string   `json:"error"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

func (s *Server) listServiceTypesHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.ListServiceTypes(r.Context(), manifold.ListServiceTypesRequest{Context: s.requestContext(r)})
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) previewTopicsHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.PreviewTopicsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context, req.ServiceType = s.requestContext(r), r.PathValue("id")
	res, err := s.app.PreviewTopics(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.ListServices(r.Context(), manifold.ListServicesRequest{Context: s.requestContext(r)})
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) createServiceHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.CreateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context = s.requestContext(r)
	res, err := s.app.CreateService(r.Context(), req)
	respond(w, r, http.StatusCreated, res, err)
}

func (s *Server) updateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.UpdateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context, req.ID = s.requestContext(r), r.PathValue("id")
	res, err := s.app.UpdateService(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) deleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	err := s.app.DeleteService(r.Context(), manifold.DeleteServiceRequest{Context: s.requestContext(r), ID: r.PathValue("id")})
	respond(w, r, http.StatusNoContent, nil, err)
}

func (s *Server) listServiceTopicsHandler(w http.ResponseWriter, r *http.Request) {
	req := manifold.ListServiceTopicsRequest{Context: s.requestContext(r), Service: r.PathValue("id")}
	res, err := s.app.ListServiceTopics(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) previewFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.PreviewFeedRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context = s.requestContext(r)
	res, err := s.app.PreviewFeed(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.ListAllFeeds(r.Context(), manifold.ListAllFeedsRequest{Context: s.requestContext(r)})
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.CreateFeedRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context = s.requestContext(r)
	res, err := s.app.CreateFeed(r.Context(), req)
	respond(w, r, http.StatusCreated, res, err)
}

func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.GetFeed(r.Context(), manifold.GetFeedRequest{Context: s.requestContext(r), ID: r.PathValue("id")})
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.UpdateFeedRequest
	if err := decodeJSON(r, &req); err != nil {
		renderAppError(w, r, err)
		return
	}
	req.Context, req.Feed.ID = s.requestContext(r), r.PathValue("id")
	res, err := s.app.UpdateFeed(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	err := s.app.DeleteFeed(r.Context(), manifold.DeleteFeedRequest{Context: s.requestContext(r), ID: r.PathValue("id")})
	respond(w, r, http.StatusNoContent, nil, err)
}

// feedContentHandler serves content of a feed, POST carries variable params in the body
func (s *Server) feedContentHandler(w http.ResponseWriter, r *http.Request) {
	var req manifold.FetchFeedContentRequest
	if r.Method == http.MethodPost {
		if err := decodeJSON(r, &req); err != nil {
			renderAppError(w, r, err)
			return
		}
	}
	req.Context, req.Feed = s.requestContext(r), r.PathValue("id")
	res, err := s.app.FetchFeedContent(r.Context(), req)
	respond(w, r, http.StatusOK, res, err)
}

// decodeJSON reads the request body into target, an empty body leaves target as is
func decodeJSON(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.InvalidInput("invalid request body", domain.Key(err))
}

// respond renders either the use case error or its result
func respond(w http.ResponseWriter, r *http.Request, code int, data any, err error) {
	if err != nil {
		renderAppError(w, r, err)
		return
	}
	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}
	renderJSON(w, r, code, data)
}

// statusFor maps error codes to http statuses, unclassified failures are internal
func statusFor(err error) int {
	switch domain.ErrorCode(err) {
	case domain.CodePermissionDenied:
		return http.StatusForbidden
	case domain.CodeInvalidInput:
		return http.StatusBadRequest
	case domain.CodeEntityNotFound:
		return http.StatusNotFound
	}
	if errors.Is(err, feeds.ErrServiceTypeUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// renderAppError sends the error with its code specific details
func renderAppError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	resp := errorResponse{Error: err.Error()}
	if appErr, ok := domain.AsError(err); ok {
		resp.Error, resp.Code = appErr.Message, appErr.Code
		resp.Permission, resp.NotFound = appErr.Permission, appErr.NotFound
		for _, k := range appErr.InvalidKeys {
			ik := invalidKey{KeyPath: k.KeyPath, Error: "invalid"}
			if k.KeyPath == nil {
				ik.KeyPath = []string{}
			}
			if k.Err != nil {
				ik.Error = k.Err.Error()
			}
			resp.InvalidKeys = append(resp.InvalidKeys, ik)
		}
	}
	if code >= http.StatusInternalServerError {
		log.Printf("[WARN] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, code, resp)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
