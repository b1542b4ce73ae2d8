package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/internal/service"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
	"github.com/Raikadier/Captus-sub001/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DailyGoalRequest struct {
	DailyGoal int `json:"daily_goal"`
}

type CategoryStatsResponse struct {
	UserID     string                 `json:"uid"`
	Categories []entity.CategoryStats `json:"categories"`
}

type MotivationResponse struct {
	Message string `json:"message"`
}

type AchievementsResponse struct {
	UserID       string                   `json:"uid"`
	Achievements []entity.AchievementView `json:"achievements"`
}

type EvaluationResponse struct {
	Unlocked   []string `json:"unlocked"`
	Progressed []string `json:"progressed"`
	Skipped    []string `json:"skipped"`
	Failed     []string `json:"failed"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := httputil.ReadJSON(r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	user, err := s.userService.Register(r.Context(), &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password format", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.ReadJSON(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	user, err := s.userService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.authorizedUID(w, r, "get statistics")
	if !ok {
		return
	}
	overview, err := s.statsService.GetStatistics(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("statistics provided")
}

func (s *Server) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get weekly stats")
	if !ok {
		return
	}
	weekly, err := s.statsService.GetWeeklyStats(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get weekly stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, weekly)
}

func (s *Server) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get task stats")
	if !ok {
		return
	}
	tasks, err := s.statsService.GetTaskStats(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get task stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
}

func (s *Server) GetStreakStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get streak stats")
	if !ok {
		return
	}
	streak, err := s.statsService.GetStreakStats(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get streak stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get category stats")
	if !ok {
		return
	}
	categories, err := s.statsService.GetCategoryStats(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get category stats", err)
		return
	}
	if categories == nil {
		categories = []entity.CategoryStats{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CategoryStatsResponse{
		UserID:     uid.String(),
		Categories: categories,
	})
}

func (s *Server) GetMotivationalMessage(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get motivational message")
	if !ok {
		return
	}
	msg, err := s.statsService.GetMotivationalMessage(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get motivational message", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MotivationResponse{Message: msg})
}

func (s *Server) UpdateDailyGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.authorizedUID(w, r, "update daily goal")
	if !ok {
		return
	}
	var req DailyGoalRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("update daily goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.statsService.UpdateDailyGoal(r.Context(), uid, req.DailyGoal); err != nil {
		s.writeServiceError(w, r, "update daily goal", err)
		return
	}
	streak, err := s.statsService.GetStreakStats(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "update daily goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
	logger.Info("daily goal updated", slog.Int("daily_goal", req.DailyGoal))
}

// RefreshStatistics recounts aggregates and re-checks the streak, returning the fresh overview.
func (s *Server) RefreshStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.authorizedUID(w, r, "refresh statistics")
	if !ok {
		return
	}
	if err := s.statsService.RefreshAggregates(r.Context(), uid); err != nil {
		s.writeServiceError(w, r, "refresh statistics", err)
		return
	}
	if err := s.statsService.EvaluateStreak(r.Context(), uid); err != nil {
		s.writeServiceError(w, r, "refresh statistics", err)
		return
	}
	overview, err := s.statsService.GetStatistics(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "refresh statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("statistics refreshed")
}

func (s *Server) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.authorizedUID(w, r, "check achievements")
	if !ok {
		return
	}
	report, err := s.statsService.EvaluateAchievements(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "check achievements", err)
		return
	}
	resp := EvaluationResponse{
		Unlocked:   nonNil(report.Unlocked),
		Progressed: nonNil(report.Progressed),
		Skipped:    nonNil(report.Skipped),
		Failed:     []string{},
	}
	for _, f := range report.Failed {
		resp.Failed = append(resp.Failed, f.AchievementID)
	}
	if len(resp.Failed) > 0 {
		logger.Warn("achievements checked with failures", slog.Any("failed", resp.Failed))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get achievements")
	if !ok {
		return
	}
	view, err := s.statsService.GetAchievementsView(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{
		UserID:       uid.String(),
		Achievements: view,
	})
}

func (s *Server) GetAchievementsSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.authorizedUID(w, r, "get achievements summary")
	if !ok {
		return
	}
	summary, err := s.statsService.GetAchievementsSummary(r.Context(), uid)
	if err != nil {
		s.writeServiceError(w, r, "get achievements summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) authorizedUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	switch {
	case errors.Is(err, errorvalues.ErrInvalidDailyGoal), errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+op, nil)
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
