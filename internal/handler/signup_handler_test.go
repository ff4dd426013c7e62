package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"waitlist/backend/internal/handler"
	"waitlist/backend/internal/model"
	"waitlist/backend/internal/service"
	"waitlist/backend/internal/service/mock"
)

func TestSignupHandler_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, false)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/signup", map[string]interface{}{
		"email":          "Test@Example.com",
		"sheetTab":       "Beta",
		"turnstileToken": "tok-1",
		"metadata":       map[string]string{"plan": "free"},
	})
	req.Header.Set("CF-Connecting-IP", "203.0.113.9")
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SignupInput) (model.SignupRecord, error) {
			require.Equal(t, "Test@Example.com", in.Email)
			require.Equal(t, "Beta", in.Tab)
			require.Equal(t, "tok-1", in.TurnstileToken)
			require.Equal(t, "203.0.113.9", in.RemoteIP)
			return model.SignupRecord{
				Email:     "test@example.com",
				Tab:       "Beta",
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		})

	require.NoError(t, h.Submit(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusOK, &env)
	require.True(t, env.Success)

	var data struct {
		Email     string `json:"email"`
		SheetTab  string `json:"sheetTab"`
		Timestamp string `json:"timestamp"`
	}
	decodeData(t, env, &data)
	require.Equal(t, "test@example.com", data.Email)
	require.Equal(t, "Beta", data.SheetTab)
	require.Equal(t, "2026-03-01T12:00:00Z", data.Timestamp)
}

func TestSignupHandler_Submit_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, false)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPost, "/api/signup", "{not json")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Submit(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusBadRequest, &env)
	require.False(t, env.Success)
	require.Equal(t, "Validation failed", env.Error)
}

func TestSignupHandler_Submit_ValidationDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, false)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/signup", map[string]interface{}{"email": "nope"})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(model.SignupRecord{}, &service.ValidationError{Details: []string{"email must be a valid email address"}})

	require.NoError(t, h.Submit(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusBadRequest, &env)
	require.False(t, env.Success)
	require.Equal(t, "Validation failed", env.Error)
	require.Equal(t, []string{"email must be a valid email address"}, env.Details)
}

func TestSignupHandler_Submit_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"bot check", service.ErrBotCheck, http.StatusBadRequest, "Turnstile verification failed"},
		{"duplicate", service.ErrDuplicate, http.StatusConflict, "Email already registered"},
		{"storage", service.ErrStorage, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock.NewMockSignupService(ctrl)
			h := handler.NewSignupHandler(mockService, false, false)

			e := newTestEcho()
			req := newJSONRequest(http.MethodPost, "/api/signup", map[string]interface{}{"email": "a@example.com"})
			c, rec := newTestContext(e, req)

			mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.SignupRecord{}, tc.err)

			require.NoError(t, h.Submit(c))

			var env envelope
			assertJSONResponse(t, rec, tc.wantStatus, &env)
			require.False(t, env.Success)
			require.Equal(t, tc.wantError, env.Error)
		})
	}
}

func TestSignupHandler_SubmitExtended_PassesAllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, true, false)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/signup/extended", map[string]interface{}{
		"email":  "a@example.com",
		"name":   "Ada",
		"source": "landing-page",
		"tags":   []string{"early"},
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SignupInput) (model.SignupRecord, error) {
			require.Equal(t, "Ada", in.Name)
			require.Equal(t, "landing-page", in.Source)
			require.Equal(t, []string{"early"}, in.Tags)
			return model.SignupRecord{Email: in.Email, Tab: "Signups", CreatedAt: time.Now()}, nil
		})

	require.NoError(t, h.SubmitExtended(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSignupHandler_SubmitBulk_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, true)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/signup/bulk", map[string]interface{}{
		"signups": []map[string]string{
			{"email": "a@example.com"},
			{"email": "b@example.com", "sheetTab": "Beta"},
		},
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		SubmitBulk(gomock.Any(), gomock.Len(2)).
		Return(model.BulkResult{Success: 1, Duplicates: 1}, nil)

	require.NoError(t, h.SubmitBulk(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusOK, &env)
	require.True(t, env.Success)

	var data struct {
		Success    int      `json:"success"`
		Failed     int      `json:"failed"`
		Duplicates int      `json:"duplicates"`
		Errors     []string `json:"errors"`
	}
	decodeData(t, env, &data)
	require.Equal(t, 1, data.Success)
	require.Equal(t, 1, data.Duplicates)
	require.NotNil(t, data.Errors, "errors must serialize as an empty array")
}

func TestSignupHandler_SubmitBulk_BoundsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, true)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/signup/bulk", map[string]interface{}{
		"signups": []map[string]string{},
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		SubmitBulk(gomock.Any(), gomock.Len(0)).
		Return(model.BulkResult{}, &service.ValidationError{Details: []string{"signups must contain between 1 and 100 items"}})

	require.NoError(t, h.SubmitBulk(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusBadRequest, &env)
	require.False(t, env.Success)
}

func TestSignupHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, false)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/stats", nil)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Stats(gomock.Any()).
		Return(model.SignupStats{TotalSignups: 42, SheetTabs: []string{"Beta", "Signups"}}, nil)

	require.NoError(t, h.Stats(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusOK, &env)
	require.True(t, env.Success)

	var data struct {
		TotalSignups int64    `json:"totalSignups"`
		SheetTabs    []string `json:"sheetTabs"`
	}
	decodeData(t, env, &data)
	require.EqualValues(t, 42, data.TotalSignups)
	require.Equal(t, []string{"Beta", "Signups"}, data.SheetTabs)
}

func TestSignupHandler_Stats_EmptyTabs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSignupService(ctrl)
	h := handler.NewSignupHandler(mockService, false, false)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/stats", nil)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().Stats(gomock.Any()).Return(model.SignupStats{}, nil)

	require.NoError(t, h.Stats(c))

	var env envelope
	assertJSONResponse(t, rec, http.StatusOK, &env)

	var data struct {
		SheetTabs []string `json:"sheetTabs"`
	}
	decodeData(t, env, &data)
	require.NotNil(t, data.SheetTabs, "sheetTabs must serialize as an empty array")
}
