package web

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/service"
)

type AuthHandlerTestSuite struct {
	webTestSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	argsOk := service.LoginUserArgs{Email: "user@example.com", Password: "password"}
	argsWrongEmail := service.LoginUserArgs{Email: "wrong@example.com", Password: "password"}
	argsWrongPass := service.LoginUserArgs{Email: "user@example.com", Password: "wrong"}

	s.mockUserService.EXPECT().Login(gomock.Any(), argsOk).
		Return(&domain.User{ID: 1, Email: argsOk.Email}, nil)
	s.mockUserService.EXPECT().Login(gomock.Any(), argsWrongEmail).
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserService.EXPECT().Login(gomock.Any(), argsWrongPass).
		Return(nil, domain.ErrPasswordMissMatch)

	cases := []struct {
		name         string
		args         service.LoginUserArgs
		wantStatus   int
		wantLocation string
		wantMessage  string
	}{
		{
			name:         "ok",
			args:         argsOk,
			wantStatus:   http.StatusSeeOther,
			wantLocation: UserRouteGroup + UserDashboardRoute,
		},
		// Неизвестный email и неверный пароль дают одинаковый ответ.
		{
			name:        "wrong email",
			args:        argsWrongEmail,
			wantStatus:  http.StatusOK,
			wantMessage: invalidCredentialsMessage,
		},
		{
			name:        "wrong password",
			args:        argsWrongPass,
			wantStatus:  http.StatusOK,
			wantMessage: invalidCredentialsMessage,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.postForm(LoginRoute, url.Values{
				"email":    {t.args.Email},
				"password": {t.args.Password},
			}, nil)
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			if t.wantLocation != "" {
				s.Equal(t.wantLocation, resp.Header.Get("Location"))
				s.NotEmpty(resp.Cookies())
			}
			if t.wantMessage != "" {
				body, readErr := io.ReadAll(resp.Body)
				s.Require().NoError(readErr)
				s.Contains(string(body), t.wantMessage)
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	argsOk := service.RegisterUserArgs{Company: "Acme", Email: "new@example.com", Password: "password"}
	argsDup := service.RegisterUserArgs{Company: "Acme", Email: "taken@example.com", Password: "password"}

	s.mockUserService.EXPECT().Register(gomock.Any(), argsOk).
		Return(&domain.User{ID: 1, Email: argsOk.Email}, nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), argsDup).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name        string
		form        url.Values
		wantMessage string
	}{
		{
			name: "ok",
			form: url.Values{
				"company":  {argsOk.Company},
				"email":    {argsOk.Email},
				"password": {argsOk.Password},
			},
			wantMessage: accountCreatedMessage,
		},
		{
			name: "duplicate email",
			form: url.Values{
				"company":  {argsDup.Company},
				"email":    {argsDup.Email},
				"password": {argsDup.Password},
			},
			wantMessage: emailTakenMessage,
		},
		// Пустое поле не доходит до сервиса.
		{
			name: "missing company",
			form: url.Values{
				"email":    {"x@example.com"},
				"password": {"password"},
			},
			wantMessage: fieldsRequiredMessage,
		},
		{
			name: "missing password",
			form: url.Values{
				"company": {"Acme"},
				"email":   {"x@example.com"},
			},
			wantMessage: fieldsRequiredMessage,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.postForm(SignupRoute, t.form, nil)
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(http.StatusOK, resp.StatusCode)

			body, readErr := io.ReadAll(resp.Body)
			s.Require().NoError(readErr)
			s.Contains(string(body), t.wantMessage)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogout() {
	cookies := s.loginUser(1)

	resp := s.get(LogoutRoute, cookies)
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal(HomeRoute, resp.Header.Get("Location"))
}

// Выход без сессии тоже редиректит на главную.
func (s *AuthHandlerTestSuite) TestLogoutWithoutSession() {
	resp := s.get(LogoutRoute, nil)
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal(HomeRoute, resp.Header.Get("Location"))
}

func (s *AuthHandlerTestSuite) TestGuards() {
	userCookies := s.loginUser(1)
	adminCookies := s.loginAdmin(1)

	s.mockUserService.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, Company: "Acme", Email: "user@example.com"}, nil).
		AnyTimes()
	s.mockOrderService.EXPECT().RecentByUserID(gomock.Any(), int64(1), dashboardOrdersLimit).
		Return(nil, nil).AnyTimes()

	cases := []struct {
		name         string
		path         string
		cookies      []*http.Cookie
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "user area without session",
			path:         UserRouteGroup + UserDashboardRoute,
			wantStatus:   http.StatusFound,
			wantLocation: LoginRoute,
		},
		{
			name:       "user area with user session",
			path:       UserRouteGroup + UserDashboardRoute,
			cookies:    userCookies,
			wantStatus: http.StatusOK,
		},
		// Сессия админа не открывает юзерскую зону.
		{
			name:         "user area with admin session",
			path:         UserRouteGroup + UserDashboardRoute,
			cookies:      adminCookies,
			wantStatus:   http.StatusFound,
			wantLocation: LoginRoute,
		},
		{
			name:         "admin area without session",
			path:         AdminRouteGroup + AdminDashboardRoute,
			wantStatus:   http.StatusFound,
			wantLocation: AdminRouteGroup + AdminLoginRoute,
		},
		{
			name:       "admin area with admin session",
			path:       AdminRouteGroup + AdminDashboardRoute,
			cookies:    adminCookies,
			wantStatus: http.StatusOK,
		},
		{
			name:         "admin area with user session",
			path:         AdminRouteGroup + AdminDashboardRoute,
			cookies:      userCookies,
			wantStatus:   http.StatusFound,
			wantLocation: AdminRouteGroup + AdminLoginRoute,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.get(t.path, t.cookies)
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(t.wantStatus, resp.StatusCode)
			if t.wantLocation != "" {
				s.Equal(t.wantLocation, resp.Header.Get("Location"))
			}
		})
	}
}
