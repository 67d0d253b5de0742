package httpgin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirinyoku/travelease/internal/domain"
)

// SessionResponse is returned to clients that ask for JSON instead of
// following the post-login redirect.
type SessionResponse struct {
	Token   string      `json:"token"`
	Expires string      `json:"expires_at"`
	User    domain.User `json:"user"`
}

// @Summary  Sign-in form
// @Success  200  {object}  FormView
// @Router   /login [get]
func handleLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			seeOther(c, "/")
			return
		}

		action := "/login"
		if r := safeRedirect(c.Query("redirect"), ""); r != "" {
			action += "?redirect=" + url.QueryEscape(r)
		}

		c.JSON(http.StatusOK, FormView{
			Title:  "Sign in to your account",
			Action: action,
			Fields: []FormField{
				{Name: "email", Type: "email", Label: "Email address", Required: true},
				{Name: "password", Type: "password", Label: "Password", Required: true},
			},
			Links: []Link{
				{Label: "Forgot your password?", Href: "/forgot-password"},
				{Label: "Create a new account", Href: "/signup"},
			},
		})
	}
}

// @Summary  Sign in
// @Param    req       body   LoginRequest  true   "credentials"
// @Param    redirect  query  string        false  "where to go after signing in"
// @Success  303
// @Success  200  {object}  SessionResponse  "when Accept is application/json"
// @Failure  401  {object}  ErrorResponse
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /login [post]
func handleLogin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		rlKey := strings.ToLower(strings.TrimSpace(req.Email)) + "|" + c.ClientIP()

		sess, user, err := d.Sessions.SignIn(c.Request.Context(), req.Email, req.Password, rlKey)
		if err != nil {
			respondErr(c, err)
			return
		}

		startSession(c, d, sess, user, safeRedirect(c.Query("redirect"), "/"))
	}
}

// @Summary  Sign-up form
// @Success  200  {object}  FormView
// @Router   /signup [get]
func handleSignupPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			seeOther(c, "/")
			return
		}

		c.JSON(http.StatusOK, FormView{
			Title:  "Create your account",
			Action: "/signup",
			Fields: []FormField{
				{Name: "name", Type: "text", Label: "Full name", Required: true},
				{Name: "email", Type: "email", Label: "Email address", Required: true},
				{Name: "password", Type: "password", Label: "Password", Required: true},
			},
			Links: []Link{
				{Label: "Already have an account? Sign in", Href: "/login"},
			},
		})
	}
}

// @Summary  Create an account and sign in
// @Param    req  body  SignupRequest  true  "account"
// @Success  303
// @Failure  400  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "email already registered"
// @Router   /signup [post]
func handleSignup(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		sess, user, err := d.Sessions.SignUp(c.Request.Context(), req.Email, req.Password, strings.TrimSpace(req.Name))
		if err != nil {
			respondErr(c, err)
			return
		}

		startSession(c, d, sess, user, "/")
	}
}

// @Summary  Forgot-password form
// @Success  200  {object}  FormView
// @Router   /forgot-password [get]
func handleForgotPasswordPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, FormView{
			Title:  "Reset your password",
			Action: "/forgot-password",
			Fields: []FormField{
				{Name: "email", Type: "email", Label: "Email address", Required: true},
			},
			Links: []Link{
				{Label: "Back to sign in", Href: "/login"},
			},
		})
	}
}

// @Summary  Send a password reset link
// @Param    req  body  ForgotPasswordRequest  true  "email"
// @Success  200  {object}  MessageResponse
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /forgot-password [post]
func handleForgotPassword(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := d.Password.ResetPassword(c.Request.Context(), req.Email); err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Message: "If an account exists for this email, a password reset link has been sent.",
		})
	}
}

// @Summary  New-password form
// @Param    token  query  string  true  "reset token from the email"
// @Success  200  {object}  FormView
// @Router   /reset-password [get]
func handleResetPasswordPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			seeOther(c, "/forgot-password")
			return
		}

		c.JSON(http.StatusOK, FormView{
			Title:  "Choose a new password",
			Action: "/reset-password",
			Fields: []FormField{
				{Name: "token", Type: "hidden", Required: true, Value: token},
				{Name: "password", Type: "password", Label: "New password", Required: true},
			},
		})
	}
}

// @Summary  Set a new password
// @Param    req  body  ResetPasswordRequest  true  "token and new password"
// @Success  303
// @Failure  400  {object}  ErrorResponse  "invalid or expired link"
// @Router   /reset-password [post]
func handleResetPassword(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := d.Password.CompletePasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
			respondErr(c, err)
			return
		}

		clearSessionCookie(c, d)
		seeOther(c, "/login")
	}
}

// @Summary  Sign out
// @Success  303
// @Failure  500  {object}  ErrorResponse  "still signed in"
// @Router   /logout [post]
func handleLogout(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := currentToken(c); token != "" {
			if err := d.Sessions.SignOut(c.Request.Context(), token); err != nil {
				respondErr(c, err)
				return
			}
		}

		clearSessionCookie(c, d)
		seeOther(c, "/")
	}
}

func startSession(c *gin.Context, d Deps, sess *domain.Session, user *domain.User, next string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sess.Token, int(d.Options.SessionTTL.Seconds()), "/", "", d.Options.SecureCookies, true)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, SessionResponse{
			Token:   sess.Token,
			Expires: sess.ExpiresAt.UTC().Format(http.TimeFormat),
			User:    *user,
		})
		return
	}

	seeOther(c, next)
}

func clearSessionCookie(c *gin.Context, d Deps) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", d.Options.SecureCookies, true)
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
