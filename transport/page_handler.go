package transport

import (
	"html/template"
	"net/http"
)

var loginPageTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>Back Office Login</title></head>
<body>
<form method="post" action="/api/v1/auth/login">
<input type="email" name="email" placeholder="Email" required>
<input type="password" name="password" placeholder="Password" required>
<input type="hidden" name="callbackUrl" value="{{.CallbackURL}}">
<button type="submit">Sign in</button>
</form>
</body>
</html>
`))

var adminPageTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head><title>Back Office</title></head>
<body>
<div id="root" data-path="{{.Path}}"></div>
<script src="/uploads/assets/admin.js"></script>
</body>
</html>
`))

// LoginPage renders the login form. The auth middleware bounces already
// authenticated visitors back to the root before this runs.
func (s *RestHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = loginPageTmpl.Execute(w, struct{ CallbackURL string }{
		CallbackURL: r.URL.Query().Get(callbackURLParam),
	})
}

// AdminPage serves the admin shell; the client app takes over routing.
func (s *RestHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = adminPageTmpl.Execute(w, struct{ Path string }{Path: r.URL.Path})
}
