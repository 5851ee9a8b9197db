package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	viewCookieName   = "hexchess_view"
	viewCookieMaxAge = 30 * 24 * 60 * 60
)

type boardView string

const (
	viewDesktop boardView = "web"
	viewMobile  boardView = "mobile"
)

func (v boardView) prefix() string {
	if v == viewMobile {
		return "/web_mobile/"
	}
	return "/web/"
}

// 界面取值的别名，?view= 和 cookie 共用
var viewAliases = map[string]boardView{
	"web": viewDesktop, "desktop": viewDesktop, "pc": viewDesktop,
	"mobile": viewMobile, "m": viewMobile, "phone": viewMobile, "web_mobile": viewMobile,
}

var mobileUANeedles = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone", "harmony"}

// RegisterStaticRoutes 挂载棋盘前端：
// /web/* 是桌面版，/web_mobile/* 是手机版，/ 按 ?view=、cookie、UA 的顺序选一个跳过去。
// mobileDir 为空时两个前缀共用 desktopDir。
func RegisterStaticRoutes(r chi.Router, desktopDir string, mobileDir string) {
	if desktopDir == "" {
		desktopDir = "."
	}
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	for view, dir := range map[boardView]string{viewDesktop: desktopDir, viewMobile: mobileDir} {
		prefix := view.prefix()
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
		r.Get(strings.TrimSuffix(prefix, "/"), redirectTo(prefix))
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		view := chooseView(w, req)
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, req, view.prefix(), http.StatusFound)
	})
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// 显式指定的 ?view= 会写回 cookie
func chooseView(w http.ResponseWriter, r *http.Request) boardView {
	if v, ok := parseView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    string(v),
			Path:     "/",
			MaxAge:   viewCookieMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := parseView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

func parseView(s string) (boardView, bool) {
	v, ok := viewAliases[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func isMobileUA(ua string) bool {
	ua = strings.ToLower(ua)
	for _, n := range mobileUANeedles {
		if strings.Contains(ua, n) {
			return true
		}
	}
	return false
}
